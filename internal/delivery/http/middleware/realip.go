package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the client identifier used for throttling: the first
// entry of X-Forwarded-For when present (the address the edge proxy saw),
// otherwise the host part of RemoteAddr.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
