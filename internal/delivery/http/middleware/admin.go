package middleware

import (
	"crypto/subtle"
	"net/http"

	h "nevadotrek/internal/delivery/http/helpers"
)

// AdminKeyHeader carries the shared admin secret.
const AdminKeyHeader = "X-Admin-Secret-Key"

// IsAdmin reports whether the request carries the configured admin secret.
// Always false when no secret is configured, so a blank config can never
// open the admin surface.
func IsAdmin(r *http.Request, adminKey string) bool {
	if adminKey == "" {
		return false
	}
	got := r.Header.Get(AdminKeyHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(adminKey)) == 1
}

// RequireAdmin returns a wrapper that rejects requests without a valid admin
// secret with 403 and does not call next.
func RequireAdmin(adminKey string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !IsAdmin(r, adminKey) {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeUnauthorized, "admin access required")
				return
			}
			next(w, r)
		}
	}
}
