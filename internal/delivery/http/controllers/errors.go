package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"nevadotrek/internal/delivery/http/helpers"
	"nevadotrek/internal/domain"
)

// respondError maps a service error onto the HTTP surface. Conflicts between
// the request and current event or booking state all land on 409 with the
// service's message, so clients can tell "full" apart from "not public"
// without parsing status codes.
func respondError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var capErr *domain.CapacityExceededError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		helpers.WriteJSONError(w, http.StatusTooManyRequests, helpers.ErrCodeRateLimited, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeUnauthorized, err.Error())
	case errors.Is(err, domain.ErrEventExists),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrEventNotPublic),
		errors.Is(err, domain.ErrTourExists),
		errors.Is(err, domain.ErrTourInactive),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.As(err, &capErr):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.ErrorContext(r.Context(), "store unavailable", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "temporarily unavailable, retry")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
