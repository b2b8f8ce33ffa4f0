package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stitchline/storefront/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFromError maps a service error to an HTTP status and a message safe
// to expose. Anything unmatched is an internal failure and reports only a
// generic message.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, "validation error"
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrorMissingToken):
		return http.StatusUnauthorized, "missing token"
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, common.ErrorWrongPassword):
		return http.StatusUnauthorized, "wrong password"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFromError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, map[string]any{"success": false, "errors": msg})
}
