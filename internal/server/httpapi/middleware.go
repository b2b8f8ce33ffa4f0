package httpapi

import (
	"context"
	"net/http"

	"github.com/stitchline/storefront/internal/common"
	"github.com/stitchline/storefront/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// tokenHeader is the custom header the web client sends the session token
// in. There is no cookie or server-side session mechanism.
const tokenHeader = "auth-token"

// requireUser verifies the session token and stashes the resolved user id
// in the request context.
func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(tokenHeader)
		if token == "" {
			s.respondError(w, r, common.ErrorMissingToken)
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			s.respondError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

func userIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
