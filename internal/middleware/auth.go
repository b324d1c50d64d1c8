package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hongminglow/blog-be/internal/access"
	"github.com/hongminglow/blog-be/internal/common"
	"github.com/hongminglow/blog-be/internal/http/respond"
)

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's user id on the request context for the wrapped handler.
func RequireAuth(gate *access.Gate, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := gate.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				switch {
				case errors.Is(err, common.ErrMissingToken):
					respond.Error(w, http.StatusUnauthorized, common.ErrMissingToken.Error())
				case errors.Is(err, common.ErrExpiredToken):
					respond.Error(w, http.StatusUnauthorized, common.ErrExpiredToken.Error())
				default:
					logger.DebugContext(r.Context(), "token rejected", "error", err)
					respond.Error(w, http.StatusUnauthorized, common.ErrInvalidToken.Error())
				}
				return
			}
			next.ServeHTTP(w, r.WithContext(access.WithUserID(r.Context(), userID)))
		})
	}
}
