package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"authgate/pkg/principal"
	"authgate/pkg/session"
)

// CheckSession validates the token carried in the session cookie against
// the store. Not-found and expired collapse into one response so a caller
// cannot tell whether a token ever existed.
func CheckSession(sessions session.Repository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				http.Error(w, `{"message":"no cookie found"}`, http.StatusUnauthorized)
				return
			}

			sess, err := sessions.Find(cookie.Value)
			if err != nil && !errors.Is(err, session.ErrNotFound) {
				logger.Error("session lookup", "error", err)
				http.Error(w, `{"message":"internal server error"}`, http.StatusInternalServerError)
				return
			}
			if sess == nil || sess.Expired(time.Now()) {
				http.Error(w, `{"message":"invalid or expired session"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principal.PrincipalContextKey, &principal.Principal{
				UserID: sess.UserID,
				Role:   sess.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
