package middleware

import (
	"fmt"
	"net/http"

	"authgate/pkg/credentials"
)

// BasicAuth admits requests whose Authorization header carries the
// configured pair. Missing header gets a 401 with a challenge; a pair
// that decodes but does not match gets a 403.
func BasicAuth(creds credentials.Provider, realm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			if _, err := creds.Check(username, password); err != nil {
				http.Error(w, `{"message":"forbidden"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
