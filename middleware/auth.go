package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"taskmanager/utils"
)

type contextKey string

const userIDKey contextKey = "userId"

// Auth gates task routes behind a bearer token. It rejects missing,
// malformed, expired or forged tokens with 401 and puts the verified user id
// into the request context for downstream handlers.
func Auth(secret []byte) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(authHeader, prefix) {
				utils.ResponseWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := utils.ValidateJwt(strings.TrimPrefix(authHeader, prefix), secret)
			if err != nil {
				utils.ResponseWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the verified caller id placed by Auth.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
