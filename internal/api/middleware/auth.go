// internal/api/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"finance-tracker/internal/token"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenVerifier verifies a signed token of the given kind and returns the
// user ID it carries. *token.Service satisfies this.
type TokenVerifier interface {
	Verify(tokenString string, kind token.Kind) (string, error)
}

// Auth returns middleware that enforces a valid access token on every
// request. The Authorization header may carry either the raw token or the
// "Bearer <token>" form; both are accepted on every route. Verification
// failures are reported uniformly, without revealing whether the token was
// malformed or expired.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondUnauthorized(w, "Access denied. No token provided.")
				return
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			userID, err := verifier.Verify(tokenString, token.KindAccess)
			if err != nil {
				respondUnauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the authenticated user's ID placed in the
// context by Auth. Handlers must take the owner identity from here, never
// from the request body.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
