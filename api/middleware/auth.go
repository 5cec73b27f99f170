// ABOUTME: JWT bearer authentication middleware
// ABOUTME: Extracts and verifies tokens, injecting the caller identity into the request context

package middleware

import (
	"context"
	"net/http"
	"strings"

	"inkwell-api/core/auth"
)

// contextKey is a private type for context values set by this package
type contextKey string

const identityKey contextKey = "identity"

// Identity carries the authenticated caller's identity
type Identity struct {
	UserID   int64
	Username string
}

// TokenVerifier validates an access token and returns its claims
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

// AuthMiddleware verifies Bearer tokens when present. Requests without a
// token pass through unauthenticated; handlers decide whether identity is
// required. A token that is present but invalid is rejected here.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"Invalid or expired token"}`))
				return
			}

			identity := &Identity{
				UserID:   claims.UserID,
				Username: claims.Username,
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the authenticated identity, if any
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok
}
