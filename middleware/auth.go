package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"wholesale-delivery/utils"
)

// Key type for context
type contextKey string

const ClaimsContextKey = contextKey("claims")

// TokenParser verifies bearer tokens
type TokenParser interface {
	Parse(tokenStr string) (*utils.Claims, error)
}

// RevocationChecker reports accounts whose tokens are no longer accepted
type RevocationChecker interface {
	IsRevoked(ctx context.Context, subject string) (bool, error)
}

func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}

// Authenticate verifies the bearer token and attaches its claims to the
// request context.
func Authenticate(tokens TokenParser, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				deny(w, http.StatusUnauthorized, "Authorization header missing")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				deny(w, http.StatusUnauthorized, "Invalid Authorization header format")
				return
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				deny(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			revoked, err := revocations.IsRevoked(r.Context(), claims.Account())
			if err != nil {
				log.Printf("ERROR: check revocation for %s: %v", claims.Account(), err)
				deny(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}
			if revoked {
				deny(w, http.StatusUnauthorized, "Session has been revoked")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole lets the request through only for the listed roles. It must
// run after Authenticate.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r.Context())
			if !ok {
				deny(w, http.StatusUnauthorized, "Authorization required")
				return
			}
			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			deny(w, http.StatusForbidden, "Forbidden")
		})
	}
}

// ClaimsFrom returns the claims stored by Authenticate, if any.
func ClaimsFrom(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*utils.Claims)
	return claims, ok
}
