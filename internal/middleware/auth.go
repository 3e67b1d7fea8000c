// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/oshaad/backoffice/internal/token"
)

type ctxKey string

const adminKey ctxKey = "admin"

// BearerAuth enforces bearer-token authentication on mutating catalog
// endpoints.
//
// It expects an "Authorization: Bearer <token>" header carrying a JWT
// signed with the given secret. Missing, malformed, expired, or tampered
// tokens are rejected with 401 and a JSON {"message": ...} body, matching
// the error payload shape of the rest of the API.
//
// On success, the admin ID from the token claims is stored in the request
// context, so it can be used downstream as the authenticated admin.
func BearerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "authorization required")
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				unauthorized(w, "invalid authorization header")
				return
			}

			claims, err := token.Validate(strings.TrimSpace(raw), secret)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, claims.AdminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminIDFromContext extracts the authenticated admin ID from the request
// context. Returns an empty string if not found.
func GetAdminIDFromContext(ctx context.Context) string {
	val := ctx.Value(adminKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
