package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"dashboard/internal/auth"
)

const identityHeader = "X-User-Id"

type identityContextKey struct{}

// WithIdentity resolves the identity header through the auth collaborator and
// stores the result in the request context. A nil resolver leaves requests
// anonymous (open access).
func WithIdentity(resolver auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if resolver == nil {
				next.ServeHTTP(w, r)
				return
			}
			identity, err := resolver.Resolve(r.Context(), r.Header.Get(identityHeader))
			if err != nil {
				if errors.Is(err, auth.ErrUnknownIdentity) {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, http.StatusBadGateway, "auth_unavailable", "identity resolution failed")
				return
			}
			ctx := context.WithValue(r.Context(), identityContextKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose resolved identity is missing or not an
// admin. It is a no-op when enforce is false (no resolver configured).
func RequireAdmin(enforce bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enforce {
				next.ServeHTTP(w, r)
				return
			}
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing or unknown identity")
				return
			}
			if !identity.IsAdmin {
				writeError(w, http.StatusForbidden, "forbidden", "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext returns the resolved caller identity, if any.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(auth.Identity)
	return identity, ok
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
