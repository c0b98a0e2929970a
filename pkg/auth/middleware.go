package auth

import (
	"encoding/json"
	"net/http"

	"github.com/tair/backoffice/pkg/logger"
)

// Middleware resolves the bearer token into a Principal and rejects the request otherwise.
func (v *TokenValidator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			respondUnauthorized(w, "Unauthorized")
			return
		}

		principal, err := v.ValidateToken(token)
		if err != nil {
			logger.Debug(r.Context()).Err(err).Msg("Rejected bearer token")
			respondUnauthorized(w, "Unauthorized")
			return
		}

		ctx := ContextWithPrincipal(r.Context(), principal)
		ctx = logger.ContextWithPrincipal(ctx, principal.ExternalRef)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
