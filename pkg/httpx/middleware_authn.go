package httpx

import (
	"net/http"
	"strings"

	"github.com/teamloft/teamloft/pkg/jwtx"
	"github.com/teamloft/teamloft/pkg/slogx"
)

// AuthnMiddleware verifies the bearer session token and injects the caller
// identity into the request context. The token is minted by the external
// identity provider; this service only verifies.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session token rejected", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ident := Identity{
				UserID: claims.Subject,
				Email:  strings.ToLower(claims.Email),
				Name:   claims.Name,
			}
			next.ServeHTTP(w, r.WithContext(contextWithIdentity(ctx, ident)))
		})
	}
}

// RFC 6750-compliant error response for bearer auth, plus the uniform JSON
// error body.
func writeBearerError(w http.ResponseWriter, desc string) {
	NoCache(w)
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "authentication required")
}
