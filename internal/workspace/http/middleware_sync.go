package http

import (
	"net/http"

	"github.com/teamloft/teamloft/internal/workspace/service"
	"github.com/teamloft/teamloft/pkg/httpx"
	"github.com/teamloft/teamloft/pkg/slogx"
)

// UserSyncMiddleware mirrors the authenticated caller into the local users
// table. Runs after AuthnMiddleware so invitation and member listings can
// join inviter email and display name without calling the identity provider.
// A failed upsert does not fail the request.
func UserSyncMiddleware(users *service.UserService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if ident, ok := httpx.IdentityFromContext(ctx); ok {
				if err := users.Sync(ctx, ident.UserID, ident.Email, ident.Name); err != nil {
					slogx.FromContext(ctx).Warn("failed to sync user from token claims",
						"user_id", ident.UserID,
						"err", err,
					)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
