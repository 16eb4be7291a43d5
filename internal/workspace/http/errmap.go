package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/teamloft/teamloft/internal/workspace/service"
	"github.com/teamloft/teamloft/pkg/httpx"
	"github.com/teamloft/teamloft/pkg/slogx"
)

// writeServiceError translates the service error taxonomy into HTTP status
// codes with the uniform {"error": "..."} body. Unknown errors are logged
// and surfaced as a generic 500 so internals never leak to callers.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrRoleNotGrantable):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "you do not have access to this resource")

	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "resource not found")

	case errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrDuplicateInvitation),
		errors.Is(err, service.ErrInvitationNotPending),
		errors.Is(err, service.ErrInvitationExpired),
		errors.Is(err, service.ErrLastOwner):
		httpx.WriteError(w, http.StatusConflict, err.Error())

	default:
		slogx.FromContext(ctx).Error("unhandled service error", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireIdentity pulls the authenticated caller out of the context. The
// authn middleware guarantees it on secured routes; the fallback 401 guards
// against routes mistakenly registered without it.
func requireIdentity(ctx context.Context, w http.ResponseWriter) (httpx.Identity, bool) {
	ident, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "authentication required")
	}
	return ident, ok
}
