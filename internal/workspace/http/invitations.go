package http

import (
	"net/http"

	"github.com/teamloft/teamloft/internal/workspace/service"
	"github.com/teamloft/teamloft/pkg/httpx"
	"github.com/teamloft/teamloft/pkg/slogx"
	"github.com/teamloft/teamloft/pkg/workspacesdk"
)

// InvitationsHandler serves the invitee-facing side of the lifecycle: the
// caller's pending invitations and the accept/decline actions on them.
type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleList godoc
//
//	@Summary		List My Invitations
//	@Description	List the pending, unexpired invitations addressed to the authenticated user's email, newest first.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	workspacesdk.InvitationListResponse	"invitations"
//	@Failure		401	{object}	workspacesdk.ErrorResponse			"error"
//	@Failure		500	{object}	workspacesdk.ErrorResponse			"error"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	details, err := h.InvitationService.ListForUser(ctx, ident.Email)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvitationList(details))
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation
//	@Description	Accept a pending invitation addressed to the authenticated user's email and join the workspace at the invited role.
//	@Description	Only the invitee may accept; an email mismatch is a 403. Non-pending or expired invitations are a 409.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string							true	"Invitation ID"
//	@Success		200	{object}	workspacesdk.AcceptResponse		"message, workspace_id"
//	@Failure		401	{object}	workspacesdk.ErrorResponse		"error"
//	@Failure		403	{object}	workspacesdk.ErrorResponse		"error"
//	@Failure		404	{object}	workspacesdk.ErrorResponse		"error"
//	@Failure		409	{object}	workspacesdk.ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/accept [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	invitationID := r.PathValue("id")
	inv, err := h.InvitationService.Accept(ctx, invitationID, ident.UserID, ident.Email)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	log.Info("invitation accepted via api",
		"invitation_id", inv.ID,
		"workspace_id", inv.WorkspaceID,
	)
	httpx.WriteJSON(w, http.StatusOK, workspacesdk.AcceptResponse{
		Message:     "invitation accepted",
		WorkspaceID: inv.WorkspaceID,
	})
}

// HandleDecline godoc
//
//	@Summary		Decline Invitation
//	@Description	Decline a pending invitation addressed to the authenticated user's email. Declining is terminal and has no membership side effect.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string						true	"Invitation ID"
//	@Success		200	{object}	workspacesdk.MessageResponse	"message"
//	@Failure		401	{object}	workspacesdk.ErrorResponse	"error"
//	@Failure		403	{object}	workspacesdk.ErrorResponse	"error"
//	@Failure		404	{object}	workspacesdk.ErrorResponse	"error"
//	@Failure		409	{object}	workspacesdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/decline [post].
func (h *InvitationsHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	invitationID := r.PathValue("id")
	if err := h.InvitationService.Decline(ctx, invitationID, ident.UserID, ident.Email); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, workspacesdk.MessageResponse{
		Message: "invitation declined",
	})
}
