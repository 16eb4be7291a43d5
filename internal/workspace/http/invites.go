package http

import (
	"encoding/json"
	"net/http"

	"github.com/teamloft/teamloft/internal/workspace/domain"
	"github.com/teamloft/teamloft/internal/workspace/service"
	"github.com/teamloft/teamloft/pkg/httpx"
	"github.com/teamloft/teamloft/pkg/slogx"
	"github.com/teamloft/teamloft/pkg/workspacesdk"
)

// WorkspaceInvitesHandler serves the workspace-facing side of the lifecycle:
// creating, listing and withdrawing a workspace's pending invitations.
type WorkspaceInvitesHandler struct {
	InvitationService *service.InvitationService
}

// HandleCreate godoc
//
//	@Summary		Invite User to Workspace
//	@Description	Create a pending invitation for an email address at a role. Caller must be OWNER or ADMIN of the workspace.
//	@Description	Role must be ADMIN or MEMBER; OWNER is never grantable by invitation. A second pending invitation for the same email is a 409.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Workspace ID"
//	@Param			request	body		workspacesdk.CreateInviteRequest	true	"Invitee email and role"
//	@Success		201		{object}	workspacesdk.InvitationResponse		"invitation"
//	@Failure		400		{object}	workspacesdk.ErrorResponse			"error"
//	@Failure		401		{object}	workspacesdk.ErrorResponse			"error"
//	@Failure		403		{object}	workspacesdk.ErrorResponse			"error"
//	@Failure		409		{object}	workspacesdk.ErrorResponse			"error"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id}/invites [post].
func (h *WorkspaceInvitesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	var req workspacesdk.CreateInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	inv, err := h.InvitationService.Create(ctx,
		r.PathValue("id"), ident.UserID, req.Email, domain.Role(req.Role))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	log.Info("invitation created via api",
		"invitation_id", inv.ID,
		"workspace_id", inv.WorkspaceID,
	)
	httpx.WriteJSON(w, http.StatusCreated, toInvitationResponse(inv))
}

// HandleList godoc
//
//	@Summary		List Workspace Invitations
//	@Description	List a workspace's pending, unexpired invitations with inviter detail, newest first. Caller must be OWNER or ADMIN.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string								true	"Workspace ID"
//	@Success		200	{object}	workspacesdk.InvitationListResponse	"invitations"
//	@Failure		401	{object}	workspacesdk.ErrorResponse			"error"
//	@Failure		403	{object}	workspacesdk.ErrorResponse			"error"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id}/invites [get].
func (h *WorkspaceInvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	details, err := h.InvitationService.ListForWorkspace(ctx, r.PathValue("id"), ident.UserID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvitationList(details))
}

// HandleCancel godoc
//
//	@Summary		Cancel Invitation
//	@Description	Withdraw a pending invitation. Caller must be OWNER or ADMIN of the workspace; an invitation belonging to a different workspace is a 404.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id			path		string						true	"Workspace ID"
//	@Param			inviteID	path		string						true	"Invitation ID"
//	@Success		200			{object}	workspacesdk.SuccessResponse	"success"
//	@Failure		401			{object}	workspacesdk.ErrorResponse	"error"
//	@Failure		403			{object}	workspacesdk.ErrorResponse	"error"
//	@Failure		404			{object}	workspacesdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id}/invites/{inviteID} [delete].
func (h *WorkspaceInvitesHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	workspaceID := r.PathValue("id")
	invitationID := r.PathValue("inviteID")
	if err := h.InvitationService.Cancel(ctx, workspaceID, invitationID, ident.UserID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	log.Info("invitation cancelled via api",
		"invitation_id", invitationID,
		"workspace_id", workspaceID,
	)
	httpx.WriteJSON(w, http.StatusOK, workspacesdk.SuccessResponse{Success: true})
}
