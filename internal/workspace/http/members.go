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

// MembersHandler serves workspace membership listings and mutations.
type MembersHandler struct {
	WorkspaceService *service.WorkspaceService
}

// HandleList godoc
//
//	@Summary		List Workspace Members
//	@Description	List a workspace's members with their roles, owners first. Any member may read the roster.
//	@Tags			Members
//	@Produce		json
//	@Param			id	path		string							true	"Workspace ID"
//	@Success		200	{object}	workspacesdk.MemberListResponse	"members"
//	@Failure		401	{object}	workspacesdk.ErrorResponse		"error"
//	@Failure		403	{object}	workspacesdk.ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id}/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	members, err := h.WorkspaceService.ListMembers(ctx, r.PathValue("id"), ident.UserID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMemberList(members))
}

// HandleRemove godoc
//
//	@Summary		Remove Workspace Member
//	@Description	Remove a member from a workspace. Members may remove themselves (leave); removing someone else takes OWNER or ADMIN,
//	@Description	and nobody outranked by the target may act on them. Removing the sole OWNER is a 409.
//	@Tags			Members
//	@Produce		json
//	@Param			id		path		string						true	"Workspace ID"
//	@Param			userID	path		string						true	"User ID of the member to remove"
//	@Success		200		{object}	workspacesdk.SuccessResponse	"success"
//	@Failure		401		{object}	workspacesdk.ErrorResponse	"error"
//	@Failure		403		{object}	workspacesdk.ErrorResponse	"error"
//	@Failure		404		{object}	workspacesdk.ErrorResponse	"error"
//	@Failure		409		{object}	workspacesdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id}/members/{userID} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	workspaceID := r.PathValue("id")
	targetID := r.PathValue("userID")
	if err := h.WorkspaceService.RemoveMember(ctx, workspaceID, ident.UserID, targetID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	log.Info("member removed via api",
		"workspace_id", workspaceID,
		"user_id", targetID,
	)
	httpx.WriteJSON(w, http.StatusOK, workspacesdk.SuccessResponse{Success: true})
}

// HandleChangeRole godoc
//
//	@Summary		Change Member Role
//	@Description	Update a member's role. OWNER only. Demoting the sole OWNER is a 409; promoting another member to OWNER shares ownership.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Workspace ID"
//	@Param			userID	path		string							true	"User ID of the member to update"
//	@Param			request	body		workspacesdk.ChangeRoleRequest	true	"New role"
//	@Success		200		{object}	workspacesdk.MemberResponse		"member"
//	@Failure		400		{object}	workspacesdk.ErrorResponse		"error"
//	@Failure		401		{object}	workspacesdk.ErrorResponse		"error"
//	@Failure		403		{object}	workspacesdk.ErrorResponse		"error"
//	@Failure		404		{object}	workspacesdk.ErrorResponse		"error"
//	@Failure		409		{object}	workspacesdk.ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id}/members/{userID} [patch].
func (h *MembersHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	var req workspacesdk.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	workspaceID := r.PathValue("id")
	targetID := r.PathValue("userID")
	member, err := h.WorkspaceService.ChangeRole(ctx,
		workspaceID, ident.UserID, targetID, domain.Role(req.Role))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	log.Info("member role changed via api",
		"workspace_id", workspaceID,
		"user_id", targetID,
		"role", req.Role,
	)
	httpx.WriteJSON(w, http.StatusOK, workspacesdk.MemberResponse{
		UserID:   member.UserID,
		Role:     string(member.Role),
		JoinedAt: member.CreatedAt,
	})
}
