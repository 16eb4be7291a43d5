package http

import (
	"encoding/json"
	"net/http"

	"github.com/teamloft/teamloft/internal/workspace/service"
	"github.com/teamloft/teamloft/pkg/httpx"
	"github.com/teamloft/teamloft/pkg/slogx"
	"github.com/teamloft/teamloft/pkg/workspacesdk"
)

// WorkspacesHandler serves workspace CRUD for the authenticated user.
type WorkspacesHandler struct {
	WorkspaceService *service.WorkspaceService
}

// HandleCreate godoc
//
//	@Summary		Create Workspace
//	@Description	Create a workspace with the authenticated user as its OWNER.
//	@Tags			Workspaces
//	@Accept			json
//	@Produce		json
//	@Param			request	body		workspacesdk.CreateWorkspaceRequest	true	"Workspace to create"
//	@Success		201		{object}	workspacesdk.WorkspaceResponse		"id, name, description"
//	@Failure		400		{object}	workspacesdk.ErrorResponse			"error"
//	@Failure		401		{object}	workspacesdk.ErrorResponse			"error"
//	@Security		BearerAuth
//	@Router			/v1/workspaces [post].
func (h *WorkspacesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	var req workspacesdk.CreateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ws, err := h.WorkspaceService.Create(ctx, ident.UserID, req.Name, req.Description)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	log.Info("workspace created via api", "workspace_id", ws.ID)
	httpx.WriteJSON(w, http.StatusCreated, toWorkspaceResponse(ws))
}

// HandleList godoc
//
//	@Summary		List My Workspaces
//	@Description	List every workspace the authenticated user belongs to, with their role in each.
//	@Tags			Workspaces
//	@Produce		json
//	@Success		200	{object}	workspacesdk.WorkspaceListResponse	"workspaces"
//	@Failure		401	{object}	workspacesdk.ErrorResponse			"error"
//	@Security		BearerAuth
//	@Router			/v1/workspaces [get].
func (h *WorkspacesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	summaries, err := h.WorkspaceService.ListForUser(ctx, ident.UserID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWorkspaceList(summaries))
}

// HandleGet godoc
//
//	@Summary		Get Workspace
//	@Description	Fetch one workspace. Requires membership; non-members receive a 403 whether or not the workspace exists.
//	@Tags			Workspaces
//	@Produce		json
//	@Param			id	path		string							true	"Workspace ID"
//	@Success		200	{object}	workspacesdk.WorkspaceResponse	"id, name, description"
//	@Failure		401	{object}	workspacesdk.ErrorResponse		"error"
//	@Failure		403	{object}	workspacesdk.ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id} [get].
func (h *WorkspacesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ident, ok := requireIdentity(ctx, w)
	if !ok {
		return
	}

	ws, err := h.WorkspaceService.Get(ctx, r.PathValue("id"), ident.UserID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}
