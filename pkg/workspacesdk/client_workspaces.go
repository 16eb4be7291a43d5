package workspacesdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateWorkspace creates a workspace owned by the caller.
func (c *Client) CreateWorkspace(
	ctx context.Context,
	req CreateWorkspaceRequest,
) (*WorkspaceResponse, error) {
	var resp WorkspaceResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/workspaces", req, &resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListWorkspaces returns every workspace the caller belongs to, with role.
func (c *Client) ListWorkspaces(ctx context.Context) (*WorkspaceListResponse, error) {
	var resp WorkspaceListResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/workspaces", nil, &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetWorkspace fetches one workspace. Requires membership; non-members get
// a 403 whether or not the workspace exists.
func (c *Client) GetWorkspace(ctx context.Context, workspaceID string) (*WorkspaceResponse, error) {
	var resp WorkspaceResponse
	err := c.doJSON(ctx, http.MethodGet,
		"/v1/workspaces/"+url.PathEscape(workspaceID), nil, &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListMembers returns a workspace's membership, owners first.
func (c *Client) ListMembers(ctx context.Context, workspaceID string) (*MemberListResponse, error) {
	var resp MemberListResponse
	err := c.doJSON(ctx, http.MethodGet,
		"/v1/workspaces/"+url.PathEscape(workspaceID)+"/members", nil, &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveMember removes a member, or lets the caller leave when userID is
// their own id. Removing the sole owner is a conflict.
func (c *Client) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	var resp SuccessResponse
	return c.doJSON(ctx, http.MethodDelete,
		"/v1/workspaces/"+url.PathEscape(workspaceID)+"/members/"+url.PathEscape(userID),
		nil, &resp, http.StatusOK)
}

// ChangeMemberRole updates a member's role. Owner-only; demoting the sole
// owner is a conflict.
func (c *Client) ChangeMemberRole(
	ctx context.Context,
	workspaceID, userID, role string,
) (*MemberResponse, error) {
	var resp MemberResponse
	err := c.doJSON(ctx, http.MethodPatch,
		"/v1/workspaces/"+url.PathEscape(workspaceID)+"/members/"+url.PathEscape(userID),
		ChangeRoleRequest{Role: role}, &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
