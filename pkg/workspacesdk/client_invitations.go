package workspacesdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListMyInvitations returns the pending invitations addressed to the
// caller's email, newest first.
func (c *Client) ListMyInvitations(ctx context.Context) (*InvitationListResponse, error) {
	var resp InvitationListResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/invitations", nil, &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AcceptInvitation accepts a pending invitation addressed to the caller and
// joins the workspace at the invited role.
func (c *Client) AcceptInvitation(ctx context.Context, invitationID string) (*AcceptResponse, error) {
	var resp AcceptResponse
	err := c.doJSON(ctx, http.MethodPost,
		"/v1/invitations/"+url.PathEscape(invitationID)+"/accept", nil, &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeclineInvitation declines a pending invitation addressed to the caller.
func (c *Client) DeclineInvitation(ctx context.Context, invitationID string) error {
	var resp MessageResponse
	return c.doJSON(ctx, http.MethodPost,
		"/v1/invitations/"+url.PathEscape(invitationID)+"/decline", nil, &resp, http.StatusOK)
}

// CreateInvite invites an email address into the workspace. Caller must be
// OWNER or ADMIN there; role must be ADMIN or MEMBER.
func (c *Client) CreateInvite(
	ctx context.Context,
	workspaceID string,
	req CreateInviteRequest,
) (*InvitationResponse, error) {
	var resp InvitationResponse
	err := c.doJSON(ctx, http.MethodPost,
		"/v1/workspaces/"+url.PathEscape(workspaceID)+"/invites",
		req, &resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListWorkspaceInvites returns a workspace's pending invitations, newest
// first. Caller must be OWNER or ADMIN.
func (c *Client) ListWorkspaceInvites(
	ctx context.Context,
	workspaceID string,
) (*InvitationListResponse, error) {
	var resp InvitationListResponse
	err := c.doJSON(ctx, http.MethodGet,
		"/v1/workspaces/"+url.PathEscape(workspaceID)+"/invites",
		nil, &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelInvite withdraws a pending invitation. Caller must be OWNER or ADMIN
// of the workspace the invitation belongs to.
func (c *Client) CancelInvite(ctx context.Context, workspaceID, invitationID string) error {
	var resp SuccessResponse
	return c.doJSON(ctx, http.MethodDelete,
		"/v1/workspaces/"+url.PathEscape(workspaceID)+"/invites/"+url.PathEscape(invitationID),
		nil, &resp, http.StatusOK)
}
