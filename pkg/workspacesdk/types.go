package workspacesdk

import "time"

// ErrorResponse is the error body every endpoint returns on failure.
type ErrorResponse struct {
	// Error is a human-readable message; machine-readable detail is carried
	// by the HTTP status code.
	Error string `json:"error"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`

	// Checks is only populated by /readyz.
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// CreateWorkspaceRequest creates a workspace owned by the caller.
type CreateWorkspaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// WorkspaceResponse is a single workspace record.
type WorkspaceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkspaceSummary is a workspace paired with the caller's role in it.
type WorkspaceSummary struct {
	WorkspaceResponse

	Role string `json:"role"`
}

// WorkspaceListResponse lists the caller's workspaces.
type WorkspaceListResponse struct {
	Workspaces []WorkspaceSummary `json:"workspaces"`
}

// MemberResponse is one membership row joined with the member's identity.
type MemberResponse struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name,omitempty"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// MemberListResponse lists a workspace's members, owners first.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// ChangeRoleRequest updates a member's role. Owner-only.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// CreateInviteRequest invites an email address into a workspace at a role.
// Role must be ADMIN or MEMBER.
type CreateInviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// InvitationResponse is a single invitation, with workspace and inviter
// context when listed.
type InvitationResponse struct {
	ID            string    `json:"id"`
	WorkspaceID   string    `json:"workspace_id"`
	WorkspaceName string    `json:"workspace_name,omitempty"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	InviterEmail  string    `json:"inviter_email,omitempty"`
	InviterName   string    `json:"inviter_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// InvitationListResponse lists pending invitations, newest first.
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

// AcceptResponse confirms an accepted invitation and names the workspace
// the caller just joined.
type AcceptResponse struct {
	Message     string `json:"message"`
	WorkspaceID string `json:"workspace_id"`
}

// MessageResponse is a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse acknowledges a deletion.
type SuccessResponse struct {
	Success bool `json:"success"`
}
