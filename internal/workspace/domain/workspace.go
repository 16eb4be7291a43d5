package domain

import "time"

// Workspace is the tenant boundary grouping users, projects and invitations.
type Workspace struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Member is a membership row linking a user to a workspace at a role.
// Unique per (WorkspaceID, UserID).
type Member struct {
	WorkspaceID string
	UserID      string
	Role        Role
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MemberDetail is a membership row joined with the member's identity,
// used for listings.
type MemberDetail struct {
	Member

	Email string
	Name  string
}

// WorkspaceSummary pairs a workspace with the caller's role in it.
type WorkspaceSummary struct {
	Workspace

	Role Role
}
