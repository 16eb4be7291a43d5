package domain

import "time"

// InvitationStatus is the lifecycle state of an invitation. Transitions are
// one-way: PENDING is the only non-terminal state.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
	InvitationExpired  InvitationStatus = "EXPIRED"
)

// Invitation is a pending offer of workspace membership at a given role,
// bound to an email address and an expiry. Email is stored lowercased and all
// comparisons are case-insensitive.
type Invitation struct {
	ID          string
	WorkspaceID string
	Email       string
	Role        Role
	InviterID   string
	Status      InvitationStatus
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Actionable reports whether the invitation can still be accepted or
// declined at the given instant. Expiry is lazy: a PENDING row past its
// ExpiresAt is treated as expired even if no sweep has flipped it yet.
func (i Invitation) Actionable(now time.Time) bool {
	return i.Status == InvitationPending && now.Before(i.ExpiresAt)
}

// InvitationDetail joins an invitation with its workspace summary and the
// inviter's identity for listings.
type InvitationDetail struct {
	Invitation

	WorkspaceName string
	InviterEmail  string
	InviterName   string
}
