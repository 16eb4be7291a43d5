package domain

// Role is a capability tier scoped to a single workspace. For
// workspace-management actions the tiers nest: OWNER can do everything ADMIN
// can, ADMIN everything MEMBER can.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// ParseRole validates a wire-format role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleAdmin, RoleMember:
		return Role(s), true
	}
	return "", false
}

// Grantable reports whether a role may be handed out via an invitation.
// Ownership is only ever shared through an explicit role change by an
// existing OWNER, never through the invite flow.
func (r Role) Grantable() bool {
	return r == RoleAdmin || r == RoleMember
}

// AtLeast reports whether r sits at or above want in the capability ordering.
func (r Role) AtLeast(want Role) bool {
	return rank(r) >= rank(want)
}

func rank(r Role) int {
	switch r {
	case RoleOwner:
		return 3
	case RoleAdmin:
		return 2
	case RoleMember:
		return 1
	}
	return 0
}
