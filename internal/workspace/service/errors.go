package service

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP status codes;
// anything not listed here surfaces as a 500 with a generic body.
var (
	// ErrInvalidRequest covers missing or malformed input fields.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidRole reports a role string outside OWNER/ADMIN/MEMBER.
	ErrInvalidRole = errors.New("invalid role")

	// ErrRoleNotGrantable reports an attempt to hand out OWNER via an
	// invitation. Ownership moves only through explicit role changes.
	ErrRoleNotGrantable = errors.New("role cannot be granted by invitation")

	// ErrForbidden reports insufficient role or an email-ownership mismatch
	// on invitation actions. Deliberately also covers "workspace exists but
	// you are not in it" so existence is not leaked.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound reports a resource that is absent or outside the
	// requester's scope.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyMember reports an invitation aimed at an existing member.
	ErrAlreadyMember = errors.New("user is already a member")

	// ErrDuplicateInvitation reports a second PENDING invitation for the
	// same workspace and email.
	ErrDuplicateInvitation = errors.New("a pending invitation already exists for this email")

	// ErrInvitationNotPending reports an action on an invitation that is
	// already terminal, including losing an accept/decline race.
	ErrInvitationNotPending = errors.New("invitation is no longer pending")

	// ErrInvitationExpired reports an action on an invitation past its
	// expiry.
	ErrInvitationExpired = errors.New("invitation has expired")

	// ErrLastOwner reports removal or demotion of a workspace's only OWNER.
	ErrLastOwner = errors.New("workspace must retain at least one owner")
)
