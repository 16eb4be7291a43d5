package store

import (
	"context"
	"errors"
	"time"

	"github.com/teamloft/teamloft/internal/workspace/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. Sub-repositories keep concerns tidy and let
// services depend on the narrow slice they actually use.
type Store interface {
	Users() Users
	Workspaces() Workspaces
	Members() Members
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step writes that must be atomic
	// (invitation acceptance, workspace creation).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repositories plus
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by lowercased email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpsertUser inserts or refreshes the local mirror of an identity
	// provider account, keyed by id.
	UpsertUser(ctx context.Context, u domain.User) error
}

type Workspaces interface {
	// CreateWorkspace inserts a new workspace (id is provided by the app via ULID).
	CreateWorkspace(ctx context.Context, w domain.Workspace) error

	// GetWorkspaceByID returns a workspace by id.
	GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error)

	// ListWorkspacesForUser returns every workspace the user is a member of,
	// paired with their role, newest first.
	ListWorkspacesForUser(ctx context.Context, userID string) ([]domain.WorkspaceSummary, error)
}

type Members interface {
	// GetMember returns the membership row for (workspaceID, userID).
	GetMember(ctx context.Context, workspaceID, userID string) (domain.Member, error)

	// UpsertMember inserts or updates a membership keyed by
	// (workspace_id, user_id). Idempotent by design: re-adding an existing
	// member only refreshes the role.
	UpsertMember(ctx context.Context, m domain.Member) error

	// DeleteMember removes a membership row. Returns ErrNotFound when no row
	// was deleted.
	DeleteMember(ctx context.Context, workspaceID, userID string) error

	// UpdateMemberRole changes the role on an existing membership.
	// Returns ErrNotFound when the membership does not exist.
	UpdateMemberRole(ctx context.Context, workspaceID, userID string, role domain.Role) error

	// ListMembers returns all memberships of a workspace joined with user
	// identity, owners first then by join date.
	ListMembers(ctx context.Context, workspaceID string) ([]domain.MemberDetail, error)

	// CountByRole returns how many members hold the given role in the
	// workspace. Used for the last-owner guard.
	CountByRole(ctx context.Context, workspaceID string, role domain.Role) (int, error)
}

type Invitations interface {
	// CreateInvitation writes a new PENDING invitation. Returns
	// ErrAlreadyExists when a PENDING invitation for the same
	// (workspace, email) pair exists.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation regardless of status.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// ListPendingByEmail returns PENDING, unexpired invitations for an email
	// (lowercased by the caller) joined with workspace and inviter detail,
	// newest first.
	ListPendingByEmail(ctx context.Context, email string, now time.Time) ([]domain.InvitationDetail, error)

	// ListPendingByWorkspace returns PENDING, unexpired invitations for a
	// workspace joined with inviter detail, newest first.
	ListPendingByWorkspace(ctx context.Context, workspaceID string, now time.Time) ([]domain.InvitationDetail, error)

	// TransitionStatus flips a PENDING invitation to the given terminal
	// status. The write is guarded by status='PENDING'; ErrNotFound is
	// returned when the row is missing or already terminal, which is how
	// concurrent accept/decline races are decided.
	TransitionStatus(ctx context.Context, id string, to domain.InvitationStatus) error

	// DeleteInvitation hard-deletes an invitation (cancel flow).
	// Returns ErrNotFound when no row was deleted.
	DeleteInvitation(ctx context.Context, id string) error

	// MarkExpired flips PENDING invitations whose expiry has passed to
	// EXPIRED. Housekeeping only; reads already filter expired rows.
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
}
