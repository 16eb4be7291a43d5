package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/teamloft/teamloft/internal/workspace/domain"
	"github.com/teamloft/teamloft/internal/workspace/service"
	"github.com/teamloft/teamloft/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestInvitationRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	w := f.seedWorkspace(t, ownerID, "Acme")

	inv, err := f.invites.Create(ctx, w.ID, ownerID, "carol@x.com", domain.RoleMember)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, inv.Status)
	require.Equal(t, "carol@x.com", inv.Email)

	// Carol signs in for the first time; her account syncs locally.
	carolID := f.seedUser(t, "carol@x.com", "Carol")

	pending, err := f.invites.ListForUser(ctx, "carol@x.com")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, w.ID, pending[0].WorkspaceID)
	require.Equal(t, "Acme", pending[0].WorkspaceName)
	require.Equal(t, "owner@x.com", pending[0].InviterEmail)

	accepted, err := f.invites.Accept(ctx, inv.ID, carolID, "carol@x.com")
	require.NoError(t, err)
	require.Equal(t, domain.InvitationAccepted, accepted.Status)

	// The invitation is no longer pending and Carol is now a MEMBER.
	pending, err = f.invites.ListForUser(ctx, "carol@x.com")
	require.NoError(t, err)
	require.Empty(t, pending)

	role, err := f.access.RoleOf(ctx, carolID, w.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleMember, role)
}

func TestInvitationEmailMatchIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	adminID := f.seedUser(t, "admin@x.com", "Admin")
	w := f.seedWorkspace(t, adminID, "Acme")

	inv, err := f.invites.Create(ctx, w.ID, adminID, "DAVE@X.com", domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, "dave@x.com", inv.Email, "email is stored lowercased")

	pending, err := f.invites.ListForUser(ctx, "Dave@x.COM")
	require.NoError(t, err)
	require.Len(t, pending, 1)

	daveID := f.seedUser(t, "dave@x.com", "Dave")
	_, err = f.invites.Accept(ctx, inv.ID, daveID, "DaVe@X.cOm")
	require.NoError(t, err)

	role, err := f.access.RoleOf(ctx, daveID, w.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, role)
}

func TestAcceptByWrongUserIsForbidden(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	w := f.seedWorkspace(t, ownerID, "Acme")

	inv, err := f.invites.Create(ctx, w.ID, ownerID, "alice@x.com", domain.RoleMember)
	require.NoError(t, err)

	bobID := f.seedUser(t, "bob@x.com", "Bob")

	_, err = f.invites.Accept(ctx, inv.ID, bobID, "bob@x.com")
	require.ErrorIs(t, err, service.ErrForbidden)

	err = f.invites.Decline(ctx, inv.ID, bobID, "bob@x.com")
	require.ErrorIs(t, err, service.ErrForbidden)

	// Bob never became a member.
	role, err := f.access.RoleOf(ctx, bobID, w.ID)
	require.NoError(t, err)
	require.Empty(t, role)
}

func TestOnlyPendingInvitationsAreActionable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	w := f.seedWorkspace(t, ownerID, "Acme")

	inv, err := f.invites.Create(ctx, w.ID, ownerID, "carol@x.com", domain.RoleMember)
	require.NoError(t, err)

	carolID := f.seedUser(t, "carol@x.com", "Carol")
	_, err = f.invites.Accept(ctx, inv.ID, carolID, "carol@x.com")
	require.NoError(t, err)

	// Acting on a terminal invitation is a conflict, not a repeat.
	_, err = f.invites.Accept(ctx, inv.ID, carolID, "carol@x.com")
	require.ErrorIs(t, err, service.ErrInvitationNotPending)

	err = f.invites.Decline(ctx, inv.ID, carolID, "carol@x.com")
	require.ErrorIs(t, err, service.ErrInvitationNotPending)
}

func TestLostRaceYieldsConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	w := f.seedWorkspace(t, ownerID, "Acme")

	inv, err := f.invites.Create(ctx, w.ID, ownerID, "carol@x.com", domain.RoleMember)
	require.NoError(t, err)
	carolID := f.seedUser(t, "carol@x.com", "Carol")

	// Simulate the second browser tab winning between guard read and write:
	// the status flips under us, so the guarded transition affects no rows.
	require.NoError(t, f.store.Invitations().TransitionStatus(ctx, inv.ID, domain.InvitationDeclined))

	_, err = f.invites.Accept(ctx, inv.ID, carolID, "carol@x.com")
	require.ErrorIs(t, err, service.ErrInvitationNotPending)

	// Decline won; no membership row exists.
	role, err := f.access.RoleOf(ctx, carolID, w.ID)
	require.NoError(t, err)
	require.Empty(t, role)
}

func TestExpiredInvitationsAreFilteredAndInert(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	w := f.seedWorkspace(t, ownerID, "Acme")

	// Insert an already-expired PENDING row directly; the create path never
	// produces one.
	expired := domain.Invitation{
		ID:          idx.New().String(),
		WorkspaceID: w.ID,
		Email:       "carol@x.com",
		Role:        domain.RoleMember,
		InviterID:   ownerID,
		Status:      domain.InvitationPending,
		CreatedAt:   time.Now().UTC().Add(-8 * 24 * time.Hour),
		ExpiresAt:   time.Now().UTC().Add(-24 * time.Hour),
	}
	require.NoError(t, f.store.Invitations().CreateInvitation(ctx, expired))

	carolID := f.seedUser(t, "carol@x.com", "Carol")

	pending, err := f.invites.ListForUser(ctx, "carol@x.com")
	require.NoError(t, err)
	require.Empty(t, pending, "expired invitations are filtered from listings")

	byWorkspace, err := f.invites.ListForWorkspace(ctx, w.ID, ownerID)
	require.NoError(t, err)
	require.Empty(t, byWorkspace)

	_, err = f.invites.Accept(ctx, expired.ID, carolID, "carol@x.com")
	require.ErrorIs(t, err, service.ErrInvitationExpired)
}

func TestHousekeepingMarksOverdueRowsExpired(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	w := f.seedWorkspace(t, ownerID, "Acme")

	overdue := domain.Invitation{
		ID:          idx.New().String(),
		WorkspaceID: w.ID,
		Email:       "late@x.com",
		Role:        domain.RoleMember,
		InviterID:   ownerID,
		Status:      domain.InvitationPending,
		CreatedAt:   time.Now().UTC().Add(-30 * 24 * time.Hour),
		ExpiresAt:   time.Now().UTC().Add(-23 * 24 * time.Hour),
	}
	require.NoError(t, f.store.Invitations().CreateInvitation(ctx, overdue))

	n, err := f.store.Invitations().MarkExpired(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := f.store.Invitations().GetInvitationByID(ctx, overdue.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, got.Status)
}

func TestCreateInvitationAuthorization(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	adminID := f.seedUser(t, "admin@x.com", "Admin")
	memberID := f.seedUser(t, "member@x.com", "Member")
	strangerID := f.seedUser(t, "stranger@x.com", "Stranger")
	w := f.seedWorkspace(t, ownerID, "Acme")

	require.NoError(t, f.workspaces.AddMember(ctx, w.ID, adminID, domain.RoleAdmin))
	require.NoError(t, f.workspaces.AddMember(ctx, w.ID, memberID, domain.RoleMember))

	t.Run("MEMBER cannot invite", func(t *testing.T) {
		_, err := f.invites.Create(ctx, w.ID, memberID, "new@x.com", domain.RoleMember)
		require.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("non-member cannot invite", func(t *testing.T) {
		_, err := f.invites.Create(ctx, w.ID, strangerID, "new@x.com", domain.RoleMember)
		require.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("ADMIN can invite", func(t *testing.T) {
		_, err := f.invites.Create(ctx, w.ID, adminID, "new@x.com", domain.RoleMember)
		require.NoError(t, err)
	})

	t.Run("OWNER role is not grantable", func(t *testing.T) {
		_, err := f.invites.Create(ctx, w.ID, ownerID, "boss@x.com", domain.RoleOwner)
		require.ErrorIs(t, err, service.ErrRoleNotGrantable)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		_, err := f.invites.Create(ctx, w.ID, ownerID, "not-an-email", domain.RoleMember)
		require.ErrorIs(t, err, service.ErrInvalidRequest)
	})

	t.Run("existing member cannot be invited", func(t *testing.T) {
		_, err := f.invites.Create(ctx, w.ID, ownerID, "MEMBER@x.com", domain.RoleMember)
		require.ErrorIs(t, err, service.ErrAlreadyMember)
	})
}

func TestDuplicatePendingInvitationRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	w := f.seedWorkspace(t, ownerID, "Acme")

	_, err := f.invites.Create(ctx, w.ID, ownerID, "carol@x.com", domain.RoleMember)
	require.NoError(t, err)

	_, err = f.invites.Create(ctx, w.ID, ownerID, "Carol@X.com", domain.RoleAdmin)
	require.ErrorIs(t, err, service.ErrDuplicateInvitation)

	// A declined invitation stops blocking; re-inviting works.
	carolID := f.seedUser(t, "carol@x.com", "Carol")
	pending, err := f.invites.ListForUser(ctx, "carol@x.com")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.NoError(t, f.invites.Decline(ctx, pending[0].ID, carolID, "carol@x.com"))

	_, err = f.invites.Create(ctx, w.ID, ownerID, "carol@x.com", domain.RoleMember)
	require.NoError(t, err)
}

func TestCancelInvitation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	memberID := f.seedUser(t, "member@x.com", "Member")
	w := f.seedWorkspace(t, ownerID, "Acme")
	other := f.seedWorkspace(t, ownerID, "Other")

	require.NoError(t, f.workspaces.AddMember(ctx, w.ID, memberID, domain.RoleMember))

	inv, err := f.invites.Create(ctx, w.ID, ownerID, "carol@x.com", domain.RoleMember)
	require.NoError(t, err)

	t.Run("MEMBER cannot cancel", func(t *testing.T) {
		err := f.invites.Cancel(ctx, w.ID, inv.ID, memberID)
		require.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("wrong workspace path is not found", func(t *testing.T) {
		err := f.invites.Cancel(ctx, other.ID, inv.ID, ownerID)
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("OWNER cancels, record is hard-deleted", func(t *testing.T) {
		require.NoError(t, f.invites.Cancel(ctx, w.ID, inv.ID, ownerID))

		_, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
		require.Error(t, err)

		err = f.invites.Cancel(ctx, w.ID, inv.ID, ownerID)
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestListForWorkspaceRequiresElevatedRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	memberID := f.seedUser(t, "member@x.com", "Member")
	w := f.seedWorkspace(t, ownerID, "Acme")

	require.NoError(t, f.workspaces.AddMember(ctx, w.ID, memberID, domain.RoleMember))

	_, err := f.invites.Create(ctx, w.ID, ownerID, "a@x.com", domain.RoleMember)
	require.NoError(t, err)
	_, err = f.invites.Create(ctx, w.ID, ownerID, "b@x.com", domain.RoleMember)
	require.NoError(t, err)

	_, err = f.invites.ListForWorkspace(ctx, w.ID, memberID)
	require.ErrorIs(t, err, service.ErrForbidden)

	got, err := f.invites.ListForWorkspace(ctx, w.ID, ownerID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	require.Equal(t, "b@x.com", got[0].Email)
	require.Equal(t, "a@x.com", got[1].Email)
}
