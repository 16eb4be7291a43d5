package service_test

import (
	"context"
	"testing"

	"github.com/teamloft/teamloft/internal/workspace/domain"
	"github.com/teamloft/teamloft/internal/workspace/service"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkspaceMakesCreatorOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	w := f.seedWorkspace(t, ownerID, "Acme")

	role, err := f.access.RoleOf(ctx, ownerID, w.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleOwner, role)

	summaries, err := f.workspaces.ListForUser(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, w.ID, summaries[0].ID)
	require.Equal(t, domain.RoleOwner, summaries[0].Role)
}

func TestCreateWorkspaceValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")

	_, err := f.workspaces.Create(ctx, ownerID, "   ", "")
	require.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestGetWorkspaceHidesExistenceFromNonMembers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	strangerID := f.seedUser(t, "stranger@x.com", "Stranger")
	w := f.seedWorkspace(t, ownerID, "Acme")

	_, err := f.workspaces.Get(ctx, w.ID, strangerID)
	require.ErrorIs(t, err, service.ErrForbidden)

	// A made-up id yields the same error as a real one.
	_, err = f.workspaces.Get(ctx, "01JDOESNOTEXIST0000000000", strangerID)
	require.ErrorIs(t, err, service.ErrForbidden)

	got, err := f.workspaces.Get(ctx, w.ID, ownerID)
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Name)
}

func TestAddMemberIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	memberID := f.seedUser(t, "member@x.com", "Member")
	w := f.seedWorkspace(t, ownerID, "Acme")

	require.NoError(t, f.workspaces.AddMember(ctx, w.ID, memberID, domain.RoleMember))
	require.NoError(t, f.workspaces.AddMember(ctx, w.ID, memberID, domain.RoleMember))

	members, err := f.workspaces.ListMembers(ctx, w.ID, ownerID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	// Owners sort first.
	require.Equal(t, domain.RoleOwner, members[0].Role)
	require.Equal(t, "owner@x.com", members[0].Email)
}

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	adminID := f.seedUser(t, "admin@x.com", "Admin")
	memberID := f.seedUser(t, "member@x.com", "Member")
	w := f.seedWorkspace(t, ownerID, "Acme")

	require.NoError(t, f.workspaces.AddMember(ctx, w.ID, adminID, domain.RoleAdmin))
	require.NoError(t, f.workspaces.AddMember(ctx, w.ID, memberID, domain.RoleMember))

	t.Run("member cannot remove others", func(t *testing.T) {
		err := f.workspaces.RemoveMember(ctx, w.ID, memberID, adminID)
		require.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("admin cannot remove an owner", func(t *testing.T) {
		err := f.workspaces.RemoveMember(ctx, w.ID, adminID, ownerID)
		require.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("admin removes a member", func(t *testing.T) {
		require.NoError(t, f.workspaces.RemoveMember(ctx, w.ID, adminID, memberID))

		role, err := f.access.RoleOf(ctx, memberID, w.ID)
		require.NoError(t, err)
		require.Empty(t, role)
	})

	t.Run("member leaves on their own", func(t *testing.T) {
		require.NoError(t, f.workspaces.AddMember(ctx, w.ID, memberID, domain.RoleMember))
		require.NoError(t, f.workspaces.RemoveMember(ctx, w.ID, memberID, memberID))
	})

	t.Run("removing an absent member is not found", func(t *testing.T) {
		err := f.workspaces.RemoveMember(ctx, w.ID, ownerID, memberID)
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestLastOwnerGuard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	secondID := f.seedUser(t, "second@x.com", "Second")
	w := f.seedWorkspace(t, ownerID, "Acme")

	t.Run("sole owner cannot leave", func(t *testing.T) {
		err := f.workspaces.RemoveMember(ctx, w.ID, ownerID, ownerID)
		require.ErrorIs(t, err, service.ErrLastOwner)
	})

	t.Run("sole owner cannot be demoted", func(t *testing.T) {
		_, err := f.workspaces.ChangeRole(ctx, w.ID, ownerID, ownerID, domain.RoleAdmin)
		require.ErrorIs(t, err, service.ErrLastOwner)
	})

	t.Run("with a second owner both are movable", func(t *testing.T) {
		require.NoError(t, f.workspaces.AddMember(ctx, w.ID, secondID, domain.RoleMember))

		promoted, err := f.workspaces.ChangeRole(ctx, w.ID, ownerID, secondID, domain.RoleOwner)
		require.NoError(t, err)
		require.Equal(t, domain.RoleOwner, promoted.Role)

		// Now the original owner may step down.
		demoted, err := f.workspaces.ChangeRole(ctx, w.ID, ownerID, ownerID, domain.RoleMember)
		require.NoError(t, err)
		require.Equal(t, domain.RoleMember, demoted.Role)
	})
}

func TestChangeRoleAuthorization(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ownerID := f.seedUser(t, "owner@x.com", "Owner")
	adminID := f.seedUser(t, "admin@x.com", "Admin")
	memberID := f.seedUser(t, "member@x.com", "Member")
	w := f.seedWorkspace(t, ownerID, "Acme")

	require.NoError(t, f.workspaces.AddMember(ctx, w.ID, adminID, domain.RoleAdmin))
	require.NoError(t, f.workspaces.AddMember(ctx, w.ID, memberID, domain.RoleMember))

	t.Run("only OWNER may change roles", func(t *testing.T) {
		_, err := f.workspaces.ChangeRole(ctx, w.ID, adminID, memberID, domain.RoleAdmin)
		require.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("bad role rejected", func(t *testing.T) {
		_, err := f.workspaces.ChangeRole(ctx, w.ID, ownerID, memberID, domain.Role("SUPERUSER"))
		require.ErrorIs(t, err, service.ErrInvalidRole)
	})

	t.Run("target must be a member", func(t *testing.T) {
		outsiderID := f.seedUser(t, "out@x.com", "Out")
		_, err := f.workspaces.ChangeRole(ctx, w.ID, ownerID, outsiderID, domain.RoleAdmin)
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("owner promotes member to admin", func(t *testing.T) {
		m, err := f.workspaces.ChangeRole(ctx, w.ID, ownerID, memberID, domain.RoleAdmin)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, m.Role)
	})
}
