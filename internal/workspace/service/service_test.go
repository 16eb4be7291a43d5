package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/teamloft/teamloft/internal/workspace/domain"
	"github.com/teamloft/teamloft/internal/workspace/service"
	"github.com/teamloft/teamloft/internal/workspace/store"
	"github.com/teamloft/teamloft/internal/workspace/store/drivers/sqlite"
	"github.com/teamloft/teamloft/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway on-disk database with the schema applied.
// A file in t.TempDir() rather than :memory: so every pooled connection sees
// the same database.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "workspace.db")
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

type fixture struct {
	store      store.Store
	access     *service.AccessService
	users      *service.UserService
	workspaces *service.WorkspaceService
	invites    *service.InvitationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := newTestStore(t)
	access := &service.AccessService{Store: st}
	return &fixture{
		store:      st,
		access:     access,
		users:      &service.UserService{Store: st},
		workspaces: &service.WorkspaceService{Store: st, Access: access},
		invites:    &service.InvitationService{Store: st, Access: access},
	}
}

// seedUser registers an identity-provider account locally and returns its id.
func (f *fixture) seedUser(t *testing.T, email, name string) string {
	t.Helper()

	id := idx.New().String()
	require.NoError(t, f.users.Sync(context.Background(), id, email, name))
	return id
}

// seedWorkspace creates a workspace owned by ownerID.
func (f *fixture) seedWorkspace(t *testing.T, ownerID, name string) domain.Workspace {
	t.Helper()

	w, err := f.workspaces.Create(context.Background(), ownerID, name, "")
	require.NoError(t, err)
	return w
}
