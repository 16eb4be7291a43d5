package http_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	httpapi "github.com/teamloft/teamloft/internal/workspace/http"
	"github.com/teamloft/teamloft/internal/workspace/service"
	"github.com/teamloft/teamloft/internal/workspace/store/drivers/sqlite"
	"github.com/teamloft/teamloft/pkg/idx"
	"github.com/teamloft/teamloft/pkg/jwtx"
	"github.com/teamloft/teamloft/pkg/workspacesdk"
	"github.com/stretchr/testify/require"
)

const testIssuer = "teamloft-identity-test"

// testEnv runs the full router against a throwaway database, with an
// in-process identity provider signing session tokens.
type testEnv struct {
	srv    *httptest.Server
	signer *jwtx.EdDSASigner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	pemPub, err := jwtx.EncodePublicKeyPEM(pub)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierEdDSA(pemPub, testIssuer)
	require.NoError(t, err)

	dsn := "file:" + filepath.Join(t.TempDir(), "workspace.db")
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := httpapi.NewRouter(verifier, "test", st, logger)

	access := &service.AccessService{Store: st}
	router.UserService = &service.UserService{Store: st}
	router.WorkspaceService = &service.WorkspaceService{Store: st, Access: access}
	router.InvitationService = &service.InvitationService{Store: st, Access: access}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, signer: jwtx.NewSignerFromKey(priv)}
}

// client returns an SDK client authenticated as the given user, minting the
// user id when empty.
func (e *testEnv) client(t *testing.T, userID, email, name string) (*workspacesdk.Client, string) {
	t.Helper()

	if userID == "" {
		userID = idx.New().String()
	}
	claims := jwtx.NewSessionClaims(userID, email, name, testIssuer, time.Hour, time.Now())
	token, err := e.signer.Sign(claims)
	require.NoError(t, err)

	return workspacesdk.NewClient(e.srv.URL, token), userID
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.srv.URL + "/v1/invitations")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")

	// A garbage token is just as dead.
	bogus := workspacesdk.NewClient(env.srv.URL, "not-a-token")
	_, err = bogus.ListWorkspaces(context.Background())
	var apiErr *workspacesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestInviteLifecycleOverHTTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	alice, _ := env.client(t, "", "alice@example.com", "Alice")
	bob, bobID := env.client(t, "", "bob@example.com", "Bob")

	ws, err := alice.CreateWorkspace(ctx, workspacesdk.CreateWorkspaceRequest{
		Name:        "Design Team",
		Description: "All things design",
	})
	require.NoError(t, err)
	require.NotEmpty(t, ws.ID)

	inv, err := alice.CreateInvite(ctx, ws.ID, workspacesdk.CreateInviteRequest{
		Email: "Bob@Example.com", // matching is case-insensitive
		Role:  "ADMIN",
	})
	require.NoError(t, err)
	require.Equal(t, "bob@example.com", inv.Email)
	require.Equal(t, "PENDING", inv.Status)

	list, err := bob.ListMyInvitations(ctx)
	require.NoError(t, err)
	require.Len(t, list.Invitations, 1)
	require.Equal(t, "Design Team", list.Invitations[0].WorkspaceName)
	require.Equal(t, "alice@example.com", list.Invitations[0].InviterEmail)

	accepted, err := bob.AcceptInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, ws.ID, accepted.WorkspaceID)

	workspaces, err := bob.ListWorkspaces(ctx)
	require.NoError(t, err)
	require.Len(t, workspaces.Workspaces, 1)
	require.Equal(t, "ADMIN", workspaces.Workspaces[0].Role)

	members, err := alice.ListMembers(ctx, ws.ID)
	require.NoError(t, err)
	require.Len(t, members.Members, 2)
	require.Equal(t, "OWNER", members.Members[0].Role)

	// The accepted invitation is spent: accepting again is a conflict and
	// it no longer shows up as pending.
	_, err = bob.AcceptInvitation(ctx, inv.ID)
	require.True(t, workspacesdk.IsConflict(err), "got %v", err)

	list, err = bob.ListMyInvitations(ctx)
	require.NoError(t, err)
	require.Empty(t, list.Invitations)

	// Bob can leave on his own.
	require.NoError(t, bob.RemoveMember(ctx, ws.ID, bobID))
}

func TestErrorMappingOverHTTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	alice, aliceID := env.client(t, "", "alice@example.com", "Alice")
	mallory, _ := env.client(t, "", "mallory@example.com", "Mallory")

	ws, err := alice.CreateWorkspace(ctx, workspacesdk.CreateWorkspaceRequest{Name: "Acme"})
	require.NoError(t, err)

	t.Run("blank workspace name is a 400", func(t *testing.T) {
		_, err := alice.CreateWorkspace(ctx, workspacesdk.CreateWorkspaceRequest{Name: "   "})
		var apiErr *workspacesdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})

	t.Run("OWNER is not grantable by invite", func(t *testing.T) {
		_, err := alice.CreateInvite(ctx, ws.ID, workspacesdk.CreateInviteRequest{
			Email: "bob@example.com",
			Role:  "OWNER",
		})
		var apiErr *workspacesdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})

	t.Run("non-member reads are hidden as forbidden", func(t *testing.T) {
		_, err := mallory.GetWorkspace(ctx, ws.ID)
		require.True(t, workspacesdk.IsForbidden(err), "got %v", err)

		_, err = mallory.ListMembers(ctx, ws.ID)
		require.True(t, workspacesdk.IsForbidden(err), "got %v", err)
	})

	t.Run("unknown invitation is a 404", func(t *testing.T) {
		_, err := alice.AcceptInvitation(ctx, idx.New().String())
		require.True(t, workspacesdk.IsNotFound(err), "got %v", err)
	})

	t.Run("duplicate pending invite is a 409", func(t *testing.T) {
		_, err := alice.CreateInvite(ctx, ws.ID, workspacesdk.CreateInviteRequest{
			Email: "carol@example.com",
			Role:  "MEMBER",
		})
		require.NoError(t, err)

		_, err = alice.CreateInvite(ctx, ws.ID, workspacesdk.CreateInviteRequest{
			Email: "CAROL@example.com",
			Role:  "MEMBER",
		})
		require.True(t, workspacesdk.IsConflict(err), "got %v", err)
	})

	t.Run("sole owner cannot be removed", func(t *testing.T) {
		err := alice.RemoveMember(ctx, ws.ID, aliceID)
		require.True(t, workspacesdk.IsConflict(err), "got %v", err)
	})
}

func TestCancelInviteOverHTTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	alice, _ := env.client(t, "", "alice@example.com", "Alice")
	bob, _ := env.client(t, "", "bob@example.com", "Bob")

	ws, err := alice.CreateWorkspace(ctx, workspacesdk.CreateWorkspaceRequest{Name: "Acme"})
	require.NoError(t, err)

	inv, err := alice.CreateInvite(ctx, ws.ID, workspacesdk.CreateInviteRequest{
		Email: "bob@example.com",
		Role:  "MEMBER",
	})
	require.NoError(t, err)

	pending, err := alice.ListWorkspaceInvites(ctx, ws.ID)
	require.NoError(t, err)
	require.Len(t, pending.Invitations, 1)

	require.NoError(t, alice.CancelInvite(ctx, ws.ID, inv.ID))

	// A cancelled invitation is gone for everyone.
	pending, err = alice.ListWorkspaceInvites(ctx, ws.ID)
	require.NoError(t, err)
	require.Empty(t, pending.Invitations)

	_, err = bob.AcceptInvitation(ctx, inv.ID)
	require.True(t, workspacesdk.IsNotFound(err), "got %v", err)
}

func TestHealthEndpoints(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	anon := workspacesdk.NewClient(env.srv.URL, "")

	live, err := anon.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := anon.Readyz(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
