package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/teamloft/teamloft/internal/workspace/domain"
	"github.com/teamloft/teamloft/internal/workspace/store"
	"github.com/teamloft/teamloft/pkg/slogx"
)

// AccessService resolves a user's effective role in a workspace and gates
// workspace-mutating operations on it.
type AccessService struct {
	Store store.Store
}

// RoleOf returns the user's role in the workspace, or the empty role when
// the user is not a member. Not-a-member and no-such-workspace are
// indistinguishable on purpose: callers must not be able to probe for
// workspace existence.
func (s *AccessService) RoleOf(
	ctx context.Context,
	userID, workspaceID string,
) (domain.Role, error) {
	m, err := s.Store.Members().GetMember(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return m.Role, nil
}

// RequireRole returns ErrForbidden unless the user holds one of the allowed
// roles in the workspace. On success it returns the user's role so callers
// can branch on it without a second lookup.
func (s *AccessService) RequireRole(
	ctx context.Context,
	userID, workspaceID string,
	allowed ...domain.Role,
) (domain.Role, error) {
	role, err := s.RoleOf(ctx, userID, workspaceID)
	if err != nil {
		return "", err
	}

	if role == "" || !slices.Contains(allowed, role) {
		slogx.FromContext(ctx).Warn("workspace access denied",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID),
			slog.String("role", string(role)),
		)
		return "", ErrForbidden
	}

	return role, nil
}

// RequireMember is RequireRole with every role allowed: the caller just has
// to belong to the workspace.
func (s *AccessService) RequireMember(
	ctx context.Context,
	userID, workspaceID string,
) (domain.Role, error) {
	return s.RequireRole(ctx, userID, workspaceID,
		domain.RoleOwner, domain.RoleAdmin, domain.RoleMember)
}
