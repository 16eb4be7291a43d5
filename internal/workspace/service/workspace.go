package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/teamloft/teamloft/internal/workspace/domain"
	"github.com/teamloft/teamloft/internal/workspace/store"
	"github.com/teamloft/teamloft/pkg/idx"
	"github.com/teamloft/teamloft/pkg/slogx"
)

// WorkspaceService owns workspace records and membership rows.
type WorkspaceService struct {
	Store  store.Store
	Access *AccessService
}

// Create makes a new workspace with the creator as its OWNER. Both writes
// happen in one transaction so a workspace can never exist ownerless.
func (s *WorkspaceService) Create(
	ctx context.Context,
	ownerID, name, description string,
) (domain.Workspace, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Workspace{}, ErrInvalidRequest
	}

	w := domain.Workspace{
		ID:          idx.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Workspaces().CreateWorkspace(ctx, w); err != nil {
			return err
		}
		return tx.Members().UpsertMember(ctx, domain.Member{
			WorkspaceID: w.ID,
			UserID:      ownerID,
			Role:        domain.RoleOwner,
		})
	})
	if err != nil {
		log.Error("failed to create workspace", slog.Any("error", err))
		return domain.Workspace{}, err
	}

	log.Info("workspace created",
		slog.String("workspace_id", w.ID),
		slog.String("owner_id", ownerID),
	)
	return w, nil
}

// Get returns a workspace to any of its members. Non-members get
// ErrForbidden whether or not the workspace exists.
func (s *WorkspaceService) Get(
	ctx context.Context,
	workspaceID, requesterID string,
) (domain.Workspace, error) {
	if _, err := s.Access.RequireMember(ctx, requesterID, workspaceID); err != nil {
		return domain.Workspace{}, err
	}

	w, err := s.Store.Workspaces().GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Membership row without a workspace should be impossible
			// (FK cascade), but don't leak internals if it happens.
			return domain.Workspace{}, ErrNotFound
		}
		return domain.Workspace{}, err
	}
	return w, nil
}

// ListForUser returns every workspace the user belongs to, with their role.
func (s *WorkspaceService) ListForUser(
	ctx context.Context,
	userID string,
) ([]domain.WorkspaceSummary, error) {
	return s.Store.Workspaces().ListWorkspacesForUser(ctx, userID)
}

// ListMembers returns a workspace's membership, owners first. Any member may
// read it.
func (s *WorkspaceService) ListMembers(
	ctx context.Context,
	workspaceID, requesterID string,
) ([]domain.MemberDetail, error) {
	if _, err := s.Access.RequireMember(ctx, requesterID, workspaceID); err != nil {
		return nil, err
	}
	return s.Store.Members().ListMembers(ctx, workspaceID)
}

// AddMember upserts a membership keyed by (workspace, user). Idempotent;
// used at workspace creation and invitation acceptance.
func (s *WorkspaceService) AddMember(
	ctx context.Context,
	workspaceID, userID string,
	role domain.Role,
) error {
	if _, ok := domain.ParseRole(string(role)); !ok {
		return ErrInvalidRole
	}
	return s.Store.Members().UpsertMember(ctx, domain.Member{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
	})
}

// RemoveMember deletes a membership. Members may remove themselves (leave);
// removing someone else takes OWNER or ADMIN, and nobody outranked by the
// target may act on them. The sole OWNER can never be removed.
func (s *WorkspaceService) RemoveMember(
	ctx context.Context,
	workspaceID, requesterID, targetID string,
) error {
	log := slogx.FromContext(ctx)

	requesterRole, err := s.Access.RequireMember(ctx, requesterID, workspaceID)
	if err != nil {
		return err
	}

	target, err := s.Store.Members().GetMember(ctx, workspaceID, targetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if requesterID != targetID {
		if !requesterRole.AtLeast(domain.RoleAdmin) || !requesterRole.AtLeast(target.Role) {
			return ErrForbidden
		}
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if target.Role == domain.RoleOwner {
			owners, err := tx.Members().CountByRole(ctx, workspaceID, domain.RoleOwner)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}
		return tx.Members().DeleteMember(ctx, workspaceID, targetID)
	})
	if err != nil {
		return err
	}

	log.Info("member removed",
		slog.String("workspace_id", workspaceID),
		slog.String("user_id", targetID),
		slog.String("requester_id", requesterID),
	)
	return nil
}

// ChangeRole updates a member's role. OWNER only. Demoting the sole OWNER is
// rejected; promoting another member to OWNER is how ownership is shared.
func (s *WorkspaceService) ChangeRole(
	ctx context.Context,
	workspaceID, requesterID, targetID string,
	role domain.Role,
) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	if _, ok := domain.ParseRole(string(role)); !ok {
		return domain.Member{}, ErrInvalidRole
	}

	if _, err := s.Access.RequireRole(ctx, requesterID, workspaceID, domain.RoleOwner); err != nil {
		return domain.Member{}, err
	}

	target, err := s.Store.Members().GetMember(ctx, workspaceID, targetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Member{}, ErrNotFound
		}
		return domain.Member{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if target.Role == domain.RoleOwner && role != domain.RoleOwner {
			owners, err := tx.Members().CountByRole(ctx, workspaceID, domain.RoleOwner)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}
		return tx.Members().UpdateMemberRole(ctx, workspaceID, targetID, role)
	})
	if err != nil {
		return domain.Member{}, err
	}

	log.Info("member role changed",
		slog.String("workspace_id", workspaceID),
		slog.String("user_id", targetID),
		slog.String("role", string(role)),
		slog.String("requester_id", requesterID),
	)

	target.Role = role
	return target, nil
}
