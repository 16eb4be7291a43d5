package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/teamloft/teamloft/internal/workspace/domain"
	"github.com/teamloft/teamloft/internal/workspace/store"
	"github.com/teamloft/teamloft/pkg/idx"
	"github.com/teamloft/teamloft/pkg/slogx"
)

// DefaultInviteTTL is how long an invitation stays actionable unless
// configured otherwise.
const DefaultInviteTTL = 7 * 24 * time.Hour

// InvitationService owns the invitation lifecycle: create, list, accept,
// decline, cancel. Expiry is lazy: reads filter on expires_at and actions
// re-check it; the housekeeping sweep that flips overdue rows to EXPIRED is
// an optimization, not a correctness requirement.
type InvitationService struct {
	Store  store.Store
	Access *AccessService

	// InviteTTL is the expiry horizon for new invitations. Zero means
	// DefaultInviteTTL.
	InviteTTL time.Duration
}

func (s *InvitationService) ttl() time.Duration {
	if s.InviteTTL > 0 {
		return s.InviteTTL
	}
	return DefaultInviteTTL
}

// Create mints a PENDING invitation for an email address into a workspace.
// The inviter must hold OWNER or ADMIN there. OWNER is never grantable by
// invitation.
func (s *InvitationService) Create(
	ctx context.Context,
	workspaceID, inviterID, email string,
	role domain.Role,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.Invitation{}, ErrInvalidRequest
	}
	if _, ok := domain.ParseRole(string(role)); !ok {
		return domain.Invitation{}, ErrInvalidRole
	}
	if !role.Grantable() {
		return domain.Invitation{}, ErrRoleNotGrantable
	}

	if _, err := s.Access.RequireRole(ctx, inviterID, workspaceID,
		domain.RoleOwner, domain.RoleAdmin); err != nil {
		return domain.Invitation{}, err
	}

	// Inviting someone who already belongs to the workspace is a conflict,
	// not a silent no-op. The lookup is best effort: the invited person may
	// not have an account yet.
	if invited, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		if _, err := s.Store.Members().GetMember(ctx, workspaceID, invited.ID); err == nil {
			return domain.Invitation{}, ErrAlreadyMember
		} else if !errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, err
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Invitation{}, err
	}

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:          idx.New().String(),
		WorkspaceID: workspaceID,
		Email:       email,
		Role:        role,
		InviterID:   inviterID,
		Status:      domain.InvitationPending,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl()),
	}

	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Invitation{}, ErrDuplicateInvitation
		}
		log.Error("failed to create invitation",
			slog.String("workspace_id", workspaceID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("workspace_id", workspaceID),
		slog.String("inviter_id", inviterID),
		slog.String("role", string(role)),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	return inv, nil
}

// ListForUser returns the caller's PENDING, unexpired invitations, newest
// first, matched case-insensitively on email.
func (s *InvitationService) ListForUser(
	ctx context.Context,
	email string,
) ([]domain.InvitationDetail, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrInvalidRequest
	}
	return s.Store.Invitations().ListPendingByEmail(ctx, email, time.Now().UTC())
}

// ListForWorkspace returns a workspace's PENDING, unexpired invitations for
// an OWNER or ADMIN requester.
func (s *InvitationService) ListForWorkspace(
	ctx context.Context,
	workspaceID, requesterID string,
) ([]domain.InvitationDetail, error) {
	if _, err := s.Access.RequireRole(ctx, requesterID, workspaceID,
		domain.RoleOwner, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.Store.Invitations().ListPendingByWorkspace(ctx, workspaceID, time.Now().UTC())
}

// Accept promotes an invitation into a membership. The status flip and the
// membership upsert happen in one transaction; the PENDING guard on the flip
// makes concurrent accept/decline single-winner.
func (s *InvitationService) Accept(
	ctx context.Context,
	invitationID, userID, userEmail string,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.guardAction(ctx, invitationID, userEmail)
	if err != nil {
		return domain.Invitation{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().TransitionStatus(ctx, inv.ID, domain.InvitationAccepted); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Someone else actioned the invitation between our read and
				// this write. Exactly one caller wins.
				return ErrInvitationNotPending
			}
			return err
		}
		return tx.Members().UpsertMember(ctx, domain.Member{
			WorkspaceID: inv.WorkspaceID,
			UserID:      userID,
			Role:        inv.Role,
		})
	})
	if err != nil {
		return domain.Invitation{}, err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("workspace_id", inv.WorkspaceID),
		slog.String("user_id", userID),
		slog.String("role", string(inv.Role)),
	)

	inv.Status = domain.InvitationAccepted
	return inv, nil
}

// Decline marks an invitation DECLINED. Same guards as Accept, no membership
// side effect.
func (s *InvitationService) Decline(
	ctx context.Context,
	invitationID, userID, userEmail string,
) error {
	log := slogx.FromContext(ctx)

	inv, err := s.guardAction(ctx, invitationID, userEmail)
	if err != nil {
		return err
	}

	if err := s.Store.Invitations().TransitionStatus(ctx, inv.ID, domain.InvitationDeclined); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotPending
		}
		return err
	}

	log.Info("invitation declined",
		slog.String("invitation_id", inv.ID),
		slog.String("workspace_id", inv.WorkspaceID),
		slog.String("user_id", userID),
	)
	return nil
}

// Cancel hard-deletes a PENDING invitation. The requester must hold OWNER or
// ADMIN in the invitation's workspace, and the invitation must belong to the
// workspace named in the request path.
func (s *InvitationService) Cancel(
	ctx context.Context,
	workspaceID, invitationID, requesterID string,
) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Access.RequireRole(ctx, requesterID, workspaceID,
		domain.RoleOwner, domain.RoleAdmin); err != nil {
		return err
	}

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if inv.WorkspaceID != workspaceID {
		// Out of the requester's scope; indistinguishable from absent.
		return ErrNotFound
	}

	if err := s.Store.Invitations().DeleteInvitation(ctx, invitationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	log.Info("invitation cancelled",
		slog.String("invitation_id", invitationID),
		slog.String("workspace_id", workspaceID),
		slog.String("requester_id", requesterID),
	)
	return nil
}

// guardAction loads an invitation and applies the shared accept/decline
// guards: it must exist, be addressed to the caller's email, and still be
// actionable. Email mismatch is a 403-class error even for invitations that
// would otherwise be invalid.
func (s *InvitationService) guardAction(
	ctx context.Context,
	invitationID, userEmail string,
) (domain.Invitation, error) {
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrNotFound
		}
		return domain.Invitation{}, err
	}

	if !strings.EqualFold(inv.Email, userEmail) {
		slogx.FromContext(ctx).Warn("invitation action by wrong user",
			slog.String("invitation_id", inv.ID),
		)
		return domain.Invitation{}, ErrForbidden
	}

	now := time.Now().UTC()
	if inv.Status != domain.InvitationPending {
		return domain.Invitation{}, ErrInvitationNotPending
	}
	if !inv.Actionable(now) {
		return domain.Invitation{}, ErrInvitationExpired
	}

	return inv, nil
}
