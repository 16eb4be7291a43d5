package sqlite

import (
	"context"
	"time"

	"github.com/teamloft/teamloft/internal/workspace/domain"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, workspace_id, email, role, inviter_id, status, created_at, expires_at`

// invitationDetailQuery joins workspace name and inviter identity onto the
// invitation row for listings.
const invitationDetailQuery = `
	SELECT i.id, i.workspace_id, i.email, i.role, i.inviter_id, i.status,
	       i.created_at, i.expires_at,
	       w.name, u.email, u.name
	FROM workspace_invitations i
	JOIN workspaces w ON w.id = i.workspace_id
	JOIN users u ON u.id = i.inviter_id`

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workspace_invitations
			(id, workspace_id, email, role, inviter_id, status, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.WorkspaceID, inv.Email, inv.Role, inv.InviterID,
		inv.Status, inv.CreatedAt.UTC(), inv.ExpiresAt.UTC())
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByID(
	ctx context.Context,
	id string,
) (domain.Invitation, error) {
	var inv domain.Invitation
	err := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM workspace_invitations WHERE id = ?`, id).
		Scan(&inv.ID, &inv.WorkspaceID, &inv.Email, &inv.Role, &inv.InviterID,
			&inv.Status, &inv.CreatedAt, &inv.ExpiresAt)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) ListPendingByEmail(
	ctx context.Context,
	email string,
	now time.Time,
) ([]domain.InvitationDetail, error) {
	rows, err := r.db.QueryContext(ctx, invitationDetailQuery+`
		WHERE i.email = ? AND i.status = 'PENDING' AND i.expires_at > ?
		ORDER BY i.created_at DESC, i.id DESC`, email, now.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvitationDetails(rows)
}

func (r *invitationsRepo) ListPendingByWorkspace(
	ctx context.Context,
	workspaceID string,
	now time.Time,
) ([]domain.InvitationDetail, error) {
	rows, err := r.db.QueryContext(ctx, invitationDetailQuery+`
		WHERE i.workspace_id = ? AND i.status = 'PENDING' AND i.expires_at > ?
		ORDER BY i.created_at DESC, i.id DESC`, workspaceID, now.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvitationDetails(rows)
}

func (r *invitationsRepo) TransitionStatus(
	ctx context.Context,
	id string,
	to domain.InvitationStatus,
) error {
	// The status='PENDING' guard makes concurrent accept/decline/cancel
	// races single-winner: the loser affects zero rows and sees ErrNotFound.
	res, err := r.db.ExecContext(ctx, `
		UPDATE workspace_invitations
		SET status = ?
		WHERE id = ? AND status = 'PENDING'`, to, id)
	return affectedOrNotFound(res, err)
}

func (r *invitationsRepo) DeleteInvitation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM workspace_invitations WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}

func (r *invitationsRepo) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE workspace_invitations
		SET status = 'EXPIRED'
		WHERE status = 'PENDING' AND expires_at <= ?`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanInvitationDetails(rows rowsScanner) ([]domain.InvitationDetail, error) {
	var out []domain.InvitationDetail
	for rows.Next() {
		var d domain.InvitationDetail
		if err := rows.Scan(
			&d.ID, &d.WorkspaceID, &d.Email, &d.Role, &d.InviterID, &d.Status,
			&d.CreatedAt, &d.ExpiresAt,
			&d.WorkspaceName, &d.InviterEmail, &d.InviterName,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
