package sqlite

import (
	"context"
	"time"

	"github.com/teamloft/teamloft/internal/workspace/domain"
)

type membersRepo struct {
	db dbtx
}

func (r *membersRepo) GetMember(
	ctx context.Context,
	workspaceID, userID string,
) (domain.Member, error) {
	var m domain.Member
	err := r.db.QueryRowContext(ctx, `
		SELECT workspace_id, user_id, role, created_at, updated_at
		FROM workspace_members
		WHERE workspace_id = ? AND user_id = ?`, workspaceID, userID).
		Scan(&m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membersRepo) UpsertMember(ctx context.Context, m domain.Member) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workspace_members (workspace_id, user_id, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (workspace_id, user_id) DO UPDATE SET
			role = excluded.role,
			updated_at = excluded.updated_at`,
		m.WorkspaceID, m.UserID, m.Role, now, now)
	return err
}

func (r *membersRepo) DeleteMember(ctx context.Context, workspaceID, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM workspace_members
		WHERE workspace_id = ? AND user_id = ?`, workspaceID, userID)
	return affectedOrNotFound(res, err)
}

func (r *membersRepo) UpdateMemberRole(
	ctx context.Context,
	workspaceID, userID string,
	role domain.Role,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE workspace_members
		SET role = ?, updated_at = ?
		WHERE workspace_id = ? AND user_id = ?`,
		role, time.Now().UTC(), workspaceID, userID)
	return affectedOrNotFound(res, err)
}

func (r *membersRepo) ListMembers(
	ctx context.Context,
	workspaceID string,
) ([]domain.MemberDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.workspace_id, m.user_id, m.role, m.created_at, m.updated_at,
		       u.email, u.name
		FROM workspace_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.workspace_id = ?
		ORDER BY
			CASE m.role WHEN 'OWNER' THEN 0 WHEN 'ADMIN' THEN 1 ELSE 2 END,
			m.created_at ASC`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MemberDetail
	for rows.Next() {
		var d domain.MemberDetail
		if err := rows.Scan(
			&d.WorkspaceID, &d.UserID, &d.Role, &d.CreatedAt, &d.UpdatedAt,
			&d.Email, &d.Name,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *membersRepo) CountByRole(
	ctx context.Context,
	workspaceID string,
	role domain.Role,
) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM workspace_members
		WHERE workspace_id = ? AND role = ?`, workspaceID, role).
		Scan(&count)
	return count, err
}
