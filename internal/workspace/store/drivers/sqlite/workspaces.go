package sqlite

import (
	"context"
	"time"

	"github.com/teamloft/teamloft/internal/workspace/domain"
)

type workspacesRepo struct {
	db dbtx
}

func (r *workspacesRepo) CreateWorkspace(ctx context.Context, w domain.Workspace) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workspaces (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.Description, now, now)
	return mapConstraint(err)
}

func (r *workspacesRepo) GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error) {
	var w domain.Workspace
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM workspaces WHERE id = ?`, id).
		Scan(&w.ID, &w.Name, &w.Description, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return domain.Workspace{}, mapNotFound(err)
	}
	return w, nil
}

func (r *workspacesRepo) ListWorkspacesForUser(
	ctx context.Context,
	userID string,
) ([]domain.WorkspaceSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT w.id, w.name, w.description, w.created_at, w.updated_at, m.role
		FROM workspaces w
		JOIN workspace_members m ON m.workspace_id = w.id
		WHERE m.user_id = ?
		ORDER BY w.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WorkspaceSummary
	for rows.Next() {
		var s domain.WorkspaceSummary
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt, &s.Role,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
