package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/teamloft/teamloft/internal/workspace/domain"
	"github.com/teamloft/teamloft/internal/workspace/store"
	"github.com/teamloft/teamloft/pkg/slogx"
)

// UserService keeps the local user mirror in step with the external identity
// provider. Accounts live there; we only record what membership and
// invitation joins need.
type UserService struct {
	Store store.Store
}

// Sync upserts the user row for a verified caller identity. Called on every
// authenticated request so a user's first request after signup is enough to
// make them invitable by id and joinable in listings.
func (s *UserService) Sync(ctx context.Context, id, email, name string) error {
	if id == "" || email == "" {
		return ErrInvalidRequest
	}

	err := s.Store.Users().UpsertUser(ctx, domain.User{
		ID:    id,
		Email: strings.ToLower(email),
		Name:  name,
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to sync user",
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// GetByEmail resolves a user by email, case-insensitively. Passes through
// store.ErrNotFound for callers that branch on absence.
func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.Store.Users().GetUserByEmail(ctx, strings.ToLower(email))
}
