package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/teamloft/teamloft/internal/workspace/store"

	_ "modernc.org/sqlite"
)

// dbtx is the subset of *sql.DB / *sql.Tx the repositories need. It lets the
// same repo types run against the pooled handle and inside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback is a no-op after a successful commit, so it is safe to always
	// defer it for the panic/early-error paths.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users             { return &usersRepo{db: s.db} }
func (s *Store) Workspaces() store.Workspaces   { return &workspacesRepo{db: s.db} }
func (s *Store) Members() store.Members         { return &membersRepo{db: s.db} }
func (s *Store) Invitations() store.Invitations { return &invitationsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint converts sqlite unique-constraint violations into
// store.ErrAlreadyExists so services can branch on them without knowing the
// driver. modernc surfaces these as plain errors carrying the sqlite message.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE") {
		return store.ErrAlreadyExists
	}
	return err
}

// affectedOrNotFound maps a zero-row write to store.ErrNotFound. Guarded
// updates (status='PENDING') rely on this to detect lost races.
func affectedOrNotFound(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
