package loginguard

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// DBAttemptRepository implements AttemptRepository using Postgres. Expired
// attempts are pruned lazily on each append rather than by a background
// sweep.
type DBAttemptRepository struct {
	db     *sqlx.DB
	window time.Duration
}

// NewDBAttemptRepository creates a new DBAttemptRepository. window should
// match the guard's sliding window.
func NewDBAttemptRepository(db *sqlx.DB, window time.Duration) *DBAttemptRepository {
	return &DBAttemptRepository{db: db, window: window}
}

// History returns all recorded attempt timestamps for the identity in
// chronological order.
func (r *DBAttemptRepository) History(ctx context.Context, identity string) ([]time.Time, error) {
	var history []time.Time
	if err := r.db.SelectContext(ctx, &history,
		"SELECT attempted_at FROM login_attempts WHERE identity = $1 ORDER BY attempted_at",
		identity); err != nil {
		return nil, fmt.Errorf("db.SelectContext(login_attempts) > %w", err)
	}
	return history, nil
}

// Append records a failed attempt and drops entries that have aged out of
// the window.
func (r *DBAttemptRepository) Append(ctx context.Context, identity string, at time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM login_attempts WHERE identity = $1 AND attempted_at <= $2",
		identity, at.Add(-r.window)); err != nil {
		return fmt.Errorf("db.ExecContext(prune login_attempts) > %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO login_attempts (identity, attempted_at) VALUES ($1, $2)",
		identity, at); err != nil {
		return fmt.Errorf("db.ExecContext(insert login_attempt) > %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// Clear removes all recorded attempts for the identity.
func (r *DBAttemptRepository) Clear(ctx context.Context, identity string) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM login_attempts WHERE identity = $1", identity); err != nil {
		return fmt.Errorf("db.ExecContext(clear login_attempts) > %w", err)
	}
	return nil
}
