package twofactor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// BackupCode is a persisted backup code record. A non-null UsedAt means the
// code can never satisfy verification again.
type BackupCode struct {
	ID        uuid.UUID  `db:"id"`
	LearnerID string     `db:"learner_id"`
	CodeHash  string     `db:"code_hash"`
	UsedAt    *time.Time `db:"used_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// BackupCodeRepository defines persistence operations for backup codes.
type BackupCodeRepository interface {
	// ReplaceBatch atomically deletes all unused codes for the learner and
	// inserts the new batch. A partial batch must never be persisted.
	ReplaceBatch(ctx context.Context, learnerID string, hashes []string) error
	FindUnusedByHash(ctx context.Context, learnerID, hash string) (*BackupCode, error)
	// MarkUsed conditionally stamps the record as used. It returns false if
	// the record was already used, so concurrent verifications cannot both
	// spend the same code.
	MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

// SecretRepository defines persistence operations for TOTP secrets.
type SecretRepository interface {
	SaveSecret(ctx context.Context, learnerID, secret string) error
	FindSecret(ctx context.Context, learnerID string) (string, error)
}

// ErrNotEnrolled is returned when a learner has no TOTP secret on record.
var ErrNotEnrolled = errors.New("learner is not enrolled in two-factor authentication")

// DBRepository implements BackupCodeRepository and SecretRepository using
// Postgres.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// ReplaceBatch deletes unused codes and inserts the new batch in a single
// transaction.
func (r *DBRepository) ReplaceBatch(ctx context.Context, learnerID string, hashes []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM backup_codes WHERE learner_id = $1 AND used_at IS NULL",
		learnerID); err != nil {
		return fmt.Errorf("db.ExecContext(delete unused backup_codes) > %w", err)
	}

	for _, hash := range hashes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO backup_codes (id, learner_id, code_hash) VALUES ($1, $2, $3)",
			uuid.New(), learnerID, hash); err != nil {
			return fmt.Errorf("db.ExecContext(insert backup_code) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// FindUnusedByHash returns the unused code record matching the hash, or nil
// if the code is wrong or already spent.
func (r *DBRepository) FindUnusedByHash(ctx context.Context, learnerID, hash string) (*BackupCode, error) {
	var code BackupCode
	err := r.db.GetContext(ctx, &code,
		"SELECT * FROM backup_codes WHERE learner_id = $1 AND code_hash = $2 AND used_at IS NULL",
		learnerID, hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(backup_codes) > %w", err)
	}
	return &code, nil
}

// MarkUsed stamps the record as used only if it is still unused. The
// conditional update is what makes single-use hold under concurrency.
func (r *DBRepository) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE backup_codes SET used_at = $1 WHERE id = $2 AND used_at IS NULL",
		at, id)
	if err != nil {
		return false, fmt.Errorf("db.ExecContext(mark backup_code used) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return affected == 1, nil
}

// SaveSecret stores or replaces the learner's TOTP secret.
func (r *DBRepository) SaveSecret(ctx context.Context, learnerID, secret string) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO twofactor_secrets (learner_id, secret) VALUES ($1, $2)
		ON CONFLICT (learner_id) DO UPDATE SET secret = EXCLUDED.secret, updated_at = now()`,
		learnerID, secret); err != nil {
		return fmt.Errorf("db.ExecContext(upsert twofactor_secret) > %w", err)
	}
	return nil
}

// FindSecret returns the learner's TOTP secret.
func (r *DBRepository) FindSecret(ctx context.Context, learnerID string) (string, error) {
	var secret string
	err := r.db.GetContext(ctx, &secret,
		"SELECT secret FROM twofactor_secrets WHERE learner_id = $1", learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotEnrolled
	}
	if err != nil {
		return "", fmt.Errorf("db.GetContext(twofactor_secrets) > %w", err)
	}
	return secret, nil
}
