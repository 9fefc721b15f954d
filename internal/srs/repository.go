package srs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ItemReview is a persisted review record for one learner/item pair.
type ItemReview struct {
	LearnerID      string    `db:"learner_id"`
	ItemID         string    `db:"item_id"`
	Interval       int       `db:"interval_days"`
	EasinessFactor float64   `db:"easiness_factor"`
	Repetitions    int       `db:"repetitions"`
	NextReview     time.Time `db:"next_review_at"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// State returns the scheduling state held by the record.
func (r ItemReview) State() ReviewState {
	return ReviewState{
		Interval:       r.Interval,
		EasinessFactor: r.EasinessFactor,
		Repetitions:    r.Repetitions,
		NextReview:     r.NextReview,
	}
}

// SetState copies scheduling state into the record.
func (r *ItemReview) SetState(state ReviewState) {
	r.Interval = state.Interval
	r.EasinessFactor = state.EasinessFactor
	r.Repetitions = state.Repetitions
	r.NextReview = state.NextReview
}

// ReviewRepository defines operations for managing review records.
type ReviewRepository interface {
	Find(ctx context.Context, learnerID, itemID string) (*ItemReview, error)
	FindDue(ctx context.Context, learnerID string, asOf time.Time, limit int) ([]ItemReview, error)
	Upsert(ctx context.Context, review *ItemReview) error
}

// DBReviewRepository implements ReviewRepository using Postgres.
type DBReviewRepository struct {
	db *sqlx.DB
}

// NewDBReviewRepository creates a new DBReviewRepository.
func NewDBReviewRepository(db *sqlx.DB) *DBReviewRepository {
	return &DBReviewRepository{db: db}
}

// Find returns the review record for a learner/item pair, or nil if it has
// never been reviewed.
func (r *DBReviewRepository) Find(ctx context.Context, learnerID, itemID string) (*ItemReview, error) {
	var review ItemReview
	err := r.db.GetContext(ctx, &review,
		"SELECT * FROM review_states WHERE learner_id = $1 AND item_id = $2",
		learnerID, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(review_states) > %w", err)
	}
	return &review, nil
}

// FindDue returns review records due at asOf, earliest due date first.
func (r *DBReviewRepository) FindDue(ctx context.Context, learnerID string, asOf time.Time, limit int) ([]ItemReview, error) {
	var reviews []ItemReview
	if err := r.db.SelectContext(ctx, &reviews,
		"SELECT * FROM review_states WHERE learner_id = $1 AND next_review_at <= $2 ORDER BY next_review_at LIMIT $3",
		learnerID, asOf, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(due review_states) > %w", err)
	}
	return reviews, nil
}

// Upsert inserts or replaces the review record for a learner/item pair.
func (r *DBReviewRepository) Upsert(ctx context.Context, review *ItemReview) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO review_states (learner_id, item_id, interval_days, easiness_factor, repetitions, next_review_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (learner_id, item_id) DO UPDATE
		SET interval_days = EXCLUDED.interval_days,
			easiness_factor = EXCLUDED.easiness_factor,
			repetitions = EXCLUDED.repetitions,
			next_review_at = EXCLUDED.next_review_at,
			updated_at = now()`,
		review.LearnerID, review.ItemID, review.Interval, review.EasinessFactor,
		review.Repetitions, review.NextReview); err != nil {
		return fmt.Errorf("db.ExecContext(upsert review_state) > %w", err)
	}
	return nil
}
