package srs

import (
	"context"
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/internal/metrics"
)

// ReviewService grades reviews and builds the due queue on top of a
// ReviewRepository.
type ReviewService struct {
	repo     ReviewRepository
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewReviewService creates a ReviewService. now may be nil, in which case
// time.Now is used.
func NewReviewService(repo ReviewRepository, recorder *metrics.Recorder, now func() time.Time) *ReviewService {
	if now == nil {
		now = time.Now
	}
	return &ReviewService{
		repo:     repo,
		recorder: recorder,
		now:      now,
	}
}

// Grade applies one review with the given quality grade and persists the
// updated state. An item that has never been reviewed starts from the
// default state.
func (s *ReviewService) Grade(ctx context.Context, learnerID, itemID string, quality int) (*ItemReview, error) {
	review, err := s.repo.Find(ctx, learnerID, itemID)
	if err != nil {
		return nil, fmt.Errorf("repo.Find(%s, %s) > %w", learnerID, itemID, err)
	}
	if review == nil {
		review = &ItemReview{LearnerID: learnerID, ItemID: itemID}
		review.SetState(NewReviewState())
	}

	next, err := ScheduleNext(review.State(), quality, s.now())
	if err != nil {
		return nil, err
	}
	review.SetState(next)

	if err := s.repo.Upsert(ctx, review); err != nil {
		return nil, fmt.Errorf("repo.Upsert(%s, %s) > %w", learnerID, itemID, err)
	}

	if s.recorder != nil {
		s.recorder.Incr("reviews.graded")
		if quality < PassThreshold {
			s.recorder.Incr("reviews.lapsed")
		}
	}
	return review, nil
}

// DueQueue returns the learner's due items in presentation order.
func (s *ReviewService) DueQueue(ctx context.Context, learnerID string, limit int) ([]ItemReview, error) {
	reviews, err := s.repo.FindDue(ctx, learnerID, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("repo.FindDue(%s) > %w", learnerID, err)
	}
	SortDue(reviews)
	return reviews, nil
}
