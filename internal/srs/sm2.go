// Package srs implements SM-2 spaced-repetition scheduling for exam prep items.
package srs

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	DefaultEasinessFactor = 2.5
	MinEasinessFactor     = 1.3

	// PassThreshold is the lowest quality grade counted as a successful recall.
	PassThreshold = 3

	// MinQuality and MaxQuality bound the grade scale.
	MinQuality = 0
	MaxQuality = 5
)

// ErrInvalidQuality is returned when a grade is outside the 0-5 scale.
// Out-of-range grades are rejected instead of clamped so caller bugs surface.
var ErrInvalidQuality = errors.New("quality must be between 0 and 5")

// Quality grades on the SM-2 scale.
const (
	QualityBlackout   = 0
	QualityWrong      = 1
	QualityFamiliar   = 2
	QualityDifficult  = 3
	QualityHesitation = 4
	QualityPerfect    = 5
)

// ReviewState holds the scheduling state of one learner/item pair.
type ReviewState struct {
	Interval       int
	EasinessFactor float64
	Repetitions    int
	NextReview     time.Time
}

// NewReviewState returns the state used for an item's first review.
func NewReviewState() ReviewState {
	return ReviewState{
		Interval:       1,
		EasinessFactor: DefaultEasinessFactor,
		Repetitions:    0,
	}
}

// ScheduleNext applies one SM-2 review to the previous state and returns the
// updated state. The next review is due interval rolling 24h periods after
// the review moment, not at a calendar-day boundary.
func ScheduleNext(previous ReviewState, quality int, now time.Time) (ReviewState, error) {
	if quality < MinQuality || quality > MaxQuality {
		return ReviewState{}, fmt.Errorf("%w: got %d", ErrInvalidQuality, quality)
	}

	ef := previous.EasinessFactor
	if ef == 0 {
		ef = DefaultEasinessFactor
	}

	q := float64(quality)
	ef = ef + 0.1 - (5-q)*(0.08+(5-q)*0.02)
	ef = math.Max(ef, MinEasinessFactor)

	next := ReviewState{EasinessFactor: ef}

	if quality < PassThreshold {
		// Lapse: full reset, relearn tomorrow regardless of prior streak.
		next.Repetitions = 0
		next.Interval = 1
	} else {
		next.Repetitions = previous.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.Interval = 1
		case 2:
			next.Interval = 6
		default:
			// Geometric growth uses the updated easiness factor.
			next.Interval = int(math.Round(float64(previous.Interval) * ef))
		}
		if next.Interval < 1 {
			next.Interval = 1
		}
	}

	next.NextReview = now.Add(time.Duration(next.Interval) * 24 * time.Hour)
	return next, nil
}

// IsDue reports whether an item is due for review at the given moment.
func IsDue(nextReview, now time.Time) bool {
	return !now.Before(nextReview)
}
