package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	reviews := []ItemReview{
		{ItemID: "reviewed-easy", EasinessFactor: 2.9, Repetitions: 4, NextReview: now.Add(-time.Hour)},
		{ItemID: "reviewed-hard", EasinessFactor: 1.4, Repetitions: 2, NextReview: now.Add(-time.Hour)},
		{ItemID: "new-b", EasinessFactor: 2.5, Repetitions: 0, NextReview: now.Add(-time.Hour)},
		{ItemID: "new-a", EasinessFactor: 2.5, Repetitions: 0, NextReview: now.Add(-2 * time.Hour)},
		{ItemID: "reviewed-hard-overdue", EasinessFactor: 1.4, Repetitions: 2, NextReview: now.Add(-48 * time.Hour)},
	}

	SortDue(reviews)

	got := make([]string, len(reviews))
	for i, review := range reviews {
		got[i] = review.ItemID
	}

	assert.Equal(t, []string{
		// Never-reviewed items first, most overdue ahead on ties.
		"new-a",
		"new-b",
		// Then by easiness, hardest first, most overdue breaking ties.
		"reviewed-hard-overdue",
		"reviewed-hard",
		"reviewed-easy",
	}, got)
}

func TestSortDue_Empty(t *testing.T) {
	var reviews []ItemReview
	SortDue(reviews)
	assert.Empty(t, reviews)
}
