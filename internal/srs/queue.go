package srs

import "sort"

// SortDue orders due review records for presentation: items never reviewed
// successfully come first, then the hardest items (lowest easiness factor),
// then the most overdue.
func SortDue(reviews []ItemReview) {
	sort.SliceStable(reviews, func(i, j int) bool {
		if reviews[i].Repetitions == 0 && reviews[j].Repetitions > 0 {
			return true
		}
		if reviews[j].Repetitions == 0 && reviews[i].Repetitions > 0 {
			return false
		}

		if reviews[i].EasinessFactor != reviews[j].EasinessFactor {
			return reviews[i].EasinessFactor < reviews[j].EasinessFactor
		}

		return reviews[i].NextReview.Before(reviews[j].NextReview)
	})
}
