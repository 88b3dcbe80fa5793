package catalog

import (
	"math"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// AggregateRating computes the derived rating for a tool from the full set
// of its reviews: the arithmetic mean of review ratings rounded half-up to
// one decimal place, plus the review count. An empty set yields (0, 0).
// Always recompute from the full filtered set; never apply a delta to a
// previously stored value.
func AggregateRating(reviews []store.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10, len(reviews)
}
