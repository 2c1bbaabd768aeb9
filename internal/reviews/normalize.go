package reviews

import (
	"math"

	"flex_reviews/internal/domain"
)

// Normalize fills optional review fields with deterministic defaults
// so every review has a complete shape regardless of source:
//
//   - channel defaults to hostaway
//   - isApproved and isPublic default to true when an overall rating
//     of 7 or higher was supplied, false otherwise
//   - a missing overall rating is derived from the rounded mean of the
//     category scores, when any exist
//
// The mapping is pure and per-element; applying it twice is a no-op.
func Normalize(in []domain.Review) []domain.Review {
	out := make([]domain.Review, len(in))
	for i, rv := range in {
		out[i] = normalizeOne(rv)
	}
	return out
}

func normalizeOne(rv domain.Review) domain.Review {
	if rv.Channel == "" {
		rv.Channel = domain.ChannelHostaway
	}

	// Approval defaults key off the rating as the source supplied it,
	// before any category-derived fill-in.
	def := rv.Rating != nil && *rv.Rating >= 7
	if rv.IsApproved == nil {
		rv.IsApproved = pbool(def)
	}
	if rv.IsPublic == nil {
		rv.IsPublic = pbool(def)
	}

	if rv.Rating == nil {
		rv.Rating = ratingFromCategories(rv.Categories)
	}
	return rv
}

func ratingFromCategories(cats []domain.CategoryRating) *int {
	if len(cats) == 0 {
		return nil
	}
	sum := 0
	for _, c := range cats {
		sum += c.Rating
	}
	r := int(math.Round(float64(sum) / float64(len(cats))))
	return &r
}

func pbool(b bool) *bool { return &b }
