package reviews

import (
	"strings"
	"time"

	"flex_reviews/internal/domain"
)

const dayLayout = "2006-01-02"

var submittedLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	dayLayout,
}

// Filter applies the predicates in opts to rs, AND-combined. The input
// is never mutated and surviving elements keep their order. Zero-value
// filter fields impose no constraint, and unparseable filter values
// are treated as absent rather than failing.
func Filter(rs []domain.Review, opts domain.FilterOptions) []domain.Review {
	start, hasStart := parseBound(opts.DateRange.Start, false)
	end, hasEnd := parseBound(opts.DateRange.End, true)
	search := strings.ToLower(opts.Search)

	out := make([]domain.Review, 0, len(rs))
	for _, rv := range rs {
		if opts.Rating != nil && (rv.Rating == nil || *rv.Rating != *opts.Rating) {
			continue
		}
		if opts.Category != "" && !hasCategory(rv, opts.Category) {
			continue
		}
		if opts.Channel != "" && rv.Channel != opts.Channel {
			continue
		}
		if opts.Status != "" && rv.Status != opts.Status {
			continue
		}
		if search != "" && !matchesSearch(rv, search) {
			continue
		}
		if hasStart || hasEnd {
			ts, ok := parseSubmitted(rv.SubmittedAt)
			if !ok {
				// an undated review cannot fall inside any range
				continue
			}
			if hasStart && ts.Before(start) {
				continue
			}
			if hasEnd && ts.After(end) {
				continue
			}
		}
		out = append(out, rv)
	}
	return out
}

func hasCategory(rv domain.Review, category string) bool {
	for _, c := range rv.Categories {
		if c.Category == category {
			return true
		}
	}
	return false
}

func matchesSearch(rv domain.Review, lowered string) bool {
	return strings.Contains(strings.ToLower(rv.GuestName), lowered) ||
		strings.Contains(strings.ToLower(rv.ListingName), lowered) ||
		strings.Contains(strings.ToLower(rv.PublicReview), lowered)
}

func parseSubmitted(s string) (time.Time, bool) {
	for _, layout := range submittedLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseBound parses a range bound. A date-only end bound is stretched
// to the last second of that day so the range stays inclusive.
func parseBound(s string, isEnd bool) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	ts, ok := parseSubmitted(s)
	if !ok {
		return time.Time{}, false
	}
	if isEnd {
		if _, err := time.ParseInLocation(dayLayout, s, time.UTC); err == nil {
			ts = ts.Add(24*time.Hour - time.Second)
		}
	}
	return ts, true
}
