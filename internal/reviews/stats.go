package reviews

import (
	"math"
	"sort"

	"flex_reviews/internal/domain"
)

// Stats computes the aggregate snapshot for a collection. Every mean
// is guarded by a count; an empty collection yields zero values and
// empty maps, never a division error.
//
// Reviews without an overall rating count toward TotalReviews and the
// channel breakdown but are left out of the daily trend entirely, so a
// trend bucket's count and its average describe the same reviews.
func Stats(rs []domain.Review) domain.ReviewStats {
	st := domain.ReviewStats{
		TotalReviews:       len(rs),
		RatingDistribution: map[int]int{},
		CategoryAverages:   map[string]float64{},
		ChannelBreakdown:   map[string]int{},
		RecentTrends:       []domain.TrendPoint{},
	}

	type bucket struct{ sum, count int }
	days := map[string]*bucket{}
	catSum := map[string]int{}
	catCount := map[string]int{}
	ratingSum, rated := 0, 0

	for _, rv := range rs {
		st.ChannelBreakdown[channelOf(rv)]++

		for _, c := range rv.Categories {
			catSum[c.Category] += c.Rating
			catCount[c.Category]++
		}

		if rv.Rating == nil {
			continue
		}
		st.RatingDistribution[*rv.Rating]++
		ratingSum += *rv.Rating
		rated++

		if ts, ok := parseSubmitted(rv.SubmittedAt); ok {
			day := ts.Format(dayLayout)
			b := days[day]
			if b == nil {
				b = &bucket{}
				days[day] = b
			}
			b.sum += *rv.Rating
			b.count++
		}
	}

	if rated > 0 {
		st.AverageRating = round1(float64(ratingSum) / float64(rated))
	}
	for cat, n := range catCount {
		st.CategoryAverages[cat] = round1(float64(catSum[cat]) / float64(n))
	}

	for day, b := range days {
		st.RecentTrends = append(st.RecentTrends, domain.TrendPoint{
			Date:          day,
			AverageRating: round1(float64(b.sum) / float64(b.count)),
			ReviewCount:   b.count,
		})
	}
	sort.Slice(st.RecentTrends, func(i, j int) bool {
		return st.RecentTrends[i].Date < st.RecentTrends[j].Date
	})
	return st
}

// Summary holds the dashboard header counters.
type Summary struct {
	TotalReviews    int `json:"totalReviews"`
	HighRatings     int `json:"highRatings"` // rating 8 or above
	PublicReviews   int `json:"publicReviews"`
	ApprovedReviews int `json:"approvedReviews"`
}

func Summarize(rs []domain.Review) Summary {
	s := Summary{TotalReviews: len(rs)}
	for _, rv := range rs {
		if rv.Rating != nil && *rv.Rating >= 8 {
			s.HighRatings++
		}
		if rv.IsPublic != nil && *rv.IsPublic {
			s.PublicReviews++
		}
		if rv.IsApproved != nil && *rv.IsApproved {
			s.ApprovedReviews++
		}
	}
	return s
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
