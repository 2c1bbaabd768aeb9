package domain

// Property is a rental unit. It owns its reviews; reviews point back
// only via the display-only ListingName string.
type Property struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	PlaceID     string      `json:"placeId,omitempty"` // Google Places ID, empty when unknown
	ReviewStats ReviewStats `json:"reviewStats"`
	Reviews     []Review    `json:"reviews"`
}

// ReviewStats is a derived snapshot, recomputed on demand and never
// treated as a source of truth.
type ReviewStats struct {
	TotalReviews       int                `json:"totalReviews"`
	AverageRating      float64            `json:"averageRating"`
	RatingDistribution map[int]int        `json:"ratingDistribution"`
	CategoryAverages   map[string]float64 `json:"categoryAverages"`
	ChannelBreakdown   map[string]int     `json:"channelBreakdown"`
	RecentTrends       []TrendPoint       `json:"recentTrends"`
}

// TrendPoint is one calendar-day bucket of the rating trend.
type TrendPoint struct {
	Date          string  `json:"date"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

// DateRange bounds are inclusive; either may be empty.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// FilterOptions is a sparse set of AND-combined predicates. Zero-value
// fields impose no constraint.
type FilterOptions struct {
	Rating    *int      `json:"rating,omitempty"`
	Category  string    `json:"category,omitempty"`
	Channel   string    `json:"channel,omitempty"`
	Status    string    `json:"status,omitempty"`
	Search    string    `json:"search,omitempty"`
	DateRange DateRange `json:"dateRange,omitempty"`
}
