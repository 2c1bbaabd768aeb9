package google

import (
	"flex_reviews/internal/domain"
	"flex_reviews/internal/reviews"
)

// Fixed sample inputs run through the same transformation as live
// data, so the UI always has representative reviews when the Places
// API is unreachable or unconfigured. Timestamps are constants to keep
// the fallback fully deterministic.
var mockSamples = []placeReview{
	{
		AuthorName: "Sarah Johnson",
		Rating:     5,
		Text:       "Excellent property management! The apartment was spotless and the location is perfect for exploring London. Highly recommend!",
		Time:       1721486700, // 2024-07-20 14:45:00 UTC
	},
	{
		AuthorName: "Michael Chen",
		Rating:     4,
		Text:       "Great place to stay. Clean, comfortable, and well-located. The staff was very helpful and responsive.",
		Time:       1718886000, // 2024-06-20 12:20:00 UTC
	},
	{
		AuthorName: "Emma Thompson",
		Rating:     5,
		Text:       "Absolutely loved our stay here! The apartment exceeded our expectations. Perfect location and amazing service.",
		Time:       1716201900, // 2024-05-20 10:45:00 UTC
	},
	{
		AuthorName: "David Wilson",
		Rating:     3,
		Text:       "Decent place but could use some updates. Location is good but the apartment needs some maintenance.",
		Time:       1713608100, // 2024-04-20 10:15:00 UTC
	},
}

func (c *Client) mockReviews(propertyName string, alloc *reviews.Allocator) []domain.Review {
	return transform(mockSamples, propertyName, alloc)
}
