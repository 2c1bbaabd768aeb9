package hostaway

import "flex_reviews/internal/domain"

func pi(v int) *int   { return &v }
func pb(v bool) *bool { return &v }

// seedReviews mirrors the Hostaway review payload shape. reviewStats
// snapshots are intentionally absent from the seed; they are derived
// data and get recomputed when the collections load.
var seedReviews = []domain.Review{
	{
		ID:           7453,
		Type:         domain.TypeHostToGuest,
		Status:       domain.StatusPublished,
		Rating:       pi(10),
		PublicReview: "Shane and family are wonderful! Would definitely host again :)",
		Categories: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 10},
			{Category: "respect_house_rules", Rating: 10},
		},
		SubmittedAt: "2020-08-21 22:45:14",
		GuestName:   "Shane Finkelstein",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
		Channel:     domain.ChannelHostaway,
		IsApproved:  pb(true),
		IsPublic:    pb(true),
	},
	{
		ID:           7454,
		Type:         domain.TypeGuestToHost,
		Status:       domain.StatusPublished,
		Rating:       pi(9),
		PublicReview: "Amazing location and the apartment was spotless. Host was very responsive and helpful throughout our stay.",
		Categories: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 9},
			{Category: "location", Rating: 10},
			{Category: "value", Rating: 8},
		},
		SubmittedAt: "2020-08-20 15:30:00",
		GuestName:   "Emma Thompson",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
		Channel:     domain.ChannelHostaway,
		IsApproved:  pb(true),
		IsPublic:    pb(true),
	},
	{
		ID:           7455,
		Type:         domain.TypeGuestToHost,
		Status:       domain.StatusPublished,
		Rating:       pi(8),
		PublicReview: "Great place to stay in Shoreditch. The apartment was clean and well-equipped. Would recommend!",
		Categories: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 9},
			{Category: "communication", Rating: 8},
			{Category: "location", Rating: 9},
			{Category: "value", Rating: 7},
		},
		SubmittedAt: "2020-08-19 12:15:00",
		GuestName:   "Michael Chen",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
		Channel:     domain.ChannelHostaway,
		IsApproved:  pb(true),
		IsPublic:    pb(false),
	},
	{
		ID:           7456,
		Type:         domain.TypeGuestToHost,
		Status:       domain.StatusPublished,
		Rating:       pi(10),
		PublicReview: "Perfect stay! The apartment exceeded our expectations. Clean, modern, and in the heart of everything.",
		Categories: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 10},
			{Category: "location", Rating: 10},
			{Category: "value", Rating: 10},
		},
		SubmittedAt: "2020-08-18 09:45:00",
		GuestName:   "Sarah Johnson",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
		Channel:     domain.ChannelHostaway,
		IsApproved:  pb(true),
		IsPublic:    pb(true),
	},
	{
		ID:           7457,
		Type:         domain.TypeGuestToHost,
		Status:       domain.StatusPublished,
		Rating:       pi(7),
		PublicReview: "Good location but the apartment could use some updates. Overall decent value for money.",
		Categories: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 7},
			{Category: "communication", Rating: 8},
			{Category: "location", Rating: 9},
			{Category: "value", Rating: 6},
		},
		SubmittedAt: "2020-08-17 18:20:00",
		GuestName:   "David Wilson",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
		Channel:     domain.ChannelHostaway,
		IsApproved:  pb(false),
		IsPublic:    pb(false),
	},
	{
		ID:           7458,
		Type:         domain.TypeGuestToHost,
		Status:       domain.StatusPublished,
		Rating:       pi(9),
		PublicReview: "Excellent apartment in a vibrant neighborhood. The host was very accommodating and the place was immaculate.",
		Categories: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 9},
			{Category: "location", Rating: 9},
			{Category: "value", Rating: 8},
		},
		SubmittedAt: "2020-08-16 14:10:00",
		GuestName:   "Lisa Rodriguez",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
		Channel:     domain.ChannelHostaway,
		IsApproved:  pb(true),
		IsPublic:    pb(true),
	},
	{
		ID:           7459,
		Type:         domain.TypeGuestToHost,
		Status:       domain.StatusPublished,
		Rating:       pi(6),
		PublicReview: "The location was good but there were some maintenance issues that weren't addressed during our stay.",
		Categories: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 6},
			{Category: "communication", Rating: 5},
			{Category: "location", Rating: 8},
			{Category: "value", Rating: 5},
		},
		SubmittedAt: "2020-08-15 11:30:00",
		GuestName:   "James Brown",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
		Channel:     domain.ChannelHostaway,
		IsApproved:  pb(false),
		IsPublic:    pb(false),
	},
	{
		ID:           7460,
		Type:         domain.TypeGuestToHost,
		Status:       domain.StatusPublished,
		Rating:       pi(10),
		PublicReview: "Absolutely perfect! This apartment has everything you need and the host is incredibly responsive.",
		Categories: []domain.CategoryRating{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 10},
			{Category: "location", Rating: 10},
			{Category: "value", Rating: 10},
		},
		SubmittedAt: "2020-08-14 16:45:00",
		GuestName:   "Anna Smith",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
		Channel:     domain.ChannelHostaway,
		IsApproved:  pb(true),
		IsPublic:    pb(true),
	},
}

// Reviews previously imported from Google for the Canary Wharf unit.
var canaryGoogleReviews = []domain.Review{
	{
		ID:           20001,
		Type:         domain.TypeGuestToHost,
		Status:       domain.StatusPublished,
		Rating:       pi(10),
		PublicReview: "Exceptional luxury apartment with stunning views of Canary Wharf. The service was impeccable and the location is perfect for business travelers.",
		Categories: []domain.CategoryRating{
			{Category: "overall_experience", Rating: 10},
			{Category: "service_quality", Rating: 10},
			{Category: "value_for_money", Rating: 9},
		},
		SubmittedAt: "2024-01-15 14:30:00",
		GuestName:   "Jennifer Martinez",
		ListingName: "Canary Wharf Luxury 2BR",
		Channel:     domain.ChannelGoogle,
		IsApproved:  pb(true),
		IsPublic:    pb(true),
	},
	{
		ID:           20002,
		Type:         domain.TypeGuestToHost,
		Status:       domain.StatusPublished,
		Rating:       pi(9),
		PublicReview: "Beautiful apartment with high-end finishes. Great location near the tube and shopping. Staff was very helpful and responsive.",
		Categories: []domain.CategoryRating{
			{Category: "overall_experience", Rating: 9},
			{Category: "service_quality", Rating: 9},
			{Category: "value_for_money", Rating: 8},
		},
		SubmittedAt: "2024-01-10 16:45:00",
		GuestName:   "Robert Kim",
		ListingName: "Canary Wharf Luxury 2BR",
		Channel:     domain.ChannelGoogle,
		IsApproved:  pb(true),
		IsPublic:    pb(true),
	},
	{
		ID:           20003,
		Type:         domain.TypeGuestToHost,
		Status:       domain.StatusPublished,
		Rating:       pi(8),
		PublicReview: "Very nice apartment in a great location. Clean and well-maintained. Would definitely stay here again.",
		Categories: []domain.CategoryRating{
			{Category: "overall_experience", Rating: 8},
			{Category: "service_quality", Rating: 8},
			{Category: "value_for_money", Rating: 7},
		},
		SubmittedAt: "2024-01-05 12:20:00",
		GuestName:   "Amanda Foster",
		ListingName: "Canary Wharf Luxury 2BR",
		Channel:     domain.ChannelGoogle,
		IsApproved:  pb(true),
		IsPublic:    pb(true),
	},
	{
		ID:           20004,
		Type:         domain.TypeGuestToHost,
		Status:       domain.StatusPublished,
		Rating:       pi(10),
		PublicReview: "Absolutely outstanding! This apartment exceeded all expectations. The views are breathtaking and the amenities are top-notch.",
		Categories: []domain.CategoryRating{
			{Category: "overall_experience", Rating: 10},
			{Category: "service_quality", Rating: 10},
			{Category: "value_for_money", Rating: 10},
		},
		SubmittedAt: "2024-01-01 10:15:00",
		GuestName:   "Thomas Anderson",
		ListingName: "Canary Wharf Luxury 2BR",
		Channel:     domain.ChannelGoogle,
		IsApproved:  pb(true),
		IsPublic:    pb(true),
	},
}

var seedProperties = []domain.Property{
	{
		ID:      "shoreditch-heights",
		Name:    "2B N1 A - 29 Shoreditch Heights",
		Address: "29 Shoreditch Heights, London E1 6JN",
		PlaceID: "ChIJ-shoreditch-heights",
		Reviews: seedReviews,
	},
	{
		ID:      "canary-wharf-luxury",
		Name:    "Canary Wharf Luxury 2BR",
		Address: "45 Marsh Wall, London E14 9AF",
		PlaceID: "ChIJ-canary-wharf-luxury",
		Reviews: append(append([]domain.Review{}, seedReviews[:4]...), canaryGoogleReviews...),
	},
	{
		ID:      "camden-market-studio",
		Name:    "Camden Market Studio",
		Address: "12 Camden High Street, London NW1 0JH",
		Reviews: []domain.Review{},
	},
}
