package domain

// Channels a review can originate from.
const (
	ChannelHostaway = "hostaway"
	ChannelGoogle   = "google"
	ChannelAirbnb   = "airbnb"
	ChannelVrbo     = "vrbo"
)

// Source-reported moderation states. Distinct from the local
// isApproved/isPublic flags, which only the dashboard controls.
const (
	StatusPublished = "published"
	StatusPending   = "pending"
	StatusRejected  = "rejected"
)

// Review directions.
const (
	TypeHostToGuest = "host-to-guest"
	TypeGuestToHost = "guest-to-host"
)

// Moderation actions accepted by the dashboard.
const (
	ActionApprove   = "approve"
	ActionReject    = "reject"
	ActionPublish   = "publish"
	ActionUnpublish = "unpublish"
)

// CategoryRating is one (category, 1-10 score) pair. The category
// vocabulary is open and varies by channel.
type CategoryRating struct {
	Category string `json:"category"`
	Rating   int    `json:"rating"`
}

// Review is one guest/host review in the internal 10-point shape.
// The JSON field names are a fixed external contract.
type Review struct {
	ID           int64            `json:"id"`
	Type         string           `json:"type"`
	Status       string           `json:"status"`
	Rating       *int             `json:"rating"` // null when the source reported only category scores
	PublicReview string           `json:"publicReview"`
	Categories   []CategoryRating `json:"reviewCategory"`
	SubmittedAt  string           `json:"submittedAt"` // "YYYY-MM-DD HH:MM:SS" or RFC 3339
	GuestName    string           `json:"guestName"`
	ListingName  string           `json:"listingName"`
	Channel      string           `json:"channel,omitempty"`
	IsApproved   *bool            `json:"isApproved,omitempty"`
	IsPublic     *bool            `json:"isPublic,omitempty"`
}

// Clone returns a copy that shares no pointers with r.
func (r Review) Clone() Review {
	out := r
	if r.Rating != nil {
		v := *r.Rating
		out.Rating = &v
	}
	if r.IsApproved != nil {
		v := *r.IsApproved
		out.IsApproved = &v
	}
	if r.IsPublic != nil {
		v := *r.IsPublic
		out.IsPublic = &v
	}
	if r.Categories != nil {
		out.Categories = make([]CategoryRating, len(r.Categories))
		copy(out.Categories, r.Categories)
	}
	return out
}

// CloneReviews deep-copies a collection so callers can hand out
// per-request copies of shared state.
func CloneReviews(rs []Review) []Review {
	if rs == nil {
		return nil
	}
	out := make([]Review, len(rs))
	for i, r := range rs {
		out[i] = r.Clone()
	}
	return out
}
