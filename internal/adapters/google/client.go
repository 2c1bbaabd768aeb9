package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"flex_reviews/internal/adapters/observability"
	"flex_reviews/internal/domain"
	"flex_reviews/internal/reviews"
)

const (
	DefaultBase = "https://maps.googleapis.com/maps/api/place"

	SourceLive = "google"
	SourceMock = "mock"
)

// Client adapts Google Places reviews (5-point scale, free text, unix
// timestamps) into the internal 10-point review shape. When no API key
// is configured, or on any upstream failure, it serves a deterministic
// mock set instead of failing the caller.
type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, rps int) *Client {
	if base == "" {
		base = DefaultBase
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: 10 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) Configured() bool { return c.key != "" }

// Wire shapes, field names fixed by the Places Details API.

type placeReview struct {
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"` // 1-5
	Text       string `json:"text"`
	Time       int64  `json:"time"` // unix seconds
}

type placeResponse struct {
	Status string `json:"status"`
	Result struct {
		Name    string        `json:"name"`
		Rating  float64       `json:"rating"`
		Reviews []placeReview `json:"reviews"`
	} `json:"result"`
}

// GetReviews fetches and converts the place's reviews. IDs come from
// alloc so the caller controls uniqueness against its own collection.
// The Configured flag always reports the real key state, even when the
// result fell back to mock data.
func (c *Client) GetReviews(ctx context.Context, placeID, propertyName string, alloc *reviews.Allocator) domain.ChannelFetch {
	if !c.Configured() {
		return domain.ChannelFetch{Reviews: c.mockReviews(propertyName, alloc), Source: SourceMock, Configured: false}
	}
	rs, err := c.fetch(ctx, placeID, propertyName, alloc)
	if err != nil {
		log.Warn().Err(err).Str("place_id", placeID).Msg("places fetch failed, serving mock reviews")
		return domain.ChannelFetch{Reviews: c.mockReviews(propertyName, alloc), Source: SourceMock, Configured: true}
	}
	return domain.ChannelFetch{Reviews: rs, Source: SourceLive, Configured: true}
}

func (c *Client) fetch(ctx context.Context, placeID, propertyName string, alloc *reviews.Allocator) ([]domain.Review, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/details/json?place_id=%s&fields=reviews,rating,user_ratings_total&key=%s",
		c.base, url.QueryEscape(placeID), url.QueryEscape(c.key))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("places", "details", 0, time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("places", "details", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places: status %d", resp.StatusCode)
	}
	var pr placeResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, err
	}
	if pr.Status != "OK" {
		return nil, fmt.Errorf("places: %s", pr.Status)
	}

	listing := propertyName
	if pr.Result.Name != "" {
		listing = pr.Result.Name
	}
	return transform(pr.Result.Reviews, listing, alloc), nil
}

// transform maps the 5-point foreign shape onto the internal one.
// Ratings double onto the 10-point scale; the two synthetic sub-scores
// sit one point below the overall score, floored at 1. The markdown is
// a documented approximation, not measured data.
func transform(in []placeReview, listing string, alloc *reviews.Allocator) []domain.Review {
	out := make([]domain.Review, 0, len(in))
	for _, gr := range in {
		rating := gr.Rating * 2
		sub := rating - 1
		if sub < 1 {
			sub = 1
		}
		r := rating
		out = append(out, domain.Review{
			ID:           alloc.Next(),
			Type:         domain.TypeGuestToHost,
			Status:       domain.StatusPublished,
			Rating:       &r,
			PublicReview: gr.Text,
			Categories: []domain.CategoryRating{
				{Category: "overall_experience", Rating: rating},
				{Category: "service_quality", Rating: sub},
				{Category: "value_for_money", Rating: sub},
			},
			SubmittedAt: time.Unix(gr.Time, 0).UTC().Format("2006-01-02 15:04:05"),
			GuestName:   gr.AuthorName,
			ListingName: listing,
			Channel:     domain.ChannelGoogle,
			IsApproved:  pbool(true), // trust the upstream channel
			IsPublic:    pbool(true),
		})
	}
	return out
}

func pbool(b bool) *bool { return &b }
