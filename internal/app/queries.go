package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flex_reviews/internal/domain"
	"flex_reviews/internal/reviews"
	"flex_reviews/internal/store"
)

// ErrSourceUnavailable marks a degraded upstream feed. Handlers map it
// to an advisory 502, never a crash.
var ErrSourceUnavailable = errors.New("review source unavailable")

type QueryService struct {
	source   domain.ReviewSource
	store    *store.Memory
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(src domain.ReviewSource, st *store.Memory, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{source: src, store: st, cache: c, cacheTTL: ttl}
}

type ReviewsPayload struct {
	Reviews []domain.Review      `json:"reviews"`
	Total   int                  `json:"total"`
	Filters domain.FilterOptions `json:"filters"`
}

// HostawayReviews runs the per-request pipeline: fetch, normalize,
// filter. The source's collection is request-scoped, so no cross
// request state is involved.
func (s *QueryService) HostawayReviews(ctx context.Context, f domain.FilterOptions) (ReviewsPayload, error) {
	out, err := s.source.FetchReviews(ctx)
	if err != nil {
		return ReviewsPayload{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if out.Status != domain.FetchOK {
		return ReviewsPayload{}, fmt.Errorf("%w: source status %q", ErrSourceUnavailable, out.Status)
	}
	rs := reviews.Filter(reviews.Normalize(out.Result), f)
	return ReviewsPayload{Reviews: rs, Total: len(rs), Filters: f}, nil
}

type PropertiesPayload struct {
	Properties []domain.Property `json:"properties"`
	Total      int               `json:"total"`
	Summary    reviews.Summary   `json:"summary"`
}

func (s *QueryService) Properties(ctx context.Context) PropertiesPayload {
	props := s.store.Properties()
	var all []domain.Review
	for _, p := range props {
		all = append(all, p.Reviews...)
	}
	return PropertiesPayload{Properties: props, Total: len(props), Summary: reviews.Summarize(all)}
}

func (s *QueryService) Property(ctx context.Context, id string) (domain.Property, error) {
	key := propertyCacheKey(id)
	var p domain.Property
	if ok, _ := s.cache.Get(ctx, key, &p); ok {
		return p, nil
	}
	p, ok := s.store.Property(id)
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	_ = s.cache.Set(ctx, key, p, int(s.cacheTTL.Seconds()))
	return p, nil
}

// PropertyReviews returns a property's merged collection. With
// publicOnly set it is the property-page view: approved and public
// reviews only.
func (s *QueryService) PropertyReviews(ctx context.Context, id string, publicOnly bool) ([]domain.Review, error) {
	rs, ok := s.store.Reviews(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if publicOnly {
		rs = reviews.Public(rs)
	}
	return rs, nil
}

// PropertyStats recomputes the aggregate snapshot on demand; the
// stored snapshot is never the source of truth.
func (s *QueryService) PropertyStats(ctx context.Context, id string) (domain.ReviewStats, error) {
	rs, ok := s.store.Reviews(id)
	if !ok {
		return domain.ReviewStats{}, domain.ErrNotFound
	}
	return reviews.Stats(rs), nil
}

func propertyCacheKey(id string) string { return "property:" + id }
