package hostaway

import (
	"context"
	"time"

	"flex_reviews/internal/domain"
)

// Source serves the fixed Hostaway-shaped dataset behind the
// ReviewSource and PropertySource ports. The sandbox account this
// dashboard targets returns no reviews, so the dataset stands in as
// the system of record. A configurable latency keeps callers honest
// about treating the fetch as a real suspending call.
type Source struct {
	latency time.Duration
}

func New(latency time.Duration) *Source {
	return &Source{latency: latency}
}

func (s *Source) FetchReviews(ctx context.Context) (domain.FetchResult, error) {
	if err := s.wait(ctx); err != nil {
		return domain.FetchResult{Status: "error"}, err
	}
	return domain.FetchResult{Status: domain.FetchOK, Result: domain.CloneReviews(seedReviews)}, nil
}

func (s *Source) GetAllProperties(ctx context.Context) ([]domain.Property, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Property, len(seedProperties))
	for i, p := range seedProperties {
		p.Reviews = domain.CloneReviews(p.Reviews)
		out[i] = p
	}
	return out, nil
}

func (s *Source) GetPropertyByID(ctx context.Context, id string) (*domain.Property, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	for _, p := range seedProperties {
		if p.ID == id {
			p.Reviews = domain.CloneReviews(p.Reviews)
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Source) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
