package store

import (
	"sync"

	"flex_reviews/internal/domain"
	"flex_reviews/internal/reviews"
)

// Memory holds the working set of properties and their merged review
// collections. Reviews are normalized on the way in and deep-copied on
// the way out, so every request works on its own snapshot.
type Memory struct {
	mu    sync.RWMutex
	props []domain.Property
}

func NewMemory(props []domain.Property) *Memory {
	m := &Memory{props: make([]domain.Property, len(props))}
	for i, p := range props {
		p.Reviews = reviews.Normalize(p.Reviews)
		p.ReviewStats = reviews.Stats(p.Reviews)
		m.props[i] = p
	}
	return m
}

func (m *Memory) Properties() []domain.Property {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Property, len(m.props))
	for i, p := range m.props {
		p.Reviews = domain.CloneReviews(p.Reviews)
		out[i] = p
	}
	return out
}

func (m *Memory) Property(id string) (domain.Property, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.props {
		if p.ID == id {
			p.Reviews = domain.CloneReviews(p.Reviews)
			return p, true
		}
	}
	return domain.Property{}, false
}

func (m *Memory) Reviews(id string) ([]domain.Review, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.props {
		if p.ID == id {
			return domain.CloneReviews(p.Reviews), true
		}
	}
	return nil, false
}

// SetReviews replaces a property's collection and refreshes its stats
// snapshot. Reports whether the property exists.
func (m *Memory) SetReviews(id string, rs []domain.Review) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.props {
		if m.props[i].ID == id {
			m.props[i].Reviews = domain.CloneReviews(rs)
			m.props[i].ReviewStats = reviews.Stats(m.props[i].Reviews)
			return true
		}
	}
	return false
}

// Moderate applies one action to the review with the given ID wherever
// it lives. Returns the owning property's ID and whether the review
// was found.
func (m *Memory) Moderate(reviewID int64, action string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.props {
		for _, rv := range m.props[i].Reviews {
			if rv.ID != reviewID {
				continue
			}
			m.props[i].Reviews = reviews.ApplyAction(m.props[i].Reviews, reviewID, action)
			m.props[i].ReviewStats = reviews.Stats(m.props[i].Reviews)
			return m.props[i].ID, true
		}
	}
	return "", false
}
