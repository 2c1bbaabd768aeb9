package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"flex_reviews/internal/adapters/observability"
	"flex_reviews/internal/domain"
	"flex_reviews/internal/reviews"
	"flex_reviews/internal/store"
)

// PlacesClient is the Google channel adapter as consumed here. The
// allocator is request-owned; the adapter only draws IDs from it.
type PlacesClient interface {
	Configured() bool
	GetReviews(ctx context.Context, placeID, propertyName string, alloc *reviews.Allocator) domain.ChannelFetch
}

// SyncService owns the write paths: channel sync into the stored
// collections and moderation. Persistence is optimistic; repo may be
// nil when no database is configured.
type SyncService struct {
	store  *store.Memory
	places PlacesClient
	repo   domain.ReviewRepository
	cache  domain.Cache

	mu       sync.Mutex
	lastSync map[string]time.Time
}

func NewSyncService(st *store.Memory, places PlacesClient, repo domain.ReviewRepository, cache domain.Cache) *SyncService {
	return &SyncService{store: st, places: places, repo: repo, cache: cache, lastSync: map[string]time.Time{}}
}

type SyncReport struct {
	Added      int    `json:"added"`
	Total      int    `json:"total"`
	Source     string `json:"source"`
	Configured bool   `json:"configured"`
	Message    string `json:"message"`
	SyncedAt   string `json:"syncedAt"`
}

// LastSync reports when the property's Google channel was last pulled
// in this process, zero time if never.
func (s *SyncService) LastSync(propertyID string) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSync[propertyID]
}

// SyncGoogle fetches the property's Google reviews and merges the new
// ones into its stored collection. Identity is the review ID: the
// merge admits a candidate only when its ID is unseen on its channel,
// and reassigns IDs that clash across channels.
func (s *SyncService) SyncGoogle(ctx context.Context, propertyID string) (SyncReport, error) {
	prop, ok := s.store.Property(propertyID)
	if !ok {
		return SyncReport{}, domain.ErrNotFound
	}

	alloc := reviews.NewAllocator(reviews.MaxID(prop.Reviews) + 1)
	fetch := s.places.GetReviews(ctx, prop.PlaceID, prop.Name, alloc)

	now := time.Now().UTC()
	s.mu.Lock()
	s.lastSync[propertyID] = now
	s.mu.Unlock()

	merged := reviews.MergeUnique(prop.Reviews, fetch.Reviews, alloc)
	added := len(merged) - len(prop.Reviews)
	rep := SyncReport{
		Added:      added,
		Total:      len(merged),
		Source:     fetch.Source,
		Configured: fetch.Configured,
		SyncedAt:   now.Format(time.RFC3339),
	}
	if added == 0 {
		rep.Message = "no new reviews found"
		return rep, nil
	}

	s.store.SetReviews(propertyID, merged)
	if s.repo != nil {
		if err := s.repo.UpsertReviews(ctx, propertyID, merged); err != nil {
			log.Warn().Err(err).Str("property", propertyID).Msg("persist merged reviews failed")
		}
	}
	_ = s.cache.Del(ctx, propertyCacheKey(propertyID))

	plural := ""
	if added != 1 {
		plural = "s"
	}
	rep.Message = fmt.Sprintf("fetched %d new google review%s", added, plural)
	return rep, nil
}

// FetchGoogle is the raw channel fetch used by the dashboard's Google
// integration panel; it does not touch any stored collection.
func (s *SyncService) FetchGoogle(ctx context.Context, placeID, propertyName string) domain.ChannelFetch {
	return s.places.GetReviews(ctx, placeID, propertyName, reviews.NewAllocator(1))
}

type ModerationReport struct {
	ReviewID int64  `json:"reviewId"`
	Action   string `json:"action"`
	Applied  bool   `json:"applied"`
	Message  string `json:"message,omitempty"`
}

// Moderate applies one action to the identified review. Unknown
// actions and unknown IDs are advisory no-ops, never errors. The local
// update proceeds regardless of the persistence round-trip.
func (s *SyncService) Moderate(ctx context.Context, reviewID int64, action string) ModerationReport {
	rep := ModerationReport{ReviewID: reviewID, Action: action}
	if !reviews.KnownAction(action) {
		rep.Message = "unknown action ignored"
		return rep
	}
	propID, found := s.store.Moderate(reviewID, action)
	if !found {
		rep.Message = "review not found"
		return rep
	}
	rep.Applied = true
	observability.ObserveModeration(action)

	if s.repo != nil {
		if err := s.repo.RecordAction(ctx, propID, reviewID, action); err != nil {
			log.Warn().Err(err).Str("property", propID).Int64("review", reviewID).Str("action", action).Msg("persist moderation failed")
		}
	}
	_ = s.cache.Del(ctx, propertyCacheKey(propID))
	return rep
}

type ConfigStatus struct {
	APIConfigured    bool   `json:"apiConfigured"`
	ServiceAvailable bool   `json:"serviceAvailable"`
	Timestamp        string `json:"timestamp"`
}

func (s *SyncService) CheckConfig() ConfigStatus {
	return ConfigStatus{
		APIConfigured:    s.places.Configured(),
		ServiceAvailable: true,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	}
}
