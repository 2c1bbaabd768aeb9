package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// FetchResult is a channel source's reply. A non-"success" status
// signals a degraded source without an error.
type FetchResult struct {
	Status string   `json:"status"`
	Result []Review `json:"result"`
}

const FetchOK = "success"

// ReviewSource is the property-management review feed.
type ReviewSource interface {
	FetchReviews(ctx context.Context) (FetchResult, error)
}

// PropertySource serves the property reference data.
type PropertySource interface {
	GetAllProperties(ctx context.Context) ([]Property, error)
	GetPropertyByID(ctx context.Context, id string) (*Property, error)
}

// ChannelFetch is a channel adapter's result. Adapters never fail
// hard: on any upstream problem Reviews holds the fallback set and
// Source reports where the data actually came from.
type ChannelFetch struct {
	Reviews    []Review
	Source     string // "google" | "mock"
	Configured bool
}

// ReviewRepository persists merged collections and moderation
// decisions. Writes are optimistic; the in-memory dataset stays the
// system of record for reads. Review IDs are unique only within one
// property's collection, so every operation is property-scoped.
type ReviewRepository interface {
	UpsertReviews(ctx context.Context, propertyID string, rs []Review) error
	RecordAction(ctx context.Context, propertyID string, reviewID int64, action string) error
	ListReviews(ctx context.Context, propertyID string) ([]Review, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
