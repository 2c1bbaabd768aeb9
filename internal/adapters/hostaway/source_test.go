package hostaway_test

import (
	"context"
	"testing"
	"time"

	"flex_reviews/internal/adapters/hostaway"
	"flex_reviews/internal/domain"
)

func TestFetchReviews_ReturnsDataset(t *testing.T) {
	src := hostaway.New(0)
	out, err := src.FetchReviews(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out.Status != domain.FetchOK {
		t.Fatalf("status: %q", out.Status)
	}
	if len(out.Result) != 8 {
		t.Fatalf("expected 8 reviews, got %d", len(out.Result))
	}
	ids := map[int64]bool{}
	for _, rv := range out.Result {
		if ids[rv.ID] {
			t.Fatalf("duplicate id %d", rv.ID)
		}
		ids[rv.ID] = true
	}
}

func TestFetchReviews_CallersGetIndependentCopies(t *testing.T) {
	src := hostaway.New(0)
	a, _ := src.FetchReviews(context.Background())
	a.Result[0].GuestName = "mutated"
	*a.Result[0].Rating = 1

	b, _ := src.FetchReviews(context.Background())
	if b.Result[0].GuestName == "mutated" || *b.Result[0].Rating == 1 {
		t.Fatalf("dataset leaked shared state between fetches")
	}
}

func TestFetchReviews_HonorsContext(t *testing.T) {
	src := hostaway.New(500 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := src.FetchReviews(ctx); err == nil {
		t.Fatalf("expected context deadline error")
	}
}

func TestGetPropertyByID(t *testing.T) {
	src := hostaway.New(0)
	p, err := src.GetPropertyByID(context.Background(), "canary-wharf-luxury")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(p.Reviews) != 8 {
		t.Fatalf("expected 8 reviews, got %d", len(p.Reviews))
	}

	if _, err := src.GetPropertyByID(context.Background(), "no-such-unit"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAllProperties(t *testing.T) {
	src := hostaway.New(0)
	props, err := src.GetAllProperties(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(props) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(props))
	}
}
