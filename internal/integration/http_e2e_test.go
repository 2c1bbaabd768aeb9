//go:build integration || !unit

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"flex_reviews/internal/adapters/google"
	"flex_reviews/internal/adapters/hostaway"
	server "flex_reviews/internal/adapters/http_server"
	redisad "flex_reviews/internal/adapters/redis"
	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
	"flex_reviews/internal/store"
)

// Wires the whole stack the way cmd/api does, with a miniredis cache
// and the mock Google channel, then walks a dashboard session through
// it: browse, sync, moderate, check the public view.
func newStack(t *testing.T) *httptest.Server {
	t.Helper()

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)

	src := hostaway.New(0)
	props, err := src.GetAllProperties(context.Background())
	if err != nil {
		t.Fatalf("load properties: %v", err)
	}
	st := store.NewMemory(props)

	q := app.NewQueryService(src, st, cache, time.Minute)
	s := app.NewSyncService(st, google.New("", "", 5), nil, cache)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{Q: q, S: s})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func getInto(t *testing.T, url string, dst any) int {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer res.Body.Close()
	if dst != nil {
		if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return res.StatusCode
}

func postInto(t *testing.T, url, body string, dst any) int {
	t.Helper()
	res, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer res.Body.Close()
	if dst != nil {
		if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return res.StatusCode
}

func TestHTTP_EndToEnd_DashboardSession(t *testing.T) {
	ts := newStack(t)

	// Browse the dashboard.
	var props struct {
		Total   int `json:"total"`
		Summary struct {
			TotalReviews    int `json:"totalReviews"`
			ApprovedReviews int `json:"approvedReviews"`
		} `json:"summary"`
	}
	if code := getInto(t, ts.URL+"/v1/properties", &props); code != http.StatusOK {
		t.Fatalf("list properties: %d", code)
	}
	if props.Total != 3 || props.Summary.TotalReviews == 0 {
		t.Fatalf("unexpected portfolio: %+v", props)
	}

	// Baseline stats for one property.
	var before domain.ReviewStats
	if code := getInto(t, ts.URL+"/v1/properties/shoreditch-heights/stats", &before); code != http.StatusOK {
		t.Fatalf("stats: %d", code)
	}

	// Pull the Google channel; the key is unset so the mock set merges in.
	var sync struct {
		Added  int    `json:"added"`
		Total  int    `json:"total"`
		Source string `json:"source"`
	}
	if code := postInto(t, ts.URL+"/v1/properties/shoreditch-heights/sync/google", "", &sync); code != http.StatusOK {
		t.Fatalf("sync: %d", code)
	}
	if sync.Source != "mock" || sync.Added == 0 {
		t.Fatalf("sync report: %+v", sync)
	}

	var after domain.ReviewStats
	getInto(t, ts.URL+"/v1/properties/shoreditch-heights/stats", &after)
	if after.TotalReviews != before.TotalReviews+sync.Added {
		t.Fatalf("stats not refreshed: before=%d after=%d added=%d",
			before.TotalReviews, after.TotalReviews, sync.Added)
	}
	if after.ChannelBreakdown[domain.ChannelGoogle] != sync.Added {
		t.Fatalf("channel breakdown: %+v", after.ChannelBreakdown)
	}

	// Hide a seeded public review.
	var mod struct {
		Data struct {
			Applied bool `json:"applied"`
		} `json:"data"`
	}
	postInto(t, ts.URL+"/v1/reviews/hostaway", `{"reviewId":7453,"action":"unpublish"}`, &mod)
	if !mod.Data.Applied {
		t.Fatalf("unpublish not applied")
	}

	var pub struct {
		Reviews []domain.Review `json:"reviews"`
	}
	getInto(t, ts.URL+"/v1/properties/shoreditch-heights/reviews?public=1", &pub)
	for _, rv := range pub.Reviews {
		if rv.ID == 7453 {
			t.Fatalf("unpublished review still on the public page")
		}
	}

	// The cached property snapshot was invalidated by the writes.
	var prop domain.Property
	if code := getInto(t, ts.URL+"/v1/properties/shoreditch-heights", &prop); code != http.StatusOK {
		t.Fatalf("property: %d", code)
	}
	if prop.ReviewStats.TotalReviews != after.TotalReviews {
		t.Fatalf("property snapshot stale: %d vs %d", prop.ReviewStats.TotalReviews, after.TotalReviews)
	}
}

func TestHTTP_EndToEnd_HostawayFeed(t *testing.T) {
	ts := newStack(t)

	var out struct {
		Status string `json:"status"`
		Data   struct {
			Reviews []domain.Review `json:"reviews"`
			Total   int             `json:"total"`
		} `json:"data"`
	}
	if code := getInto(t, ts.URL+"/v1/reviews/hostaway?channel=hostaway&search=shoreditch", &out); code != http.StatusOK {
		t.Fatalf("feed: %d", code)
	}
	if out.Status != "success" || out.Data.Total == 0 {
		t.Fatalf("expected search hits for shoreditch: %+v", out)
	}
	for _, rv := range out.Data.Reviews {
		if rv.Channel != domain.ChannelHostaway {
			t.Fatalf("channel filter leaked: %+v", rv)
		}
	}
}
