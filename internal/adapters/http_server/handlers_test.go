package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flex_reviews/internal/adapters/google"
	"flex_reviews/internal/adapters/hostaway"
	httpserver "flex_reviews/internal/adapters/http_server"
	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
	"flex_reviews/internal/store"
)

type nopCache struct{}

func (nopCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (nopCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	return nil
}
func (nopCache) Del(ctx context.Context, key string) error { return nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	src := hostaway.New(0)
	props, err := src.GetAllProperties(context.Background())
	if err != nil {
		t.Fatalf("seed properties: %v", err)
	}
	st := store.NewMemory(props)

	q := app.NewQueryService(src, st, nopCache{}, time.Minute)
	s := app.NewSyncService(st, google.New("", "", 1), nil, nopCache{})

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Q: q, S: s})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, dst any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestListHostawayReviews_FilterByRating(t *testing.T) {
	ts := newTestServer(t)

	var out struct {
		Status string `json:"status"`
		Data   struct {
			Reviews []domain.Review `json:"reviews"`
			Total   int             `json:"total"`
		} `json:"data"`
	}
	resp := getJSON(t, ts.URL+"/v1/reviews/hostaway?rating=9", &out)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if out.Status != "success" || out.Data.Total == 0 {
		t.Fatalf("expected success envelope with rating-9 reviews: %+v", out)
	}
	for _, rv := range out.Data.Reviews {
		if rv.Rating == nil || *rv.Rating != 9 {
			t.Fatalf("filter leaked review: %+v", rv)
		}
	}
}

func TestListHostawayReviews_UnparseableRatingIgnored(t *testing.T) {
	ts := newTestServer(t)

	var out struct {
		Status string `json:"status"`
		Data   struct {
			Total int `json:"total"`
		} `json:"data"`
	}
	resp := getJSON(t, ts.URL+"/v1/reviews/hostaway?rating=nine", &out)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if out.Status != "success" || out.Data.Total != 8 {
		t.Fatalf("garbage rating must act as no filter: %+v", out)
	}
}

func TestGetProperty_ETagRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	resp := getJSON(t, ts.URL+"/v1/properties/shoreditch-heights", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}

	req, _ := http.NewRequest("GET", ts.URL+"/v1/properties/shoreditch-heights", nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", resp2.StatusCode)
	}
}

func TestGetProperty_NotFound(t *testing.T) {
	ts := newTestServer(t)
	resp := getJSON(t, ts.URL+"/v1/properties/no-such-unit", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status: %d", resp.StatusCode)
	}
}

func TestModerateThenPublicView(t *testing.T) {
	ts := newTestServer(t)

	// Review 7455 is approved but not public in the seed data.
	body := strings.NewReader(`{"reviewId":7455,"action":"publish"}`)
	resp, err := http.Post(ts.URL+"/v1/reviews/hostaway", "application/json", body)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	var rep struct {
		Data struct {
			Applied bool `json:"applied"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !rep.Data.Applied {
		t.Fatalf("publish not applied")
	}

	var pub struct {
		Reviews []domain.Review `json:"reviews"`
	}
	getJSON(t, ts.URL+"/v1/properties/shoreditch-heights/reviews?public=1", &pub)
	found := false
	for _, rv := range pub.Reviews {
		if rv.ID == 7455 {
			found = true
		}
		if rv.IsApproved == nil || !*rv.IsApproved || rv.IsPublic == nil || !*rv.IsPublic {
			t.Fatalf("public view leaked review: %+v", rv)
		}
	}
	if !found {
		t.Fatalf("approved review missing from public view")
	}
}

func TestModerate_UnknownActionIsNoOp(t *testing.T) {
	ts := newTestServer(t)
	body := strings.NewReader(`{"reviewId":7453,"action":"escalate"}`)
	resp, err := http.Post(ts.URL+"/v1/reviews/hostaway", "application/json", body)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	var rep struct {
		Data struct {
			Applied bool `json:"applied"`
		} `json:"data"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&rep)
	if rep.Data.Applied {
		t.Fatalf("unknown action must not apply")
	}
}

func TestSyncGoogle_UnconfiguredUsesMock(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/properties/shoreditch-heights/sync/google", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	var rep struct {
		Added      int    `json:"added"`
		Total      int    `json:"total"`
		Source     string `json:"source"`
		Configured bool   `json:"configured"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.Source != "mock" || rep.Configured {
		t.Fatalf("expected mock fallback: %+v", rep)
	}
	if rep.Added == 0 || rep.Total != 8+rep.Added {
		t.Fatalf("merge report: %+v", rep)
	}
}

func TestFetchGoogle_RequiresPlaceID(t *testing.T) {
	ts := newTestServer(t)
	resp := getJSON(t, ts.URL+"/v1/reviews/google", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status: %d", resp.StatusCode)
	}
}

func TestCheckGoogleConfig(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/v1/reviews/google", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	var cs struct {
		APIConfigured    bool `json:"apiConfigured"`
		ServiceAvailable bool `json:"serviceAvailable"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&cs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cs.APIConfigured || !cs.ServiceAvailable {
		t.Fatalf("config status: %+v", cs)
	}
}
