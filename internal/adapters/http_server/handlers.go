package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	S *app.SyncService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// envelope is the dashboard's success wrapper on the review routes.
type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/reviews/hostaway", h.listHostawayReviews)
	s.mux.Post("/v1/reviews/hostaway", h.moderateReview)
	s.mux.Get("/v1/reviews/google", h.fetchGoogleReviews)
	s.mux.Post("/v1/reviews/google", h.checkGoogleConfig)

	s.mux.Get("/v1/properties", h.listProperties)
	s.mux.Get("/v1/properties/{id}", h.getProperty)
	s.mux.Get("/v1/properties/{id}/reviews", h.listPropertyReviews)
	s.mux.Get("/v1/properties/{id}/stats", h.getPropertyStats)
	s.mux.Post("/v1/properties/{id}/sync/google", h.syncGoogle)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// buildFilterOptions reads the dashboard's filter query parameters.
// Malformed values count as absent filters, never as errors.
func buildFilterOptions(r *http.Request) domain.FilterOptions {
	q := r.URL.Query()
	f := domain.FilterOptions{
		Category: q.Get("category"),
		Channel:  q.Get("channel"),
		Status:   q.Get("status"),
		Search:   q.Get("search"),
	}
	if rs := q.Get("rating"); rs != "" {
		if n, err := strconv.Atoi(rs); err == nil {
			f.Rating = &n
		}
	}
	f.DateRange = domain.DateRange{Start: q.Get("startDate"), End: q.Get("endDate")}
	return f
}

func (h *Handlers) listHostawayReviews(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.HostawayReviews(r.Context(), buildFilterOptions(r))
	if err != nil {
		if errors.Is(err, app.ErrSourceUnavailable) {
			writeProblem(w, http.StatusBadGateway, "Source Unavailable", "review source unavailable")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	writeJSON(w, http.StatusOK, envelope{Status: "success", Data: out})
}

type moderateRequest struct {
	ReviewID int64  `json:"reviewId"`
	Action   string `json:"action"`
}

func (h *Handlers) moderateReview(w http.ResponseWriter, r *http.Request) {
	var req moderateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected JSON with reviewId and action")
		return
	}
	if req.ReviewID == 0 || req.Action == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "reviewId and action are required")
		return
	}
	rep := h.S.Moderate(r.Context(), req.ReviewID, req.Action)
	writeJSON(w, http.StatusOK, envelope{Status: "success", Data: rep})
}

func (h *Handlers) fetchGoogleReviews(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("placeId")
	if placeID == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "placeId is required")
		return
	}
	name := r.URL.Query().Get("propertyName")
	out := h.S.FetchGoogle(r.Context(), placeID, name)
	writeJSON(w, http.StatusOK, map[string]any{
		"reviews":    out.Reviews,
		"total":      len(out.Reviews),
		"source":     out.Source,
		"configured": out.Configured,
	})
}

func (h *Handlers) checkGoogleConfig(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action string `json:"action"`
	}
	// An empty body means check-config; anything else must say so.
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Action != "" && req.Action != "check-config" {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "unsupported action")
		return
	}
	writeJSON(w, http.StatusOK, h.S.CheckConfig())
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Q.Properties(r.Context()))
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Q.Property(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
		return
	}

	etag, body := calcETagAndBody(p)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getProperty body")
	}
}

func (h *Handlers) listPropertyReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	publicOnly := r.URL.Query().Get("public") == "1" || r.URL.Query().Get("public") == "true"
	rs, err := h.Q.PropertyReviews(r.Context(), id, publicOnly)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": rs, "total": len(rs)})
}

func (h *Handlers) getPropertyStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	st, err := h.Q.PropertyStats(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handlers) syncGoogle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rep, err := h.S.SyncGoogle(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
		return
	}
	writeJSON(w, http.StatusOK, rep)
}
