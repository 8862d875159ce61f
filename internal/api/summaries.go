package api

import (
	"net/http"
	"strconv"

	"github.com/starford/tubetrack/internal/tracker"
)

// ListSummaries handles GET /api/summaries.
func (h *Handler) ListSummaries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bookmarked, _ := strconv.ParseBool(q.Get("bookmarked"))
	writeJSON(w, http.StatusOK, SummaryListResponse{
		Summaries: h.svc.ListSummaries(r.Context(), tracker.SummaryQuery{
			Query:          q.Get("q"),
			BookmarkedOnly: bookmarked,
		}),
	})
}

// GetSummary handles GET /api/summaries/{id}.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	s, err := h.svc.GetSummary(r.Context(), id)
	if err != nil {
		writeError(w, "get summary", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// ToggleSummaryBookmark handles POST /api/summaries/{id}/bookmark.
func (h *Handler) ToggleSummaryBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	s, err := h.svc.ToggleSummaryBookmark(r.Context(), id)
	if err != nil {
		writeError(w, "toggle summary bookmark", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// DeleteSummary handles DELETE /api/summaries/{id}.
func (h *Handler) DeleteSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteSummary(r.Context(), id); err != nil {
		writeError(w, "delete summary", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
