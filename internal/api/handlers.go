package api

import (
	"net/http"

	"github.com/starford/tubetrack/internal/tracker"
)

// Handler holds API route handlers.
type Handler struct {
	svc *tracker.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *tracker.Service) *Handler {
	return &Handler{svc: svc}
}

// Dashboard handles GET /api/dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		writeError(w, "dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// ProgressOverview handles GET /api/progress.
func (h *Handler) ProgressOverview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.svc.ProgressOverview(r.Context(), tracker.ProgressQuery{
		Query:  q.Get("q"),
		Status: q.Get("status"),
	}))
}
