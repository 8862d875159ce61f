package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/tubetrack/internal/tracker"
)

// ListGoals handles GET /api/goals.
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()
	writeJSON(w, http.StatusOK, GoalListResponse{
		Goals: h.svc.ListGoals(ctx, tracker.GoalQuery{
			Query:    q.Get("q"),
			Type:     q.Get("type"),
			Priority: q.Get("priority"),
		}),
		Stats: h.svc.GoalStats(ctx),
	})
}

// GoalStats handles GET /api/goals/stats.
func (h *Handler) GoalStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.GoalStats(r.Context()))
}

// GetGoal handles GET /api/goals/{id}.
func (h *Handler) GetGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	g, err := h.svc.GetGoal(r.Context(), id)
	if err != nil {
		writeError(w, "get goal", err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// CreateGoal handles POST /api/goals.
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req CreateGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	g, err := h.svc.CreateGoal(r.Context(), req)
	if err != nil {
		writeError(w, "create goal", err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

// UpdateGoalProgress handles PATCH /api/goals/{id}.
func (h *Handler) UpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req GoalProgressRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Current == nil {
		writeJSON(w, http.StatusBadRequest, errResponse{
			Error:  "invalid input",
			Fields: map[string]string{"current": validation.ErrRequired.Error()},
		})
		return
	}
	g, err := h.svc.UpdateGoalProgress(r.Context(), id, *req.Current)
	if err != nil {
		writeError(w, "update goal", err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// DeleteGoal handles DELETE /api/goals/{id}.
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteGoal(r.Context(), id); err != nil {
		writeError(w, "delete goal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
