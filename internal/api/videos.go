package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// GetVideo handles GET /api/videos/{id}.
func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	v, err := h.svc.GetVideo(r.Context(), id)
	if err != nil {
		writeError(w, "get video", err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// SetWatchProgress handles PUT /api/videos/{id}/progress.
func (h *Handler) SetWatchProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req ProgressRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.WatchProgress == nil {
		writeJSON(w, http.StatusBadRequest, errResponse{
			Error:  "invalid input",
			Fields: map[string]string{"watchProgress": validation.ErrRequired.Error()},
		})
		return
	}
	v, err := h.svc.SetWatchProgress(r.Context(), id, *req.WatchProgress)
	if err != nil {
		writeError(w, "set watch progress", err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// MarkComplete handles POST /api/videos/{id}/complete.
func (h *Handler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	v, err := h.svc.MarkComplete(r.Context(), id)
	if err != nil {
		writeError(w, "mark complete", err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// SaveNotes handles PUT /api/videos/{id}/notes.
func (h *Handler) SaveNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req NotesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, err := h.svc.SaveNotes(r.Context(), id, req.Notes)
	if err != nil {
		writeError(w, "save notes", err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// ToggleVideoBookmark handles POST /api/videos/{id}/bookmark.
func (h *Handler) ToggleVideoBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	v, err := h.svc.ToggleVideoBookmark(r.Context(), id)
	if err != nil {
		writeError(w, "toggle video bookmark", err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}
