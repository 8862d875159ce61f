package api

import (
	"net/http"

	"github.com/starford/tubetrack/internal/tracker"
)

// ListPlaylists handles GET /api/playlists.
func (h *Handler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.svc.ListPlaylists(r.Context(), tracker.PlaylistQuery{
		Query:    q.Get("q"),
		Category: q.Get("category"),
	}))
}

// GetPlaylist handles GET /api/playlists/{id}.
func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	p, err := h.svc.GetPlaylist(r.Context(), id)
	if err != nil {
		writeError(w, "get playlist", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
