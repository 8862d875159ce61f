package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetProfile handles GET /api/profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.GetProfile(r.Context()))
}

// UpdateProfile handles PUT /api/profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.svc.UpdateProfile(r.Context(), req)
	if err != nil {
		writeError(w, "update profile", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ChangePassword handles POST /api/profile/password.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.ChangePassword(r.Context(), req); err != nil {
		writeError(w, "change password", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TogglePreference handles POST /api/profile/preferences/{name}/toggle.
func (h *Handler) TogglePreference(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.TogglePreference(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, "toggle preference", err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// ConnectYouTube handles POST /api/profile/youtube.
func (h *Handler) ConnectYouTube(w http.ResponseWriter, r *http.Request) {
	var req YouTubeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	acc, err := h.svc.ConnectYouTube(r.Context(), req.Email)
	if err != nil {
		writeError(w, "connect youtube", err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

// DisconnectYouTube handles DELETE /api/profile/youtube.
func (h *Handler) DisconnectYouTube(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.DisconnectYouTube(r.Context()))
}
