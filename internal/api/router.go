package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/starford/tubetrack/internal/tracker"
)

// RouterConfig holds the cross-cutting settings of the API router.
type RouterConfig struct {
	AuthEnabled bool
	Token       string
	// Events, if non-nil, is mounted at GET /events inside the auth group.
	Events http.Handler
	// Limiter, if non-nil, throttles mutating requests.
	Limiter *rate.Limiter
}

// NewRouter creates a chi router with all API routes mounted.
func NewRouter(svc *tracker.Service, cfg RouterConfig) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(cfg.AuthEnabled, cfg.Token))
	r.Use(RateLimitMiddleware(cfg.Limiter))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method not allowed"))
	})

	r.Get("/dashboard", h.Dashboard)

	// Sign-in and sign-up have no backend.
	r.HandleFunc("/auth/*", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotImplemented, errorBody("authentication is not available"))
	})

	r.Route("/playlists", func(r chi.Router) {
		r.Get("/", h.ListPlaylists)
		r.Get("/{id}", h.GetPlaylist)
	})

	r.Route("/videos/{id}", func(r chi.Router) {
		r.Get("/", h.GetVideo)
		r.Put("/progress", h.SetWatchProgress)
		r.Post("/complete", h.MarkComplete)
		r.Put("/notes", h.SaveNotes)
		r.Post("/bookmark", h.ToggleVideoBookmark)
	})

	r.Get("/progress", h.ProgressOverview)

	r.Route("/goals", func(r chi.Router) {
		r.Get("/", h.ListGoals)
		r.Post("/", h.CreateGoal)
		r.Get("/stats", h.GoalStats)
		r.Get("/{id}", h.GetGoal)
		r.Patch("/{id}", h.UpdateGoalProgress)
		r.Delete("/{id}", h.DeleteGoal)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Get("/", h.GetProfile)
		r.Put("/", h.UpdateProfile)
		r.Post("/password", h.ChangePassword)
		r.Post("/preferences/{name}/toggle", h.TogglePreference)
		r.Post("/youtube", h.ConnectYouTube)
		r.Delete("/youtube", h.DisconnectYouTube)
	})

	r.Route("/summaries", func(r chi.Router) {
		r.Get("/", h.ListSummaries)
		r.Get("/{id}", h.GetSummary)
		r.Post("/{id}/bookmark", h.ToggleSummaryBookmark)
		r.Delete("/{id}", h.DeleteSummary)
	})

	if cfg.Events != nil {
		r.Get("/events", cfg.Events.ServeHTTP)
	}

	return r
}
