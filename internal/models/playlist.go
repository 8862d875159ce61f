// Package models defines the domain types for tubetrack.
package models

import "time"

// Playlist difficulties.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Playlist is an ordered collection of videos tracked for learning progress.
type Playlist struct {
	ID             int64  `json:"id" yaml:"id"`
	Title          string `json:"title" yaml:"title"`
	Description    string `json:"description" yaml:"description"`
	Author         string `json:"author" yaml:"author"`
	Category       string `json:"category" yaml:"category"`
	Difficulty     string `json:"difficulty" yaml:"difficulty"`
	VideosCount    int    `json:"videosCount" yaml:"videos_count"`
	CompletedCount int    `json:"completedCount" yaml:"completed_count"`
	TotalDuration  string `json:"totalDuration" yaml:"total_duration"`
	Thumbnail      string `json:"thumbnail,omitempty" yaml:"thumbnail"`
	CreatedAt      string `json:"createdAt" yaml:"created_at"`
	LastWatched    string `json:"lastWatched,omitempty" yaml:"last_watched"`
}

// Video is a single lesson inside a playlist.
//
// Completed and WatchProgress are kept consistent: a completed video has
// progress 100 and a video with progress 0 is never completed.
type Video struct {
	ID            int64      `json:"id" yaml:"id"`
	PlaylistID    int64      `json:"playlistId" yaml:"playlist_id"`
	Title         string     `json:"title" yaml:"title"`
	Description   string     `json:"description,omitempty" yaml:"description"`
	Duration      string     `json:"duration" yaml:"duration"`
	WatchProgress int        `json:"watchProgress" yaml:"watch_progress"`
	Completed     bool       `json:"completed" yaml:"completed"`
	Tags          []string   `json:"tags" yaml:"tags"`
	Notes         string     `json:"notes" yaml:"notes"`
	Bookmarked    bool       `json:"isBookmarked" yaml:"bookmarked"`
	PublishedAt   string     `json:"publishedAt,omitempty" yaml:"published_at"`
	LastWatchedAt *time.Time `json:"lastWatchedAt,omitempty" yaml:"last_watched_at"`
}

// WithProgress returns a copy of v whose progress is p clamped to [0,100],
// with the completed flag following it.
func (v Video) WithProgress(p int) Video {
	switch {
	case p <= 0:
		v.WatchProgress = 0
		v.Completed = false
	case p >= 100:
		v.WatchProgress = 100
		v.Completed = true
	default:
		v.WatchProgress = p
		v.Completed = false
	}
	return v
}
