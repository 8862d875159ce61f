package tracker

import (
	"context"
	"fmt"

	"github.com/starford/tubetrack/internal/filter"
	"github.com/starford/tubetrack/internal/models"
	"github.com/starford/tubetrack/internal/progress"
)

// PlaylistQuery filters the playlist list.
type PlaylistQuery struct {
	Query    string
	Category string
}

// PlaylistItem is a playlist with its completion block.
type PlaylistItem struct {
	models.Playlist
	Progress progress.Summary `json:"progress"`
}

// PlaylistDetail is a playlist together with its videos.
type PlaylistDetail struct {
	PlaylistItem
	Videos []VideoItem `json:"videos"`
}

// PlaylistList is the playlists page: matching items plus the category
// choices for the filter control.
type PlaylistList struct {
	Playlists  []PlaylistItem `json:"playlists"`
	Categories []string       `json:"categories"`
}

func playlistText(p models.Playlist) []string {
	return []string{p.Title, p.Description}
}

func newPlaylistItem(p models.Playlist) PlaylistItem {
	return PlaylistItem{Playlist: p, Progress: progress.Summarize(p.CompletedCount, p.VideosCount)}
}

// ListPlaylists returns the playlists matching q.
func (s *Service) ListPlaylists(_ context.Context, q PlaylistQuery) PlaylistList {
	all := s.playlists.All()
	matched := filter.Apply(all, q.Query, playlistText,
		filter.Eq(q.Category, func(p models.Playlist) string { return p.Category }),
	)
	items := make([]PlaylistItem, len(matched))
	for i, p := range matched {
		items[i] = newPlaylistItem(p)
	}
	return PlaylistList{Playlists: items, Categories: categories(all)}
}

// categories returns "all" followed by each distinct category in first-seen order.
func categories(playlists []models.Playlist) []string {
	out := []string{filter.All}
	seen := make(map[string]bool)
	for _, p := range playlists {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// GetPlaylist returns the playlist with id and its videos in order.
func (s *Service) GetPlaylist(_ context.Context, id int64) (*PlaylistDetail, error) {
	p, err := s.playlists.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get playlist: %w", err)
	}
	videos := s.playlistVideos(id)
	items := make([]VideoItem, len(videos))
	for i, v := range videos {
		items[i] = newVideoItem(v)
	}
	return &PlaylistDetail{PlaylistItem: newPlaylistItem(p), Videos: items}, nil
}

func (s *Service) playlistVideos(playlistID int64) []models.Video {
	var out []models.Video
	for _, v := range s.videos.All() {
		if v.PlaylistID == playlistID {
			out = append(out, v)
		}
	}
	return out
}

// adjustCompleted moves a playlist's completed count by delta, keeping it
// within [0, videosCount]. A missing playlist is ignored.
func (s *Service) adjustCompleted(playlistID int64, delta int) {
	_, _ = s.playlists.Update(playlistID, func(p models.Playlist) (models.Playlist, error) {
		p.CompletedCount = min(max(p.CompletedCount+delta, 0), p.VideosCount)
		return p, nil
	})
}

func (s *Service) playlistTitle(id int64) string {
	p, err := s.playlists.Get(id)
	if err != nil {
		return ""
	}
	return p.Title
}
