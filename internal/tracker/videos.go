package tracker

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/tubetrack/internal/models"
)

// Video statuses derived from watch progress.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
	StatusNotStarted = "not-started"
)

// VideoStatus classifies a watch progress value.
func VideoStatus(watchProgress int) string {
	switch {
	case watchProgress >= 100:
		return StatusCompleted
	case watchProgress > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// VideoItem is a video with its derived status.
type VideoItem struct {
	models.Video
	Status string `json:"status"`
}

func newVideoItem(v models.Video) VideoItem {
	return VideoItem{Video: v, Status: VideoStatus(v.WatchProgress)}
}

// PlaylistRef places a video inside its playlist.
type PlaylistRef struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	CurrentIndex int    `json:"currentIndex"`
	TotalVideos  int    `json:"totalVideos"`
}

// VideoDetail is the video page: the video, where it sits in its playlist,
// its neighbours and the AI summary if one exists.
type VideoDetail struct {
	VideoItem
	Playlist PlaylistRef     `json:"playlist"`
	Related  []VideoItem     `json:"relatedVideos"`
	Summary  *models.Summary `json:"aiSummary,omitempty"`
}

// GetVideo returns the video with id.
func (s *Service) GetVideo(_ context.Context, id int64) (*VideoDetail, error) {
	v, err := s.videos.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}
	d := &VideoDetail{VideoItem: newVideoItem(v), Related: []VideoItem{}}

	siblings := s.playlistVideos(v.PlaylistID)
	d.Playlist = PlaylistRef{ID: v.PlaylistID, TotalVideos: len(siblings)}
	if p, err := s.playlists.Get(v.PlaylistID); err == nil {
		d.Playlist.Title = p.Title
		d.Playlist.TotalVideos = max(p.VideosCount, len(siblings))
	}
	for i, sib := range siblings {
		if sib.ID != id {
			continue
		}
		d.Playlist.CurrentIndex = i
		if i > 0 {
			d.Related = append(d.Related, newVideoItem(siblings[i-1]))
		}
		if i+1 < len(siblings) {
			d.Related = append(d.Related, newVideoItem(siblings[i+1]))
		}
		break
	}

	for _, sum := range s.summaries.All() {
		if sum.VideoID == id {
			d.Summary = &sum
			break
		}
	}
	return d, nil
}

// SetWatchProgress records how far the video has been watched. The completed
// flag follows the value and the playlist's completed count is kept in step.
func (s *Service) SetWatchProgress(ctx context.Context, id int64, watchProgress int) (*VideoItem, error) {
	err := validation.Validate(watchProgress, validation.Min(0), validation.Max(100))
	if err != nil {
		return nil, s.invalid("Invalid progress", "Watch progress must be between 0 and 100.",
			validation.Errors{"watchProgress": err})
	}

	var before models.Video
	v, err := s.videos.Update(id, func(v models.Video) (models.Video, error) {
		before = v
		now := s.clock.Now()
		v = v.WithProgress(watchProgress)
		v.LastWatchedAt = &now
		return v, nil
	})
	if err != nil {
		return nil, s.fail("set watch progress", err)
	}

	switch {
	case !before.Completed && v.Completed:
		s.adjustCompleted(v.PlaylistID, 1)
		s.record(ctx, models.ActivityCompleted, v.Title, s.playlistTitle(v.PlaylistID))
	case before.Completed && !v.Completed:
		s.adjustCompleted(v.PlaylistID, -1)
	case before.WatchProgress == 0 && v.WatchProgress > 0:
		s.record(ctx, models.ActivityStarted, v.Title, s.playlistTitle(v.PlaylistID))
	}
	s.success("Progress saved", fmt.Sprintf("Watch progress set to %d%%.", v.WatchProgress))
	item := newVideoItem(v)
	return &item, nil
}

// MarkComplete sets the video to fully watched. Completing an already
// completed video leaves the playlist count alone.
func (s *Service) MarkComplete(ctx context.Context, id int64) (*VideoItem, error) {
	var wasCompleted bool
	v, err := s.videos.Update(id, func(v models.Video) (models.Video, error) {
		wasCompleted = v.Completed
		now := s.clock.Now()
		v = v.WithProgress(100)
		v.LastWatchedAt = &now
		return v, nil
	})
	if err != nil {
		return nil, s.fail("mark complete", err)
	}
	if !wasCompleted {
		s.adjustCompleted(v.PlaylistID, 1)
		s.record(ctx, models.ActivityCompleted, v.Title, s.playlistTitle(v.PlaylistID))
	}
	s.success("Video completed!", "Great job! Moving to the next video.")
	item := newVideoItem(v)
	return &item, nil
}

// SaveNotes replaces the video's notes.
func (s *Service) SaveNotes(_ context.Context, id int64, notes string) (*VideoItem, error) {
	v, err := s.videos.Update(id, func(v models.Video) (models.Video, error) {
		v.Notes = notes
		return v, nil
	})
	if err != nil {
		return nil, s.fail("save notes", err)
	}
	s.success("Notes saved", "Your notes have been saved successfully.")
	item := newVideoItem(v)
	return &item, nil
}

// ToggleVideoBookmark flips the video's bookmark flag.
func (s *Service) ToggleVideoBookmark(ctx context.Context, id int64) (*VideoItem, error) {
	v, err := s.videos.Update(id, func(v models.Video) (models.Video, error) {
		v.Bookmarked = !v.Bookmarked
		return v, nil
	})
	if err != nil {
		return nil, s.fail("toggle video bookmark", err)
	}
	if v.Bookmarked {
		s.record(ctx, models.ActivityBookmark, v.Title, s.playlistTitle(v.PlaylistID))
		s.success("Bookmark added", "Video saved to bookmarks")
	} else {
		s.success("Bookmark removed", "Video removed from bookmarks")
	}
	item := newVideoItem(v)
	return &item, nil
}
