package models

import "time"

// Summary is an AI-generated digest of a video.
type Summary struct {
	ID            int64     `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	VideoID       int64     `json:"videoId,omitempty" yaml:"video_id"`
	VideoTitle    string    `json:"videoTitle" yaml:"video_title"`
	Playlist      string    `json:"playlist" yaml:"playlist"`
	Body          string    `json:"summary" yaml:"body"`
	KeyPoints     []string  `json:"keyPoints" yaml:"key_points"`
	Tags          []string  `json:"tags" yaml:"tags"`
	Confidence    int       `json:"confidence" yaml:"confidence"`
	GeneratedAt   time.Time `json:"generatedAt" yaml:"generated_at"`
	VideoDuration string    `json:"videoDuration,omitempty" yaml:"video_duration"`
	Bookmarked    bool      `json:"isBookmarked" yaml:"bookmarked"`
}
