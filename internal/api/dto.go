package api

import "github.com/starford/tubetrack/internal/tracker"

// ProgressRequest sets a video's watch progress.
type ProgressRequest struct {
	WatchProgress *int `json:"watchProgress"`
}

// NotesRequest replaces a video's notes.
type NotesRequest struct {
	Notes string `json:"notes"`
}

// CreateGoalRequest is the new-goal form.
type CreateGoalRequest = tracker.GoalInput

// GoalProgressRequest sets a goal's current count.
type GoalProgressRequest struct {
	Current *int `json:"current"`
}

// ProfileRequest updates name and email.
type ProfileRequest = tracker.ProfileInput

// PasswordRequest is the change-password form.
type PasswordRequest = tracker.PasswordInput

// YouTubeRequest connects a YouTube account.
type YouTubeRequest struct {
	Email string `json:"email"`
}

// GoalListResponse wraps the goal list with its stats.
type GoalListResponse struct {
	Goals []tracker.GoalItem `json:"goals"`
	Stats tracker.GoalStats  `json:"stats"`
}

// SummaryListResponse wraps the summary list.
type SummaryListResponse struct {
	Summaries []tracker.SummaryItem `json:"summaries"`
}
