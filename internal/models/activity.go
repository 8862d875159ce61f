package models

import "time"

// Activity kinds recorded in the journal.
const (
	ActivityCompleted    = "completed"
	ActivityStarted      = "started"
	ActivityGoalCreated  = "goal_created"
	ActivityGoalDeleted  = "goal_deleted"
	ActivityGoalAchieved = "goal_achieved"
	ActivityBookmark     = "bookmark"
	ActivityProfile      = "profile"
)

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID       string    `json:"id"`
	Kind     string    `json:"type"`
	Title    string    `json:"title"`
	Playlist string    `json:"playlist,omitempty"`
	At       time.Time `json:"timestamp"`
}

// DayActivity is the number of minutes watched on one weekday.
type DayActivity struct {
	Day     string `json:"day" yaml:"day"`
	Minutes int    `json:"minutes" yaml:"minutes"`
}
