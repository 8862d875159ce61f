package models

// Goal types.
const (
	GoalTypePlaylist = "playlist"
	GoalTypeHabit    = "habit"
	GoalTypeSkill    = "skill"
	GoalTypeProject  = "project"
)

// Goal priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Goal statuses.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

// MaxGoalTarget bounds a goal's target count.
const MaxGoalTarget = 1_000_000

// GoalTypes lists every valid goal type.
var GoalTypes = []any{GoalTypePlaylist, GoalTypeHabit, GoalTypeSkill, GoalTypeProject}

// Priorities lists every valid goal priority.
var Priorities = []any{PriorityLow, PriorityMedium, PriorityHigh}

// Goal is a user-defined learning target.
// TargetDate and CreatedAt are calendar dates (YYYY-MM-DD).
type Goal struct {
	ID          int64  `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
	Priority    string `json:"priority" yaml:"priority"`
	TargetDate  string `json:"targetDate" yaml:"target_date"`
	Current     int    `json:"current" yaml:"current"`
	Target      int    `json:"target" yaml:"target"`
	Progress    int    `json:"progress" yaml:"-"`
	Status      string `json:"status" yaml:"status"`
	CreatedAt   string `json:"createdAt" yaml:"created_at"`
}
