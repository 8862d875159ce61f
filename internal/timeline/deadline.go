// Package timeline classifies goal deadlines and renders relative times.
package timeline

import (
	"fmt"
	"math"
	"time"
)

const msPerDay = 24 * 60 * 60 * 1000

// DateLayout is the calendar date format used for goal target dates.
const DateLayout = time.DateOnly

// Urgency classes of a deadline.
const (
	Overdue  = "overdue"
	DueToday = "due-today"
	Urgent   = "urgent"
	Normal   = "normal"
)

// UrgentWindow is the number of days ahead that still counts as urgent.
const UrgentWindow = 7

// Deadline is the classified distance to a target date.
type Deadline struct {
	Days    int    `json:"days"`
	Urgency string `json:"urgency"`
	Label   string `json:"label"`
}

// ParseDate parses a YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeline: parse date %q: %w", s, err)
	}
	return t, nil
}

// DaysUntil returns ceil((target - now) / 1 day), counted in milliseconds.
func DaysUntil(target, now time.Time) int {
	ms := target.Sub(now).Milliseconds()
	return int(math.Ceil(float64(ms) / msPerDay))
}

// Classify returns the deadline class of target as seen at now.
func Classify(target, now time.Time) Deadline {
	days := DaysUntil(target, now)
	switch {
	case days < 0:
		return Deadline{Days: days, Urgency: Overdue, Label: fmt.Sprintf("%d days overdue", -days)}
	case days == 0:
		return Deadline{Days: 0, Urgency: DueToday, Label: "Due today"}
	case days <= UrgentWindow:
		return Deadline{Days: days, Urgency: Urgent, Label: fmt.Sprintf("%d days left", days)}
	default:
		return Deadline{Days: days, Urgency: Normal, Label: fmt.Sprintf("%d days left", days)}
	}
}

// OverdueBy reports the number of days past the deadline, or 0.
func (d Deadline) OverdueBy() int {
	if d.Days < 0 {
		return -d.Days
	}
	return 0
}
