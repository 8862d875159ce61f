package tracker

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/starford/tubetrack/internal/apperr"
	"github.com/starford/tubetrack/internal/filter"
	"github.com/starford/tubetrack/internal/models"
	"github.com/starford/tubetrack/internal/progress"
	"github.com/starford/tubetrack/internal/timeline"
)

// GoalQuery filters the goal list.
type GoalQuery struct {
	Query    string
	Type     string
	Priority string
}

// GoalItem is a goal with its deadline and progress text.
type GoalItem struct {
	models.Goal
	Deadline      timeline.Deadline `json:"deadline"`
	Ratio         string            `json:"ratio"`
	ProgressLabel string            `json:"progressLabel"`
}

// GoalInput is the new-goal form. Target is kept as text, as typed.
type GoalInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	TargetDate  string `json:"targetDate"`
	Target      string `json:"target"`
}

// Validate checks the form. Type and priority may be left empty.
func (in GoalInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.TargetDate, validation.Required, validation.Date(timeline.DateLayout)),
		validation.Field(&in.Target, validation.Required, is.Int, validation.By(targetInRange)),
		validation.Field(&in.Type, validation.In(models.GoalTypes...)),
		validation.Field(&in.Priority, validation.In(models.Priorities...)),
	)
}

var errTargetRange = fmt.Errorf("must be a whole number between 1 and %d", models.MaxGoalTarget)

func targetInRange(value any) error {
	s, _ := value.(string)
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > models.MaxGoalTarget {
		return errTargetRange
	}
	return nil
}

// missingRequired reports whether any required form field was left empty.
func (in GoalInput) missingRequired() bool {
	return strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.TargetDate) == "" ||
		strings.TrimSpace(in.Target) == ""
}

// GoalStats is the summary strip above the goal list.
type GoalStats struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	DueThisWeek     int `json:"dueThisWeek"`
	AverageProgress int `json:"averageProgress"`
}

func goalText(g models.Goal) []string {
	return []string{g.Title, g.Description}
}

func (s *Service) newGoalItem(g models.Goal) GoalItem {
	item := GoalItem{
		Goal:          g,
		Ratio:         progress.Ratio(g.Current, g.Target),
		ProgressLabel: progress.Label(g.Progress),
	}
	if target, err := timeline.ParseDate(g.TargetDate); err == nil {
		item.Deadline = timeline.Classify(target, s.clock.Now())
	}
	return item
}

// ListGoals returns the goals matching q.
func (s *Service) ListGoals(_ context.Context, q GoalQuery) []GoalItem {
	matched := filter.Apply(s.goals.All(), q.Query, goalText,
		filter.Eq(q.Type, func(g models.Goal) string { return g.Type }),
		filter.Eq(q.Priority, func(g models.Goal) string { return g.Priority }),
	)
	items := make([]GoalItem, len(matched))
	for i, g := range matched {
		items[i] = s.newGoalItem(g)
	}
	return items
}

// GetGoal returns the goal with id.
func (s *Service) GetGoal(_ context.Context, id int64) (*GoalItem, error) {
	g, err := s.goals.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	item := s.newGoalItem(g)
	return &item, nil
}

// CreateGoal validates in and appends a new active goal with no progress.
func (s *Service) CreateGoal(ctx context.Context, in GoalInput) (*GoalItem, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.TargetDate = strings.TrimSpace(in.TargetDate)
	in.Target = strings.TrimSpace(in.Target)
	if err := in.Validate(); err != nil {
		if in.missingRequired() {
			return nil, s.invalid("Missing Information", "Please fill in all required fields.", err)
		}
		return nil, s.invalid("Invalid Information", err.Error(), err)
	}
	target, err := strconv.Atoi(in.Target)
	if err != nil {
		return nil, s.invalid("Invalid Information", errTargetRange.Error(), validation.Errors{"target": errTargetRange})
	}

	g := models.Goal{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Priority:    in.Priority,
		TargetDate:  in.TargetDate,
		Current:     0,
		Target:      target,
		Progress:    0,
		Status:      models.GoalStatusActive,
		CreatedAt:   s.clock.Now().Format(timeline.DateLayout),
	}
	if g.Type == "" {
		g.Type = models.GoalTypePlaylist
	}
	if g.Priority == "" {
		g.Priority = models.PriorityMedium
	}
	g = s.goals.Create(g)

	s.record(ctx, models.ActivityGoalCreated, g.Title, "")
	s.success("Goal Created!", "Your new learning goal has been set successfully.")
	item := s.newGoalItem(g)
	return &item, nil
}

// DeleteGoal removes the goal with id.
func (s *Service) DeleteGoal(ctx context.Context, id int64) error {
	g, err := s.goals.Delete(id)
	if err != nil {
		return s.fail("delete goal", err)
	}
	s.record(ctx, models.ActivityGoalDeleted, g.Title, "")
	s.success("Goal Deleted", "The goal has been removed from your list.")
	return nil
}

// UpdateGoalProgress sets the goal's current count. Reaching the target
// completes the goal; dropping below it makes the goal active again.
func (s *Service) UpdateGoalProgress(ctx context.Context, id int64, current int) (*GoalItem, error) {
	var wasCompleted bool
	g, err := s.goals.Update(id, func(g models.Goal) (models.Goal, error) {
		if err := validation.Validate(current, validation.Min(0), validation.Max(g.Target)); err != nil {
			return g, s.invalid("Invalid progress",
				fmt.Sprintf("Progress must be between 0 and %d.", g.Target),
				validation.Errors{"current": err})
		}
		wasCompleted = g.Status == models.GoalStatusCompleted
		g.Current = current
		g.Progress = progress.Percent(g.Current, g.Target)
		g.Status = models.GoalStatusActive
		if g.Current >= g.Target {
			g.Status = models.GoalStatusCompleted
		}
		return g, nil
	})
	if err != nil {
		return nil, s.fail("update goal progress", err)
	}

	if !wasCompleted && g.Status == models.GoalStatusCompleted {
		s.record(ctx, models.ActivityGoalAchieved, g.Title, "")
		s.success("Goal achieved!", fmt.Sprintf("You reached %q.", g.Title))
	} else {
		s.success("Goal updated", "Your goal progress has been saved.")
	}
	item := s.newGoalItem(g)
	return &item, nil
}

// GoalStats summarises every goal, ignoring any list filter.
func (s *Service) GoalStats(_ context.Context) GoalStats {
	goals := s.goals.All()
	now := s.clock.Now()
	st := GoalStats{Total: len(goals)}
	percents := make([]int, 0, len(goals))
	for _, g := range goals {
		if g.Status == models.GoalStatusCompleted {
			st.Completed++
		}
		if target, err := timeline.ParseDate(g.TargetDate); err == nil {
			if d := timeline.DaysUntil(target, now); d >= 0 && d <= timeline.UrgentWindow {
				st.DueThisWeek++
			}
		}
		percents = append(percents, g.Progress)
	}
	st.AverageProgress = progress.Average(percents)
	return st
}

// ClassifyDeadline classifies a YYYY-MM-DD date against the service clock.
func (s *Service) ClassifyDeadline(date string) (timeline.Deadline, error) {
	target, err := timeline.ParseDate(strings.TrimSpace(date))
	if err != nil {
		return timeline.Deadline{}, fmt.Errorf("%w: %w", apperr.ErrInvalidInput, err)
	}
	return timeline.Classify(target, s.clock.Now()), nil
}
