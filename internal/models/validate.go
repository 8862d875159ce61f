package models

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validate checks the playlist invariants.
func (p Playlist) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Difficulty, validation.In(DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced)),
		validation.Field(&p.VideosCount, validation.Min(0)),
		validation.Field(&p.CompletedCount, validation.Min(0), validation.Max(p.VideosCount)),
		validation.Field(&p.CreatedAt, validation.Date(time.DateOnly)),
	)
}

// Validate checks the video invariants.
func (v Video) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&v.PlaylistID, validation.Required),
		validation.Field(&v.Title, validation.Required),
		validation.Field(&v.WatchProgress, validation.Min(0), validation.Max(100)),
		validation.Field(&v.Completed, validation.By(func(any) error {
			if v.Completed != (v.WatchProgress == 100) {
				return errors.New("must be set exactly when watch progress is 100")
			}
			return nil
		})),
		validation.Field(&v.PublishedAt, validation.Date(time.DateOnly)),
	)
}

// Validate checks the goal invariants.
func (g Goal) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&g.Title, validation.Required),
		validation.Field(&g.Type, validation.Required, validation.In(GoalTypes...)),
		validation.Field(&g.Priority, validation.Required, validation.In(Priorities...)),
		validation.Field(&g.TargetDate, validation.Required, validation.Date(time.DateOnly)),
		validation.Field(&g.Target, validation.Required, validation.Min(1), validation.Max(MaxGoalTarget)),
		validation.Field(&g.Current, validation.Min(0), validation.Max(g.Target)),
		validation.Field(&g.Status, validation.In(GoalStatusActive, GoalStatusCompleted)),
		validation.Field(&g.CreatedAt, validation.Date(time.DateOnly)),
	)
}

// Validate checks the summary invariants.
func (s Summary) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Confidence, validation.Min(0), validation.Max(100)),
	)
}

// Validate checks the profile fields.
func (u UserProfile) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.Required),
		validation.Field(&u.Email, validation.Required, is.EmailFormat),
		validation.Field(&u.JoinedAt, validation.Date(time.DateOnly)),
		validation.Field(&u.ConnectedAccounts),
	)
}

// Validate checks the connected accounts.
func (c ConnectedAccounts) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.YouTube),
	)
}

// Validate requires an email for a connected account.
func (y YouTubeAccount) Validate() error {
	return validation.ValidateStruct(&y,
		validation.Field(&y.Email, validation.When(y.Connected, validation.Required), is.EmailFormat),
	)
}
