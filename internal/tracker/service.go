// Package tracker implements the learning-tracker operations on top of the
// in-memory stores: list/filter views with their derived values, and the
// mutations behind every page action.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/starford/tubetrack/internal/apperr"
	"github.com/starford/tubetrack/internal/clock"
	"github.com/starford/tubetrack/internal/fixtures"
	"github.com/starford/tubetrack/internal/models"
	"github.com/starford/tubetrack/internal/store"
)

// DefaultRecentLimit is the number of activity entries shown on the dashboard.
const DefaultRecentLimit = 5

// Notifier receives the user-facing notice raised by each mutation.
type Notifier interface {
	Notify(models.Notice)
}

// Journal records and replays the recent-activity feed.
type Journal interface {
	Record(ctx context.Context, a models.Activity) (models.Activity, error)
	Recent(ctx context.Context, limit int) ([]models.Activity, error)
}

type nopNotifier struct{}

func (nopNotifier) Notify(models.Notice) {}

// Service coordinates the entity stores.
type Service struct {
	clock       clock.Clock
	notifier    Notifier
	journal     Journal
	logger      *slog.Logger
	recentLimit int

	playlists *store.Collection[models.Playlist]
	videos    *store.Collection[models.Video]
	goals     *store.Collection[models.Goal]
	summaries *store.Collection[models.Summary]
	profile   *store.Value[models.UserProfile]
	weekly    *store.Value[[]models.DayActivity]
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used for deadlines and relative times.
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithNotifier sets the notice sink.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithJournal enables the recent-activity feed.
func WithJournal(j Journal) Option {
	return func(s *Service) { s.journal = j }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithRecentLimit sets how many activity entries the dashboard shows.
func WithRecentLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.recentLimit = n
		}
	}
}

// New creates a service seeded with data.
func New(data *fixtures.Dataset, opts ...Option) *Service {
	s := &Service{
		clock:       clock.System{},
		notifier:    nopNotifier{},
		logger:      slog.Default(),
		recentLimit: DefaultRecentLimit,
		playlists: store.New(
			func(p models.Playlist) int64 { return p.ID },
			func(p *models.Playlist, id int64) { p.ID = id },
			nil),
		videos: store.New(
			func(v models.Video) int64 { return v.ID },
			func(v *models.Video, id int64) { v.ID = id },
			nil),
		goals: store.New(
			func(g models.Goal) int64 { return g.ID },
			func(g *models.Goal, id int64) { g.ID = id },
			nil),
		summaries: store.New(
			func(m models.Summary) int64 { return m.ID },
			func(m *models.Summary, id int64) { m.ID = id },
			nil),
		profile: store.NewValue(models.UserProfile{}),
		weekly:  store.NewValue[[]models.DayActivity](nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reseed(data)
	return s
}

// Reseed replaces every store with data. Id sequences keep counting from
// where they were, so ids issued before the reseed are never reused.
func (s *Service) Reseed(data *fixtures.Dataset) {
	if data == nil {
		data = &fixtures.Dataset{}
	}
	s.playlists.Reset(data.Playlists)
	s.videos.Reset(data.Videos)
	s.goals.Reset(data.Goals)
	s.summaries.Reset(data.Summaries)
	s.profile.Set(data.Profile)
	weekly := make([]models.DayActivity, len(data.Weekly))
	copy(weekly, data.Weekly)
	s.weekly.Set(weekly)
}

func (s *Service) success(title, description string) {
	s.notifier.Notify(models.Notice{Title: title, Description: description, Severity: models.SeveritySuccess})
}

func (s *Service) failure(title, description string) {
	s.notifier.Notify(models.Notice{Title: title, Description: description, Severity: models.SeverityError})
}

// invalid reports a validation failure as an error notice and returns err
// wrapped with apperr.ErrInvalidInput.
func (s *Service) invalid(title, description string, err error) error {
	s.failure(title, description)
	return fmt.Errorf("%w: %w", apperr.ErrInvalidInput, err)
}

// fail wraps err with op. A missing record also raises an error notice;
// validation failures have already raised theirs.
func (s *Service) fail(op string, err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		s.failure("Not found", "The item you were working on no longer exists.")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// record appends to the activity feed. Journal failures are logged and
// never fail the mutation that triggered them.
func (s *Service) record(ctx context.Context, kind, title, playlist string) {
	if s.journal == nil {
		return
	}
	_, err := s.journal.Record(ctx, models.Activity{
		Kind:     kind,
		Title:    title,
		Playlist: playlist,
		At:       s.clock.Now(),
	})
	if err != nil {
		s.logger.Warn("activity not recorded",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
