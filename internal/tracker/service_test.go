package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/tubetrack/internal/apperr"
	"github.com/starford/tubetrack/internal/clock"
	"github.com/starford/tubetrack/internal/fixtures"
	"github.com/starford/tubetrack/internal/journal"
	"github.com/starford/tubetrack/internal/models"
	"github.com/starford/tubetrack/internal/testutil"
	"github.com/starford/tubetrack/internal/timeline"
)

var testNow = time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)

type recorder struct {
	mu      sync.Mutex
	notices []models.Notice
}

func (r *recorder) Notify(n models.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recorder) last(t *testing.T) models.Notice {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		t.Fatal("no notice raised")
	}
	return r.notices[len(r.notices)-1]
}

func setup(t *testing.T) (*Service, *recorder, *journal.DB) {
	t.Helper()
	db := testutil.TestJournal(t)
	rec := &recorder{}
	svc := New(fixtures.Default(),
		WithClock(clock.Fixed(testNow)),
		WithNotifier(rec),
		WithJournal(db),
	)
	return svc, rec, db
}

func validGoal() GoalInput {
	return GoalInput{Title: "Ship side project", TargetDate: "2024-02-10", Target: "10"}
}

func TestCreateGoal_AppendsFreshGoal(t *testing.T) {
	svc, rec, _ := setup(t)
	ctx := context.Background()
	before := len(svc.ListGoals(ctx, GoalQuery{}))

	g, err := svc.CreateGoal(ctx, validGoal())
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	goals := svc.ListGoals(ctx, GoalQuery{})
	if len(goals) != before+1 {
		t.Fatalf("len = %d, want %d", len(goals), before+1)
	}
	if goals[len(goals)-1].ID != g.ID {
		t.Errorf("new goal not appended last")
	}
	if g.Current != 0 || g.Progress != 0 || g.Status != models.GoalStatusActive {
		t.Errorf("got current=%d progress=%d status=%s", g.Current, g.Progress, g.Status)
	}
	if g.Type != models.GoalTypePlaylist || g.Priority != models.PriorityMedium {
		t.Errorf("defaults not applied: type=%s priority=%s", g.Type, g.Priority)
	}
	if g.CreatedAt != "2024-01-28" {
		t.Errorf("createdAt = %s", g.CreatedAt)
	}
	if g.Deadline.Urgency != timeline.Normal || g.Deadline.Days != 13 {
		t.Errorf("deadline = %+v", g.Deadline)
	}
	if n := rec.last(t); n.Title != "Goal Created!" || n.Severity != models.SeveritySuccess {
		t.Errorf("notice = %+v", n)
	}
}

func TestCreateGoal_Validation(t *testing.T) {
	svc, rec, _ := setup(t)
	ctx := context.Background()
	before := len(svc.ListGoals(ctx, GoalQuery{}))

	cases := map[string]func(*GoalInput){
		"no title":          func(in *GoalInput) { in.Title = "  " },
		"no date":           func(in *GoalInput) { in.TargetDate = "" },
		"bad date":          func(in *GoalInput) { in.TargetDate = "10/02/2024" },
		"no target":         func(in *GoalInput) { in.Target = "" },
		"text target":       func(in *GoalInput) { in.Target = "ten" },
		"zero target":       func(in *GoalInput) { in.Target = "0" },
		"target over max":   func(in *GoalInput) { in.Target = "1000001" },
		"overflowing":       func(in *GoalInput) { in.Target = "99999999999999999999" },
		"negative overflow": func(in *GoalInput) { in.Target = "-99999999999999999999" },
		"bad type":          func(in *GoalInput) { in.Type = "hobby" },
		"bad priority":      func(in *GoalInput) { in.Priority = "urgent" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validGoal()
			mutate(&in)
			_, err := svc.CreateGoal(ctx, in)
			if !errors.Is(err, apperr.ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
			var verrs validation.Errors
			if !errors.As(err, &verrs) {
				t.Errorf("err %v does not carry field errors", err)
			}
			if n := rec.last(t); n.Severity != models.SeverityError {
				t.Errorf("notice = %+v", n)
			}
		})
	}
	if got := len(svc.ListGoals(ctx, GoalQuery{})); got != before {
		t.Errorf("rejected goals changed the list: %d -> %d", before, got)
	}
}

func TestCreateGoal_MissingFieldsNotice(t *testing.T) {
	svc, rec, _ := setup(t)
	_, _ = svc.CreateGoal(context.Background(), GoalInput{})
	if n := rec.last(t); n.Title != "Missing Information" {
		t.Errorf("notice title = %q", n.Title)
	}
}

func TestDeleteThenCreate_NeverReusesID(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	g, err := svc.CreateGoal(ctx, validGoal())
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteGoal(ctx, g.ID); err != nil {
		t.Fatal(err)
	}
	g2, err := svc.CreateGoal(ctx, validGoal())
	if err != nil {
		t.Fatal(err)
	}
	if g2.ID <= g.ID {
		t.Errorf("id %d reissued after deleting %d", g2.ID, g.ID)
	}

	svc.Reseed(fixtures.Default())
	g3, err := svc.CreateGoal(ctx, validGoal())
	if err != nil {
		t.Fatal(err)
	}
	if g3.ID <= g2.ID {
		t.Errorf("id %d reissued after reseed", g3.ID)
	}
}

func TestCreateGoal_LargestTarget(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	in := validGoal()
	in.Target = "1000000"
	g, err := svc.CreateGoal(ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	g, err = svc.UpdateGoalProgress(ctx, g.ID, 500000)
	if err != nil {
		t.Fatal(err)
	}
	if g.Progress != 50 || g.Status != models.GoalStatusActive {
		t.Errorf("goal = %+v", g.Goal)
	}
}

func TestDeleteGoal_Unknown(t *testing.T) {
	svc, rec, _ := setup(t)
	if err := svc.DeleteGoal(context.Background(), 999); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if n := rec.last(t); n.Severity != models.SeverityError {
		t.Errorf("notice = %+v, want an error notice", n)
	}
}

func TestMutations_UnknownIDRaiseErrorNotice(t *testing.T) {
	svc, rec, _ := setup(t)
	ctx := context.Background()

	ops := map[string]func() error{
		"set watch progress": func() error {
			_, err := svc.SetWatchProgress(ctx, 999, 10)
			return err
		},
		"mark complete": func() error {
			_, err := svc.MarkComplete(ctx, 999)
			return err
		},
		"save notes": func() error {
			_, err := svc.SaveNotes(ctx, 999, "x")
			return err
		},
		"video bookmark": func() error {
			_, err := svc.ToggleVideoBookmark(ctx, 999)
			return err
		},
		"goal progress": func() error {
			_, err := svc.UpdateGoalProgress(ctx, 999, 1)
			return err
		},
		"summary bookmark": func() error {
			_, err := svc.ToggleSummaryBookmark(ctx, 999)
			return err
		},
		"delete summary": func() error { return svc.DeleteSummary(ctx, 999) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			rec.mu.Lock()
			rec.notices = nil
			rec.mu.Unlock()
			if err := op(); !errors.Is(err, apperr.ErrNotFound) {
				t.Fatalf("err = %v, want ErrNotFound", err)
			}
			if n := rec.last(t); n.Severity != models.SeverityError {
				t.Errorf("notice = %+v, want an error notice", n)
			}
		})
	}
}

func TestUpdateGoalProgress_CompletesAtTarget(t *testing.T) {
	svc, rec, db := setup(t)
	ctx := context.Background()

	g, err := svc.UpdateGoalProgress(ctx, 2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if g.Status != models.GoalStatusCompleted || g.Progress != 100 {
		t.Errorf("got status=%s progress=%d", g.Status, g.Progress)
	}
	if n := rec.last(t); n.Title != "Goal achieved!" {
		t.Errorf("notice = %+v", n)
	}
	if n, _ := db.CountByKind(ctx, models.ActivityGoalAchieved); n != 1 {
		t.Errorf("achieved entries = %d, want 1", n)
	}

	g, err = svc.UpdateGoalProgress(ctx, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if g.Status != models.GoalStatusActive || g.Progress != 60 {
		t.Errorf("got status=%s progress=%d", g.Status, g.Progress)
	}

	if _, err := svc.UpdateGoalProgress(ctx, 2, 6); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("over target: err = %v", err)
	}
	if _, err := svc.UpdateGoalProgress(ctx, 2, -1); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("negative: err = %v", err)
	}
}

func TestListGoals_Filters(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	if got := svc.ListGoals(ctx, GoalQuery{Priority: models.PriorityHigh}); len(got) != 2 {
		t.Errorf("high priority = %d, want 2", len(got))
	}
	got := svc.ListGoals(ctx, GoalQuery{Query: "TYPESCRIPT", Type: "all"})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("query result = %+v", got)
	}
	if got[0].Deadline.Urgency != timeline.Urgent || got[0].Deadline.Label != "4 days left" {
		t.Errorf("deadline = %+v", got[0].Deadline)
	}
	if got[0].Ratio != "6/18" || got[0].ProgressLabel != "33% complete" {
		t.Errorf("ratio=%s label=%s", got[0].Ratio, got[0].ProgressLabel)
	}
	if got := svc.ListGoals(ctx, GoalQuery{Query: "nothing like this"}); got == nil || len(got) != 0 {
		t.Errorf("no match should be empty and non-nil, got %#v", got)
	}
}

func TestGoalStats(t *testing.T) {
	svc, _, _ := setup(t)
	st := svc.GoalStats(context.Background())
	want := GoalStats{Total: 4, Completed: 0, DueThisWeek: 1, AverageProgress: 49}
	if st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
}

func TestToggleSummaryBookmark_IsItsOwnInverse(t *testing.T) {
	svc, rec, _ := setup(t)
	ctx := context.Background()

	orig, err := svc.GetSummary(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	first, err := svc.ToggleSummaryBookmark(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if first.Bookmarked == orig.Bookmarked {
		t.Fatal("first toggle did not flip")
	}
	if n := rec.last(t); n.Title != "Bookmark added" {
		t.Errorf("notice = %+v", n)
	}
	second, err := svc.ToggleSummaryBookmark(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if second.Bookmarked != orig.Bookmarked {
		t.Error("second toggle did not restore the original value")
	}
	if n := rec.last(t); n.Title != "Bookmark removed" {
		t.Errorf("notice = %+v", n)
	}
}

func TestListSummaries(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	got := svc.ListSummaries(ctx, SummaryQuery{Query: "jwt"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("tag search = %+v", got)
	}
	if got[0].ConfidenceLevel != ConfidenceMedium {
		t.Errorf("confidence level = %s", got[0].ConfidenceLevel)
	}
	if got[0].GeneratedAgo != "7d ago" {
		t.Errorf("generatedAgo = %s", got[0].GeneratedAgo)
	}
	if got := svc.ListSummaries(ctx, SummaryQuery{BookmarkedOnly: true}); len(got) != 2 {
		t.Errorf("bookmarked = %d, want 2", len(got))
	}
}

func TestDeleteSummary(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	if err := svc.DeleteSummary(ctx, 3); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetSummary(ctx, 3); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteSummary(ctx, 3); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}

func TestClassifyDeadline(t *testing.T) {
	svc, _, _ := setup(t)
	d, err := svc.ClassifyDeadline("2024-01-27")
	if err != nil {
		t.Fatal(err)
	}
	if d.Urgency != timeline.Overdue || d.OverdueBy() != 1 || d.Label != "1 days overdue" {
		t.Errorf("deadline = %+v", d)
	}
	if _, err := svc.ClassifyDeadline("tomorrow"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("err = %v", err)
	}
}
