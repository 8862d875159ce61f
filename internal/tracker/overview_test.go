package tracker

import (
	"context"
	"testing"
)

func TestDashboard(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	if _, err := svc.CreateGoal(ctx, validGoal()); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.MarkComplete(ctx, 5); err != nil {
		t.Fatal(err)
	}

	d, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if d.Stats.ActiveGoals != 5 {
		t.Errorf("active goals = %d, want 5", d.Stats.ActiveGoals)
	}
	if d.Stats.CompletedVideos != 37 || d.Stats.OverallProgress != 36 {
		t.Errorf("stats = %+v", d.Stats)
	}
	if len(d.RecentPlaylists) != 3 || d.RecentPlaylists[2].ID != 3 {
		t.Errorf("recent playlists = %+v", d.RecentPlaylists)
	}
	if len(d.RecentActivity) != 2 {
		t.Fatalf("activity = %+v", d.RecentActivity)
	}
	if d.RecentActivity[0].Title != "Context API and useContext" || d.RecentActivity[0].Ago != "Just now" {
		t.Errorf("newest activity = %+v", d.RecentActivity[0])
	}
}

func TestProgressOverview(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	o := svc.ProgressOverview(ctx, ProgressQuery{})
	if o.WeeklyMinutes != 715 || o.WeeklyTotal != "11h 55m" {
		t.Errorf("weekly = %d %s", o.WeeklyMinutes, o.WeeklyTotal)
	}
	if o.Stats.VideosWatched != 7 || o.Stats.Completed != 3 || o.Stats.CompletionRate != 43 {
		t.Errorf("stats = %+v", o.Stats)
	}
	if len(o.Videos) != 8 || o.Videos[0].LastWatched == "" {
		t.Errorf("videos = %+v", o.Videos)
	}

	got := svc.ProgressOverview(ctx, ProgressQuery{Query: "typescript", Status: StatusInProgress})
	if len(got.Videos) != 1 || got.Videos[0].ID != 7 {
		t.Errorf("filtered = %+v", got.Videos)
	}
	if got := svc.ProgressOverview(ctx, ProgressQuery{Status: StatusNotStarted}); len(got.Videos) != 1 {
		t.Errorf("not started = %d, want 1", len(got.Videos))
	}
}
