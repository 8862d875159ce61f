package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/starford/tubetrack/internal/apperr"
	"github.com/starford/tubetrack/internal/models"
)

func TestGetVideo(t *testing.T) {
	svc, _, _ := setup(t)
	d, err := svc.GetVideo(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if d.Status != StatusInProgress {
		t.Errorf("status = %s", d.Status)
	}
	if d.Playlist.Title != "React Masterclass 2024" || d.Playlist.CurrentIndex != 3 || d.Playlist.TotalVideos != 25 {
		t.Errorf("playlist ref = %+v", d.Playlist)
	}
	if len(d.Related) != 2 || d.Related[0].ID != 3 || d.Related[1].ID != 5 {
		t.Errorf("related = %+v", d.Related)
	}
	if d.Summary == nil || d.Summary.ID != 1 {
		t.Errorf("summary = %+v", d.Summary)
	}

	if _, err := svc.GetVideo(context.Background(), 404); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMarkComplete_BumpsPlaylistOnce(t *testing.T) {
	svc, rec, db := setup(t)
	ctx := context.Background()

	v, err := svc.MarkComplete(ctx, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Completed || v.WatchProgress != 100 || v.LastWatchedAt == nil {
		t.Errorf("video = %+v", v.Video)
	}
	if n := rec.last(t); n.Title != "Video completed!" {
		t.Errorf("notice = %+v", n)
	}
	p, _ := svc.GetPlaylist(ctx, 1)
	if p.CompletedCount != 19 {
		t.Errorf("completedCount = %d, want 19", p.CompletedCount)
	}

	if _, err := svc.MarkComplete(ctx, 5); err != nil {
		t.Fatal(err)
	}
	p, _ = svc.GetPlaylist(ctx, 1)
	if p.CompletedCount != 19 {
		t.Errorf("second completion moved count to %d", p.CompletedCount)
	}
	if n, _ := db.CountByKind(ctx, models.ActivityCompleted); n != 1 {
		t.Errorf("completed entries = %d, want 1", n)
	}
}

func TestSetWatchProgress_Normalises(t *testing.T) {
	svc, _, db := setup(t)
	ctx := context.Background()

	v, err := svc.SetWatchProgress(ctx, 5, 40)
	if err != nil {
		t.Fatal(err)
	}
	if v.Completed || v.Status != StatusInProgress {
		t.Errorf("40%%: %+v", v)
	}
	if n, _ := db.CountByKind(ctx, models.ActivityStarted); n != 1 {
		t.Errorf("started entries = %d, want 1", n)
	}

	v, _ = svc.SetWatchProgress(ctx, 5, 100)
	if !v.Completed {
		t.Error("100% should complete")
	}
	p, _ := svc.GetPlaylist(ctx, 1)
	if p.CompletedCount != 19 {
		t.Errorf("completedCount = %d, want 19", p.CompletedCount)
	}

	v, _ = svc.SetWatchProgress(ctx, 5, 0)
	if v.Completed || v.Status != StatusNotStarted {
		t.Errorf("0%%: %+v", v)
	}
	p, _ = svc.GetPlaylist(ctx, 1)
	if p.CompletedCount != 18 {
		t.Errorf("completedCount = %d, want 18", p.CompletedCount)
	}

	for _, bad := range []int{-1, 101} {
		if _, err := svc.SetWatchProgress(ctx, 5, bad); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("%d: err = %v", bad, err)
		}
	}
}

func TestSaveNotesAndBookmark(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	v, err := svc.SaveNotes(ctx, 4, "cleanup runs before the next effect")
	if err != nil {
		t.Fatal(err)
	}
	if v.Notes != "cleanup runs before the next effect" {
		t.Errorf("notes = %q", v.Notes)
	}
	a, _ := svc.ToggleVideoBookmark(ctx, 4)
	b, _ := svc.ToggleVideoBookmark(ctx, 4)
	if a.Bookmarked == b.Bookmarked || b.Bookmarked {
		t.Errorf("toggle pair: %v then %v", a.Bookmarked, b.Bookmarked)
	}
}

func TestListPlaylists(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	all := svc.ListPlaylists(ctx, PlaylistQuery{})
	if len(all.Playlists) != 4 {
		t.Fatalf("len = %d", len(all.Playlists))
	}
	if all.Categories[0] != "all" || len(all.Categories) != 5 {
		t.Errorf("categories = %v", all.Categories)
	}
	if got := all.Playlists[0].Progress; got.Percent != 72 || got.Ratio != "18/25" {
		t.Errorf("progress = %+v", got)
	}

	got := svc.ListPlaylists(ctx, PlaylistQuery{Query: "development", Category: "Backend"})
	if len(got.Playlists) != 1 || got.Playlists[0].ID != 2 {
		t.Errorf("filtered = %+v", got.Playlists)
	}
	if zero := svc.ListPlaylists(ctx, PlaylistQuery{Category: "Data Science"}); zero.Playlists[0].Progress.Percent != 0 {
		t.Errorf("empty playlist percent = %d", zero.Playlists[0].Progress.Percent)
	}
}

func TestGetPlaylist(t *testing.T) {
	svc, _, _ := setup(t)
	p, err := svc.GetPlaylist(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Videos) != 5 {
		t.Errorf("videos = %d", len(p.Videos))
	}
	if _, err := svc.GetPlaylist(context.Background(), 99); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestVideoStatus(t *testing.T) {
	cases := map[int]string{0: StatusNotStarted, 1: StatusInProgress, 99: StatusInProgress, 100: StatusCompleted}
	for in, want := range cases {
		if got := VideoStatus(in); got != want {
			t.Errorf("VideoStatus(%d) = %s, want %s", in, got, want)
		}
	}
}
