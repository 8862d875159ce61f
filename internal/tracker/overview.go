package tracker

import (
	"context"
	"sort"
	"time"

	"github.com/starford/tubetrack/internal/filter"
	"github.com/starford/tubetrack/internal/models"
	"github.com/starford/tubetrack/internal/progress"
	"github.com/starford/tubetrack/internal/timeline"
)

// totals aggregates counts across playlists and watch time across videos.
type totals struct {
	videos    int
	completed int
	watched   int
	started   int
	seconds   int64
}

func (t totals) watchTime() string {
	return progress.Minutes(int(t.seconds / 60))
}

func (s *Service) totals() totals {
	var t totals
	for _, p := range s.playlists.All() {
		t.videos += p.VideosCount
		t.completed += p.CompletedCount
	}
	for _, v := range s.videos.All() {
		if v.WatchProgress > 0 {
			t.started++
		}
		if v.Completed {
			t.watched++
		}
		d, err := timeline.ParseClock(v.Duration)
		if err != nil {
			continue
		}
		t.seconds += int64(d/time.Second) * int64(v.WatchProgress) / 100
	}
	return t
}

// streak counts the trailing days of the week with any watch time.
func (s *Service) streak() int {
	week := s.weekly.Get()
	n := 0
	for i := len(week) - 1; i >= 0 && week[i].Minutes > 0; i-- {
		n++
	}
	return n
}

// ActivityItem is a journal entry with its age.
type ActivityItem struct {
	models.Activity
	Ago string `json:"ago"`
}

// DashboardStats is the stat strip on the dashboard.
type DashboardStats struct {
	TotalVideos     int    `json:"totalVideos"`
	CompletedVideos int    `json:"completedVideos"`
	TotalWatchTime  string `json:"totalWatchTime"`
	ActiveGoals     int    `json:"activeGoals"`
	OverallProgress int    `json:"overallProgress"`
}

// Dashboard is the home page.
type Dashboard struct {
	Stats           DashboardStats `json:"stats"`
	RecentPlaylists []PlaylistItem `json:"recentPlaylists"`
	RecentActivity  []ActivityItem `json:"recentActivity"`
}

const recentPlaylists = 3

// Dashboard assembles the home page. Playlists that have been watched come
// first, in store order.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	t := s.totals()
	d := &Dashboard{
		Stats: DashboardStats{
			TotalVideos:     t.videos,
			CompletedVideos: t.completed,
			TotalWatchTime:  t.watchTime(),
			OverallProgress: progress.Percent(t.completed, t.videos),
		},
		RecentPlaylists: []PlaylistItem{},
		RecentActivity:  []ActivityItem{},
	}
	for _, g := range s.goals.All() {
		if g.Status == models.GoalStatusActive {
			d.Stats.ActiveGoals++
		}
	}

	playlists := append([]models.Playlist(nil), s.playlists.All()...)
	sort.SliceStable(playlists, func(i, j int) bool {
		return playlists[i].LastWatched != "" && playlists[j].LastWatched == ""
	})
	for _, p := range playlists[:min(recentPlaylists, len(playlists))] {
		d.RecentPlaylists = append(d.RecentPlaylists, newPlaylistItem(p))
	}

	if s.journal != nil {
		recent, err := s.journal.Recent(ctx, s.recentLimit)
		if err != nil {
			return nil, err
		}
		now := s.clock.Now()
		for _, a := range recent {
			d.RecentActivity = append(d.RecentActivity, ActivityItem{Activity: a, Ago: timeline.Ago(a.At, now)})
		}
	}
	return d, nil
}

// ProgressQuery filters the video list on the progress page.
type ProgressQuery struct {
	Query  string
	Status string
}

// ProgressStats is the stat strip on the progress page.
type ProgressStats struct {
	VideosWatched  int    `json:"totalVideosWatched"`
	Completed      int    `json:"completedVideos"`
	WatchTime      string `json:"totalWatchTime"`
	CompletionRate int    `json:"completionRate"`
}

// RecentVideo is a row of the progress page's video list.
type RecentVideo struct {
	VideoItem
	PlaylistTitle string `json:"playlist"`
	LastWatched   string `json:"lastWatched,omitempty"`
}

// Overview is the progress page.
type Overview struct {
	Stats         ProgressStats        `json:"stats"`
	Videos        []RecentVideo        `json:"videos"`
	Weekly        []models.DayActivity `json:"weeklyActivity"`
	WeeklyMinutes int                  `json:"weeklyMinutes"`
	WeeklyTotal   string               `json:"weeklyTotal"`
}

// ProgressOverview assembles the progress page. Videos are listed most
// recently watched first; never-watched videos keep store order at the end.
func (s *Service) ProgressOverview(_ context.Context, q ProgressQuery) Overview {
	t := s.totals()
	now := s.clock.Now()

	titles := make(map[int64]string)
	for _, p := range s.playlists.All() {
		titles[p.ID] = p.Title
	}
	rows := make([]RecentVideo, 0, s.videos.Len())
	for _, v := range s.videos.All() {
		row := RecentVideo{VideoItem: newVideoItem(v), PlaylistTitle: titles[v.PlaylistID]}
		if v.LastWatchedAt != nil {
			row.LastWatched = timeline.Ago(*v.LastWatchedAt, now)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].LastWatchedAt, rows[j].LastWatchedAt
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
	rows = filter.Apply(rows, q.Query,
		func(r RecentVideo) []string { return []string{r.Title, r.PlaylistTitle} },
		filter.Eq(q.Status, func(r RecentVideo) string { return r.Status }),
	)

	weekly := nonNil(s.weekly.Get())
	minutes := 0
	for _, d := range weekly {
		minutes += d.Minutes
	}
	return Overview{
		Stats: ProgressStats{
			VideosWatched:  t.started,
			Completed:      t.watched,
			WatchTime:      t.watchTime(),
			CompletionRate: progress.Percent(t.watched, t.started),
		},
		Videos:        rows,
		Weekly:        weekly,
		WeeklyMinutes: minutes,
		WeeklyTotal:   progress.Minutes(minutes),
	}
}
