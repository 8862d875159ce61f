package tracker

import (
	"context"
	"fmt"

	"github.com/starford/tubetrack/internal/filter"
	"github.com/starford/tubetrack/internal/models"
	"github.com/starford/tubetrack/internal/timeline"
)

// Summary confidence levels.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ConfidenceLevel buckets a 0–100 confidence score.
func ConfidenceLevel(confidence int) string {
	switch {
	case confidence >= 90:
		return ConfidenceHigh
	case confidence >= 75:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// SummaryQuery filters the summary list.
type SummaryQuery struct {
	Query          string
	BookmarkedOnly bool
}

// SummaryItem is a summary with its confidence level and age.
type SummaryItem struct {
	models.Summary
	ConfidenceLevel string `json:"confidenceLevel"`
	GeneratedAgo    string `json:"generatedAgo"`
}

func summaryText(m models.Summary) []string {
	out := make([]string, 0, 2+len(m.Tags))
	out = append(out, m.Title, m.VideoTitle)
	return append(out, m.Tags...)
}

func (s *Service) newSummaryItem(m models.Summary) SummaryItem {
	return SummaryItem{
		Summary:         m,
		ConfidenceLevel: ConfidenceLevel(m.Confidence),
		GeneratedAgo:    timeline.Ago(m.GeneratedAt, s.clock.Now()),
	}
}

// ListSummaries returns the summaries matching q.
func (s *Service) ListSummaries(_ context.Context, q SummaryQuery) []SummaryItem {
	matched := filter.Apply(s.summaries.All(), q.Query, summaryText,
		filter.Where(q.BookmarkedOnly, func(m models.Summary) bool { return m.Bookmarked }),
	)
	items := make([]SummaryItem, len(matched))
	for i, m := range matched {
		items[i] = s.newSummaryItem(m)
	}
	return items
}

// GetSummary returns the summary with id.
func (s *Service) GetSummary(_ context.Context, id int64) (*SummaryItem, error) {
	m, err := s.summaries.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	item := s.newSummaryItem(m)
	return &item, nil
}

// ToggleSummaryBookmark flips the summary's bookmark flag.
func (s *Service) ToggleSummaryBookmark(ctx context.Context, id int64) (*SummaryItem, error) {
	m, err := s.summaries.Update(id, func(m models.Summary) (models.Summary, error) {
		m.Bookmarked = !m.Bookmarked
		return m, nil
	})
	if err != nil {
		return nil, s.fail("toggle summary bookmark", err)
	}
	if m.Bookmarked {
		s.record(ctx, models.ActivityBookmark, m.Title, m.Playlist)
		s.success("Bookmark added", "Summary saved to bookmarks")
	} else {
		s.success("Bookmark removed", "Summary removed from bookmarks")
	}
	item := s.newSummaryItem(m)
	return &item, nil
}

// DeleteSummary removes the summary with id.
func (s *Service) DeleteSummary(_ context.Context, id int64) error {
	if _, err := s.summaries.Delete(id); err != nil {
		return s.fail("delete summary", err)
	}
	s.success("Summary deleted", "The AI summary has been permanently deleted.")
	return nil
}
