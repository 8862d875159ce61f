// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes tubetrack tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/tubetrack/internal/models"
	"github.com/starford/tubetrack/internal/tracker"
)

// Server wraps the MCP server with tubetrack tools.
type Server struct {
	mcp *server.MCPServer
	svc *tracker.Service
}

// New creates a new MCP server with all tubetrack tools registered.
func New(svc *tracker.Service, version string) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"tubetrack",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_playlists",
		mcp.WithDescription("List tracked playlists with their completion progress."),
		mcp.WithString("query", mcp.Description("Case-insensitive text matched against title and description")),
		mcp.WithString("category", mcp.Description("Category to keep, or \"all\"")),
	), s.listPlaylists)

	s.mcp.AddTool(mcp.NewTool("get_playlist",
		mcp.WithDescription("Get one playlist with its videos."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Playlist id")),
	), s.getPlaylist)

	s.mcp.AddTool(mcp.NewTool("list_goals",
		mcp.WithDescription("List learning goals with deadline class and progress, plus overall goal stats."),
		mcp.WithString("query", mcp.Description("Text matched against title and description")),
		mcp.WithString("type", mcp.Enum("all", models.GoalTypePlaylist, models.GoalTypeHabit, models.GoalTypeSkill, models.GoalTypeProject)),
		mcp.WithString("priority", mcp.Enum("all", models.PriorityLow, models.PriorityMedium, models.PriorityHigh)),
	), s.listGoals)

	s.mcp.AddTool(mcp.NewTool("create_goal",
		mcp.WithDescription("Create a learning goal. It starts active with no progress."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Goal title")),
		mcp.WithString("target_date", mcp.Required(), mcp.Description("Deadline as YYYY-MM-DD")),
		mcp.WithNumber("target", mcp.Required(), mcp.Description("Number of units to reach, 1 to 1000000")),
		mcp.WithString("description", mcp.Description("Free-form description")),
		mcp.WithString("type", mcp.Enum(models.GoalTypePlaylist, models.GoalTypeHabit, models.GoalTypeSkill, models.GoalTypeProject)),
		mcp.WithString("priority", mcp.Enum(models.PriorityLow, models.PriorityMedium, models.PriorityHigh)),
	), s.createGoal)

	s.mcp.AddTool(mcp.NewTool("update_goal_progress",
		mcp.WithDescription("Set how many units of a goal are done. Reaching the target completes it."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Goal id")),
		mcp.WithNumber("current", mcp.Required(), mcp.Description("Units done, between 0 and the target")),
	), s.updateGoalProgress)

	s.mcp.AddTool(mcp.NewTool("delete_goal",
		mcp.WithDescription("Delete a goal. Its id is never reused."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Goal id")),
	), s.deleteGoal)

	s.mcp.AddTool(mcp.NewTool("goal_deadline",
		mcp.WithDescription("Classify a deadline date as overdue, due today, urgent (within 7 days) or normal."),
		mcp.WithString("target_date", mcp.Required(), mcp.Description("Date as YYYY-MM-DD")),
	), s.goalDeadline)

	s.mcp.AddTool(mcp.NewTool("search_summaries",
		mcp.WithDescription("Search AI video summaries by title, video title and tags."),
		mcp.WithString("query", mcp.Description("Text to match")),
		mcp.WithBoolean("bookmarked", mcp.Description("Only return bookmarked summaries")),
	), s.searchSummaries)

	s.mcp.AddTool(mcp.NewTool("toggle_summary_bookmark",
		mcp.WithDescription("Flip the bookmark flag of a summary."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Summary id")),
	), s.toggleSummaryBookmark)

	s.mcp.AddTool(mcp.NewTool("progress_overview",
		mcp.WithDescription("Watch statistics, per-video progress and weekly minutes."),
		mcp.WithString("query", mcp.Description("Text matched against video and playlist title")),
		mcp.WithString("status", mcp.Enum("all", tracker.StatusCompleted, tracker.StatusInProgress, tracker.StatusNotStarted)),
	), s.progressOverview)

	s.mcp.AddTool(mcp.NewTool("get_fixtures_format",
		mcp.WithDescription("Returns the YAML seed file format the stores are loaded from."),
	), s.getFixturesFormat)

	s.mcp.AddResource(
		mcp.NewResource(FixturesFormatURI, "Fixtures Format",
			mcp.WithResourceDescription("YAML seed file format for playlists, videos, goals, summaries and the profile."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readFixturesFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func requireID(req mcp.CallToolRequest, key string) (int64, error) {
	id, err := req.RequireInt(key)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New(key + " must be a positive integer")
	}
	return int64(id), nil
}

func (s *Server) listPlaylists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.svc.ListPlaylists(ctx, tracker.PlaylistQuery{
		Query:    req.GetString("query", ""),
		Category: req.GetString("category", ""),
	}))
}

func (s *Server) getPlaylist(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := s.svc.GetPlaylist(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(p)
}

func (s *Server) listGoals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"goals": s.svc.ListGoals(ctx, tracker.GoalQuery{
			Query:    req.GetString("query", ""),
			Type:     req.GetString("type", ""),
			Priority: req.GetString("priority", ""),
		}),
		"stats": s.svc.GoalStats(ctx),
	})
}

func (s *Server) createGoal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	date, err := req.RequireString("target_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	target, err := req.RequireInt("target")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	g, err := s.svc.CreateGoal(ctx, tracker.GoalInput{
		Title:       title,
		Description: req.GetString("description", ""),
		Type:        req.GetString("type", ""),
		Priority:    req.GetString("priority", ""),
		TargetDate:  date,
		Target:      strconv.Itoa(target),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(g)
}

func (s *Server) updateGoalProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	current, err := req.RequireInt("current")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	g, err := s.svc.UpdateGoalProgress(ctx, id, current)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(g)
}

func (s *Server) deleteGoal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.DeleteGoal(ctx, id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted goal %d", id)), nil
}

func (s *Server) goalDeadline(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("target_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d, err := s.svc.ClassifyDeadline(date)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(d)
}

func (s *Server) searchSummaries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.svc.ListSummaries(ctx, tracker.SummaryQuery{
		Query:          req.GetString("query", ""),
		BookmarkedOnly: req.GetBool("bookmarked", false),
	}))
}

func (s *Server) toggleSummaryBookmark(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m, err := s.svc.ToggleSummaryBookmark(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(m)
}

func (s *Server) progressOverview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.svc.ProgressOverview(ctx, tracker.ProgressQuery{
		Query:  req.GetString("query", ""),
		Status: req.GetString("status", ""),
	}))
}

func (s *Server) getFixturesFormat(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(FixturesFormat), nil
}

func (s *Server) readFixturesFormatResource(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      FixturesFormatURI,
			MIMEType: "text/markdown",
			Text:     FixturesFormat,
		},
	}, nil
}
