package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	typeValues   = []string{"did", "plan", "blocker", "note"}
	filterTypes  = []string{"all", "did", "plan", "blocker", "note"}
	rangeValues  = []string{"today", "yesterday", "last7", "thisWeek", "all"}
	weeklyValues = []string{"thisWeek", "last7"}
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddEntryTool(srv, svc)
	registerRemoveEntryTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerTodayStatsTool(srv, svc)
	registerTopTagsTool(srv, svc)
	registerWeeklyTotalsTool(srv, svc)
	registerStandupTool(srv, svc)
	registerWeeklyReviewTool(srv, svc)
	registerSetFiltersTool(srv, svc)
	registerClearFiltersTool(srv, svc)
}

func registerAddEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_entry",
		mcp.WithDescription("Record a daily log entry."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("What happened, in a short sentence."),
		),
		mcp.WithString("type",
			mcp.Description("Entry type, defaults to note."),
			mcp.Enum(typeValues...),
		),
		mcp.WithString("tags",
			mcp.Description("Comma separated tags, at most six are kept."),
		),
		mcp.WithNumber("minutes",
			mcp.Description("Time spent in minutes."),
			mcp.Min(0),
		),
		mcp.WithNumber("mood",
			mcp.Description("Energy or mood from 1 to 5."),
			mcp.Min(1),
			mcp.Max(5),
		),
		mcp.WithString("detail",
			mcp.Description("Optional longer elaboration."),
		),
		mcp.WithString("day",
			mcp.Description("today, yesterday or a YYYY-MM-DD day. Defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args AddEntryOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		e, err := svc.AddEntry(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(e)
	})
}

func registerRemoveEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_entry",
		mcp.WithDescription("Delete an entry."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier or a unique prefix of it."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		removed, err := svc.RemoveEntry(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"id":      removed,
			"removed": true,
		})
	})
}

func withFilterArgs() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("query",
			mcp.Description("Case-insensitive text to find in text, tags or detail."),
		),
		mcp.WithString("type",
			mcp.Description("Entry type to keep."),
			mcp.Enum(filterTypes...),
		),
		mcp.WithString("range",
			mcp.Description("Day range relative to today."),
			mcp.Enum(rangeValues...),
		),
		mcp.WithString("tag",
			mcp.Description("Exact tag to keep. An empty string clears the tag filter."),
		),
	}
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List entries grouped by day, newest first. Arguments override the stored filters for this call only."),
		mcp.WithNumber("days",
			mcp.Description("Maximum number of day groups to return."),
			mcp.Min(0),
		),
		mcp.WithNumber("per_day",
			mcp.Description("Maximum number of entries per day."),
			mcp.Min(0),
		),
	}
	tool := mcp.NewTool("list_entries", append(opts, withFilterArgs()...)...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ListOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		listing, err := svc.ListEntries(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(listing)
	})
}

func registerTodayStatsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"today_stats",
		mcp.WithDescription("Entries and minutes logged today, with the current streak of consecutive days."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.TodayStats())
	})
}

func registerTopTagsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"top_tags",
		mcp.WithDescription("Most used tags, highest count first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tags (default 6)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := request.GetInt("limit", DefaultTopTags)
		tags := svc.TopTags(limit)
		return toJSONResult(map[string]any{
			"tags":  tags,
			"count": len(tags),
		})
	})
}

func registerWeeklyTotalsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"weekly_totals",
		mcp.WithDescription("Entry counts and minutes per type for this week or the last seven days."),
		mcp.WithString("mode",
			mcp.Description("Window to total, defaults to thisWeek."),
			mcp.Enum(weeklyValues...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		totals, err := svc.WeeklyTotals(request.GetString("mode", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(totals)
	})
}

func registerStandupTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"standup",
		mcp.WithDescription("Standup update covering yesterday, today and recent blockers."),
		mcp.WithBoolean("snappy",
			mcp.Description("Keep it to two items per section."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(svc.Standup(request.GetBool("snappy", false))), nil
	})
}

func registerWeeklyReviewTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"weekly_review",
		mcp.WithDescription("Ready to send weekly recap with wins, next steps, blockers and focus tags."),
		mcp.WithString("mode",
			mcp.Description("Window to review, defaults to thisWeek."),
			mcp.Enum(weeklyValues...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, _, err := svc.WeeklyReview(request.GetString("mode", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	})
}

func registerSetFiltersTool(srv *server.MCPServer, svc *Service) {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Update the stored timeline filters. Omitted fields keep their value."),
	}
	tool := mcp.NewTool("set_filters", append(opts, withFilterArgs()...)...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args FilterOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		f, err := svc.SetFilters(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(f)
	})
}

func registerClearFiltersTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"clear_filters",
		mcp.WithDescription("Reset the stored timeline filters to the last seven days of everything."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.ClearFilters())
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
