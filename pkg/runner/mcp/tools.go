package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerGetMonthTool(srv, svc)
	registerDateRangeTool(srv, svc)
	registerRollYearMonthTool(srv, svc)
	registerWeekdayTool(srv, svc, "forward_to_weekday", false)
	registerWeekdayTool(srv, svc, "reverse_to_weekday", true)
	registerEqualDateTool(srv, svc)
}

func registerGetMonthTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_month",
		mcp.WithDescription("Build the calendar grid of whole weeks covering a month."),
		mcp.WithString("year_month",
			mcp.Description("Month as YYYY-MM, 'January 2024', 'this', 'next', 'last' or an offset like +2m. Defaults to the current month."),
		),
		mcp.WithString("first_day_of_week",
			mcp.Description("Weekday starting each row, 0-6 (Sunday is 0) or a name. Defaults to the configured day."),
		),
		mcp.WithString("selected",
			mcp.Description("Comma separated dates to flag as selected, e.g. 2024-02-14,today,+1w."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			YearMonth      string `json:"year_month"`
			FirstDayOfWeek string `json:"first_day_of_week"`
			Selected       string `json:"selected"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.GetMonth(ctx, args.YearMonth, args.FirstDayOfWeek, splitList(args.Selected))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDateRangeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"date_range",
		mcp.WithDescription("List every date from start to end, both included."),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("First date, e.g. 2024-02-28 or today."),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("Last date; must not be before start."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start, err := request.RequireString("start")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		end, err := request.RequireString("end")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.DateRange(ctx, start, end)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRollYearMonthTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"roll_year_month",
		mcp.WithDescription("Move a month forward or backward by a number of months."),
		mcp.WithString("year_month",
			mcp.Description("Month to start from. Defaults to the current month."),
		),
		mcp.WithNumber("diff",
			mcp.Required(),
			mcp.Description("Number of months to move, negative to go back."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			YearMonth string `json:"year_month"`
			Diff      int    `json:"diff"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.RollYearMonth(ctx, args.YearMonth, args.Diff)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerWeekdayTool(srv *server.MCPServer, svc *Service, name string, reverse bool) {
	direction := "on or after"
	if reverse {
		direction = "on or before"
	}
	tool := mcp.NewTool(
		name,
		mcp.WithDescription(fmt.Sprintf("Find the nearest date %s a date that falls on a weekday.", direction)),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date to start from."),
		),
		mcp.WithString("weekday",
			mcp.Required(),
			mcp.Description("Target weekday, 0-6 (Sunday is 0) or a name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		weekday, err := request.RequireString("weekday")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.MoveToWeekday(ctx, date, weekday, reverse)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerEqualDateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"equal_date",
		mcp.WithDescription("Compare two timestamps or dates ignoring the time of day."),
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description("RFC 3339 timestamp or date."),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description("RFC 3339 timestamp or date."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		a, err := request.RequireString("a")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		b, err := request.RequireString("b")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EqualDate(ctx, a, b)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
