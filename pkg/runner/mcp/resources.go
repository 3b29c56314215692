package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerTodayResource(srv, svc)
	registerMonthTemplate(srv, svc)
}

func registerTodayResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"datepick://today",
		"Today",
		mcp.WithResourceDescription("The current date and the grid of the current month."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		today := svc.Today(ctx)
		month, err := svc.GetMonth(ctx, "", "", nil)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"today": today,
			"month": month,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerMonthTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"datepick://months/{yearmonth}",
		"Month Grid",
		mcp.WithTemplateDescription("Calendar grid of a month given as YYYY-MM."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ym := templateArgument(request.Params.Arguments["yearmonth"])
		if ym == "" {
			return nil, fmt.Errorf("year-month is required")
		}

		month, err := svc.GetMonth(ctx, ym, "", nil)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, month)
	})
}

// templateArgument unwraps a URI template variable, which may arrive as a
// string or a single-element list.
func templateArgument(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case []string:
		if len(a) > 0 {
			return a[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
