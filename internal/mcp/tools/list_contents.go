package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// ListContentsTool implements the dropbox_list_contents MCP tool.
type ListContentsTool struct {
	drv drive.Drive
}

// NewListContentsTool constructs a ListContentsTool.
func NewListContentsTool(drv drive.Drive) (*ListContentsTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	return &ListContentsTool{drv: drv}, nil
}

// Definition returns the MCP metadata for dropbox_list_contents.
func (t *ListContentsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_list_contents",
		mcp.WithDescription("List the files and folders under a Dropbox path."),
		mcp.WithString("path", mcp.Description("Remote folder path; empty string means the account root.")),
		mcp.WithBoolean("recursive", mcp.Description("Also list the contents of subfolders.")),
		mcp.WithNumber("limit", mcp.Description("Approximate maximum number of entries to return.")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle executes the dropbox_list_contents tool logic.
func (t *ListContentsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := readStringArg(req, "path")
	recursive := readBoolArg(req, "recursive", false)

	limit, invalid := requirePositiveLimit(req, "limit", 0)
	if invalid != nil {
		return invalid, nil
	}

	entries, hasMore, err := t.drv.ListContents(ctx, path, recursive, uint32(limit))
	if err != nil {
		return errorResultFromErr(err), nil
	}

	return jsonResult(map[string]any{
		"path":     path,
		"entries":  entries,
		"count":    len(entries),
		"has_more": hasMore,
	}), nil
}
