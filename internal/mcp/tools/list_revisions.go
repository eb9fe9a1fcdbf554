package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// ListRevisionsTool implements the dropbox_list_revisions MCP tool.
type ListRevisionsTool struct {
	drv drive.Drive
}

// NewListRevisionsTool constructs a ListRevisionsTool.
func NewListRevisionsTool(drv drive.Drive) (*ListRevisionsTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	return &ListRevisionsTool{drv: drv}, nil
}

// Definition returns the MCP metadata for dropbox_list_revisions.
func (t *ListRevisionsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_list_revisions",
		mcp.WithDescription("List the tracked revisions of a Dropbox file."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Remote file path, or a file id when mode is 'id'.")),
		mcp.WithString("mode", mcp.Description("Revision addressing mode: 'path' (default) or 'id'.")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of revisions to return.")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle executes the dropbox_list_revisions tool logic.
func (t *ListRevisionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if err := drive.ValidatePath(path); err != nil {
		return errorResultFromErr(err), nil
	}

	mode := readStringArg(req, "mode")
	if err := drive.ValidateRevisionsMode(mode); err != nil {
		return errorResultFromErr(err), nil
	}

	limit, invalid := requirePositiveLimit(req, "limit", 0)
	if invalid != nil {
		return invalid, nil
	}

	revisions, err := t.drv.ListRevisions(ctx, path, mode, uint64(limit))
	if err != nil {
		return errorResultFromErr(err), nil
	}

	return jsonResult(map[string]any{
		"path":      path,
		"revisions": revisions,
		"count":     len(revisions),
	}), nil
}
