package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// DeleteTool implements the dropbox_delete MCP tool.
type DeleteTool struct {
	drv drive.Drive
}

// NewDeleteTool constructs a DeleteTool.
func NewDeleteTool(drv drive.Drive) (*DeleteTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	return &DeleteTool{drv: drv}, nil
}

// Definition returns the MCP metadata for dropbox_delete.
func (t *DeleteTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_delete",
		mcp.WithDescription("Permanently delete a Dropbox file or folder."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Remote file or folder path.")),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(false),
	)
}

// Handle executes the dropbox_delete tool logic.
func (t *DeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if err := drive.ValidatePath(path); err != nil {
		return errorResultFromErr(err), nil
	}

	entry, err := t.drv.Delete(ctx, path)
	if err != nil {
		return errorResultFromErr(err), nil
	}

	return jsonResult(map[string]any{
		"deleted": entry,
	}), nil
}
