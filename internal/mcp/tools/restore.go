package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// RestoreTool implements the dropbox_restore MCP tool.
type RestoreTool struct {
	drv drive.Drive
}

// NewRestoreTool constructs a RestoreTool.
func NewRestoreTool(drv drive.Drive) (*RestoreTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	return &RestoreTool{drv: drv}, nil
}

// Definition returns the MCP metadata for dropbox_restore.
func (t *RestoreTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_restore",
		mcp.WithDescription("Restore a previous revision of a Dropbox file, making it the current version."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Remote file path.")),
		mcp.WithString("revision", mcp.Required(), mcp.Description("Revision id to restore.")),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle executes the dropbox_restore tool logic.
func (t *RestoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if err := drive.ValidatePath(path); err != nil {
		return errorResultFromErr(err), nil
	}

	revision, err := req.RequireString("revision")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if strings.TrimSpace(revision) == "" {
		return errorResult(drive.KindInvalidInput, "revision is required"), nil
	}

	entry, err := t.drv.Restore(ctx, path, revision)
	if err != nil {
		return errorResultFromErr(err), nil
	}

	return jsonResult(map[string]any{
		"restored": entry,
		"revision": revision,
	}), nil
}
