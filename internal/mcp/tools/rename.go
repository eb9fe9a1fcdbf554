package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/common"
	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// RenameTool implements the dropbox_rename MCP tool.
type RenameTool struct {
	drv drive.Drive
}

// NewRenameTool constructs a RenameTool.
func NewRenameTool(drv drive.Drive) (*RenameTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	return &RenameTool{drv: drv}, nil
}

// Definition returns the MCP metadata for dropbox_rename.
func (t *RenameTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_rename",
		mcp.WithDescription("Rename a Dropbox file or folder in place. Include the extension for files."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Remote file or folder path.")),
		mcp.WithString("new_name", mcp.Required(), mcp.Description("New entry name without path separators.")),
		mcp.WithBoolean("autorename", mcp.Description("Let the provider pick another name on conflict.")),
		mcp.WithIdempotentHintAnnotation(false),
	)
}

// Handle executes the dropbox_rename tool logic.
func (t *RenameTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if err := drive.ValidatePath(path); err != nil {
		return errorResultFromErr(err), nil
	}

	newName, err := req.RequireString("new_name")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if err := drive.ValidateEntryName(newName); err != nil {
		return errorResultFromErr(err), nil
	}

	target := common.ReplaceName(path, newName)
	autorename := readBoolArg(req, "autorename", false)

	entry, err := t.drv.Move(ctx, path, target, autorename)
	if err != nil {
		return errorResultFromErr(err), nil
	}

	return jsonResult(map[string]any{
		"renamed": entry,
		"from":    path,
	}), nil
}
