package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/common"
	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// MoveTool implements the dropbox_move MCP tool.
type MoveTool struct {
	drv drive.Drive
}

// NewMoveTool constructs a MoveTool.
func NewMoveTool(drv drive.Drive) (*MoveTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	return &MoveTool{drv: drv}, nil
}

// Definition returns the MCP metadata for dropbox_move.
func (t *MoveTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_move",
		mcp.WithDescription("Move a Dropbox file or folder into another folder, keeping its name."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Remote file or folder path to move.")),
		mcp.WithString("destination", mcp.Required(), mcp.Description("Destination folder path.")),
		mcp.WithBoolean("autorename", mcp.Description("Let the provider pick another name on conflict.")),
		mcp.WithIdempotentHintAnnotation(false),
	)
}

// Handle executes the dropbox_move tool logic.
func (t *MoveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if err := drive.ValidatePath(path); err != nil {
		return errorResultFromErr(err), nil
	}

	destination, err := req.RequireString("destination")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if err := drive.ValidatePath(destination); err != nil {
		return errorResultFromErr(err), nil
	}

	target := common.JoinRemote(destination, common.BaseName(path))
	autorename := readBoolArg(req, "autorename", false)

	entry, err := t.drv.Move(ctx, path, target, autorename)
	if err != nil {
		return errorResultFromErr(err), nil
	}

	return jsonResult(map[string]any{
		"moved": entry,
		"from":  path,
	}), nil
}
