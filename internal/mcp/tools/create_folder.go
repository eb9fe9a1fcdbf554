package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/common"
	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// CreateFolderTool implements the dropbox_create_folder MCP tool.
type CreateFolderTool struct {
	drv drive.Drive
}

// NewCreateFolderTool constructs a CreateFolderTool.
func NewCreateFolderTool(drv drive.Drive) (*CreateFolderTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	return &CreateFolderTool{drv: drv}, nil
}

// Definition returns the MCP metadata for dropbox_create_folder.
func (t *CreateFolderTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_create_folder",
		mcp.WithDescription("Create a folder in Dropbox."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the new folder.")),
		mcp.WithString("parent", mcp.Description("Parent folder path; empty string means the account root.")),
		mcp.WithBoolean("autorename", mcp.DefaultBool(true),
			mcp.Description("Let the provider pick another name on conflict.")),
		mcp.WithIdempotentHintAnnotation(false),
	)
}

// Handle executes the dropbox_create_folder tool logic.
func (t *CreateFolderTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if err := drive.ValidateEntryName(name); err != nil {
		return errorResultFromErr(err), nil
	}

	path := common.JoinRemote(readStringArg(req, "parent"), name)
	autorename := readBoolArg(req, "autorename", true)

	entry, err := t.drv.CreateFolder(ctx, path, autorename)
	if err != nil {
		return errorResultFromErr(err), nil
	}

	return jsonResult(map[string]any{
		"folder": entry,
	}), nil
}
