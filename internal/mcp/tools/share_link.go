package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// ShareLinkTool implements the dropbox_share_link MCP tool.
type ShareLinkTool struct {
	drv drive.Drive
	now Clock
}

// NewShareLinkTool constructs a ShareLinkTool.
func NewShareLinkTool(drv drive.Drive) (*ShareLinkTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	return &ShareLinkTool{drv: drv, now: time.Now}, nil
}

// Definition returns the MCP metadata for dropbox_share_link.
func (t *ShareLinkTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_share_link",
		mcp.WithDescription("Create a public shared link for a Dropbox file or folder."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Remote file or folder path.")),
		mcp.WithString("password", mcp.Description("Protect the link with this password. Requires a paid account.")),
		mcp.WithString("expires", mcp.Description("Link expiration as an RFC 3339 timestamp. Requires a paid account.")),
	)
}

// Handle executes the dropbox_share_link tool logic.
func (t *ShareLinkTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if err := drive.ValidatePath(path); err != nil {
		return errorResultFromErr(err), nil
	}

	opts := drive.ShareOptions{Password: readStringArg(req, "password")}

	if raw := readStringArg(req, "expires"); raw != "" {
		expires, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return errorResult(drive.KindInvalidInput,
				fmt.Sprintf("expires %q is not a valid RFC 3339 timestamp", raw)), nil
		}
		if !expires.After(t.now()) {
			return errorResult(drive.KindInvalidInput, "expiration date must be in the future"), nil
		}
		opts.Expires = expires
	}

	url, err := t.drv.CreateSharedLink(ctx, path, opts)
	if err != nil {
		return errorResultFromErr(err), nil
	}

	return jsonResult(map[string]any{
		"url":  url,
		"path": path,
	}), nil
}
