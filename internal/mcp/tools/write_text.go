package tools

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/common"
	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// WriteTextTool implements the dropbox_write_text MCP tool.
type WriteTextTool struct {
	drv drive.Drive
}

// NewWriteTextTool constructs a WriteTextTool.
func NewWriteTextTool(drv drive.Drive) (*WriteTextTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	return &WriteTextTool{drv: drv}, nil
}

// Definition returns the MCP metadata for dropbox_write_text.
func (t *WriteTextTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_write_text",
		mcp.WithDescription("Create a text file in Dropbox, or append to an existing one. "+
			"A .txt suffix is added when missing."),
		mcp.WithString("name", mcp.Required(), mcp.Description("File name, e.g. notes.txt.")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Text content to write.")),
		mcp.WithString("folder", mcp.Description("Destination folder path; empty string means the account root.")),
		mcp.WithBoolean("append", mcp.Description("Append to the file when it already exists.")),
	)
}

// Handle executes the dropbox_write_text tool logic.
func (t *WriteTextTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if !strings.HasSuffix(name, common.TextFileSuffix) {
		name += common.TextFileSuffix
	}
	if err := drive.ValidateEntryName(name); err != nil {
		return errorResultFromErr(err), nil
	}

	content, err := req.RequireString("content")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}

	dest := common.JoinRemote(readStringArg(req, "folder"), name)

	body := content
	appended := false
	opts := drive.UploadOptions{Mode: "add"}

	if readBoolArg(req, "append", false) {
		_, rc, downloadErr := t.drv.Download(ctx, dest)
		switch {
		case downloadErr == nil:
			existing, readErr := io.ReadAll(rc)
			rc.Close()
			if readErr != nil {
				return errorResult(drive.KindTransportFailure,
					fmt.Sprintf("could not read existing file %s: %v", dest, readErr)), nil
			}
			body = string(existing) + "\n" + content
			appended = true
			opts = drive.UploadOptions{Mode: "overwrite"}
		case drive.IsKind(downloadErr, drive.KindNotFound):
			// nothing to append to, create the file
		default:
			return errorResultFromErr(downloadErr), nil
		}
	}

	entry, err := t.drv.Upload(ctx, dest, strings.NewReader(body), opts)
	if err != nil {
		return errorResultFromErr(err), nil
	}

	return jsonResult(map[string]any{
		"file":     entry,
		"appended": appended,
	}), nil
}
