package tools

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/common"
	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// UploadTool implements the dropbox_upload MCP tool.
type UploadTool struct {
	drv     drive.Drive
	fetcher Fetcher
}

// NewUploadTool constructs an UploadTool.
func NewUploadTool(drv drive.Drive, fetcher Fetcher) (*UploadTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher is required")
	}
	return &UploadTool{drv: drv, fetcher: fetcher}, nil
}

// Definition returns the MCP metadata for dropbox_upload.
func (t *UploadTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_upload",
		mcp.WithDescription("Upload a single file to Dropbox from a URL or a local path."),
		mcp.WithString("url", mcp.Description("Source URL to fetch the file from. Mutually exclusive with local_path.")),
		mcp.WithString("local_path", mcp.Description("Local file to upload. Mutually exclusive with url.")),
		mcp.WithString("folder", mcp.Description("Destination folder path; empty string means the account root.")),
		mcp.WithString("name", mcp.Description("Uploaded file name; derived from the source when omitted.")),
		mcp.WithString("mode", mcp.Description("Write mode: 'add' (default) or 'overwrite'.")),
		mcp.WithBoolean("autorename", mcp.Description("Let the provider pick another name on conflict.")),
	)
}

// Handle executes the dropbox_upload tool logic.
func (t *UploadTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	srcURL := strings.TrimSpace(readStringArg(req, "url"))
	localPath := strings.TrimSpace(readStringArg(req, "local_path"))
	if (srcURL == "") == (localPath == "") {
		return errorResult(drive.KindInvalidInput, "exactly one of url or local_path is required"), nil
	}

	mode := readStringArg(req, "mode")
	if err := drive.ValidateWriteMode(mode); err != nil {
		return errorResultFromErr(err), nil
	}

	name := strings.TrimSpace(readStringArg(req, "name"))
	if name == "" {
		name = defaultUploadName(srcURL, localPath)
	}
	if err := drive.ValidateEntryName(name); err != nil {
		return errorResultFromErr(err), nil
	}

	var content io.ReadCloser
	if srcURL != "" {
		c, err := t.fetcher.Fetch(ctx, srcURL)
		if err != nil {
			return errorResultFromErr(err), nil
		}
		content = c
	} else {
		f, err := os.Open(localPath)
		if err != nil {
			return errorResult(drive.KindInvalidInput, fmt.Sprintf("could not open local file %s: %v", localPath, err)), nil
		}
		content = f
	}
	defer content.Close()

	dest := common.JoinRemote(readStringArg(req, "folder"), name)
	opts := drive.UploadOptions{Mode: mode, Autorename: readBoolArg(req, "autorename", false)}

	entry, err := t.drv.Upload(ctx, dest, content, opts)
	if err != nil {
		return errorResultFromErr(err), nil
	}

	return jsonResult(map[string]any{
		"file": entry,
	}), nil
}

// defaultUploadName derives the uploaded file name from the source.
func defaultUploadName(srcURL, localPath string) string {
	if localPath != "" {
		return filepath.Base(localPath)
	}

	u, err := url.Parse(srcURL)
	if err != nil {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
