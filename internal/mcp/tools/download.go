package tools

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/common"
	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// DownloadTool implements the dropbox_download MCP tool.
type DownloadTool struct {
	drv drive.Drive
	dir string
}

// NewDownloadTool constructs a DownloadTool writing into downloadDir.
func NewDownloadTool(drv drive.Drive, downloadDir string) (*DownloadTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	if downloadDir == "" {
		downloadDir = os.TempDir()
	}
	return &DownloadTool{drv: drv, dir: downloadDir}, nil
}

// Definition returns the MCP metadata for dropbox_download.
func (t *DownloadTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_download",
		mcp.WithDescription("Download a Dropbox file to a local temporary file and return the local path."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Remote file path, e.g. /docs/report.pdf.")),
		mcp.WithString("name", mcp.Description("Local file name; a unique name is generated when omitted.")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle executes the dropbox_download tool logic.
func (t *DownloadTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if err := drive.ValidatePath(path); err != nil {
		return errorResultFromErr(err), nil
	}

	md, content, err := t.drv.Download(ctx, path)
	if err != nil {
		return errorResultFromErr(err), nil
	}
	defer content.Close()

	name := strings.TrimSpace(readStringArg(req, "name"))
	if name == "" {
		name = common.UniqueLocalName(md.Name)
	}
	localPath := filepath.Join(t.dir, name)

	f, err := os.Create(localPath)
	if err != nil {
		return errorResult(drive.KindUnknown, fmt.Sprintf("could not create local file: %v", err)), nil
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(localPath)
		return errorResult(drive.KindTransportFailure, fmt.Sprintf("could not write local file: %v", err)), nil
	}

	return jsonResult(map[string]any{
		"local_path": localPath,
		"file":       md,
	}), nil
}
