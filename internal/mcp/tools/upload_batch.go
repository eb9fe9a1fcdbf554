package tools

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/common"
	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// UploadBatchTool implements the dropbox_upload_batch MCP tool.
type UploadBatchTool struct {
	drv     drive.Drive
	fetcher Fetcher
}

// NewUploadBatchTool constructs an UploadBatchTool.
func NewUploadBatchTool(drv drive.Drive, fetcher Fetcher) (*UploadBatchTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher is required")
	}
	return &UploadBatchTool{drv: drv, fetcher: fetcher}, nil
}

// Definition returns the MCP metadata for dropbox_upload_batch.
func (t *UploadBatchTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_upload_batch",
		mcp.WithDescription("Upload multiple files to a Dropbox folder from URLs and/or local paths. "+
			"Each file succeeds or fails independently."),
		mcp.WithArray("urls", mcp.Description("Source URLs to fetch files from."),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("local_paths", mcp.Description("Local files to upload."),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("names", mcp.Description("Uploaded file names: one per URL first, then one per local path."),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("folder", mcp.Description("Destination folder path; empty string means the account root.")),
		mcp.WithString("mode", mcp.Description("Write mode: 'add' (default) or 'overwrite'.")),
		mcp.WithBoolean("autorename", mcp.Description("Let the provider pick other names on conflict.")),
	)
}

// Handle executes the dropbox_upload_batch tool logic.
func (t *UploadBatchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	urls := readStringSliceArg(req, "urls")
	localPaths := readStringSliceArg(req, "local_paths")
	names := readStringSliceArg(req, "names")

	total := len(urls) + len(localPaths)
	if total == 0 {
		return errorResult(drive.KindInvalidInput, "at least one of urls or local_paths is required"), nil
	}
	if len(names) != total {
		return errorResult(drive.KindInvalidInput,
			fmt.Sprintf("number of names (%d) must match the number of files (%d)", len(names), total)), nil
	}

	mode := readStringArg(req, "mode")
	if err := drive.ValidateWriteMode(mode); err != nil {
		return errorResultFromErr(err), nil
	}

	folder := readStringArg(req, "folder")
	autorename := readBoolArg(req, "autorename", false)

	results := make([]map[string]any, 0, total)
	succeeded := 0
	idx := 0
	for _, srcURL := range urls {
		item := t.uploadOne(ctx, srcURL, names[idx], folder, mode, true, autorename)
		if item["success"] == true {
			succeeded++
		}
		results = append(results, item)
		idx++
	}
	for _, localPath := range localPaths {
		item := t.uploadOne(ctx, localPath, names[idx], folder, mode, false, autorename)
		if item["success"] == true {
			succeeded++
		}
		results = append(results, item)
		idx++
	}

	return jsonResult(map[string]any{
		"results":   results,
		"total":     total,
		"succeeded": succeeded,
	}), nil
}

// uploadOne uploads a single batch item. Failures are captured in the item
// result so that one bad item never aborts the batch.
func (t *UploadBatchTool) uploadOne(ctx context.Context, source, name, folder, mode string, fromURL, autorename bool) map[string]any {
	item := map[string]any{
		"name":    name,
		"source":  source,
		"success": false,
	}
	fail := func(err error) map[string]any {
		typed, ok := drive.AsError(err)
		if !ok {
			typed = drive.NewError(drive.KindUnknown, "%v", err)
		}
		item["error"] = map[string]any{
			"code":    string(typed.Kind),
			"message": typed.Message,
		}
		return item
	}

	if err := drive.ValidateEntryName(name); err != nil {
		return fail(err)
	}

	var content io.ReadCloser
	if fromURL {
		c, err := t.fetcher.Fetch(ctx, source)
		if err != nil {
			return fail(err)
		}
		content = c
	} else {
		f, err := os.Open(source)
		if err != nil {
			return fail(drive.NewError(drive.KindInvalidInput, "could not open local file %s: %v", source, err))
		}
		content = f
	}
	defer content.Close()

	opts := drive.UploadOptions{Mode: mode, Autorename: autorename}
	entry, err := t.drv.Upload(ctx, common.JoinRemote(folder, name), content, opts)
	if err != nil {
		return fail(err)
	}

	item["success"] = true
	item["file"] = entry
	return item
}
