package tools

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// TestDownloadMissingPath verifies that validation fails before any provider call.
func TestDownloadMissingPath(t *testing.T) {
	stub := &stubDrive{}
	tool, err := NewDownloadTool(stub, t.TempDir())
	require.NoError(t, err)

	result, handleErr := tool.Handle(context.Background(), newRequest(map[string]any{}))
	require.NoError(t, handleErr)
	requireErrorCode(t, result, drive.KindInvalidInput)
	require.Zero(t, stub.calls.Load())
}

// TestDownloadNotFound verifies provider error mapping.
func TestDownloadNotFound(t *testing.T) {
	stub := &stubDrive{
		downloadFn: func(ctx context.Context, path string) (*drive.Entry, io.ReadCloser, error) {
			return nil, nil, drive.NewError(drive.KindNotFound, "download %s: not_found", path)
		},
	}
	tool, err := NewDownloadTool(stub, t.TempDir())
	require.NoError(t, err)

	result, handleErr := tool.Handle(context.Background(), newRequest(map[string]any{"path": "/missing.txt"}))
	require.NoError(t, handleErr)
	requireErrorCode(t, result, drive.KindNotFound)
}

// TestDownloadWritesLocalFile verifies the downloaded content lands on disk.
func TestDownloadWritesLocalFile(t *testing.T) {
	stub := &stubDrive{
		downloadFn: func(ctx context.Context, path string) (*drive.Entry, io.ReadCloser, error) {
			return &drive.Entry{Name: "report.pdf", Path: path, Type: drive.EntryTypeFile},
				io.NopCloser(strings.NewReader("file body")), nil
		},
	}
	dir := t.TempDir()
	tool, err := NewDownloadTool(stub, dir)
	require.NoError(t, err)

	result, handleErr := tool.Handle(context.Background(), newRequest(map[string]any{
		"path": "/docs/report.pdf",
		"name": "copy.pdf",
	}))
	require.NoError(t, handleErr)
	require.False(t, result.IsError)

	payload := decodePayload(t, result)
	localPath, ok := payload["local_path"].(string)
	require.True(t, ok)
	require.Contains(t, localPath, "copy.pdf")

	content, readErr := os.ReadFile(localPath)
	require.NoError(t, readErr)
	require.Equal(t, "file body", string(content))
}

// TestDownloadConcurrent verifies that two simultaneous downloads of the same
// file never collide on their local names.
func TestDownloadConcurrent(t *testing.T) {
	stub := &stubDrive{
		downloadFn: func(ctx context.Context, path string) (*drive.Entry, io.ReadCloser, error) {
			return &drive.Entry{Name: "shared.txt", Path: path, Type: drive.EntryTypeFile},
				io.NopCloser(strings.NewReader("same content")), nil
		},
	}
	tool, err := NewDownloadTool(stub, t.TempDir())
	require.NoError(t, err)

	paths := make(chan string, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, handleErr := tool.Handle(context.Background(), newRequest(map[string]any{"path": "/shared.txt"}))
			require.NoError(t, handleErr)
			require.False(t, result.IsError)
			paths <- decodePayload(t, result)["local_path"].(string)
		}()
	}
	wg.Wait()
	close(paths)

	first := <-paths
	second := <-paths
	require.NotEqual(t, first, second)
	for _, p := range []string{first, second} {
		content, readErr := os.ReadFile(p)
		require.NoError(t, readErr)
		require.Equal(t, "same content", string(content))
	}
}
