package tools

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// stubDrive implements drive.Drive with overridable behavior per method.
// Every call is counted so tests can assert that invalid input never
// reaches the provider.
type stubDrive struct {
	calls atomic.Int32

	downloadFn      func(ctx context.Context, path string) (*drive.Entry, io.ReadCloser, error)
	uploadFn        func(ctx context.Context, path string, content io.Reader, opts drive.UploadOptions) (*drive.Entry, error)
	deleteFn        func(ctx context.Context, path string) (*drive.Entry, error)
	moveFn          func(ctx context.Context, fromPath, toPath string, autorename bool) (*drive.Entry, error)
	listContentsFn  func(ctx context.Context, path string, recursive bool, limit uint32) ([]drive.Entry, bool, error)
	listRevisionsFn func(ctx context.Context, path, mode string, limit uint64) ([]drive.Revision, error)
	restoreFn       func(ctx context.Context, path, rev string) (*drive.Entry, error)
	searchFn        func(ctx context.Context, query string, maxResults uint64) ([]drive.Entry, error)
	createFolderFn  func(ctx context.Context, path string, autorename bool) (*drive.Entry, error)
	shareFn         func(ctx context.Context, path string, opts drive.ShareOptions) (string, error)
}

func (s *stubDrive) ProviderName() string { return "stub" }

func (s *stubDrive) Download(ctx context.Context, path string) (*drive.Entry, io.ReadCloser, error) {
	s.calls.Add(1)
	if s.downloadFn == nil {
		return nil, nil, drive.NewError(drive.KindUnknown, "unexpected download call")
	}
	return s.downloadFn(ctx, path)
}

func (s *stubDrive) Upload(ctx context.Context, path string, content io.Reader, opts drive.UploadOptions) (*drive.Entry, error) {
	s.calls.Add(1)
	if s.uploadFn == nil {
		return nil, drive.NewError(drive.KindUnknown, "unexpected upload call")
	}
	return s.uploadFn(ctx, path, content, opts)
}

func (s *stubDrive) Delete(ctx context.Context, path string) (*drive.Entry, error) {
	s.calls.Add(1)
	if s.deleteFn == nil {
		return nil, drive.NewError(drive.KindUnknown, "unexpected delete call")
	}
	return s.deleteFn(ctx, path)
}

func (s *stubDrive) Move(ctx context.Context, fromPath, toPath string, autorename bool) (*drive.Entry, error) {
	s.calls.Add(1)
	if s.moveFn == nil {
		return nil, drive.NewError(drive.KindUnknown, "unexpected move call")
	}
	return s.moveFn(ctx, fromPath, toPath, autorename)
}

func (s *stubDrive) ListContents(ctx context.Context, path string, recursive bool, limit uint32) ([]drive.Entry, bool, error) {
	s.calls.Add(1)
	if s.listContentsFn == nil {
		return nil, false, drive.NewError(drive.KindUnknown, "unexpected list call")
	}
	return s.listContentsFn(ctx, path, recursive, limit)
}

func (s *stubDrive) ListRevisions(ctx context.Context, path, mode string, limit uint64) ([]drive.Revision, error) {
	s.calls.Add(1)
	if s.listRevisionsFn == nil {
		return nil, drive.NewError(drive.KindUnknown, "unexpected list revisions call")
	}
	return s.listRevisionsFn(ctx, path, mode, limit)
}

func (s *stubDrive) Restore(ctx context.Context, path, rev string) (*drive.Entry, error) {
	s.calls.Add(1)
	if s.restoreFn == nil {
		return nil, drive.NewError(drive.KindUnknown, "unexpected restore call")
	}
	return s.restoreFn(ctx, path, rev)
}

func (s *stubDrive) Search(ctx context.Context, query string, maxResults uint64) ([]drive.Entry, error) {
	s.calls.Add(1)
	if s.searchFn == nil {
		return nil, drive.NewError(drive.KindUnknown, "unexpected search call")
	}
	return s.searchFn(ctx, query, maxResults)
}

func (s *stubDrive) CreateFolder(ctx context.Context, path string, autorename bool) (*drive.Entry, error) {
	s.calls.Add(1)
	if s.createFolderFn == nil {
		return nil, drive.NewError(drive.KindUnknown, "unexpected create folder call")
	}
	return s.createFolderFn(ctx, path, autorename)
}

func (s *stubDrive) CreateSharedLink(ctx context.Context, path string, opts drive.ShareOptions) (string, error) {
	s.calls.Add(1)
	if s.shareFn == nil {
		return "", drive.NewError(drive.KindUnknown, "unexpected share call")
	}
	return s.shareFn(ctx, path, opts)
}

// stubFetcher serves canned bodies per URL.
type stubFetcher struct {
	bodies map[string]string
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	body, ok := s.bodies[url]
	if !ok {
		return nil, drive.NewError(drive.KindInvalidInput, "invalid source url %q", url)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func newRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

// decodePayload extracts the JSON payload of a tool result.
func decodePayload(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(textContent.Text), &payload))
	return payload
}

// requireErrorCode asserts that a result is an error of the given kind.
func requireErrorCode(t *testing.T, result *mcp.CallToolResult, kind drive.Kind) {
	t.Helper()

	require.True(t, result.IsError)
	payload := decodePayload(t, result)
	require.Equal(t, string(kind), payload["code"])
}
