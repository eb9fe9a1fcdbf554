package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// TestListRevisionsInvalidMode verifies mode validation before any provider call.
func TestListRevisionsInvalidMode(t *testing.T) {
	stub := &stubDrive{}
	tool, err := NewListRevisionsTool(stub)
	require.NoError(t, err)

	result, handleErr := tool.Handle(context.Background(), newRequest(map[string]any{
		"path": "/a.txt",
		"mode": "rev",
	}))
	require.NoError(t, handleErr)
	requireErrorCode(t, result, drive.KindInvalidInput)
	require.Zero(t, stub.calls.Load())
}

// TestListRevisionsSuccess verifies parameter forwarding and the revisions payload.
func TestListRevisionsSuccess(t *testing.T) {
	var gotMode string
	var gotLimit uint64
	stub := &stubDrive{
		listRevisionsFn: func(ctx context.Context, path, mode string, limit uint64) ([]drive.Revision, error) {
			gotMode, gotLimit = mode, limit
			return []drive.Revision{
				{Rev: "011", Path: path, Size: 10, Modified: time.Now().UTC()},
				{Rev: "010", Path: path, Size: 8, Modified: time.Now().UTC()},
			}, nil
		},
	}
	tool, err := NewListRevisionsTool(stub)
	require.NoError(t, err)

	result, handleErr := tool.Handle(context.Background(), newRequest(map[string]any{
		"path":  "/a.txt",
		"mode":  "path",
		"limit": 2,
	}))
	require.NoError(t, handleErr)
	require.False(t, result.IsError)

	require.Equal(t, "path", gotMode)
	require.Equal(t, uint64(2), gotLimit)

	payload := decodePayload(t, result)
	require.Equal(t, float64(2), payload["count"])
}
