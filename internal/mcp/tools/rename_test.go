package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// TestRenameInvalidNames verifies name validation before any provider call.
func TestRenameInvalidNames(t *testing.T) {
	stub := &stubDrive{}
	tool, err := NewRenameTool(stub)
	require.NoError(t, err)

	for _, name := range []string{"", "  ", "a/b.txt", `a\b.txt`, ".", "..", "bad|name.txt", "q?.txt"} {
		result, handleErr := tool.Handle(context.Background(), newRequest(map[string]any{
			"path":     "/docs/old.txt",
			"new_name": name,
		}))
		require.NoError(t, handleErr)
		requireErrorCode(t, result, drive.KindInvalidInput)
	}
	require.Zero(t, stub.calls.Load())
}

// TestRenameSuccess verifies the in-place move target.
func TestRenameSuccess(t *testing.T) {
	var gotFrom, gotTo string
	stub := &stubDrive{
		moveFn: func(ctx context.Context, fromPath, toPath string, autorename bool) (*drive.Entry, error) {
			gotFrom, gotTo = fromPath, toPath
			return &drive.Entry{Name: "new.txt", Path: toPath, Type: drive.EntryTypeFile}, nil
		},
	}
	tool, err := NewRenameTool(stub)
	require.NoError(t, err)

	result, handleErr := tool.Handle(context.Background(), newRequest(map[string]any{
		"path":     "/docs/old.txt",
		"new_name": "new.txt",
	}))
	require.NoError(t, handleErr)
	require.False(t, result.IsError)

	require.Equal(t, "/docs/old.txt", gotFrom)
	require.Equal(t, "/docs/new.txt", gotTo)

	payload := decodePayload(t, result)
	renamed, ok := payload["renamed"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "/docs/new.txt", renamed["path"])
}

// TestRenameRootEntry verifies renaming an entry that lives in the root folder.
func TestRenameRootEntry(t *testing.T) {
	var gotTo string
	stub := &stubDrive{
		moveFn: func(ctx context.Context, fromPath, toPath string, autorename bool) (*drive.Entry, error) {
			gotTo = toPath
			return &drive.Entry{Name: "new.txt", Path: toPath, Type: drive.EntryTypeFile}, nil
		},
	}
	tool, err := NewRenameTool(stub)
	require.NoError(t, err)

	result, handleErr := tool.Handle(context.Background(), newRequest(map[string]any{
		"path":     "/old.txt",
		"new_name": "new.txt",
	}))
	require.NoError(t, handleErr)
	require.False(t, result.IsError)
	require.Equal(t, "/new.txt", gotTo)
}

// TestRenameConflictMapping verifies provider error mapping.
func TestRenameConflictMapping(t *testing.T) {
	stub := &stubDrive{
		moveFn: func(ctx context.Context, fromPath, toPath string, autorename bool) (*drive.Entry, error) {
			return nil, drive.NewError(drive.KindConflict, "move %s to %s: conflict", fromPath, toPath)
		},
	}
	tool, err := NewRenameTool(stub)
	require.NoError(t, err)

	result, handleErr := tool.Handle(context.Background(), newRequest(map[string]any{
		"path":     "/docs/old.txt",
		"new_name": "taken.txt",
	}))
	require.NoError(t, handleErr)
	requireErrorCode(t, result, drive.KindConflict)
}
