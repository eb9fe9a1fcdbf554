package tools

import (
	"context"
	"io"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// Clock returns the current time. It enables deterministic tests.
type Clock func() time.Time

// Tool exposes the capabilities required by the MCP server registration
// lifecycle.
type Tool interface {
	Definition() mcp.Tool
	Handle(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Fetcher retrieves the content behind an upload-source URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}
