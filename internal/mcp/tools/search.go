package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/common"
	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// SearchTool implements the dropbox_search MCP tool.
type SearchTool struct {
	drv drive.Drive
}

// NewSearchTool constructs a SearchTool.
func NewSearchTool(drv drive.Drive) (*SearchTool, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	return &SearchTool{drv: drv}, nil
}

// Definition returns the MCP metadata for dropbox_search.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"dropbox_search",
		mcp.WithDescription("Search Dropbox files and folders by name or content."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Plain text search query.")),
		mcp.WithNumber("max_results", mcp.DefaultNumber(common.DefaultSearchMaxResults),
			mcp.Description("Maximum number of matches to return.")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle executes the dropbox_search tool logic.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return errorResult(drive.KindInvalidInput, err.Error()), nil
	}
	if strings.TrimSpace(query) == "" {
		return errorResult(drive.KindInvalidInput, "query is required"), nil
	}

	maxResults, invalid := requirePositiveLimit(req, "max_results", common.DefaultSearchMaxResults)
	if invalid != nil {
		return invalid, nil
	}

	matches, err := t.drv.Search(ctx, query, uint64(maxResults))
	if err != nil {
		return errorResultFromErr(err), nil
	}

	return jsonResult(map[string]any{
		"query":         query,
		"matches":       matches,
		"total_matches": len(matches),
	}), nil
}
