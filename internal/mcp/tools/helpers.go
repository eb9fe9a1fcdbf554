package tools

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
)

// errorResult builds a structured MCP error response.
func errorResult(kind drive.Kind, message string) *mcp.CallToolResult {
	payload := map[string]any{
		"code":    string(kind),
		"message": message,
	}
	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError(message)
	}
	result.IsError = true
	return result
}

// errorResultFromErr converts a gateway error into a tool response.
func errorResultFromErr(err error) *mcp.CallToolResult {
	if typed, ok := drive.AsError(err); ok {
		return errorResult(typed.Kind, typed.Message)
	}
	return errorResult(drive.KindUnknown, err.Error())
}

// jsonResult encodes a success payload.
func jsonResult(payload any) *mcp.CallToolResult {
	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return errorResult(drive.KindUnknown, "failed to encode response")
	}
	return result
}

// readStringArg extracts an optional string argument from the request.
func readStringArg(req mcp.CallToolRequest, key string) string {
	if raw, ok := req.Params.Arguments.(map[string]any); ok {
		if value, ok := raw[key].(string); ok {
			return value
		}
	}
	return ""
}

// readBoolArg extracts an optional bool argument with a default fallback.
func readBoolArg(req mcp.CallToolRequest, key string, def bool) bool {
	if raw, ok := req.Params.Arguments.(map[string]any); ok {
		if value, ok := raw[key].(bool); ok {
			return value
		}
	}
	return def
}

// readIntArg extracts an optional integer argument. The second return value
// reports whether the argument was present and numeric.
func readIntArg(req mcp.CallToolRequest, key string) (int, bool) {
	if raw, ok := req.Params.Arguments.(map[string]any); ok {
		switch value := raw[key].(type) {
		case int:
			return value, true
		case int64:
			return int(value), true
		case float64:
			return int(value), true
		}
	}
	return 0, false
}

// readStringSliceArg extracts an optional list-of-strings argument. Items of
// other types are ignored.
func readStringSliceArg(req mcp.CallToolRequest, key string) []string {
	raw, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}

	items, ok := raw[key].([]any)
	if !ok {
		return nil
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}

// requirePositiveLimit validates an optional positive numeric argument,
// falling back to def when absent.
func requirePositiveLimit(req mcp.CallToolRequest, key string, def int) (int, *mcp.CallToolResult) {
	value, ok := readIntArg(req, key)
	if !ok {
		return def, nil
	}
	if value <= 0 {
		return 0, errorResult(drive.KindInvalidInput, key+" must be a positive integer")
	}
	return value, nil
}
