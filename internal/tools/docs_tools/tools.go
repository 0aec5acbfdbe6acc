package docs_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/jottr/clickup-docs-mcp/internal/server"
	"github.com/jottr/clickup-docs-mcp/internal/tools/common"
)

// RegisterDocsTools registers all ClickUp Docs tools with the MCP server.
// When readOnly is true, tools that create, update or delete remote
// resources are not registered.
func RegisterDocsTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := registerWorkspaceTools(s, sc); err != nil {
		return fmt.Errorf("failed to register workspace tools: %w", err)
	}

	if err := registerDocTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register doc tools: %w", err)
	}

	if err := registerPageTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register page tools: %w", err)
	}

	if err := registerSharingTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register sharing tools: %w", err)
	}

	return nil
}

// registerWorkspaceTools registers the workspace listing tool.
func registerWorkspaceTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listWorkspacesTool := mcp.NewTool("clickup_list_workspaces",
		mcp.WithDescription("List all ClickUp workspaces (teams) the API token can access. Workspace IDs are required by most other tools."),
	)

	s.AddTool(listWorkspacesTool, common.InstrumentedToolHandlerWithOperation(
		"clickup_list_workspaces", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListWorkspaces(ctx, request, sc)
		}))

	return nil
}

func handleListWorkspaces(ctx context.Context, _ mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	workspaces, err := sc.Client().ListWorkspaces(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list workspaces: %v", err)), nil
	}

	return jsonResult(workspaces)
}

// requiredString extracts a required string argument. The second return
// value is an error result to hand back to the host when the argument is
// missing or empty.
func requiredString(args map[string]any, key string) (string, *mcp.CallToolResult) {
	value, ok := args[key].(string)
	if !ok || value == "" {
		return "", mcp.NewToolResultError(fmt.Sprintf("%s is required", key))
	}
	return value, nil
}

// optionalString extracts an optional string argument, returning "" when absent.
func optionalString(args map[string]any, key string) string {
	if value, ok := args[key].(string); ok {
		return value
	}
	return ""
}

// optionalBool extracts an optional boolean argument. Returns nil when absent.
func optionalBool(args map[string]any, key string) *bool {
	if value, ok := args[key].(bool); ok {
		return &value
	}
	return nil
}

// optionalNumber extracts an optional numeric argument. JSON numbers
// arrive as float64. Returns nil when absent.
func optionalNumber(args map[string]any, key string) *float64 {
	if value, ok := args[key].(float64); ok {
		return &value
	}
	return nil
}

// optionalStringSlice extracts an optional array-of-strings argument.
// Returns nil when absent or when any element is not a string.
func optionalStringSlice(args map[string]any, key string) *[]string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		values = append(values, s)
	}
	return &values
}

// optionalStringMap extracts an optional object argument whose values are
// all strings. Returns nil when absent or mistyped.
func optionalStringMap(args map[string]any, key string) map[string]string {
	raw, ok := args[key].(map[string]any)
	if !ok {
		return nil
	}
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil
		}
		values[k] = s
	}
	return values
}

// jsonResult renders a value as an indented JSON tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
