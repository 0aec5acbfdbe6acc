package docs_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/jottr/clickup-docs-mcp/internal/clickup"
	"github.com/jottr/clickup-docs-mcp/internal/server"
	"github.com/jottr/clickup-docs-mcp/internal/tools/common"
)

// registerSharingTools registers sharing configuration tools. The update
// operation is skipped in read-only mode.
func registerSharingTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	getSharingTool := mcp.NewTool("clickup_get_sharing",
		mcp.WithDescription("Get the sharing configuration of a ClickUp document"),
		mcp.WithString("doc_id",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
	)

	s.AddTool(getSharingTool, common.InstrumentedToolHandlerWithOperation(
		"clickup_get_sharing", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetSharing(ctx, request, sc)
		}))

	if !readOnly {
		updateSharingTool := mcp.NewTool("clickup_update_sharing",
			mcp.WithDescription("Update the sharing configuration of a ClickUp document. At least one setting must be provided."),
			mcp.WithString("doc_id",
				mcp.Required(),
				mcp.Description("The ID of the document"),
			),
			mcp.WithBoolean("public",
				mcp.Description("Whether the document is publicly accessible"),
			),
			mcp.WithString("public_share_expires_on",
				mcp.Description("Expiry timestamp for the public share link"),
			),
			mcp.WithArray("public_fields",
				mcp.Description("Document fields exposed on the public page"),
			),
			mcp.WithBoolean("team_sharing",
				mcp.Description("Whether the document is shared with the whole team"),
			),
			mcp.WithBoolean("guest_sharing",
				mcp.Description("Whether guests can access the document"),
			),
		)

		s.AddTool(updateSharingTool, common.InstrumentedToolHandlerWithOperation(
			"clickup_update_sharing", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleUpdateSharing(ctx, request, sc)
			}))
	}

	return nil
}

func handleGetSharing(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	docID, errResult := requiredString(args, "doc_id")
	if errResult != nil {
		return errResult, nil
	}

	sharing, err := sc.Client().GetSharing(ctx, docID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get sharing: %v", err)), nil
	}

	return jsonResult(sharing)
}

func handleUpdateSharing(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	docID, errResult := requiredString(args, "doc_id")
	if errResult != nil {
		return errResult, nil
	}

	req := clickup.UpdateSharingRequest{
		Public:       optionalBool(args, "public"),
		PublicFields: optionalStringSlice(args, "public_fields"),
		TeamSharing:  optionalBool(args, "team_sharing"),
		GuestSharing: optionalBool(args, "guest_sharing"),
	}
	if expires, ok := args["public_share_expires_on"].(string); ok {
		req.PublicShareExpiresOn = &expires
	}

	sharing, err := sc.Client().UpdateSharing(ctx, docID, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update sharing: %v", err)), nil
	}

	return jsonResult(sharing)
}
