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

// registerDocTools registers document-level tools. Write operations are
// skipped in read-only mode.
func registerDocTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	listDocsTool := mcp.NewTool("clickup_list_docs",
		mcp.WithDescription("List documents in a ClickUp workspace with optional pagination and filters"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("The ID of the workspace to list documents from"),
		),
		mcp.WithString("cursor",
			mcp.Description("Pagination cursor from a previous listing"),
		),
		mcp.WithBoolean("deleted",
			mcp.Description("Include soft-deleted documents"),
		),
		mcp.WithBoolean("archived",
			mcp.Description("Include archived documents"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of documents to return (1-100)"),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	s.AddTool(listDocsTool, common.InstrumentedToolHandlerWithOperation(
		"clickup_list_docs", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListDocs(ctx, request, sc)
		}))

	searchDocsTool := mcp.NewTool("clickup_search_docs",
		mcp.WithDescription("Search documents in a ClickUp workspace by name. A query prefixed with 'space:' filters by space ID instead."),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("The ID of the workspace to search"),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query matched against document names, or 'space:<id>' to filter by space"),
		),
		mcp.WithString("cursor",
			mcp.Description("Pagination cursor from a previous search"),
		),
	)

	s.AddTool(searchDocsTool, common.InstrumentedToolHandlerWithOperation(
		"clickup_search_docs", "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchDocs(ctx, request, sc)
		}))

	getDocTool := mcp.NewTool("clickup_get_doc",
		mcp.WithDescription("Get metadata for a ClickUp document"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("The ID of the workspace containing the document"),
		),
		mcp.WithString("doc_id",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
	)

	s.AddTool(getDocTool, common.InstrumentedToolHandlerWithOperation(
		"clickup_get_doc", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetDoc(ctx, request, sc)
		}))

	if !readOnly {
		createDocTool := mcp.NewTool("clickup_create_doc",
			mcp.WithDescription("Create a new ClickUp document. Exactly one of workspace_id, space_id or folder_id must be provided as the location."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The name of the new document"),
			),
			mcp.WithString("workspace_id",
				mcp.Description("Workspace to create the document in"),
			),
			mcp.WithString("space_id",
				mcp.Description("Space to create the document in"),
			),
			mcp.WithString("folder_id",
				mcp.Description("Folder to create the document in"),
			),
			mcp.WithString("content",
				mcp.Description("Initial content for the document's first page"),
			),
			mcp.WithBoolean("public",
				mcp.Description("Whether the document is publicly shared"),
			),
			mcp.WithString("template_id",
				mcp.Description("Template to create the document from"),
			),
		)

		s.AddTool(createDocTool, common.InstrumentedToolHandlerWithOperation(
			"clickup_create_doc", "create", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCreateDoc(ctx, request, sc)
			}))

		createDocFromTemplateTool := mcp.NewTool("clickup_create_doc_from_template",
			mcp.WithDescription("Create a new ClickUp document from a template. Exactly one of workspace_id, space_id or folder_id must be provided as the location."),
			mcp.WithString("template_id",
				mcp.Required(),
				mcp.Description("The ID of the template to instantiate"),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The name of the new document"),
			),
			mcp.WithString("workspace_id",
				mcp.Description("Workspace to create the document in"),
			),
			mcp.WithString("space_id",
				mcp.Description("Space to create the document in"),
			),
			mcp.WithString("folder_id",
				mcp.Description("Folder to create the document in"),
			),
			mcp.WithObject("template_variables",
				mcp.Description("Placeholder values substituted into the template, as a string-to-string map"),
			),
		)

		s.AddTool(createDocFromTemplateTool, common.InstrumentedToolHandlerWithOperation(
			"clickup_create_doc_from_template", "create", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCreateDocFromTemplate(ctx, request, sc)
			}))

		updateDocTool := mcp.NewTool("clickup_update_doc",
			mcp.WithDescription("Update a ClickUp document. At least one of name, content or public must be provided."),
			mcp.WithString("workspace_id",
				mcp.Required(),
				mcp.Description("The ID of the workspace containing the document"),
			),
			mcp.WithString("doc_id",
				mcp.Required(),
				mcp.Description("The ID of the document to update"),
			),
			mcp.WithString("name",
				mcp.Description("New name for the document"),
			),
			mcp.WithString("content",
				mcp.Description("New content for the document"),
			),
			mcp.WithBoolean("public",
				mcp.Description("New public sharing state"),
			),
		)

		s.AddTool(updateDocTool, common.InstrumentedToolHandlerWithOperation(
			"clickup_update_doc", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleUpdateDoc(ctx, request, sc)
			}))

		deleteDocTool := mcp.NewTool("clickup_delete_doc",
			mcp.WithDescription("Delete a ClickUp document"),
			mcp.WithString("workspace_id",
				mcp.Required(),
				mcp.Description("The ID of the workspace containing the document"),
			),
			mcp.WithString("doc_id",
				mcp.Required(),
				mcp.Description("The ID of the document to delete"),
			),
		)

		s.AddTool(deleteDocTool, common.InstrumentedToolHandlerWithOperation(
			"clickup_delete_doc", "delete", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleDeleteDoc(ctx, request, sc)
			}))
	}

	return nil
}

func handleListDocs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := requiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}

	opts := clickup.ListDocsOptions{
		Cursor: optionalString(args, "cursor"),
	}
	if deleted := optionalBool(args, "deleted"); deleted != nil {
		opts.Deleted = *deleted
	}
	if archived := optionalBool(args, "archived"); archived != nil {
		opts.Archived = *archived
	}
	if limit := optionalNumber(args, "limit"); limit != nil {
		opts.Limit = int(*limit)
	}

	page, err := sc.Client().ListDocs(ctx, workspaceID, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list docs: %v", err)), nil
	}

	return jsonResult(page)
}

func handleSearchDocs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := requiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}
	query, errResult := requiredString(args, "query")
	if errResult != nil {
		return errResult, nil
	}

	page, err := sc.Client().SearchDocs(ctx, workspaceID, clickup.SearchDocsOptions{
		Query:  query,
		Cursor: optionalString(args, "cursor"),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search docs: %v", err)), nil
	}

	return jsonResult(page)
}

func handleGetDoc(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := requiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}
	docID, errResult := requiredString(args, "doc_id")
	if errResult != nil {
		return errResult, nil
	}

	doc, err := sc.Client().GetDoc(ctx, workspaceID, docID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get doc: %v", err)), nil
	}

	return jsonResult(doc)
}

// createDocRequestFromArgs builds a CreateDocRequest from tool arguments.
// The anchor precondition is checked by the client before any network call.
func createDocRequestFromArgs(args map[string]any) clickup.CreateDocRequest {
	return clickup.CreateDocRequest{
		WorkspaceID: optionalString(args, "workspace_id"),
		SpaceID:     optionalString(args, "space_id"),
		FolderID:    optionalString(args, "folder_id"),
		Name:        optionalString(args, "name"),
		Content:     optionalString(args, "content"),
		Public:      optionalBool(args, "public"),
	}
}

func handleCreateDoc(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	if _, errResult := requiredString(args, "name"); errResult != nil {
		return errResult, nil
	}

	req := createDocRequestFromArgs(args)
	req.TemplateID = optionalString(args, "template_id")

	doc, err := sc.Client().CreateDoc(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create doc: %v", err)), nil
	}

	return jsonResult(doc)
}

func handleCreateDocFromTemplate(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	templateID, errResult := requiredString(args, "template_id")
	if errResult != nil {
		return errResult, nil
	}
	if _, errResult := requiredString(args, "name"); errResult != nil {
		return errResult, nil
	}

	req := createDocRequestFromArgs(args)
	req.TemplateVariables = optionalStringMap(args, "template_variables")

	doc, err := sc.Client().CreateDocFromTemplate(ctx, templateID, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create doc from template: %v", err)), nil
	}

	return jsonResult(doc)
}

func handleUpdateDoc(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := requiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}
	docID, errResult := requiredString(args, "doc_id")
	if errResult != nil {
		return errResult, nil
	}

	req := clickup.UpdateDocRequest{
		Public: optionalBool(args, "public"),
	}
	if name, ok := args["name"].(string); ok {
		req.Name = &name
	}
	if content, ok := args["content"].(string); ok {
		req.Content = &content
	}

	doc, err := sc.Client().UpdateDoc(ctx, workspaceID, docID, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update doc: %v", err)), nil
	}

	return jsonResult(doc)
}

func handleDeleteDoc(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := requiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}
	docID, errResult := requiredString(args, "doc_id")
	if errResult != nil {
		return errResult, nil
	}

	if err := sc.Client().DeleteDoc(ctx, workspaceID, docID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete doc: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Doc %s deleted successfully", docID)), nil
}
