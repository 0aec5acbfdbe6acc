package docs_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/jottr/clickup-docs-mcp/internal/clickup"
	"github.com/jottr/clickup-docs-mcp/internal/server"
	"github.com/jottr/clickup-docs-mcp/internal/tools/common"
)

// noContentPlaceholder is returned by the composite content tool when no
// page in the document carries any content.
const noContentPlaceholder = "This doc has pages but no content could be retrieved."

// registerPageTools registers page-level tools. Write operations are
// skipped in read-only mode.
func registerPageTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	listPagesTool := mcp.NewTool("clickup_list_pages",
		mcp.WithDescription("List the full page tree of a ClickUp document, including nested pages"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("The ID of the workspace containing the document"),
		),
		mcp.WithString("doc_id",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithString("content_format",
			mcp.Description("Format for page content: 'markdown' (default), 'html', 'text/md', 'text/plain' or 'text/html'"),
			mcp.Enum(clickup.FormatMarkdown, clickup.FormatHTML, clickup.FormatTextMD, clickup.FormatTextPlain, clickup.FormatTextHTML),
		),
	)

	s.AddTool(listPagesTool, common.InstrumentedToolHandlerWithOperation(
		"clickup_list_pages", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListPages(ctx, request, sc)
		}))

	getDocContentTool := mcp.NewTool("clickup_get_doc_content",
		mcp.WithDescription("Get the combined content of all pages of a ClickUp document as a single text"),
		mcp.WithString("workspace_id",
			mcp.Required(),
			mcp.Description("The ID of the workspace containing the document"),
		),
		mcp.WithString("doc_id",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithString("content_format",
			mcp.Description("Format for page content: 'markdown' (default), 'html', 'text/md', 'text/plain' or 'text/html'"),
			mcp.Enum(clickup.FormatMarkdown, clickup.FormatHTML, clickup.FormatTextMD, clickup.FormatTextPlain, clickup.FormatTextHTML),
		),
	)

	s.AddTool(getDocContentTool, common.InstrumentedToolHandlerWithOperation(
		"clickup_get_doc_content", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetDocContent(ctx, request, sc)
		}))

	getPageTool := mcp.NewTool("clickup_get_page",
		mcp.WithDescription("Get a single page of a ClickUp document, including its content"),
		mcp.WithString("doc_id",
			mcp.Required(),
			mcp.Description("The ID of the document containing the page"),
		),
		mcp.WithString("page_id",
			mcp.Required(),
			mcp.Description("The ID of the page"),
		),
		mcp.WithString("content_format",
			mcp.Description("Format for page content: 'markdown' (default), 'html', 'text/md', 'text/plain' or 'text/html'"),
			mcp.Enum(clickup.FormatMarkdown, clickup.FormatHTML, clickup.FormatTextMD, clickup.FormatTextPlain, clickup.FormatTextHTML),
		),
	)

	s.AddTool(getPageTool, common.InstrumentedToolHandlerWithOperation(
		"clickup_get_page", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetPage(ctx, request, sc)
		}))

	if !readOnly {
		createPageTool := mcp.NewTool("clickup_create_page",
			mcp.WithDescription("Create a new page in a ClickUp document"),
			mcp.WithString("doc_id",
				mcp.Required(),
				mcp.Description("The ID of the document to add the page to"),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The name of the new page"),
			),
			mcp.WithString("content",
				mcp.Required(),
				mcp.Description("The content of the new page"),
			),
			mcp.WithString("content_format",
				mcp.Description("Format of the provided content: 'markdown' (default), 'html', 'text/md' or 'text/html'"),
				mcp.Enum(clickup.FormatMarkdown, clickup.FormatHTML, clickup.FormatTextMD, clickup.FormatTextHTML),
			),
			mcp.WithString("parent_page_id",
				mcp.Description("Parent page to nest the new page under"),
			),
			mcp.WithNumber("position",
				mcp.Description("Ordering position among sibling pages"),
			),
		)

		s.AddTool(createPageTool, common.InstrumentedToolHandlerWithOperation(
			"clickup_create_page", "create", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCreatePage(ctx, request, sc)
			}))

		updatePageTool := mcp.NewTool("clickup_update_page",
			mcp.WithDescription("Update a page of a ClickUp document. At least one of name, content or position must be provided."),
			mcp.WithString("doc_id",
				mcp.Required(),
				mcp.Description("The ID of the document containing the page"),
			),
			mcp.WithString("page_id",
				mcp.Required(),
				mcp.Description("The ID of the page to update"),
			),
			mcp.WithString("name",
				mcp.Description("New name for the page"),
			),
			mcp.WithString("content",
				mcp.Description("New content for the page"),
			),
			mcp.WithString("content_format",
				mcp.Description("Format of the provided content: 'markdown' (default), 'html', 'text/md' or 'text/html'"),
				mcp.Enum(clickup.FormatMarkdown, clickup.FormatHTML, clickup.FormatTextMD, clickup.FormatTextHTML),
			),
			mcp.WithNumber("position",
				mcp.Description("New ordering position among sibling pages"),
			),
		)

		s.AddTool(updatePageTool, common.InstrumentedToolHandlerWithOperation(
			"clickup_update_page", "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleUpdatePage(ctx, request, sc)
			}))

		deletePageTool := mcp.NewTool("clickup_delete_page",
			mcp.WithDescription("Delete a page from a ClickUp document"),
			mcp.WithString("doc_id",
				mcp.Required(),
				mcp.Description("The ID of the document containing the page"),
			),
			mcp.WithString("page_id",
				mcp.Required(),
				mcp.Description("The ID of the page to delete"),
			),
		)

		s.AddTool(deletePageTool, common.InstrumentedToolHandlerWithOperation(
			"clickup_delete_page", "delete", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleDeletePage(ctx, request, sc)
			}))
	}

	return nil
}

func handleListPages(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := requiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}
	docID, errResult := requiredString(args, "doc_id")
	if errResult != nil {
		return errResult, nil
	}

	pages, err := sc.Client().ListPages(ctx, workspaceID, docID, optionalString(args, "content_format"))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list pages: %v", err)), nil
	}

	return jsonResult(pages)
}

func handleGetDocContent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	workspaceID, errResult := requiredString(args, "workspace_id")
	if errResult != nil {
		return errResult, nil
	}
	docID, errResult := requiredString(args, "doc_id")
	if errResult != nil {
		return errResult, nil
	}

	pages, err := sc.Client().ListPages(ctx, workspaceID, docID, optionalString(args, "content_format"))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get doc content: %v", err)), nil
	}

	return mcp.NewToolResultText(formatDocContent(pages)), nil
}

// formatDocContent flattens a page tree into a single text. Pages are
// visited depth-first in listing order; each page with content contributes
// a "# <name>" heading followed by its content, separated by blank lines.
// Returns a fixed placeholder when no page carries content.
func formatDocContent(pages []clickup.Page) string {
	var sections []string
	collectPageContent(pages, &sections)

	if len(sections) == 0 {
		return noContentPlaceholder
	}

	return strings.Join(sections, "\n\n")
}

func collectPageContent(pages []clickup.Page, sections *[]string) {
	for _, page := range pages {
		if page.Content != "" {
			*sections = append(*sections, fmt.Sprintf("# %s\n\n%s", page.Name, page.Content))
		}
		collectPageContent(page.Pages, sections)
	}
}

func handleGetPage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	docID, errResult := requiredString(args, "doc_id")
	if errResult != nil {
		return errResult, nil
	}
	pageID, errResult := requiredString(args, "page_id")
	if errResult != nil {
		return errResult, nil
	}

	page, err := sc.Client().GetPage(ctx, docID, pageID, optionalString(args, "content_format"))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get page: %v", err)), nil
	}

	return jsonResult(page)
}

func handleCreatePage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	docID, errResult := requiredString(args, "doc_id")
	if errResult != nil {
		return errResult, nil
	}
	name, errResult := requiredString(args, "name")
	if errResult != nil {
		return errResult, nil
	}
	content, ok := args["content"].(string)
	if !ok {
		return mcp.NewToolResultError("content is required"), nil
	}

	page, err := sc.Client().CreatePage(ctx, docID, clickup.CreatePageRequest{
		Name:          name,
		Content:       content,
		ContentFormat: optionalString(args, "content_format"),
		ParentPageID:  optionalString(args, "parent_page_id"),
		Position:      optionalNumber(args, "position"),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create page: %v", err)), nil
	}

	return jsonResult(page)
}

func handleUpdatePage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	docID, errResult := requiredString(args, "doc_id")
	if errResult != nil {
		return errResult, nil
	}
	pageID, errResult := requiredString(args, "page_id")
	if errResult != nil {
		return errResult, nil
	}

	req := clickup.UpdatePageRequest{
		ContentFormat: optionalString(args, "content_format"),
		Position:      optionalNumber(args, "position"),
	}
	if name, ok := args["name"].(string); ok {
		req.Name = &name
	}
	if content, ok := args["content"].(string); ok {
		req.Content = &content
	}

	page, err := sc.Client().UpdatePage(ctx, docID, pageID, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update page: %v", err)), nil
	}

	return jsonResult(page)
}

func handleDeletePage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	docID, errResult := requiredString(args, "doc_id")
	if errResult != nil {
		return errResult, nil
	}
	pageID, errResult := requiredString(args, "page_id")
	if errResult != nil {
		return errResult, nil
	}

	if err := sc.Client().DeletePage(ctx, docID, pageID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete page: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Page %s deleted successfully", pageID)), nil
}
