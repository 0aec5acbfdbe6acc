package clickup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// spacePrefix marks a search query that targets a space instead of a name.
const spacePrefix = "space:"

// ListDocs returns one page of document summaries for a workspace.
func (c *Client) ListDocs(ctx context.Context, workspaceID string, opts ListDocsOptions) (*DocsPage, error) {
	const op = "list docs"
	if workspaceID == "" {
		return nil, fmt.Errorf("%s: workspace ID is required", op)
	}
	if opts.Limit != 0 && (opts.Limit < 1 || opts.Limit > 100) {
		return nil, fmt.Errorf("%s: limit must be between 1 and 100, got %d", op, opts.Limit)
	}

	query := url.Values{}
	if opts.Cursor != "" {
		query.Set("next_cursor", opts.Cursor)
	}
	if opts.Deleted {
		query.Set("deleted", "true")
	}
	if opts.Archived {
		query.Set("archived", "true")
	}
	if opts.Limit != 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var page DocsPage
	path := fmt.Sprintf("/v3/workspaces/%s/docs", workspaceID)
	if err := c.do(ctx, op, http.MethodGet, path, query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchDocs searches a workspace's documents by name. A query prefixed with
// "space:" is rewritten into a space identifier filter; the name filter is
// dropped in that case. Uses the v2 search endpoint.
func (c *Client) SearchDocs(ctx context.Context, workspaceID string, opts SearchDocsOptions) (*DocsPage, error) {
	const op = "search docs"
	if workspaceID == "" {
		return nil, fmt.Errorf("%s: workspace ID is required", op)
	}

	query := url.Values{}
	if spaceID, ok := strings.CutPrefix(opts.Query, spacePrefix); ok {
		query.Set("space_id", strings.TrimSpace(spaceID))
	} else if opts.Query != "" {
		query.Set("doc_name", opts.Query)
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}

	var page DocsPage
	path := fmt.Sprintf("/v2/team/%s/docs/search", workspaceID)
	if err := c.do(ctx, op, http.MethodGet, path, query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetDoc fetches a single document with its metadata.
func (c *Client) GetDoc(ctx context.Context, workspaceID, docID string) (*Doc, error) {
	const op = "get doc"
	if workspaceID == "" || docID == "" {
		return nil, fmt.Errorf("%s: workspace ID and doc ID are required", op)
	}

	var d Doc
	path := fmt.Sprintf("/v3/workspaces/%s/docs/%s", workspaceID, docID)
	if err := c.do(ctx, op, http.MethodGet, path, nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDoc creates a document anchored in a workspace, space or folder.
// The endpoint is selected by whichever anchor is set; when none is, the
// call fails locally without touching the network.
func (c *Client) CreateDoc(ctx context.Context, req CreateDocRequest) (*Doc, error) {
	const op = "create doc"
	if !req.HasAnchor() {
		return nil, fmt.Errorf("%s: an anchor is required (one of workspace, space or folder)", op)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%s: name is required", op)
	}

	var path string
	switch {
	case req.WorkspaceID != "":
		path = fmt.Sprintf("/v3/workspaces/%s/docs", req.WorkspaceID)
	case req.SpaceID != "":
		path = fmt.Sprintf("/v3/spaces/%s/docs", req.SpaceID)
	default:
		path = fmt.Sprintf("/v3/folders/%s/docs", req.FolderID)
	}

	var d Doc
	if err := c.do(ctx, op, http.MethodPost, path, nil, &req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDocFromTemplate creates a document from a template. It delegates to
// CreateDoc with the template identifier attached; the same anchor rule
// applies.
func (c *Client) CreateDocFromTemplate(ctx context.Context, templateID string, req CreateDocRequest) (*Doc, error) {
	if templateID == "" {
		return nil, fmt.Errorf("create doc from template: template ID is required")
	}
	req.TemplateID = templateID
	return c.CreateDoc(ctx, req)
}

// UpdateDoc applies a partial update to a document. Only set fields are sent;
// at least one must be set.
func (c *Client) UpdateDoc(ctx context.Context, workspaceID, docID string, req UpdateDocRequest) (*Doc, error) {
	const op = "update doc"
	if workspaceID == "" || docID == "" {
		return nil, fmt.Errorf("%s: workspace ID and doc ID are required", op)
	}
	if !req.HasChanges() {
		return nil, fmt.Errorf("%s: must specify at least one field to update", op)
	}

	var d Doc
	path := fmt.Sprintf("/v3/workspaces/%s/docs/%s", workspaceID, docID)
	if err := c.do(ctx, op, http.MethodPut, path, nil, &req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDoc deletes a document. Whether a repeated delete succeeds is up to
// the remote service; this client does not mask a second-call failure.
func (c *Client) DeleteDoc(ctx context.Context, workspaceID, docID string) error {
	const op = "delete doc"
	if workspaceID == "" || docID == "" {
		return fmt.Errorf("%s: workspace ID and doc ID are required", op)
	}

	path := fmt.Sprintf("/v3/workspaces/%s/docs/%s", workspaceID, docID)
	return c.do(ctx, op, http.MethodDelete, path, nil, nil, nil)
}
