package clickup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListPages returns the full page tree of a document in sibling order.
// The listing always requests unrestricted depth (max_page_depth=-1), so
// nested pages appear under their parent's Pages field.
func (c *Client) ListPages(ctx context.Context, workspaceID, docID, contentFormat string) ([]Page, error) {
	const op = "list pages"
	if workspaceID == "" || docID == "" {
		return nil, fmt.Errorf("%s: workspace ID and doc ID are required", op)
	}
	if err := checkReadFormat(op, contentFormat); err != nil {
		return nil, err
	}
	if contentFormat == "" {
		contentFormat = DefaultContentFormat
	}

	query := url.Values{}
	query.Set("max_page_depth", "-1")
	query.Set("content_format", contentFormat)

	var pages []Page
	path := fmt.Sprintf("/v3/workspaces/%s/docs/%s/pages", workspaceID, docID)
	if err := c.do(ctx, op, http.MethodGet, path, query, nil, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// GetPage fetches a single page of a document.
func (c *Client) GetPage(ctx context.Context, docID, pageID, contentFormat string) (*Page, error) {
	const op = "get page"
	if docID == "" || pageID == "" {
		return nil, fmt.Errorf("%s: doc ID and page ID are required", op)
	}
	if err := checkReadFormat(op, contentFormat); err != nil {
		return nil, err
	}

	query := url.Values{}
	if contentFormat != "" {
		query.Set("content_format", contentFormat)
	}

	var p Page
	path := fmt.Sprintf("/v3/docs/%s/pages/%s", docID, pageID)
	if err := c.do(ctx, op, http.MethodGet, path, query, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePage creates a page within a document. The content format defaults
// to markdown and is validated before any network call.
func (c *Client) CreatePage(ctx context.Context, docID string, req CreatePageRequest) (*Page, error) {
	const op = "create page"
	if docID == "" {
		return nil, fmt.Errorf("%s: doc ID is required", op)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%s: name is required", op)
	}
	if err := checkWriteFormat(op, req.ContentFormat); err != nil {
		return nil, err
	}
	if req.ContentFormat == "" {
		req.ContentFormat = DefaultContentFormat
	}

	var p Page
	path := fmt.Sprintf("/v3/docs/%s/pages", docID)
	if err := c.do(ctx, op, http.MethodPost, path, nil, &req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePage applies a partial update to a page; at least one field must be
// set.
func (c *Client) UpdatePage(ctx context.Context, docID, pageID string, req UpdatePageRequest) (*Page, error) {
	const op = "update page"
	if docID == "" || pageID == "" {
		return nil, fmt.Errorf("%s: doc ID and page ID are required", op)
	}
	if !req.HasChanges() {
		return nil, fmt.Errorf("%s: must specify at least one field to update", op)
	}
	if err := checkWriteFormat(op, req.ContentFormat); err != nil {
		return nil, err
	}

	var p Page
	path := fmt.Sprintf("/v3/docs/%s/pages/%s", docID, pageID)
	if err := c.do(ctx, op, http.MethodPut, path, nil, &req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePage deletes a page from a document.
func (c *Client) DeletePage(ctx context.Context, docID, pageID string) error {
	const op = "delete page"
	if docID == "" || pageID == "" {
		return fmt.Errorf("%s: doc ID and page ID are required", op)
	}

	path := fmt.Sprintf("/v3/docs/%s/pages/%s", docID, pageID)
	return c.do(ctx, op, http.MethodDelete, path, nil, nil, nil)
}
