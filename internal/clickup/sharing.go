package clickup

import (
	"context"
	"fmt"
	"net/http"
)

// GetSharing returns the current sharing configuration of a document.
func (c *Client) GetSharing(ctx context.Context, docID string) (*SharingConfig, error) {
	const op = "get sharing"
	if docID == "" {
		return nil, fmt.Errorf("%s: doc ID is required", op)
	}

	var cfg SharingConfig
	path := fmt.Sprintf("/v3/docs/%s/sharing", docID)
	if err := c.do(ctx, op, http.MethodGet, path, nil, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateSharing applies a partial sharing update to a document; at least one
// field must be set.
func (c *Client) UpdateSharing(ctx context.Context, docID string, req UpdateSharingRequest) (*SharingConfig, error) {
	const op = "update sharing"
	if docID == "" {
		return nil, fmt.Errorf("%s: doc ID is required", op)
	}
	if !req.HasChanges() {
		return nil, fmt.Errorf("%s: must specify at least one field to update", op)
	}

	var cfg SharingConfig
	path := fmt.Sprintf("/v3/docs/%s/sharing", docID)
	if err := c.do(ctx, op, http.MethodPut, path, nil, &req, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
