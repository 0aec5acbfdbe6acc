package clickup

import (
	"context"
	"net/http"
)

// ListWorkspaces returns the workspaces the token has access to. The v2 API
// calls these "teams".
func (c *Client) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	const op = "list workspaces"

	var res struct {
		Teams []Workspace `json:"teams"`
	}
	if err := c.do(ctx, op, http.MethodGet, "/v2/team", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Teams, nil
}
