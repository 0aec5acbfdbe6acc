package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jottr/clickup-docs-mcp/internal/logging"
)

// DefaultBaseURL is the ClickUp API root. Versioned path segments (v2/v3)
// are part of each operation's path, not the base URL.
const DefaultBaseURL = "https://api.clickup.com/api"

// Client provides access to the ClickUp Docs API. It is safe for concurrent
// use: all fields are set at construction and never mutated.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Intended for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a ClickUp client using the given personal API token.
// The token is captured once and immutable for the lifetime of the client.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("clickup: API token cannot be empty")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// apiErrorBody is the error payload shape the ClickUp API returns.
type apiErrorBody struct {
	Err   string `json:"err"`
	Ecode string `json:"ECODE"`
}

// do issues one authenticated HTTP request and decodes the JSON response
// into out (when out is non-nil). Failed exchanges are normalized into
// *APIError with op as the operation context.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request body: %w", op, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("clickup request failed",
			logging.Operation(op),
			slog.String("method", method),
			slog.String("path", path),
			logging.Err(err),
		)
		return newTransportError(op, err)
	}
	defer res.Body.Close()

	c.logger.Debug("clickup request",
		logging.Operation(op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", res.StatusCode),
		slog.Duration(logging.KeyDuration, time.Since(start)),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newStatusError(op, res.StatusCode, readServerMessage(res))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}

// readServerMessage extracts the error message from a failed response body,
// falling back to the HTTP status text when the body carries none.
func readServerMessage(res *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(res.Body, 4096))
	if err == nil && len(raw) > 0 {
		var body apiErrorBody
		if err := json.Unmarshal(raw, &body); err == nil && body.Err != "" {
			return body.Err
		}
		trimmed := strings.TrimSpace(string(raw))
		if trimmed != "" && !strings.HasPrefix(trimmed, "{") {
			return trimmed
		}
	}
	return res.Status
}
