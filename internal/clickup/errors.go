package clickup

import "fmt"

// Human-readable failure categories derived from HTTP status codes.
const (
	CategoryInvalidRequest = "Invalid request"
	CategoryAuthFailed     = "Authentication failed"
	CategoryForbidden      = "Permission denied"
	CategoryNotFound       = "Resource not found"
	CategoryTooLarge       = "Content too large"
	CategoryRateLimited    = "Rate limit exceeded"
	CategoryServerError    = "Server error"
)

// CategoryForStatus maps an HTTP status code to a failure category.
// Unmapped statuses return "", meaning the raw server message should be
// surfaced instead. The mapping is pure: the same status always yields the
// same category.
func CategoryForStatus(status int) string {
	switch status {
	case 400:
		return CategoryInvalidRequest
	case 401:
		return CategoryAuthFailed
	case 403:
		return CategoryForbidden
	case 404:
		return CategoryNotFound
	case 413:
		return CategoryTooLarge
	case 429:
		return CategoryRateLimited
	case 500:
		return CategoryServerError
	default:
		return ""
	}
}

// APIError is the single error type returned for failed HTTP exchanges.
// StatusCode is zero for transport-level failures that produced no response.
type APIError struct {
	// Op is the operation context, e.g. "get doc".
	Op string
	// StatusCode is the HTTP status of the failed response, or 0.
	StatusCode int
	// Category is the human-readable classification of the failure.
	// Empty for transport failures and unmapped statuses.
	Category string
	// Detail is the server's own message, or the transport error's message.
	Detail string
}

// Error renders the message as "<op>: <category> - <detail>". When there is
// no category the detail stands alone.
func (e *APIError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("%s: %s - %s", e.Op, e.Category, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

// IsNotFound reports whether the error represents a 404 response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// newStatusError builds an APIError from a non-2xx HTTP response.
func newStatusError(op string, status int, serverMessage string) *APIError {
	return &APIError{
		Op:         op,
		StatusCode: status,
		Category:   CategoryForStatus(status),
		Detail:     serverMessage,
	}
}

// newTransportError builds an APIError for a failed exchange with no response.
func newTransportError(op string, err error) *APIError {
	return &APIError{
		Op:     op,
		Detail: err.Error(),
	}
}
