package apiclient

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// APIError is a non-2xx response from the practice server. Message holds the
// best human-readable text extractable from the response body.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// IsAuthFailure reports whether the error is a credential rejection. The
// server reserves 401 and 403 for exactly that, so no body inspection is
// needed.
func (e *APIError) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// extractErrorMessage pulls a display message out of a structured error body.
// The server writes {"error": "..."}; "message" is checked first for
// compatibility with proxies that rewrap bodies.
func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if value := gjson.GetBytes(body, "message"); value.Type == gjson.String && value.Str != "" {
		return value.Str
	}
	if value := gjson.GetBytes(body, "error"); value.Type == gjson.String && value.Str != "" {
		return value.Str
	}
	return ""
}
