package domeneshop

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is returned for every non-2xx API response. Status is always set;
// Body holds the JSON-decoded response body when the server sent valid
// JSON, the raw body text when it did not, and nil when the body was
// empty.
type Error struct {
	Status     int
	StatusText string
	Body       any
}

func newAPIError(status int, body []byte) *Error {
	e := &Error{
		Status:     status,
		StatusText: http.StatusText(status),
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return e
	}

	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err == nil {
		e.Body = decoded
	} else {
		e.Body = string(trimmed)
	}
	return e
}

func (e *Error) Error() string {
	if e.Body == nil {
		return fmt.Sprintf("domeneshop: %d %s", e.Status, e.StatusText)
	}
	return fmt.Sprintf("domeneshop: %d %s: %v", e.Status, e.StatusText, e.Body)
}

// IsNotFound reports whether the error is a 404 response.
func (e *Error) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

// AsError unwraps err to an API *Error, or nil if err is not one.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	apiErr := AsError(err)
	return apiErr != nil && apiErr.IsNotFound()
}
