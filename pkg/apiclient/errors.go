package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBaseURL indicates the configured base address cannot be parsed
	// or uses an unsupported scheme.
	ErrInvalidBaseURL = errors.New("apiclient: invalid base URL")

	// ErrEmptyPayload indicates a multipart upload was attempted without file content.
	ErrEmptyPayload = errors.New("apiclient: empty upload payload")
)

// ResponseError is returned for any response with a non-2xx status. It
// preserves the backend's detail payload for diagnostics.
type ResponseError struct {
	StatusCode int
	// Detail is the parsed "detail" field of the JSON error body, or the raw
	// body string when the body is not JSON.
	Detail any
	// Path is the request path that produced the error.
	Path string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("apiclient: %s returned status %d", e.Path, e.StatusCode)
}

// HTTPStatus reports the response status for error normalization.
func (e *ResponseError) HTTPStatus() int { return e.StatusCode }

// ErrorDetail reports the upstream detail payload for error normalization.
func (e *ResponseError) ErrorDetail() any { return e.Detail }
