package apierrors

import "errors"

// Code identifies a failure class independent of the HTTP status that
// produced it. Codes are stable strings safe to log and branch on.
type Code string

const (
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"
	CodeServerError     Code = "SERVER_ERROR"
	CodeNetworkError    Code = "NETWORK_ERROR"
	CodeConfigMissing   Code = "CONFIG_MISSING"
	CodeUpstreamAuth    Code = "UPSTREAM_AUTH"
	CodeRateLimited     Code = "RATE_LIMITED"
	CodeRequestError    Code = "REQUEST_ERROR"
	CodeMissingFile     Code = "MISSING_FILE"
	CodeUnknownError    Code = "UNKNOWN_ERROR"
)

// Error is the single error type surfaced by domain endpoint functions.
// It is created at the transport boundary and never mutated afterwards.
type Error struct {
	// Message is short, non-technical and safe to render to the user.
	Message string
	// Status is the HTTP status that produced the error, or 0 when no
	// response was received.
	Status int
	Code   Code
	// Details carries the opaque upstream payload (typically the backend's
	// "detail" field) for diagnostic logging. Never shown to the user.
	Details any
}

// New creates a typed error. The zero Code defaults to CodeUnknownError so a
// constructed error is always classifiable.
func New(message string, status int, code Code, details any) *Error {
	if code == "" {
		code = CodeUnknownError
	}
	return &Error{Message: message, Status: status, Code: code, Details: details}
}

func (e *Error) Error() string { return e.Message }

// Is reports code equality so call sites can match with errors.Is against a
// sentinel like &Error{Code: CodeRateLimited}.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && (t.Status == 0 || t.Status == e.Status)
}

// StatusError is implemented by transport errors that carry an HTTP response
// status. It decouples normalization from the transport package.
type StatusError interface {
	error
	HTTPStatus() int
	ErrorDetail() any
}

// Fixed user-facing messages per failure class. The backend detail payload is
// preserved separately in Details.
const (
	msgUnauthorized = "Your session expired. Please login again."
	msgForbidden    = "Access denied for this operation."
	msgNotFound     = "Requested resource was not found."
	msgValidation   = "Invalid input. Please check your values and retry."
	msgServer       = "Backend service error. Please retry shortly."
	msgNetwork      = "Network unavailable. Verify backend is running and reachable."
)

// Normalize converts any failure into exactly one *Error. Already-typed
// errors pass through unchanged. Transport errors carrying a status are mapped
// by the fixed taxonomy; the fallback message is used only when no more
// specific classification applies.
func Normalize(err error, fallback string) *Error {
	if err == nil {
		return New(fallback, 0, CodeUnknownError, nil)
	}

	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	var se StatusError
	if errors.As(err, &se) {
		status := se.HTTPStatus()
		detail := se.ErrorDetail()
		switch {
		case status == 401:
			return New(msgUnauthorized, status, CodeUnauthorized, detail)
		case status == 403:
			return New(msgForbidden, status, CodeForbidden, detail)
		case status == 404:
			return New(msgNotFound, status, CodeNotFound, detail)
		case status == 422:
			return New(msgValidation, status, CodeValidationError, detail)
		case status >= 500:
			return New(msgServer, status, CodeServerError, detail)
		default:
			if detail == nil {
				detail = err.Error()
			}
			return New(fallback, status, CodeRequestError, detail)
		}
	}

	// No response was received at all: connection refused, DNS failure,
	// timeout, or any other pre-response error.
	return New(msgNetwork, 0, CodeNetworkError, err.Error())
}

// Display extracts a user-presentable message from any error value. It always
// returns non-empty text.
func Display(err error, fallback string) string {
	if fallback == "" {
		fallback = "Something went wrong."
	}
	if err == nil {
		return fallback
	}
	var typed *Error
	if errors.As(err, &typed) && typed.Message != "" {
		return typed.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
