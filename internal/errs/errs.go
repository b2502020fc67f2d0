// Package errs holds the validation-failure kind handlers return on bad input.
package errs

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIError is a client-facing failure: a message, the status code to send it
// with, and optional extra fields merged into the JSON body.
type APIError struct {
	Message    string
	StatusCode int
	Payload    map[string]any
}

// New returns an APIError; a zero status defaults to 400.
func New(message string, statusCode int) *APIError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &APIError{Message: message, StatusCode: statusCode}
}

func (e *APIError) Error() string {
	return e.Message
}

// WithPayload returns a copy of e carrying payload.
func (e *APIError) WithPayload(payload map[string]any) *APIError {
	return &APIError{Message: e.Message, StatusCode: e.StatusCode, Payload: payload}
}

// Body is the JSON body for e: payload fields plus "error".
func (e *APIError) Body() map[string]any {
	body := make(map[string]any, len(e.Payload)+1)
	for k, v := range e.Payload {
		body[k] = v
	}
	body["error"] = e.Message
	return body
}

// StatusCode reports the HTTP status err will be answered with.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr.Code
	}
	return http.StatusInternalServerError
}
