package graphql

import (
	"errors"
	"strings"
)

// Error is a single entry of a GraphQL `errors` array.
type Error struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Code returns extensions.code, or "" when the server sent none.
func (e Error) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// ResponseError carries every error the server returned for one operation.
// It matches ErrRemote with errors.Is.
type ResponseError struct {
	Operation string
	Errors    []Error
}

// Error joins the server messages, which is what gets shown to users.
func (e *ResponseError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Message
	}
	return strings.Join(msgs, "; ")
}

// Is reports ErrRemote as a target.
func (e *ResponseError) Is(target error) bool {
	return target == ErrRemote
}

// HasCode reports whether any entry carries extensions.code == code.
func (e *ResponseError) HasCode(code string) bool {
	for _, err := range e.Errors {
		if err.Code() == code {
			return true
		}
	}
	return false
}

// MessageContains reports whether any entry's message contains substr.
func (e *ResponseError) MessageContains(substr string) bool {
	for _, err := range e.Errors {
		if strings.Contains(err.Message, substr) {
			return true
		}
	}
	return false
}

// AsResponseError extracts the *ResponseError from err's chain.
func AsResponseError(err error) (*ResponseError, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr, true
	}
	return nil, false
}
