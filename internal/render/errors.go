// Package render turns parsed résumé records into HTML documents.
package render

import (
	"errors"
	"fmt"
)

// ErrUnknownTemplate is the cause of a TemplateError for a name that is not
// registered.
var ErrUnknownTemplate = errors.New("unknown template")

// TemplateError represents an error looking up, parsing or executing a template.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure outside template execution, such as an
// unreadable templates directory.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
