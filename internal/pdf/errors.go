// Package pdf prints HTML documents to PDF with a headless Chromium-family
// browser.
package pdf

import (
	"errors"
	"fmt"
)

var (
	// ErrRendererUnavailable is returned when no supported browser is installed.
	ErrRendererUnavailable = errors.New("pdf renderer unavailable: no chrome, chromium or edge executable found")
	// ErrInvalidPDF is returned when the printed bytes cannot be read back as PDF.
	ErrInvalidPDF = errors.New("printed document is not a valid pdf")
)

// PrintError represents a browser launch or print failure.
type PrintError struct {
	Message string
	Cause   error
}

func (e *PrintError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("print error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("print error: %s", e.Message)
}

func (e *PrintError) Unwrap() error {
	return e.Cause
}
