package render

import "fmt"

// RenderError wraps a failure while projecting an invoice into a document.
type RenderError struct {
	// Op is the rendering step that failed (e.g. "HTML", "PDF").
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *RenderError) Unwrap() error {
	return e.Err
}

func newRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err}
}
