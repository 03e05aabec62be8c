package forwards

import (
	"errors"
	"fmt"
)

// Sentinel errors for forward aggregation.
var (
	// ErrNoData means the CSV held no forward records.
	ErrNoData = errors.New("no forward records")
	// ErrMissingColumn means a required header column is absent.
	ErrMissingColumn = errors.New("missing required column")
)

// ReportError provides structured context for aggregation failures.
type ReportError struct {
	Op     string
	Path   string
	Column string // set for column-related failures
	Cause  error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s %s (column %s): %v", e.Op, e.Path, e.Column, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ReportError) Unwrap() error {
	return e.Cause
}
