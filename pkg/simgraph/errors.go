package simgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology handling.
var (
	// ErrEmptyNetwork means the document has no sim_network entries.
	ErrEmptyNetwork = errors.New("sim_network is empty")
)

// GraphError provides structured context for topology file operations.
type GraphError struct {
	Op    string // "load" or "save"
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}
