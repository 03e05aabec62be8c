package attack

import (
	"errors"
	"fmt"
)

// Sentinel errors for the injection pipeline.
var (
	// ErrNotEnoughCandidates means the candidate pool is smaller than
	// the requested channel count.
	ErrNotEnoughCandidates = errors.New("not enough candidate nodes")
	// ErrPubkeyExists means the attacker pubkey already identifies a
	// node in the graph.
	ErrPubkeyExists = errors.New("attacker pubkey already present")
	// ErrScidOverlap means the configured candidate scid range covers
	// the target channel scid.
	ErrScidOverlap = errors.New("candidate scid range overlaps target scid")
)

// MissingFileError reports an absent required input file.
type MissingFileError struct {
	Path string
}

// Error implements the error interface.
func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing required file: %s", e.Path)
}

// TargetNotFoundError reports that no node carries the target alias.
type TargetNotFoundError struct {
	Alias string
}

// Error implements the error interface.
func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("no node with alias %q", e.Alias)
}
