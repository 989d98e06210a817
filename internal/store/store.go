// Package store defines the backend-agnostic persistence interface for
// the task list. Commands never touch the backing file directly.
package store

import (
	"context"
	"fmt"

	"tdo/internal/task"
)

// Store loads and saves the task list. The backing medium owns all
// durable state; the list returned by Load is a transient copy that the
// caller mutates in memory and hands back to Save wholesale.
type Store interface {
	// Load reads the full task list. A missing backing file yields an
	// empty list, not an error.
	Load(ctx context.Context) (task.List, error)

	// Save writes the full task list, overwriting any prior content.
	Save(ctx context.Context, list task.List) error
}

// ParseError indicates the backing file exists but holds malformed
// content.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError indicates the backing file could not be read or written.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}
