// Package jsonfile implements store.Store on a single JSON file: an
// array of {title, description, completed} objects, read and written
// wholesale.
package jsonfile

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"tdo/internal/store"
	"tdo/internal/task"
)

//go:embed schema.json
var schemaSource string

// schema validates backing-file contents on load. Required: title.
// A missing description reads as "", a missing completed as false.
var schema = jsonschema.MustCompileString("schema.json", schemaSource)

// Store is a JSON-file implementation of store.Store.
type Store struct {
	path string
}

// New creates a Store backed by the file at path. The file need not
// exist yet; it is created on the first Save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load implements store.Store. A missing or empty file yields an empty
// list; malformed content yields a *store.ParseError naming the path.
func (s *Store) Load(ctx context.Context) (task.List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return task.List{}, nil
		}
		return nil, &store.IOError{Op: "read", Path: s.path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return task.List{}, nil
	}

	// Decode generically first so schema violations are reported with
	// their location instead of as a Go type mismatch.
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &store.ParseError{Path: s.path, Err: err}
	}
	if err := schema.Validate(raw); err != nil {
		return nil, &store.ParseError{Path: s.path, Err: schemaError(err)}
	}

	var list task.List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, &store.ParseError{Path: s.path, Err: err}
	}
	return list, nil
}

// Save implements store.Store. The full list is serialized as indented
// JSON with a trailing newline, overwriting any prior content. Parent
// directories are created as needed.
func (s *Store) Save(ctx context.Context, list task.List) error {
	if list == nil {
		list = task.List{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return &store.IOError{Op: "write", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &store.IOError{Op: "write", Path: s.path, Err: err}
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &store.IOError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// schemaError reduces a jsonschema validation error to its most
// specific cause.
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	if leaf.InstanceLocation == "" {
		return fmt.Errorf("%s", leaf.Message)
	}
	return fmt.Errorf("at %q: %s", leaf.InstanceLocation, leaf.Message)
}
