// Package store persists each collection as one flat JSON document on
// disk, guarded by an advisory file lock. Every mutating operation is a
// load→mutate→save sequence; the lock covers individual reads and writes
// only, not the whole sequence, so concurrent writers to the same
// document can lose updates. That window is a known property of the
// format, kept for compatibility with other tools editing the same files.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gofrs/flock"
)

// ErrNotExist is returned by Load when the document file is absent.
// Repositories treat it as "no data yet" and fall back to an empty value.
var ErrNotExist = errors.New("document does not exist")

const lockSuffix = ".lock"

// Document is one JSON file plus its advisory lock.
type Document[T any] struct {
	path string
	lock *flock.Flock
}

// NewDocument creates a document handle for the given file path. The lock
// artifact lives next to the file under the same name with a ".lock"
// suffix.
func NewDocument[T any](path string) *Document[T] {
	return &Document[T]{
		path: path,
		lock: flock.New(path + lockSuffix),
	}
}

// Load reads and parses the document under the file lock. Callers doing
// read-modify-write hold no lock between Load and Save.
func (d *Document[T]) Load() (T, error) {
	var v T
	if err := d.lock.Lock(); err != nil {
		return v, fmt.Errorf("lock %s: %w", d.path, err)
	}
	defer d.lock.Unlock()

	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return v, ErrNotExist
		}
		return v, fmt.Errorf("read %s: %w", d.path, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("parse %s: %w", d.path, err)
	}
	return v, nil
}

// Save serializes the whole document and overwrites the file under the
// lock. Output is indented and non-ASCII text is written literally, so
// documents stay diffable and hand-editable.
func (d *Document[T]) Save(v T) error {
	if err := d.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", d.path, err)
	}
	defer d.lock.Unlock()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", d.path, err)
	}
	if err := os.WriteFile(d.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	return nil
}
