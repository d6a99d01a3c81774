// Package textfile persists task lists in the line-oriented TODO/DONE format.
package textfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/dolist/internal/core/todo"
)

// Store reads and writes a single task file.
type Store struct {
	path string
}

// New returns a store for the file at path. Nothing is touched on disk
// until Load or Save is called.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Load decodes the task file. A missing file is an error.
func (s *Store) Load() (todo.Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return todo.Snapshot{}, err
	}
	defer func() { _ = f.Close() }()

	snap, err := todo.Decode(f)
	if err != nil {
		return todo.Snapshot{}, fmt.Errorf("decode %s: %w", s.path, err)
	}

	return snap, nil
}

// Save overwrites the task file with snap. The content is written to a
// sibling temp file first and renamed over the target. An existing file
// keeps its permission bits, and a symlink keeps pointing at the file it
// named, which is the one rewritten.
func (s *Store) Save(snap todo.Snapshot) error {
	target, perm := s.target()

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := todo.Encode(&buf, snap); err != nil {
		return err
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), perm); err != nil {
		return err
	}
	// WriteFile leaves the mode of a stale temp file alone.
	if err := os.Chmod(tmp, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

// target resolves the file Save replaces and the permissions it is written
// with. A file that does not exist yet gets 0644.
func (s *Store) target() (string, os.FileMode) {
	path := s.path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return path, perm
}
