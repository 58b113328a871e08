// Package store persists the blog's collections as JSON files on disk.
// Every write rewrites the whole file; there is no partial update. That
// matches the single-admin deployment model, where the last writer wins.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

type Store struct {
	fs  afero.Fs
	dir string
}

// New returns a store rooted at dir on the real filesystem.
func New(dir string) *Store {
	return &Store{fs: afero.NewOsFs(), dir: dir}
}

// NewWithFs is the test seam: back the store with any afero filesystem,
// typically afero.NewMemMapFs().
func NewWithFs(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// EnsureDir creates the data directory if it doesn't exist yet.
func (s *Store) EnsureDir() error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("store: create data dir %s: %w", s.dir, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether the named file is present.
func (s *Store) Exists(name string) bool {
	ok, err := afero.Exists(s.fs, s.path(name))
	return err == nil && ok
}

// ReadJSON decodes the named file into v. A missing file is an error;
// callers that treat absence as an empty collection should check Exists
// first or use ReadJSONOrEmpty.
func (s *Store) ReadJSON(name string, v any) error {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		return fmt.Errorf("store: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("store: parse %s: %w", name, err)
	}
	return nil
}

// ReadJSONOrEmpty is ReadJSON, except a file that doesn't exist yet leaves
// v untouched and returns nil. The first write will create it.
func (s *Store) ReadJSONOrEmpty(name string, v any) error {
	if _, err := s.fs.Stat(s.path(name)); os.IsNotExist(err) {
		return nil
	}
	return s.ReadJSON(name, v)
}

// WriteJSON serializes v with two-space indentation and rewrites the named
// file in full.
func (s *Store) WriteJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", name, err)
	}
	if err := afero.WriteFile(s.fs, s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	return nil
}
