// Package jsonstore owns the on-disk JSON document holding the book
// collection. The document is a flat array of book objects; a missing file
// is treated as an empty collection.
//
// The store assumes a single process. Concurrent modification of the file
// between Load and Save is undefined and unsupported.
package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

var json = jsoniter.ConfigFastest

// Store reads and writes the collection document at a fixed path.
type Store struct {
	path   string
	logger *zap.Logger
}

// Open returns a Store for the document at path. The file does not need to
// exist yet; it is created on the first Save.
func Open(path string) *Store {
	return &Store{path: path, logger: zap.NewNop()}
}

// WithLogger replaces the store's logger and returns the store.
func (s *Store) WithLogger(logger *zap.Logger) *Store {
	s.logger = logger
	return s
}

// Path returns the document path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Load reads the collection from disk. An absent file yields an empty
// collection. A file that exists but does not parse yields an error
// wrapping types.ErrCorruptStore; the caller surfaces it rather than
// silently discarding data.
func (s *Store) Load() (types.Collection, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("store file absent, starting empty", zap.String("path", s.path))
		return types.Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var c types.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", types.ErrCorruptStore, s.path, err)
	}
	s.logger.Debug("loaded collection",
		zap.String("path", s.path),
		zap.Int("books", len(c)))
	return c, nil
}

// Save serializes the full collection and overwrites the document using the
// temp-file, fsync, rename pattern, so a crash mid-write never leaves a
// truncated file behind. This is the only durable write in the system.
func (s *Store) Save(c types.Collection) error {
	if c == nil {
		c = types.Collection{}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling collection: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".books-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing collection: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	s.logger.Debug("saved collection",
		zap.String("path", s.path),
		zap.Int("books", len(c)))
	return nil
}
