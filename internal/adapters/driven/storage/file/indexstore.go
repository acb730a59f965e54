// Package file persists the local index as one JSON file holding the
// flattened knowledge item sequence.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/addonkit/expressdocs/internal/core/domain"
	"github.com/addonkit/expressdocs/internal/core/ports/driven"
)

// Ensure IndexStore implements the interface.
var _ driven.IndexStore = (*IndexStore)(nil)

// IndexStore reads and writes the persisted item collection.
type IndexStore struct {
	path string
}

// NewIndexStore creates a store backed by the given file path.
// If path is empty, defaults to ~/.expressdocs/index.json.
func NewIndexStore(path string) (*IndexStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".expressdocs", "index.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	return &IndexStore{path: path}, nil
}

// Path returns the backing file path.
func (s *IndexStore) Path() string {
	return s.path
}

// Load reads the persisted collection.
func (s *IndexStore) Load(_ context.Context) ([]domain.KnowledgeItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read index: %w", err)
	}

	var items []domain.KnowledgeItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	return items, nil
}

// Save writes the full collection, overwriting any prior version.
func (s *IndexStore) Save(_ context.Context, items []domain.KnowledgeItem) error {
	if items == nil {
		items = []domain.KnowledgeItem{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}
