// Package memory provides the in-memory knowledge collection.
package memory

import (
	"context"
	"sync"

	"github.com/addonkit/expressdocs/internal/core/domain"
	"github.com/addonkit/expressdocs/internal/core/ports/driven"
)

// Ensure KnowledgeStore implements the interface.
var _ driven.KnowledgeStore = (*KnowledgeStore)(nil)

// KnowledgeStore holds the loaded collection behind a read lock.
// Replace swaps the slice reference wholesale, so concurrent readers
// observe either the old or the new collection, never a mix.
type KnowledgeStore struct {
	mu     sync.RWMutex
	items  []domain.KnowledgeItem
	byID   map[string]int
	loaded bool
}

// NewKnowledgeStore creates an empty, unloaded store.
func NewKnowledgeStore() *KnowledgeStore {
	return &KnowledgeStore{}
}

// Replace atomically swaps in a new collection.
func (s *KnowledgeStore) Replace(_ context.Context, items []domain.KnowledgeItem) error {
	copied := make([]domain.KnowledgeItem, len(items))
	copy(copied, items)

	byID := make(map[string]int, len(copied))
	for i := range copied {
		byID[copied[i].ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = copied
	s.byID = byID
	s.loaded = true
	return nil
}

// Items returns the current collection. The returned slice must be
// treated as immutable.
func (s *KnowledgeStore) Items(_ context.Context) []domain.KnowledgeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Get retrieves one item by ID.
func (s *KnowledgeStore) Get(_ context.Context, id string) (*domain.KnowledgeItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	item := s.items[i]
	return &item, nil
}

// Loaded reports whether Replace has been called, even with an empty
// collection.
func (s *KnowledgeStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
