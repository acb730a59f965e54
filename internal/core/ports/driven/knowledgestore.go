package driven

import (
	"context"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

// KnowledgeStore holds the loaded local knowledge collection.
// The collection is read-only at query time: Replace swaps the whole
// collection atomically, so in-flight readers see either the old or
// the new collection, never a partial one.
type KnowledgeStore interface {
	// Replace atomically swaps in a new collection.
	Replace(ctx context.Context, items []domain.KnowledgeItem) error

	// Items returns the current collection. Callers must treat the
	// returned slice as immutable.
	Items(ctx context.Context) []domain.KnowledgeItem

	// Get retrieves one item by ID.
	// Returns domain.ErrNotFound if the item does not exist.
	Get(ctx context.Context, id string) (*domain.KnowledgeItem, error)

	// Loaded reports whether a collection has been loaded, even an
	// empty one.
	Loaded() bool
}

// IndexStore persists the flattened item collection built offline.
// The format is a single serialized sequence of items; documents are
// not meaningful at this level.
type IndexStore interface {
	// Load reads the persisted collection.
	// Returns domain.ErrNotFound if no index file exists.
	Load(ctx context.Context) ([]domain.KnowledgeItem, error)

	// Save writes the full collection, overwriting any prior version.
	Save(ctx context.Context, items []domain.KnowledgeItem) error
}
