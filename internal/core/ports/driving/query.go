package driving

import (
	"context"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

// QueryService answers documentation queries and owns the retrieval
// mode. Responses always carry a non-empty result list: zero-result
// and error conditions are represented by placeholder items.
type QueryService interface {
	// Query answers a free-text query using the current mode.
	Query(ctx context.Context, query string, opts domain.QueryOptions) (*domain.QueryResponse, error)

	// SetMode switches the retrieval backend. Switching to local mode
	// loads the persisted index if nothing is loaded yet. Returns the
	// new mode and a human-readable status message.
	SetMode(ctx context.Context, mode domain.Mode) (domain.Mode, string, error)

	// Mode returns the current retrieval mode.
	Mode() domain.Mode

	// Capabilities describes what the server can answer right now.
	Capabilities(ctx context.Context) (*domain.Capabilities, error)

	// Item looks up a single item from the loaded collection by ID.
	// Returns domain.ErrNotFound when the collection does not hold it.
	Item(ctx context.Context, id string) (*domain.KnowledgeItem, error)

	// Sample fetches the most relevant code snippet for a named add-on
	// feature. Returns domain.ErrUnknownFeature for unmapped features.
	Sample(ctx context.Context, feature string) (string, error)

	// SampleFeatures lists the feature keywords Sample understands.
	SampleFeatures() []string
}

// IndexService builds the persisted local index from checked-out
// corpus trees.
type IndexService interface {
	// Build walks the corpus directories, segments every content file
	// and persists the flattened item collection. Returns the number
	// of items written.
	Build(ctx context.Context, corpora []domain.CorpusDir) (int, error)
}
