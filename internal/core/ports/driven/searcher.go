package driven

import (
	"context"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

// RemoteSearchResult is the outcome of one remote retrieval pass.
type RemoteSearchResult struct {
	// Items are the segmented, term-filtered knowledge items.
	Items []domain.KnowledgeItem

	// Fetched reports whether any matched file was fetched and
	// segmented. Distinguishes "nothing matched" from "matches were
	// filtered out", which carry different confidence priors.
	Fetched bool
}

// RemoteSearcher retrieves documentation live from the remote host.
// A failure in one corpus never aborts the other: per-corpus errors
// degrade to empty contributions.
type RemoteSearcher interface {
	// Search issues bounded per-corpus searches, fetches the top
	// matches and segments them into items.
	Search(ctx context.Context, query string, target domain.DataSource) (*RemoteSearchResult, error)

	// SampleSnippet fetches the most relevant code block for a named
	// add-on feature from the samples repository.
	// Returns domain.ErrUnknownFeature for unmapped keywords.
	SampleSnippet(ctx context.Context, feature string) (string, error)

	// SupportedFeatures lists the feature keywords SampleSnippet
	// understands.
	SupportedFeatures() []string
}
