package github

import "github.com/addonkit/expressdocs/internal/core/domain"

// CorpusConfig scopes code search to one documentation corpus.
type CorpusConfig struct {
	// Source is the corpus identifier carried onto produced items.
	Source domain.DataSource

	// Owner and Repo name the GitHub repository.
	Owner string
	Repo  string

	// Path restricts search to a subtree ("" for the whole repo).
	Path string

	// Extension restricts search to one file extension.
	Extension string

	// BasePath is stripped from file paths before tag derivation.
	BasePath string
}

// The two searchable corpora.
var corpora = []CorpusConfig{
	{
		Source:    domain.DataSourceAddOns,
		Owner:     "AdobeDocs",
		Repo:      "express-add-ons-docs",
		Path:      "src/pages",
		Extension: "md",
		BasePath:  "src/pages",
	},
	{
		Source:    domain.DataSourceSpectrum,
		Owner:     "adobe",
		Repo:      "spectrum-web-components",
		Path:      "packages",
		Extension: "md",
		BasePath:  "",
	},
}

// Code samples live in a third repository, resolved by feature
// keyword rather than searched.
const (
	samplesOwner = "AdobeDocs"
	samplesRepo  = "express-add-on-samples"
)

// Per-corpus result caps: tighter when both corpora are queried so
// the total fetch volume stays bounded.
const (
	maxResultsBoth   = 2
	maxResultsSingle = 5
)

// corpusFor returns the config for a target corpus, or nil.
func corpusFor(target domain.DataSource) *CorpusConfig {
	for i := range corpora {
		if corpora[i].Source == target {
			return &corpora[i]
		}
	}
	return nil
}
