package github

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/addonkit/expressdocs/internal/core/domain"
	"github.com/addonkit/expressdocs/internal/core/ports/driven"
	"github.com/addonkit/expressdocs/internal/logger"
	"github.com/addonkit/expressdocs/internal/segment"
)

// Ensure Searcher implements the interface.
var _ driven.RemoteSearcher = (*Searcher)(nil)

// Searcher retrieves documentation live from GitHub for both corpora.
type Searcher struct {
	client *Client
}

// NewSearcher creates a remote searcher on top of a GitHub client.
func NewSearcher(client *Client) *Searcher {
	return &Searcher{client: client}
}

// Search fans out one bounded code search per targeted corpus,
// fetches the merged top matches and segments them into items.
// A failure in one corpus degrades to an empty contribution from
// that corpus and never aborts the other.
func (s *Searcher) Search(
	ctx context.Context, query string, target domain.DataSource,
) (*driven.RemoteSearchResult, error) {
	logger.Section("GitHub Search")
	logger.Debug("Query: %q, target: %q", query, target)

	targets := targetConfigs(target)
	perTarget := maxResultsSingle
	if len(targets) > 1 {
		perTarget = maxResultsBoth
	}

	// Per-corpus searches run concurrently; each failure is caught
	// independently.
	refs := make([][]domain.SearchResultRef, len(targets))
	var wg sync.WaitGroup
	wg.Add(len(targets))
	for i, cfg := range targets {
		go func(i int, cfg CorpusConfig) {
			defer wg.Done()
			found, err := s.searchCorpus(ctx, query, cfg, perTarget)
			if err != nil {
				logger.Warn("Search in %s/%s failed: %v", cfg.Owner, cfg.Repo, err)
				return
			}
			refs[i] = found
		}(i, cfg)
	}
	wg.Wait()

	var merged []domain.SearchResultRef
	for _, r := range refs {
		merged = append(merged, r...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	if len(merged) > perTarget {
		merged = merged[:perTarget]
	}
	logger.Debug("Merged refs: %d", len(merged))

	// Fetch and segment sequentially in ranked order.
	result := &driven.RemoteSearchResult{}
	var items []domain.KnowledgeItem
	for _, ref := range merged {
		doc, err := s.fetchDocument(ctx, ref)
		if err != nil {
			logger.Warn("Fetching %s failed: %v", ref.Path, err)
			continue
		}
		if doc == nil {
			continue
		}
		result.Fetched = true
		items = append(items, segment.Segment(doc)...)
	}

	// Remote search matches file names and paths, not section content.
	// Require at least one query term to literally appear in the title
	// or tags to restore precision.
	result.Items = filterByTerms(items, query)
	logger.Info("GitHub search: %d items after term filter", len(result.Items))
	return result, nil
}

// searchCorpus runs one scoped code search and converts hits to refs.
func (s *Searcher) searchCorpus(
	ctx context.Context, query string, cfg CorpusConfig, limit int,
) ([]domain.SearchResultRef, error) {
	scoped := fmt.Sprintf("%s repo:%s/%s extension:%s", query, cfg.Owner, cfg.Repo, cfg.Extension)
	if cfg.Path != "" {
		scoped += " path:" + cfg.Path
	}

	found, err := s.client.SearchCode(ctx, scoped, limit)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("empty search response")
	}

	refs := make([]domain.SearchResultRef, 0, len(found.CodeResults))
	for _, hit := range found.CodeResults {
		if hit.GetPath() == "" {
			continue
		}
		refs = append(refs, domain.SearchResultRef{
			Name:   hit.GetName(),
			Path:   hit.GetPath(),
			SHA:    hit.GetSHA(),
			Corpus: cfg.Source,
			// Text match count stands in for relevance; the API does
			// not expose its score. Missing matches rank as 0.
			Score: float64(len(hit.TextMatches)),
		})
		if len(refs) >= limit {
			break
		}
	}
	return refs, nil
}

// fetchDocument retrieves one matched file, splits its front matter
// and prepares it for segmentation. A missing file yields nil, nil.
func (s *Searcher) fetchDocument(
	ctx context.Context, ref domain.SearchResultRef,
) (*domain.Document, error) {
	cfg := corpusFor(ref.Corpus)
	if cfg == nil {
		return nil, fmt.Errorf("unknown corpus %q", ref.Corpus)
	}

	content, err := s.client.GetFileContent(ctx, cfg.Owner, cfg.Repo, ref.Path, "")
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	fm, body := segment.SplitFrontMatter(content)
	return &domain.Document{
		Path:           ref.Path,
		FrontMatter:    fm,
		Body:           body,
		CorpusBasePath: cfg.BasePath,
		SourceHint: fmt.Sprintf("https://github.com/%s/%s/blob/main/%s",
			cfg.Owner, cfg.Repo, ref.Path),
		DataSource: cfg.Source,
	}, nil
}

// filterByTerms keeps items whose title or tags literally contain at
// least one query term longer than two characters.
func filterByTerms(items []domain.KnowledgeItem, query string) []domain.KnowledgeItem {
	var terms []string
	for _, t := range strings.Fields(strings.ToLower(query)) {
		if len(t) > 2 {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return items
	}

	var kept []domain.KnowledgeItem
	for _, item := range items {
		if itemMatchesAny(&item, terms) {
			kept = append(kept, item)
		}
	}
	return kept
}

func itemMatchesAny(item *domain.KnowledgeItem, terms []string) bool {
	title := strings.ToLower(item.Title)
	for _, term := range terms {
		if strings.Contains(title, term) {
			return true
		}
		for _, tag := range item.Tags {
			if strings.Contains(tag, term) {
				return true
			}
		}
	}
	return false
}

// targetConfigs resolves the corpora to search: one when a specific
// corpus is targeted, both otherwise.
func targetConfigs(target domain.DataSource) []CorpusConfig {
	if cfg := corpusFor(target); cfg != nil {
		return []CorpusConfig{*cfg}
	}
	return corpora
}
