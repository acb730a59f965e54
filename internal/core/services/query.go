package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/addonkit/expressdocs/internal/core/domain"
	"github.com/addonkit/expressdocs/internal/core/ports/driven"
	"github.com/addonkit/expressdocs/internal/core/ports/driving"
	"github.com/addonkit/expressdocs/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// sourceDescription is reported by the capabilities probe.
const sourceDescription = "Adobe Express add-ons SDK documentation and " +
	"Spectrum Web Components documentation, searched live on GitHub or " +
	"from a pre-built local index."

// maxKeywords caps the capabilities keyword list.
const maxKeywords = 40

// fallbackKeywords is reported when no local collection is loaded.
var fallbackKeywords = []string{
	"addonsdk", "authoring", "button", "client-storage", "color-picker",
	"communication", "debugging", "dialog", "distribute", "document-api",
	"drag-and-drop", "editor", "export", "grids", "guides", "iframe",
	"import", "manifest", "media", "menu", "modal", "monetization",
	"oauth", "overlay", "picker", "popover", "premium-content",
	"references", "sandbox", "slider", "sp-button", "sp-dialog",
	"sp-menu", "sp-popover", "sp-slider", "sp-textfield", "storage",
	"textfield", "theme", "tutorials",
}

// QueryService routes queries to the local engine or the remote
// searcher and owns the retrieval mode.
type QueryService struct {
	mu        sync.RWMutex
	mode      domain.Mode
	knowledge driven.KnowledgeStore
	index     driven.IndexStore
	remote    driven.RemoteSearcher
}

// NewQueryService creates a query service starting in the given mode.
// The remote searcher is optional (can be nil): without it, GitHub
// mode degrades to an error placeholder.
func NewQueryService(
	initial domain.Mode,
	knowledge driven.KnowledgeStore,
	index driven.IndexStore,
	remote driven.RemoteSearcher,
) *QueryService {
	return &QueryService{
		mode:      initial,
		knowledge: knowledge,
		index:     index,
		remote:    remote,
	}
}

// Mode returns the current retrieval mode.
func (s *QueryService) Mode() domain.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches the retrieval backend. Switching to local mode
// loads the persisted index if nothing is loaded yet; a missing or
// corrupt index logs a warning and leaves the collection empty.
func (s *QueryService) SetMode(ctx context.Context, mode domain.Mode) (domain.Mode, string, error) {
	switch mode {
	case domain.ModeGitHub, domain.ModeLocal:
	default:
		return "", "", fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode)
	}

	if mode == domain.ModeLocal && !s.knowledge.Loaded() {
		s.loadIndex(ctx)
	}

	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	msg := fmt.Sprintf("Search mode set to %s.", mode)
	if mode == domain.ModeLocal {
		msg = fmt.Sprintf("Search mode set to local (%d items loaded).",
			len(s.knowledge.Items(ctx)))
	}
	logger.Info("Mode switched to %s", mode)
	return mode, msg, nil
}

// loadIndex loads the persisted collection into the knowledge store.
// Load errors are never fatal: the collection defaults to empty and
// subsequent local queries answer with a placeholder.
func (s *QueryService) loadIndex(ctx context.Context) {
	if s.index == nil {
		return
	}

	items, err := s.index.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("No local index found; collection starts empty")
		} else {
			logger.Warn("Loading local index failed: %v", err)
		}
		items = nil
	}
	if err := s.knowledge.Replace(ctx, items); err != nil {
		logger.Warn("Replacing collection failed: %v", err)
	}
	logger.Info("Local index loaded: %d items", len(items))
}

// Query answers a free-text query using the current mode. Results are
// never empty and never exceed domain.MaxResults.
func (s *QueryService) Query(
	ctx context.Context, query string, opts domain.QueryOptions,
) (*domain.QueryResponse, error) {
	logger.Section("Query Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}

	target := domain.ResolveTarget(query, opts.Source)
	mode := s.Mode()
	logger.Debug("Mode: %s, target: %q", mode, target)

	var resp *domain.QueryResponse
	if mode == domain.ModeLocal {
		resp = s.queryLocal(ctx, query, target)
	} else {
		resp = s.queryGitHub(ctx, query, target)
	}

	if len(resp.Results) > domain.MaxResults {
		resp.Results = resp.Results[:domain.MaxResults]
	}
	logger.Info("Results: %d (confidence %.2f)", len(resp.Results), resp.Confidence)
	return resp, nil
}

// queryLocal scores the loaded collection. An unloaded or empty
// collection is a distinct zero-item path from a zero-match query.
func (s *QueryService) queryLocal(
	ctx context.Context, query string, target domain.DataSource,
) *domain.QueryResponse {
	if !s.knowledge.Loaded() {
		s.loadIndex(ctx)
	}

	items := s.knowledge.Items(ctx)
	if len(items) == 0 {
		logger.Warn("Local collection is empty")
		return &domain.QueryResponse{
			Query: query,
			Results: []domain.KnowledgeItem{placeholder(
				domain.KindErrKBNotLoaded,
				"Knowledge base not loaded",
				"The local knowledge base is empty. Build it with the index "+
					"command, or switch to github mode for live search.",
				[]string{"kb"},
			)},
			Confidence: domain.ConfidenceDefault,
			ModeUsed:   domain.ModeLocal,
			Summary:    "Local knowledge base is empty.",
		}
	}

	results := RankLocal(query, items, target)
	if len(results) == 0 {
		return &domain.QueryResponse{
			Query: query,
			Results: []domain.KnowledgeItem{placeholder(
				domain.KindNoMatchLocal,
				"No matching documentation",
				fmt.Sprintf("No local documentation matched %q. Try different "+
					"keywords or github mode.", query),
				[]string{"no-match"},
			)},
			Confidence: domain.ConfidenceNoLocalMatch,
			ModeUsed:   domain.ModeLocal,
			Summary:    fmt.Sprintf("No local matches for %q.", query),
		}
	}

	return &domain.QueryResponse{
		Query:      query,
		Results:    results,
		Confidence: domain.ConfidenceLocalMatch,
		ModeUsed:   domain.ModeLocal,
		Summary:    fmt.Sprintf("Found %d local matches for %q.", len(results), query),
	}
}

// queryGitHub searches live. Remote failures degrade to a placeholder
// response, never an error.
func (s *QueryService) queryGitHub(
	ctx context.Context, query string, target domain.DataSource,
) *domain.QueryResponse {
	if s.remote == nil {
		return &domain.QueryResponse{
			Query: query,
			Results: []domain.KnowledgeItem{placeholder(
				domain.KindErrGitHub,
				"GitHub search unavailable",
				"No remote searcher is configured. Switch to local mode.",
				[]string{"github"},
			)},
			Confidence: domain.ConfidenceDefault,
			ModeUsed:   domain.ModeGitHub,
			Summary:    "GitHub search is unavailable.",
		}
	}

	result, err := s.remote.Search(ctx, query, target)
	if err != nil {
		logger.Warn("GitHub search failed: %v", err)
		return &domain.QueryResponse{
			Query: query,
			Results: []domain.KnowledgeItem{placeholder(
				domain.KindErrGitHub,
				"GitHub search failed",
				fmt.Sprintf("Live search failed: %v. Try again or switch to "+
					"local mode.", err),
				[]string{"github"},
			)},
			Confidence: domain.ConfidenceDefault,
			ModeUsed:   domain.ModeGitHub,
			Summary:    "GitHub search failed.",
		}
	}

	if len(result.Items) == 0 {
		confidence := domain.ConfidenceDefault
		if result.Fetched {
			confidence = domain.ConfidenceRemoteFiltered
		}
		return &domain.QueryResponse{
			Query: query,
			Results: []domain.KnowledgeItem{placeholder(
				domain.KindNoMatchGitHub,
				"No matching documentation",
				fmt.Sprintf("GitHub search found nothing for %q. Try different "+
					"keywords.", query),
				[]string{"no-match"},
			)},
			Confidence: confidence,
			ModeUsed:   domain.ModeGitHub,
			Summary:    fmt.Sprintf("No GitHub matches for %q.", query),
		}
	}

	return &domain.QueryResponse{
		Query:      query,
		Results:    result.Items,
		Confidence: domain.ConfidenceRemoteMatch,
		ModeUsed:   domain.ModeGitHub,
		Summary:    fmt.Sprintf("Found %d matches for %q via GitHub.", len(result.Items), query),
	}
}

// Capabilities reports the supported keywords (collection tags in
// local mode, a fixed fallback otherwise), source description and
// mode information.
func (s *QueryService) Capabilities(ctx context.Context) (*domain.Capabilities, error) {
	keywords := fallbackKeywords
	if s.Mode() == domain.ModeLocal && s.knowledge.Loaded() {
		if derived := collectionKeywords(s.knowledge.Items(ctx)); len(derived) > 0 {
			keywords = derived
		}
	}
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return &domain.Capabilities{
		SupportedKeywords: keywords,
		SourceDescription: sourceDescription,
		CurrentMode:       s.Mode(),
		AvailableModes:    domain.AvailableModes(),
	}, nil
}

// Item looks up a single item from the loaded collection by ID.
func (s *QueryService) Item(ctx context.Context, id string) (*domain.KnowledgeItem, error) {
	if !s.knowledge.Loaded() {
		s.loadIndex(ctx)
	}
	return s.knowledge.Get(ctx, id)
}

// Sample fetches the most relevant code snippet for a named add-on
// feature from the samples repository.
func (s *QueryService) Sample(ctx context.Context, feature string) (string, error) {
	if s.remote == nil {
		return "", errors.New("fetching sample: no remote searcher configured")
	}
	return s.remote.SampleSnippet(ctx, feature)
}

// SampleFeatures lists the feature keywords Sample understands.
func (s *QueryService) SampleFeatures() []string {
	if s.remote == nil {
		return nil
	}
	return s.remote.SupportedFeatures()
}

// collectionKeywords derives a sorted, deduplicated keyword list from
// the loaded collection's tags.
func collectionKeywords(items []domain.KnowledgeItem) []string {
	seen := make(map[string]bool)
	for _, item := range items {
		for _, tag := range item.Tags {
			seen[tag] = true
		}
	}

	keywords := make([]string, 0, len(seen))
	for tag := range seen {
		keywords = append(keywords, tag)
	}
	sort.Strings(keywords)
	return keywords
}

// placeholder builds a synthetic item for zero-result and error
// conditions so callers always receive a renderable result.
func placeholder(kind, title, content string, tags []string) domain.KnowledgeItem {
	return domain.KnowledgeItem{
		ID:         uuid.New().String(),
		Kind:       kind,
		Title:      title,
		Content:    content,
		Tags:       tags,
		DataSource: domain.DataSourceUnknown,
	}
}
