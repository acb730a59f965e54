package cli

import (
	"context"

	"github.com/addonkit/expressdocs/internal/core/domain"
	"github.com/addonkit/expressdocs/internal/core/ports/driving"
)

// mockQueryService serves canned responses for command tests.
type mockQueryService struct {
	response *domain.QueryResponse
	mode     domain.Mode
	caps     *domain.Capabilities
	snippet  string
	features []string
	err      error
}

var _ driving.QueryService = (*mockQueryService)(nil)

func (m *mockQueryService) Query(
	_ context.Context, query string, _ domain.QueryOptions,
) (*domain.QueryResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &domain.QueryResponse{
		Query: query,
		Results: []domain.KnowledgeItem{{
			ID:         "item-1",
			Kind:       domain.KindPageOverview,
			Title:      "Dialogs - Overview",
			Content:    "Dialogs interrupt the flow.",
			Tags:       []string{"dialog"},
			DataSource: domain.DataSourceAddOns,
		}},
		Confidence: domain.ConfidenceLocalMatch,
		ModeUsed:   domain.ModeLocal,
		Summary:    "Found 1 local matches.",
	}, nil
}

func (m *mockQueryService) SetMode(_ context.Context, mode domain.Mode) (domain.Mode, string, error) {
	if m.err != nil {
		return "", "", m.err
	}
	m.mode = mode
	return mode, "Search mode set to " + string(mode) + ".", nil
}

func (m *mockQueryService) Mode() domain.Mode {
	return m.mode
}

func (m *mockQueryService) Capabilities(_ context.Context) (*domain.Capabilities, error) {
	return m.caps, m.err
}

func (m *mockQueryService) Item(_ context.Context, _ string) (*domain.KnowledgeItem, error) {
	return nil, domain.ErrNotFound
}

func (m *mockQueryService) Sample(_ context.Context, _ string) (string, error) {
	return m.snippet, m.err
}

func (m *mockQueryService) SampleFeatures() []string {
	return m.features
}

// mockIndexService records the corpora it was asked to index.
type mockIndexService struct {
	count   int
	err     error
	corpora []domain.CorpusDir
}

var _ driving.IndexService = (*mockIndexService)(nil)

func (m *mockIndexService) Build(_ context.Context, corpora []domain.CorpusDir) (int, error) {
	m.corpora = corpora
	return m.count, m.err
}

// setupTestServices swaps the package services for mocks and returns
// a cleanup restoring the originals.
func setupTestServices() func() {
	oldQuery, oldIndex := queryService, indexService
	queryService = &mockQueryService{mode: domain.ModeLocal}
	indexService = &mockIndexService{count: 42}
	return func() {
		queryService, indexService = oldQuery, oldIndex
	}
}
