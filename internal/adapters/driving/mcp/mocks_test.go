package mcp

import (
	"context"

	"github.com/addonkit/expressdocs/internal/core/domain"
	"github.com/addonkit/expressdocs/internal/core/ports/driving"
)

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	response  *domain.QueryResponse
	mode      domain.Mode
	modeMsg   string
	caps      *domain.Capabilities
	item      *domain.KnowledgeItem
	snippet   string
	features  []string
	err       error
	lastQuery string
	lastOpts  domain.QueryOptions
}

var _ driving.QueryService = (*mockQueryService)(nil)

func (m *mockQueryService) Query(
	_ context.Context, query string, opts domain.QueryOptions,
) (*domain.QueryResponse, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.response, m.err
}

func (m *mockQueryService) SetMode(_ context.Context, mode domain.Mode) (domain.Mode, string, error) {
	if m.err != nil {
		return "", "", m.err
	}
	m.mode = mode
	return mode, m.modeMsg, nil
}

func (m *mockQueryService) Mode() domain.Mode {
	return m.mode
}

func (m *mockQueryService) Capabilities(_ context.Context) (*domain.Capabilities, error) {
	return m.caps, m.err
}

func (m *mockQueryService) Item(_ context.Context, _ string) (*domain.KnowledgeItem, error) {
	if m.item == nil && m.err == nil {
		return nil, domain.ErrNotFound
	}
	return m.item, m.err
}

func (m *mockQueryService) Sample(_ context.Context, _ string) (string, error) {
	return m.snippet, m.err
}

func (m *mockQueryService) SampleFeatures() []string {
	return m.features
}
