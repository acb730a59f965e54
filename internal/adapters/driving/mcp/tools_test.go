package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

func TestServer_handleQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("returns knowledge items", func(t *testing.T) {
		mockQuery := &mockQueryService{
			response: &domain.QueryResponse{
				Query: "dialog",
				Results: []domain.KnowledgeItem{{
					ID:         "item-1",
					Kind:       domain.KindPageOverview,
					Title:      "Dialogs - Overview",
					Content:    "Dialogs interrupt the flow.",
					SourceHint: "https://github.com/AdobeDocs/express-add-ons-docs/blob/main/x.md",
					Tags:       []string{"dialog"},
					DataSource: domain.DataSourceAddOns,
				}},
				Confidence: domain.ConfidenceLocalMatch,
				ModeUsed:   domain.ModeLocal,
				Summary:    "Found 1 local matches for \"dialog\".",
			},
		}

		ports := &Ports{Query: mockQuery}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := QueryInput{Query: "dialog"}
		_, output, err := server.handleQuery(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "item-1", output.Results[0].ID)
		assert.Equal(t, domain.KindPageOverview, output.Results[0].Kind)
		assert.Equal(t, "Dialogs - Overview", output.Results[0].Title)
		assert.Equal(t, string(domain.DataSourceAddOns), output.Results[0].DataSource)
		assert.Equal(t, domain.ConfidenceLocalMatch, output.Confidence)
		assert.Equal(t, "local", output.Mode)
	})

	t.Run("limit truncates results", func(t *testing.T) {
		items := make([]domain.KnowledgeItem, 5)
		for i := range items {
			items[i] = domain.KnowledgeItem{ID: string(rune('a' + i)), Title: "Dialogs"}
		}
		mockQuery := &mockQueryService{
			response: &domain.QueryResponse{Results: items},
		}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		input := QueryInput{Query: "dialog", Limit: 2}
		_, output, err := server.handleQuery(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		require.Len(t, output.Results, 2)
		assert.Equal(t, "a", output.Results[0].ID)
		assert.Equal(t, "b", output.Results[1].ID)
	})

	t.Run("oversized limit returns everything", func(t *testing.T) {
		mockQuery := &mockQueryService{
			response: &domain.QueryResponse{
				Results: []domain.KnowledgeItem{{ID: "only"}},
			},
		}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, output, err := server.handleQuery(ctx, nil, QueryInput{Query: "dialog", Limit: 50})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
	})

	t.Run("forwards source hint", func(t *testing.T) {
		mockQuery := &mockQueryService{
			response: &domain.QueryResponse{},
		}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		input := QueryInput{Query: "tooltip", Source: string(domain.DataSourceSpectrum)}
		_, _, err = server.handleQuery(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, string(domain.DataSourceSpectrum), mockQuery.lastOpts.Source)
	})

	t.Run("propagates service error", func(t *testing.T) {
		mockQuery := &mockQueryService{err: errors.New("bad input")}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, _, err = server.handleQuery(ctx, nil, QueryInput{Query: ""})

		assert.Error(t, err)
	})
}

func TestServer_handleSetMode(t *testing.T) {
	ctx := context.Background()

	t.Run("switches mode", func(t *testing.T) {
		mockQuery := &mockQueryService{modeMsg: "Search mode set to local (5 items loaded)."}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, output, err := server.handleSetMode(ctx, nil, SetModeInput{Mode: "local"})

		require.NoError(t, err)
		assert.Equal(t, "local", output.Mode)
		assert.Contains(t, output.Message, "5 items")
	})

	t.Run("accepts remote as synonym", func(t *testing.T) {
		mockQuery := &mockQueryService{}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, output, err := server.handleSetMode(ctx, nil, SetModeInput{Mode: "remote"})

		require.NoError(t, err)
		assert.Equal(t, "github", output.Mode)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		server, err := NewServer(&Ports{Query: &mockQueryService{}})
		require.NoError(t, err)

		_, _, err = server.handleSetMode(ctx, nil, SetModeInput{Mode: "hybrid"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidMode)
	})
}

func TestServer_handleCapabilities(t *testing.T) {
	mockQuery := &mockQueryService{
		caps: &domain.Capabilities{
			SupportedKeywords: []string{"dialog", "export"},
			SourceDescription: "docs",
			CurrentMode:       domain.ModeGitHub,
			AvailableModes:    domain.AvailableModes(),
		},
	}
	server, err := NewServer(&Ports{Query: mockQuery})
	require.NoError(t, err)

	_, output, err := server.handleCapabilities(context.Background(), nil, struct{}{})

	require.NoError(t, err)
	assert.Equal(t, []string{"dialog", "export"}, output.SupportedKeywords)
	assert.Equal(t, "github", output.CurrentMode)
	assert.Equal(t, []string{"github", "local"}, output.AvailableModes)
}

func TestServer_handleSample(t *testing.T) {
	t.Run("returns snippet", func(t *testing.T) {
		mockQuery := &mockQueryService{snippet: "await showModalDialog(options);"}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, output, err := server.handleSample(context.Background(), nil, SampleInput{Feature: "dialog"})

		require.NoError(t, err)
		assert.Equal(t, "dialog", output.Feature)
		assert.Contains(t, output.Snippet, "showModalDialog")
	})

	t.Run("propagates unknown feature", func(t *testing.T) {
		mockQuery := &mockQueryService{err: domain.ErrUnknownFeature}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, _, err = server.handleSample(context.Background(), nil, SampleInput{Feature: "nope"})

		assert.ErrorIs(t, err, domain.ErrUnknownFeature)
	})
}
