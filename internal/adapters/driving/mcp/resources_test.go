package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleCorporaResource(t *testing.T) {
	server, err := NewServer(&Ports{Query: &mockQueryService{}})
	require.NoError(t, err)

	result, err := server.handleCorporaResource(context.Background(),
		readRequest("expressdocs://corpora"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, "AdobeDocs/express-add-ons-docs")
	assert.Contains(t, result.Contents[0].Text, "adobe/spectrum-web-components")
	assert.Contains(t, result.Contents[0].Text, "AdobeDocs/express-add-on-samples")
	assert.Contains(t, result.Contents[0].Text, string(domain.DataSourceAddOns))
	assert.Contains(t, result.Contents[0].Text, string(domain.DataSourceSpectrum))
	assert.Contains(t, result.Contents[0].Text, string(domain.DataSourceCodeSample))
}

func TestServer_handleItemResource(t *testing.T) {
	t.Run("returns item as JSON", func(t *testing.T) {
		mockQuery := &mockQueryService{
			item: &domain.KnowledgeItem{
				ID:    "item-1",
				Kind:  domain.KindPageOverview,
				Title: "Dialogs - Overview",
			},
		}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		result, err := server.handleItemResource(context.Background(),
			readRequest("expressdocs://items/item-1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "Dialogs - Overview")
	})

	t.Run("missing item is a resource error", func(t *testing.T) {
		server, err := NewServer(&Ports{Query: &mockQueryService{}})
		require.NoError(t, err)

		_, err = server.handleItemResource(context.Background(),
			readRequest("expressdocs://items/missing"))

		assert.Error(t, err)
	})

	t.Run("malformed URI is a resource error", func(t *testing.T) {
		server, err := NewServer(&Ports{Query: &mockQueryService{}})
		require.NoError(t, err)

		_, err = server.handleItemResource(context.Background(),
			readRequest("expressdocs://other/item-1"))

		assert.Error(t, err)
	})
}

func TestExtractItemID(t *testing.T) {
	assert.Equal(t, "abc-123", extractItemID("expressdocs://items/abc-123"))
	assert.Equal(t, "", extractItemID("expressdocs://corpora"))
	assert.Equal(t, "", extractItemID("https://items/abc"))
}
