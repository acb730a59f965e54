package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for expressdocs resources.
	uriScheme = "expressdocs://"
)

// corpusInfo describes one documentation corpus in the corpora resource.
type corpusInfo struct {
	Source     string `json:"source"`
	Repository string `json:"repository"`
	Path       string `json:"path,omitempty"`
	Role       string `json:"role"`
}

// corpora is the fixed set of repositories the server draws from.
var corpora = []corpusInfo{
	{
		Source:     string(domain.DataSourceAddOns),
		Repository: "AdobeDocs/express-add-ons-docs",
		Path:       "src/pages",
		Role:       "Adobe Express add-on SDK guides and references",
	},
	{
		Source:     string(domain.DataSourceSpectrum),
		Repository: "adobe/spectrum-web-components",
		Path:       "packages",
		Role:       "Spectrum Web Components component documentation",
	},
	{
		Source:     string(domain.DataSourceCodeSample),
		Repository: "AdobeDocs/express-add-on-samples",
		Role:       "working add-on code samples",
	},
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing corpora.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpora",
		Name:        "corpora",
		Description: "Documentation repositories this server draws from",
		MIMEType:    "application/json",
	}, s.handleCorporaResource)

	// Template for individual knowledge items.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "items/{itemId}",
		Name:        "knowledge-item",
		Description: "A single knowledge item from the local collection",
		MIMEType:    "application/json",
	}, s.handleItemResource)
}

// handleCorporaResource returns the fixed corpus list.
func (s *Server) handleCorporaResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(corpora, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling corpora: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleItemResource returns a single knowledge item by ID.
func (s *Server) handleItemResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract itemId from URI: expressdocs://items/{itemId}
	itemID := extractItemID(req.Params.URI)
	if itemID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	item, err := s.ports.Query.Item(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting item: %w", err)
	}

	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling item: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractItemID extracts the item ID from a URI like expressdocs://items/{itemId}.
func extractItemID(uri string) string {
	const prefix = uriScheme + "items/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
