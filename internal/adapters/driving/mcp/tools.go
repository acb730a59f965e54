package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

// QueryInput is the input schema for the query_documentation tool.
type QueryInput struct {
	Query  string `json:"query" jsonschema:"the documentation question or keywords to search for"`
	Source string `json:"source,omitempty" jsonschema:"optional corpus hint: express-add-ons-docs or spectrum-web-components"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of results to return, between 1 and 10"`
}

// QueryOutput is the output schema for the query_documentation tool.
type QueryOutput struct {
	Query      string       `json:"query"`
	Results    []ItemOutput `json:"results"`
	Count      int          `json:"count"`
	Confidence float64      `json:"confidence"`
	Mode       string       `json:"mode"`
	Summary    string       `json:"summary"`
}

// ItemOutput represents a single knowledge item in tool output.
type ItemOutput struct {
	ID         string   `json:"id"`
	Kind       string   `json:"kind"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	SourceHint string   `json:"source_hint,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	DataSource string   `json:"data_source"`
}

// SetModeInput is the input schema for the set_search_mode tool.
type SetModeInput struct {
	Mode string `json:"mode" jsonschema:"retrieval mode: github for live search or local for the pre-built index"`
}

// SetModeOutput is the output schema for the set_search_mode tool.
type SetModeOutput struct {
	Mode    string `json:"mode"`
	Message string `json:"message"`
}

// CapabilitiesOutput is the output schema for the get_capabilities tool.
type CapabilitiesOutput struct {
	SupportedKeywords []string `json:"supported_keywords"`
	SourceDescription string   `json:"source_description"`
	CurrentMode       string   `json:"current_mode"`
	AvailableModes    []string `json:"available_modes"`
}

// SampleInput is the input schema for the get_sample_code tool.
type SampleInput struct {
	Feature string `json:"feature" jsonschema:"the add-on feature to fetch sample code for, e.g. dialog or drag-and-drop"`
}

// SampleOutput is the output schema for the get_sample_code tool.
type SampleOutput struct {
	Feature string `json:"feature"`
	Snippet string `json:"snippet"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "query_documentation",
		Description: "Search the Adobe Express add-on SDK and Spectrum Web " +
			"Components documentation",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "set_search_mode",
		Description: "Switch between live GitHub search and the local index",
	}, s.handleSetMode)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_capabilities",
		Description: "Describe the topics and modes this server can answer",
	}, s.handleCapabilities)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_sample_code",
		Description: "Fetch a working code sample for a named add-on feature",
	}, s.handleSample)
}

// handleQuery handles the query_documentation tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	opts := domain.QueryOptions{Source: input.Source}
	resp, err := s.ports.Query.Query(ctx, input.Query, opts)
	if err != nil {
		return nil, QueryOutput{}, err
	}

	// The service already caps at ten results; a client limit can only
	// tighten that.
	results := resp.Results
	if input.Limit > 0 && input.Limit < len(results) {
		results = results[:input.Limit]
	}

	output := QueryOutput{
		Query:      resp.Query,
		Results:    make([]ItemOutput, len(results)),
		Count:      len(results),
		Confidence: resp.Confidence,
		Mode:       string(resp.ModeUsed),
		Summary:    resp.Summary,
	}

	for i := range results {
		item := &results[i]
		output.Results[i] = ItemOutput{
			ID:         item.ID,
			Kind:       item.Kind,
			Title:      item.Title,
			Content:    item.Content,
			SourceHint: item.SourceHint,
			Tags:       item.Tags,
			DataSource: string(item.DataSource),
		}
	}

	return nil, output, nil
}

// handleSetMode handles the set_search_mode tool invocation.
func (s *Server) handleSetMode(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SetModeInput,
) (*mcp.CallToolResult, SetModeOutput, error) {
	mode, err := domain.ParseMode(input.Mode)
	if err != nil {
		return nil, SetModeOutput{}, err
	}

	newMode, msg, err := s.ports.Query.SetMode(ctx, mode)
	if err != nil {
		return nil, SetModeOutput{}, err
	}

	return nil, SetModeOutput{Mode: string(newMode), Message: msg}, nil
}

// handleCapabilities handles the get_capabilities tool invocation.
func (s *Server) handleCapabilities(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, CapabilitiesOutput, error) {
	caps, err := s.ports.Query.Capabilities(ctx)
	if err != nil {
		return nil, CapabilitiesOutput{}, err
	}

	modes := make([]string, len(caps.AvailableModes))
	for i, m := range caps.AvailableModes {
		modes[i] = string(m)
	}

	return nil, CapabilitiesOutput{
		SupportedKeywords: caps.SupportedKeywords,
		SourceDescription: caps.SourceDescription,
		CurrentMode:       string(caps.CurrentMode),
		AvailableModes:    modes,
	}, nil
}

// handleSample handles the get_sample_code tool invocation.
func (s *Server) handleSample(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SampleInput,
) (*mcp.CallToolResult, SampleOutput, error) {
	snippet, err := s.ports.Query.Sample(ctx, input.Feature)
	if err != nil {
		return nil, SampleOutput{}, err
	}

	return nil, SampleOutput{Feature: input.Feature, Snippet: snippet}, nil
}
