// Package mcp provides an MCP (Model Context Protocol) server adapter
// for expressdocs. It lets AI assistants query the Adobe Express add-on
// and Spectrum Web Components documentation corpora.
package mcp

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")
