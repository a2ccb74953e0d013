// Package mcp provides an MCP (Model Context Protocol) server adapter for seva.
// It lets AI assistants look up government service links from the catalogue.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalogue service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
