package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for seva resources.
	uriScheme = "seva://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "states",
		Name:        "states",
		Description: "States and union territories that have services in the directory",
		MIMEType:    mimeJSON,
	}, s.handleStatesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "categories",
		Name:        "categories",
		Description: "Service categories with headings and descriptions",
		MIMEType:    mimeJSON,
	}, s.handleCategoriesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "services/{id}",
		Name:        "service",
		Description: "A single government service record",
		MIMEType:    mimeJSON,
	}, s.handleServiceResource)
}

// handleStatesResource returns the recognised states.
func (s *Server) handleStatesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	states := s.ports.Catalog.States(ctx)
	names := make([]string, len(states))
	for i, st := range states {
		names[i] = st.String()
	}
	s.metrics.ObserveResource("states", nil)
	return jsonResult(req.Params.URI, names)
}

// handleCategoriesResource returns every category in display order.
func (s *Server) handleCategoriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type categoryInfo struct {
		Name        string `json:"name"`
		Heading     string `json:"heading"`
		Description string `json:"description"`
	}

	cats := s.ports.Catalog.Categories(ctx)
	infos := make([]categoryInfo, len(cats))
	for i, c := range cats {
		infos[i] = categoryInfo{
			Name:        c.String(),
			Heading:     c.Heading(),
			Description: c.Description(),
		}
	}
	s.metrics.ObserveResource("categories", nil)
	return jsonResult(req.Params.URI, infos)
}

// handleServiceResource returns one service record by ID.
func (s *Server) handleServiceResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractServiceID(req.Params.URI)
	if id == "" {
		s.metrics.ObserveResource("service", domain.ErrNotFound)
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.Catalog.Get(ctx, id)
	s.metrics.ObserveResource("service", err)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting service: %w", err)
	}

	return jsonResult(req.Params.URI, toServiceOutput(record))
}

// jsonResult marshals v as the single content of a resource read.
func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractServiceID extracts the ID from a URI like seva://services/{id}.
func extractServiceID(uri string) string {
	const prefix = uriScheme + "services/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
