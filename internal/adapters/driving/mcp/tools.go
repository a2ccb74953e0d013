package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

// ListServicesInput is the input schema for the list_services tool.
type ListServicesInput struct {
	State    string `json:"state,omitempty" jsonschema:"state or union territory name, e.g. Maharashtra; empty for all"`
	Category string `json:"category,omitempty" jsonschema:"one of Emergency, Women Safety, Public Safety, Documents, Environmental, Traffic; empty for all"`
	Query    string `json:"query,omitempty" jsonschema:"text to match against service names and descriptions"`
}

// ListServicesOutput is the output schema for the list_services tool.
type ListServicesOutput struct {
	Services []ServiceOutput `json:"services"`
	Count    int             `json:"count"`
}

// ServiceOutput represents a single service record.
type ServiceOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	State       string `json:"state"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// ListHelplinesInput is the (empty) input schema for the list_helplines tool.
type ListHelplinesInput struct{}

// ListHelplinesOutput is the output schema for the list_helplines tool.
type ListHelplinesOutput struct {
	Helplines []domain.Helpline `json:"helplines"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_services",
		Description: "List official Indian government service websites, optionally filtered by state, category and search text",
	}, s.handleListServices)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_helplines",
		Description: "List national emergency and support helpline numbers",
	}, s.handleListHelplines)
}

// handleListServices handles the list_services tool invocation.
func (s *Server) handleListServices(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListServicesInput,
) (*mcp.CallToolResult, ListServicesOutput, error) {
	sel, err := domain.ParseSelection(input.State, input.Category)
	s.metrics.ObserveTool("list_services", err)
	if err != nil {
		return nil, ListServicesOutput{}, err
	}

	records := s.ports.Catalog.Search(ctx, input.Query, sel)

	output := ListServicesOutput{
		Services: make([]ServiceOutput, len(records)),
		Count:    len(records),
	}
	for i := range records {
		output.Services[i] = toServiceOutput(&records[i])
	}

	return nil, output, nil
}

// handleListHelplines handles the list_helplines tool invocation.
func (s *Server) handleListHelplines(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListHelplinesInput,
) (*mcp.CallToolResult, ListHelplinesOutput, error) {
	helplines := s.ports.Catalog.Helplines(ctx)
	s.metrics.ObserveTool("list_helplines", nil)
	if helplines == nil {
		helplines = []domain.Helpline{}
	}
	return nil, ListHelplinesOutput{Helplines: helplines}, nil
}

func toServiceOutput(r *domain.ServiceRecord) ServiceOutput {
	return ServiceOutput{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category.String(),
		State:       r.State.String(),
		URL:         r.URL,
		Description: r.Description,
	}
}
