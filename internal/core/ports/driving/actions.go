package driving

import (
	"context"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

// ServiceActionService performs actions on a selected service.
// This is used by TUI, CLI, and MCP adapters.
type ServiceActionService interface {
	// Open opens the service's official website in the default browser.
	Open(ctx context.Context, record *domain.ServiceRecord) error
}
