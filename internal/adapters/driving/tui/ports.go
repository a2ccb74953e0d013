// Package tui provides the interactive terminal directory for seva.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"

	"github.com/custodia-labs/seva-cli/internal/core/ports/driving"
)

// ConfigWatcher reports edits to the configuration file.
type ConfigWatcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog answers listing and filtering queries.
	Catalog driving.CatalogService

	// Actions opens service websites.
	Actions driving.ServiceActionService

	// Settings provides the preselected state. Optional.
	Settings driving.SettingsService

	// Watcher triggers a settings reload when the config file changes. Optional.
	Watcher ConfigWatcher
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Actions == nil {
		return ErrMissingActionService
	}
	return nil
}
