package driving

import "github.com/custodia-labs/seva-cli/internal/core/domain"

// SettingsService manages user preferences.
type SettingsService interface {
	// Get returns current settings, falling back to defaults for
	// missing or invalid values.
	Get() (*domain.AppSettings, error)

	// Save persists the given settings.
	Save(settings *domain.AppSettings) error

	// SetDefaultState validates and stores the preselected state.
	SetDefaultState(name string) error
}
