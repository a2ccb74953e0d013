package services

import (
	"fmt"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
	"github.com/custodia-labs/seva-cli/internal/core/ports/driven"
	"github.com/custodia-labs/seva-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultState   = "settings.default_state"
	keySkipOnboarding = "settings.skip_onboarding"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		DefaultState:   s.getState(defaults.DefaultState),
		SkipOnboarding: s.configStore.GetBool(keySkipOnboarding),
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("settings are nil: %w", domain.ErrInvalidInput)
	}
	if !settings.DefaultState.IsZero() && !settings.DefaultState.IsValid() {
		return fmt.Errorf("save default state: %w: %q", domain.ErrUnknownState, settings.DefaultState)
	}

	if err := s.configStore.Set(keyDefaultState, settings.DefaultState.String()); err != nil {
		return fmt.Errorf("save default state: %w", err)
	}
	if err := s.configStore.Set(keySkipOnboarding, settings.SkipOnboarding); err != nil {
		return fmt.Errorf("save skip onboarding: %w", err)
	}
	return nil
}

// SetDefaultState validates and stores the preselected state.
func (s *SettingsService) SetDefaultState(name string) error {
	state, err := domain.ParseState(name)
	if err != nil {
		return err
	}
	if err := s.configStore.Set(keyDefaultState, state.String()); err != nil {
		return fmt.Errorf("save default state: %w", err)
	}
	return nil
}

// getState returns the stored state, or def if missing or unrecognised.
// An explicitly stored empty value means "all states".
func (s *SettingsService) getState(def domain.State) domain.State {
	raw, ok := s.configStore.Get(keyDefaultState)
	if !ok {
		return def
	}
	str, ok := raw.(string)
	if !ok {
		return def
	}
	state, err := domain.ParseState(str)
	if err != nil {
		return def
	}
	return state
}
