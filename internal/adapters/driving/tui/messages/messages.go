// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewOnboarding is the welcome screen.
	ViewOnboarding ViewType = iota
	// ViewHome shows the state picker, category tiles and helplines.
	ViewHome
	// ViewCategories lists every category.
	ViewCategories
	// ViewServices lists services for the current selection.
	ViewServices
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewOnboarding:
		return "onboarding"
	case ViewHome:
		return "home"
	case ViewCategories:
		return "categories"
	case ViewServices:
		return "services"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// StateChanged is sent when the user picks a different state.
// A zero State means all states.
type StateChanged struct {
	State domain.State
}

// CategorySelected is sent when a category tile is chosen.
// A zero Category means all categories.
type CategorySelected struct {
	Category domain.Category
}

// OpenRequested asks the app to open a service website.
type OpenRequested struct {
	Record domain.ServiceRecord
}

// ServiceOpened reports the outcome of opening a website.
type ServiceOpened struct {
	Record domain.ServiceRecord
	Err    error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// ConfigChanged signals the configuration file was edited externally.
type ConfigChanged struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// SearchRequested asks the app to show all services with the search box focused.
type SearchRequested struct{}
