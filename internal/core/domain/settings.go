package domain

// AppSettings holds user preferences.
type AppSettings struct {
	// DefaultState is preselected when the directory opens.
	DefaultState State

	// SkipOnboarding starts the TUI on the home view.
	SkipOnboarding bool
}

// DefaultAppSettings returns settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		DefaultState:   StateMaharashtra,
		SkipOnboarding: false,
	}
}
