// Package cli provides the cobra command tree for the seva binary.
// It is a driving adapter: commands translate flags into calls on the
// driving ports and render the results.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/seva-cli/internal/core/ports/driving"
	"github.com/custodia-labs/seva-cli/internal/logger"
)

var (
	version   = "dev"
	verbose   bool
	configDir string
)

// Services wired in by the composition root.
var (
	catalogService  driving.CatalogService
	actionService   driving.ServiceActionService
	settingsService driving.SettingsService
	configWatcher   ConfigWatcher
	settingsBackend SettingsBackend
)

// ConfigWatcher notifies when the configuration changes on disk.
type ConfigWatcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// SettingsBackend opens the settings service for a config directory.
// An empty directory selects the default location. The watcher may be nil.
type SettingsBackend func(configDir string) (driving.SettingsService, ConfigWatcher, error)

// Services holds the driving ports the commands use.
type Services struct {
	Catalog  driving.CatalogService
	Actions  driving.ServiceActionService
	Settings SettingsBackend
}

var rootCmd = &cobra.Command{
	Use:   "seva",
	Short: "Directory of Indian government service links",
	Long: `Seva lists official government websites for emergencies, women and
child safety, civic issues, pollution complaints, documents and traffic,
grouped by state.

Pick a state and a category to narrow the list, then open a service in
your browser. Run "seva tui" for the interactive directory.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.seva)")
}

// SetServices installs the services used by all commands.
func SetServices(s Services) {
	catalogService = s.Catalog
	actionService = s.Actions
	settingsBackend = s.Settings
	settingsService = nil
	configWatcher = nil
}

// SetVersion sets the version reported by "seva version".
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// setup applies global flags before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	return nil
}

// requireCatalog returns the catalogue service or a configuration error.
func requireCatalog() (driving.CatalogService, error) {
	if catalogService == nil {
		return nil, errors.New("catalog service not configured")
	}
	return catalogService, nil
}

// requireSettings opens the settings backend on first use.
func requireSettings() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	if settingsBackend == nil {
		return nil, errors.New("settings service not configured")
	}
	svc, watcher, err := settingsBackend(configDir)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	settingsService = svc
	configWatcher = watcher
	return settingsService, nil
}
