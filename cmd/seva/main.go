// Command seva is a terminal directory of Indian government service links.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/seva-cli/internal/adapters/driven/browser"
	"github.com/custodia-labs/seva-cli/internal/adapters/driven/catalog/static"
	"github.com/custodia-labs/seva-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/seva-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/seva-cli/internal/core/ports/driving"
	"github.com/custodia-labs/seva-cli/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Catalog:  services.NewCatalogService(static.NewCatalog()),
		Actions:  services.NewServiceActionService(browser.NewOpener()),
		Settings: openSettings,
	})

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// openSettings backs settings with the TOML config file in configDir.
// The file store doubles as the watcher for TUI hot reload.
func openSettings(configDir string) (driving.SettingsService, cli.ConfigWatcher, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("config store: %w", err)
	}
	return services.NewSettingsService(store), store, nil
}
