package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/seva-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/seva-cli/internal/logger"
)

// errNoTerminal is returned when the TUI is started without a terminal.
var errNoTerminal = errors.New("seva tui needs an interactive terminal; use \"seva services\" instead")

// isTerminal reports whether stdout is a terminal. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runApp runs the TUI program. Replaced in tests.
var runApp = func(cmd *cobra.Command, app *tui.App) error {
	return app.Run(cmd.Context())
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive directory",
	Long: `Launch the interactive terminal directory of government services.

Pick your state and a category on the home screen, then browse the
matching services and open their official websites.

Controls:
  ←/h, →/l - Change state
  ↑/k, ↓/j - Navigate
  Enter    - Select / Open website
  /        - Search
  c        - All categories
  Esc      - Back
  ?        - Toggle help
  q        - Quit

Edits to the config file while the TUI runs are picked up immediately.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !isTerminal() {
		return errNoTerminal
	}

	catalog, err := requireCatalog()
	if err != nil {
		return err
	}

	ports := &tui.Ports{
		Catalog: catalog,
		Actions: actionService,
	}

	// Settings are optional; the directory still works with defaults.
	if settings, err := requireSettings(); err != nil {
		logger.Warn("settings unavailable, using defaults: %v", err)
	} else {
		ports.Settings = settings
		if configWatcher != nil {
			ports.Watcher = configWatcher
		}
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := runApp(cmd, app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
