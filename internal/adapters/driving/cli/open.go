package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var openPrintOnly bool

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a service's official website",
	Long: `Opens the service in your default browser. The id is shown by
"seva services"; any unique prefix of eight or more characters works.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().BoolVar(&openPrintOnly, "print", false, "print the URL instead of launching a browser")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	catalog, err := requireCatalog()
	if err != nil {
		return err
	}

	record, err := catalog.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if openPrintOnly {
		cmd.Println(record.URL)
		return nil
	}

	if actionService == nil {
		return errors.New("action service not configured")
	}
	if err := actionService.Open(cmd.Context(), record); err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	cmd.Printf("Opening %s: %s\n", record.Name, record.URL)
	return nil
}
