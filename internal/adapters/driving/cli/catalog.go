package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

var (
	statesAll bool
	listJSON  bool
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List states with services",
	Long: `Lists the states offered by the directory. Use --all to list every
state and union territory accepted by --state.`,
	Args: cobra.NoArgs,
	RunE: runStates,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List service categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var helplinesCmd = &cobra.Command{
	Use:   "helplines",
	Short: "List national emergency helpline numbers",
	Args:  cobra.NoArgs,
	RunE:  runHelplines,
}

func init() {
	statesCmd.Flags().BoolVar(&statesAll, "all", false, "list every state and union territory")
	for _, c := range []*cobra.Command{statesCmd, categoriesCmd, helplinesCmd} {
		c.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
		rootCmd.AddCommand(c)
	}
}

func runStates(cmd *cobra.Command, _ []string) error {
	catalog, err := requireCatalog()
	if err != nil {
		return err
	}

	states := catalog.States(cmd.Context())
	if statesAll {
		states = domain.AllStates()
	}

	if listJSON {
		return outputJSON(cmd, states)
	}
	for _, s := range states {
		cmd.Println(s.String())
	}
	return nil
}

func runCategories(cmd *cobra.Command, _ []string) error {
	catalog, err := requireCatalog()
	if err != nil {
		return err
	}

	categories := catalog.Categories(cmd.Context())

	if listJSON {
		type categoryInfo struct {
			Name        string `json:"name"`
			Heading     string `json:"heading"`
			Description string `json:"description"`
		}
		infos := make([]categoryInfo, len(categories))
		for i, c := range categories {
			infos[i] = categoryInfo{Name: c.String(), Heading: c.Heading(), Description: c.Description()}
		}
		return outputJSON(cmd, infos)
	}

	for _, c := range categories {
		cmd.Printf("%-15s %s\n", c, c.Description())
	}
	return nil
}

func runHelplines(cmd *cobra.Command, _ []string) error {
	catalog, err := requireCatalog()
	if err != nil {
		return err
	}

	helplines := catalog.Helplines(cmd.Context())
	if listJSON {
		return outputJSON(cmd, helplines)
	}
	for _, h := range helplines {
		cmd.Printf("%-18s %s\n", h.Name, h.Number)
	}
	return nil
}
