package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

const noServicesMessage = "No services found for this selection."

var (
	servicesState    string
	servicesCategory string
	servicesQuery    string
	servicesJSON     bool
	servicesYAML     bool
)

var servicesCmd = &cobra.Command{
	Use:     "services",
	Aliases: []string{"ls"},
	Short:   "List government services",
	Long: `Lists services from the catalogue, optionally narrowed by state,
category and a search term. Without flags every service is listed.

State and category names must match exactly, e.g. --state "Tamil Nadu"
--category "Women Safety". Run "seva states" and "seva categories" for
the accepted values.`,
	Args: cobra.NoArgs,
	RunE: runServices,
}

func init() {
	servicesCmd.Flags().StringVarP(&servicesState, "state", "s", "", "only services for this state")
	servicesCmd.Flags().StringVarP(&servicesCategory, "category", "c", "", "only services in this category")
	servicesCmd.Flags().StringVarP(&servicesQuery, "search", "q", "", "match name or description")
	servicesCmd.Flags().BoolVar(&servicesJSON, "json", false, "output results as JSON")
	servicesCmd.Flags().BoolVar(&servicesYAML, "yaml", false, "output results as YAML")
	servicesCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.AddCommand(servicesCmd)
}

func runServices(cmd *cobra.Command, _ []string) error {
	catalog, err := requireCatalog()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var results []domain.ServiceRecord
	if servicesQuery == "" {
		results, err = catalog.FilterByName(ctx, servicesState, servicesCategory)
		if err != nil {
			return err
		}
	} else {
		sel, err := domain.ParseSelection(servicesState, servicesCategory)
		if err != nil {
			return err
		}
		results = catalog.Search(ctx, servicesQuery, sel)
	}

	if servicesJSON {
		return outputJSON(cmd, results)
	}
	if servicesYAML {
		return outputYAML(cmd, results)
	}
	outputServices(cmd, results)
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputYAML(cmd *cobra.Command, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Print(string(data))
	return nil
}

func outputServices(cmd *cobra.Command, results []domain.ServiceRecord) {
	if len(results) == 0 {
		cmd.Println(noServicesMessage)
		return
	}

	for i := range results {
		r := &results[i]
		// Format: [N] Name (State, Category)
		cmd.Printf("  [%d] %s (%s, %s)\n", i+1, r.Name, r.State, r.Category)
		cmd.Printf("      %s\n", r.URL)
		if r.Description != "" {
			cmd.Printf("      %s\n", r.Description)
		}
		cmd.Printf("      id: %s\n", shortID(r.ID))
		cmd.Println()
	}
}

// shortID returns the prefix accepted by "seva open".
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
