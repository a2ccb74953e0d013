package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsStateCmd = &cobra.Command{
	Use:   "state <name>",
	Short: "Set the state preselected in the TUI",
	Long: `Sets the state the interactive directory starts with.
Pass an empty string ("") to start with all states.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsState,
}

var settingsOnboardingCmd = &cobra.Command{
	Use:       "onboarding <show|skip>",
	Short:     "Choose whether the TUI starts on the welcome screen",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"show", "skip"},
	RunE:      runSettingsOnboarding,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsStateCmd)
	settingsCmd.AddCommand(settingsOnboardingCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return err
	}

	state := settings.DefaultState.String()
	if state == "" {
		state = "(all states)"
	}
	cmd.Printf("Default state:    %s\n", state)
	cmd.Printf("Skip onboarding:  %s\n", strconv.FormatBool(settings.SkipOnboarding))
	return nil
}

func runSettingsState(cmd *cobra.Command, args []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	if err := svc.SetDefaultState(args[0]); err != nil {
		return err
	}
	cmd.Println("Default state updated.")
	return nil
}

func runSettingsOnboarding(cmd *cobra.Command, args []string) error {
	if err := cobra.OnlyValidArgs(cmd, args); err != nil {
		return err
	}

	svc, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return err
	}
	settings.SkipOnboarding = args[0] == "skip"
	if err := svc.Save(settings); err != nil {
		return err
	}
	cmd.Println("Onboarding preference updated.")
	return nil
}
