package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage privacy and display settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		settings, err := client.GetSettings(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(settings)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings toggles",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		// Start from the stored state so unspecified toggles keep their value.
		current, err := client.GetSettings(cmd.Context())
		if err != nil {
			return err
		}
		settings := *current
		applyBoolFlag(cmd, "profile-visible", &settings.ProfileVisible)
		applyBoolFlag(cmd, "allow-aggregation", &settings.AllowAggregation)
		applyBoolFlag(cmd, "breach-alerts", &settings.BreachAlerts)
		applyBoolFlag(cmd, "light-theme", &settings.LightTheme)

		saved, err := client.SaveSettings(cmd.Context(), settings)
		if err != nil {
			return err
		}
		toasts.Success("Settings saved.")
		return printJSON(saved)
	},
}

var deleteConfirmed bool

var accountDeleteCmd = &cobra.Command{
	Use:   "account-delete",
	Short: "Permanently delete the account and all associated data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteConfirmed {
			return fmt.Errorf("account deletion is irreversible; re-run with --yes to confirm")
		}
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.DeleteAccount(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Account deleted.")
		return nil
	},
}

func applyBoolFlag(cmd *cobra.Command, name string, target *bool) {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetBool(name)
		*target = v
	}
}

func init() {
	settingsSetCmd.Flags().Bool("profile-visible", false, "profile visible to others")
	settingsSetCmd.Flags().Bool("allow-aggregation", false, "allow data aggregation")
	settingsSetCmd.Flags().Bool("breach-alerts", false, "receive breach alerts")
	settingsSetCmd.Flags().Bool("light-theme", false, "use the light theme")
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd)

	accountDeleteCmd.Flags().BoolVar(&deleteConfirmed, "yes", false, "confirm irreversible deletion")
	rootCmd.AddCommand(settingsCmd, accountDeleteCmd)
}
