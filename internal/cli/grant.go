package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0chandansharma/dataengg/internal/config"
	"github.com/0chandansharma/dataengg/internal/gcloud"
)

var grantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Grant the platform service account its logging role",
	Long: `Switch the active gcloud account, echo it back for verification,
then add an IAM policy binding granting the platform service account the
configured logging role on the project.

The account switch and the verification listing are best-effort: if
either fails the sequence continues, and the IAM call runs against
whatever account is active. Only the binding call decides the exit
status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration (Viper resolves behind the scenes)
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Account == "" {
			return fmt.Errorf("account is required (set --account, DATAENGG_ACCOUNT, or config.yaml)")
		}
		if cfg.Project == "" {
			return fmt.Errorf("project is required (set --project, DATAENGG_PROJECT, or config.yaml)")
		}

		sa := gcloud.ServiceAccountEmail(cfg.ServiceAccount, cfg.Project)
		tool := gcloud.New()

		color.Cyan("Bootstrapping IAM for project %s...", cfg.Project)

		result, err := tool.Grant(cfg.Account, cfg.Project, gcloud.Member(sa), cfg.Role)

		if result.SetAccountErr != nil {
			color.Yellow("⚠ Failed to switch account: %v", result.SetAccountErr)
		} else {
			color.Green("✓ Active account set to %s", cfg.Account)
		}

		if result.ListErr != nil {
			color.Yellow("⚠ Failed to list active account: %v", result.ListErr)
		} else {
			color.Cyan("Active gcloud configuration:")
			cmd.Print(string(result.ActiveConfig))
		}

		if err != nil {
			color.Red("✗ Failed to add IAM policy binding: %v", err)
			return err
		}

		color.Green("✓ Granted %s to %s", cfg.Role, sa)
		color.Cyan("\nRun 'dataengg verify' to confirm the binding is effective")

		return nil
	},
}

func init() {
	// Define flags
	grantCmd.Flags().String("role", "", "Role to grant (default roles/logging.logWriter)")
	grantCmd.Flags().String("service-account", "", "Service account ID part (default dataengg-project)")

	// Bind flags to viper
	viper.BindPFlag("role", grantCmd.Flags().Lookup("role"))
	viper.BindPFlag("service-account", grantCmd.Flags().Lookup("service-account"))
}
