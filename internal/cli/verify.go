package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/0chandansharma/dataengg/internal/config"
	"github.com/0chandansharma/dataengg/internal/iamcheck"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the granted logging permissions",
	Long: `Check through the Resource Manager API that the caller holds the
permissions implied by the logging role on the project. Uses application
default credentials, so run this as the service account (or after
'gcloud auth application-default login') to confirm the grant took
effect.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Project == "" {
			return fmt.Errorf("project is required (set --project, DATAENGG_PROJECT, or config.yaml)")
		}

		color.Cyan("Checking permissions on project %s...", cfg.Project)

		granted, missing, err := iamcheck.TestPermissions(cmd.Context(), cfg.Project, iamcheck.LoggingPermissions)
		if err != nil {
			color.Red("✗ Failed to check permissions: %v", err)
			return err
		}

		for _, p := range granted {
			color.Green("✓ %s", p)
		}
		for _, p := range missing {
			color.Red("✗ %s (missing)", p)
		}

		if len(missing) > 0 {
			return fmt.Errorf("%d permission(s) missing on %s", len(missing), cfg.Project)
		}

		color.Green("\n✓ All logging permissions present")
		return nil
	},
}
