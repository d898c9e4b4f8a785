// Package cli implements the dataengg command tree.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "dataengg",
	Short: "Operator CLI for the dataengg data platform",
	Long: `dataengg manages the GCP side of the data platform: the IAM
bootstrap for the platform service account, the BigQuery staging
dataset, and master-data loads from Cloud Storage.`,
	SilenceUsage: true,
}

// Execute runs the root command with the build version attached.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	// Shared flags; every command works against one account and project
	rootCmd.PersistentFlags().String("account", "", "Operator account (email)")
	rootCmd.PersistentFlags().String("project", "", "GCP project ID")

	viper.BindPFlag("account", rootCmd.PersistentFlags().Lookup("account"))
	viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))

	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
