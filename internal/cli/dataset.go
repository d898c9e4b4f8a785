package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0chandansharma/dataengg/internal/bq"
	"github.com/0chandansharma/dataengg/internal/config"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the BigQuery staging dataset",
}

var datasetCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the staging dataset",
	Long: `Create the configured BigQuery dataset at the configured location.
Does nothing if the dataset already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Project == "" {
			return fmt.Errorf("project is required (set --project, DATAENGG_PROJECT, or config.yaml)")
		}

		ctx := cmd.Context()
		logger := openLogger(ctx, cfg)
		defer logger.Close()

		client, err := bq.NewClient(ctx, cfg.Project, logger)
		if err != nil {
			return err
		}
		defer client.Close()

		exists, err := client.DatasetExists(ctx, cfg.Dataset)
		if err != nil {
			color.Red("✗ Failed to check dataset: %v", err)
			return err
		}
		if exists {
			color.Yellow("Dataset %s already exists in %s", cfg.Dataset, cfg.Project)
			return nil
		}

		color.Cyan("Creating dataset %s in %s (location %s)...", cfg.Dataset, cfg.Project, cfg.Location)
		if err := client.CreateDataset(ctx, cfg.Dataset, cfg.Location); err != nil {
			color.Red("✗ Failed to create dataset: %v", err)
			return err
		}

		color.Green("✓ Dataset %s created", cfg.Dataset)
		return nil
	},
}

var datasetDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the staging dataset and its contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Project == "" {
			return fmt.Errorf("project is required (set --project, DATAENGG_PROJECT, or config.yaml)")
		}

		ctx := cmd.Context()
		logger := openLogger(ctx, cfg)
		defer logger.Close()

		client, err := bq.NewClient(ctx, cfg.Project, logger)
		if err != nil {
			return err
		}
		defer client.Close()

		color.Cyan("Deleting dataset %s from %s...", cfg.Dataset, cfg.Project)
		if err := client.DeleteDataset(ctx, cfg.Dataset); err != nil {
			color.Red("✗ Failed to delete dataset: %v", err)
			return err
		}

		color.Green("✓ Dataset %s deleted", cfg.Dataset)
		return nil
	},
}

func init() {
	datasetCmd.PersistentFlags().String("dataset", "", "Dataset ID (default staging_ecomm_data)")

	viper.BindPFlag("dataset", datasetCmd.PersistentFlags().Lookup("dataset"))

	datasetCmd.AddCommand(datasetCreateCmd)
	datasetCmd.AddCommand(datasetDeleteCmd)
}
