package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0chandansharma/dataengg/internal/bq"
	"github.com/0chandansharma/dataengg/internal/config"
	"github.com/0chandansharma/dataengg/internal/schema"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load master data from Cloud Storage into BigQuery",
	Long: `Load gs://<bucket>/<object> into the staging table. CSV sources
skip one header row; .json sources are read as newline-delimited JSON.

The table schema defaults to the master-data order record; point
--schema at a YAML or JSON schema file to override it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Project == "" {
			return fmt.Errorf("project is required (set --project, DATAENGG_PROJECT, or config.yaml)")
		}
		if cfg.Bucket == "" {
			return fmt.Errorf("bucket is required (set --bucket, DATAENGG_BUCKET, or config.yaml)")
		}

		// Resolve the table schema
		tableSchema := schema.Orders()
		if cfg.SchemaFile != "" {
			tableSchema, err = schema.Load(cfg.SchemaFile)
			if err != nil {
				return err
			}
		}
		bqSchema, err := tableSchema.BigQuery()
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		// Check the source exists before submitting a job
		attrs, err := bq.StatObject(ctx, cfg.Bucket, cfg.Object)
		if err != nil {
			color.Red("✗ %v", err)
			return err
		}
		color.Cyan("Loading %s (%d bytes) into %s.%s.%s...",
			bq.GCSURI(cfg.Bucket, cfg.Object), attrs.Size, cfg.Project, cfg.Dataset, cfg.Table)

		logger := openLogger(ctx, cfg)
		defer logger.Close()

		client, err := bq.NewClient(ctx, cfg.Project, logger)
		if err != nil {
			return err
		}
		defer client.Close()

		rows, err := client.LoadFromGCS(ctx, bq.LoadSpec{
			Bucket:  cfg.Bucket,
			Object:  cfg.Object,
			Dataset: cfg.Dataset,
			Table:   cfg.Table,
			Schema:  bqSchema,
		})
		if err != nil {
			color.Red("✗ Load failed: %v", err)
			return err
		}

		color.Green("✓ Loaded %d rows into %s.%s.%s", rows, cfg.Project, cfg.Dataset, cfg.Table)
		return nil
	},
}

func init() {
	// Define flags
	loadCmd.Flags().String("bucket", "", "Source bucket")
	loadCmd.Flags().String("object", "", "Source object path (default data/master_data.csv)")
	loadCmd.Flags().String("table", "", "Destination table (default orders)")
	loadCmd.Flags().String("schema", "", "Schema file (yaml or json)")

	// Bind flags to viper
	viper.BindPFlag("bucket", loadCmd.Flags().Lookup("bucket"))
	viper.BindPFlag("object", loadCmd.Flags().Lookup("object"))
	viper.BindPFlag("table", loadCmd.Flags().Lookup("table"))
	viper.BindPFlag("schema-file", loadCmd.Flags().Lookup("schema"))
}
