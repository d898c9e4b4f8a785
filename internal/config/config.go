// Package config provides configuration management for the dataengg CLI.
//
// It implements the disciplined Viper pattern where Viper stays contained
// in this package and the rest of the codebase receives explicit Config structs.
// Configuration sources are resolved in this order: flags > env > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the explicit configuration struct
// This is what the rest of the codebase sees
type Config struct {
	Account        string
	Project        string
	ServiceAccount string
	Role           string
	Dataset        string
	Table          string
	Location       string
	Bucket         string
	Object         string
	LogName        string
	SchemaFile     string
}

// keys lists every configuration key this CLI understands.
var keys = []string{
	"account",
	"project",
	"service-account",
	"role",
	"dataset",
	"table",
	"bigquery-location",
	"bucket",
	"object",
	"log-name",
	"schema-file",
}

// Init initializes viper with defaults and config file paths
func Init() error {
	// Set config file name and type
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config file search paths
	viper.AddConfigPath("$HOME/.dataengg")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("service-account", "dataengg-project")
	viper.SetDefault("role", "roles/logging.logWriter")
	viper.SetDefault("dataset", "staging_ecomm_data")
	viper.SetDefault("table", "orders")
	viper.SetDefault("bigquery-location", "EU")
	viper.SetDefault("object", "data/master_data.csv")
	viper.SetDefault("log-name", "dataengg")

	// Bind environment variables with prefix
	viper.SetEnvPrefix("DATAENGG")
	viper.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

// Load reads from all sources and returns explicit Config
func Load() (*Config, error) {
	cfg := &Config{
		Account:        viper.GetString("account"),
		Project:        viper.GetString("project"),
		ServiceAccount: viper.GetString("service-account"),
		Role:           viper.GetString("role"),
		Dataset:        viper.GetString("dataset"),
		Table:          viper.GetString("table"),
		Location:       viper.GetString("bigquery-location"),
		Bucket:         viper.GetString("bucket"),
		Object:         viper.GetString("object"),
		LogName:        viper.GetString("log-name"),
		SchemaFile:     viper.GetString("schema-file"),
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures config is sane. Presence of command-specific fields
// (account, project, bucket) is checked by the commands that need them;
// this only rejects values that can never be right.
func (c *Config) Validate() error {
	if c.Account != "" && !strings.Contains(c.Account, "@") {
		return fmt.Errorf("invalid account: %s (must be an email address)", c.Account)
	}

	if c.ServiceAccount == "" {
		return errors.New("service-account must not be empty")
	}
	if strings.Contains(c.ServiceAccount, "@") {
		return fmt.Errorf("invalid service-account: %s (use the account ID, not the full email)", c.ServiceAccount)
	}

	if !strings.HasPrefix(c.Role, "roles/") {
		return fmt.Errorf("invalid role: %s (must start with roles/)", c.Role)
	}

	if c.Dataset == "" {
		return errors.New("dataset must not be empty")
	}

	if c.Table == "" {
		return errors.New("table must not be empty")
	}

	if c.Location == "" {
		return errors.New("bigquery-location must not be empty")
	}

	if c.LogName == "" {
		return errors.New("log-name must not be empty")
	}

	return nil
}

// Set persists a single key/value pair to the config file.
func Set(key, value string) error {
	known := false
	for _, k := range keys {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown config key: %s (known keys: %s)", key, strings.Join(keys, ", "))
	}

	viper.Set(key, value)

	// Re-validate the resulting config before writing it out
	if _, err := Load(); err != nil {
		return err
	}

	return write()
}

// Save writes current config to file
func Save(cfg *Config) error {
	viper.Set("account", cfg.Account)
	viper.Set("project", cfg.Project)
	viper.Set("service-account", cfg.ServiceAccount)
	viper.Set("role", cfg.Role)
	viper.Set("dataset", cfg.Dataset)
	viper.Set("table", cfg.Table)
	viper.Set("bigquery-location", cfg.Location)
	viper.Set("bucket", cfg.Bucket)
	viper.Set("object", cfg.Object)
	viper.Set("log-name", cfg.LogName)
	viper.Set("schema-file", cfg.SchemaFile)

	return write()
}

func write() error {
	err := viper.WriteConfig()
	if err == nil {
		return nil
	}
	// No config file existed yet
	if viper.ConfigFileUsed() == "" {
		return viper.SafeWriteConfig()
	}
	return err
}

// Display shows current config (for dataengg config get)
func Display() (string, error) {
	cfg, err := Load()
	if err != nil {
		return "", err
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = "(not found)"
	}

	return fmt.Sprintf(`Configuration:
  account:            %s
  project:            %s
  service-account:    %s
  role:               %s

BigQuery:
  dataset:            %s
  table:              %s
  bigquery-location:  %s

Staging:
  bucket:             %s
  object:             %s
  schema-file:        %s

Logging:
  log-name:           %s

Sources:
  Config file:        %s
  Environment:        DATAENGG_*
  Flags:              (per command)
`,
		cfg.Account,
		cfg.Project,
		cfg.ServiceAccount,
		cfg.Role,
		cfg.Dataset,
		cfg.Table,
		cfg.Location,
		cfg.Bucket,
		cfg.Object,
		cfg.SchemaFile,
		cfg.LogName,
		configFile,
	), nil
}
