package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/0chandansharma/dataengg/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show resolved configuration and its sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.Display()
		if err != nil {
			return err
		}
		cmd.Print(out)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the resolved configuration to a config file",
	Long: `Persist the currently resolved configuration (defaults, environment,
and flags included) so it can be edited in place. Writes to the config
file in use, or creates $HOME/.dataengg/config.yaml if none exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		color.Green("✓ Configuration written")
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(args[0], args[1]); err != nil {
			return err
		}
		color.Green("✓ %s = %s", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}
