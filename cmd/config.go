package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the frenchdeck config file",
		Long: `Commands for the config file at XDG_CONFIG_HOME/frenchdeck/config.toml.
Without a config file the defaults are used.`,
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := config.InitConfig()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", configPath)
			return nil
		},
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the path of the config file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
		},
	}

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	return configCmd
}
