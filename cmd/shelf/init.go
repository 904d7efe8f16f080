package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration and data directories",
	Long: `Init creates the configuration directory with a default config.yaml
and attaches the configured backend once so the data directory and its
schema exist before the first command runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		store, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		fmt.Println("Initialized shelf.")
		fmt.Println("Config dir:", configDir)
		fmt.Println("Data dir:  ", dataDir)
		return nil
	},
}
