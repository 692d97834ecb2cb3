package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after the config
file search, .env and BLOCKS_* environment overrides.

Use --defaults to print the built-in config, a starting point for
~/.blocks/configs/blocks.yaml.

Examples:
  blocks config
  blocks config --defaults > ~/.blocks/configs/blocks.yaml
  BLOCKS_ROWS=24 blocks config`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	data, err := yaml.Marshal(gameCfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
