package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	flagFormat   string
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying
the config file, difficulty preset and --fps override.

The output is a complete config file and can be edited and passed back
with --config. With --defaults the built-in YAML file is printed as is,
comments included.

Examples:
  breakout config > ~/.breakout/breakout.yaml
  breakout config --format toml --difficulty hard
  breakout config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", string(config.FormatYAML), "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if err := writeConfig(cmd.OutOrStdout(), flagDefaults, config.Format(flagFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig prints either the embedded defaults or the effective config.
func writeConfig(w io.Writer, defaults bool, format config.Format) error {
	if defaults {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig(flagConfig, flagDifficulty, flagFPS)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	return config.Encode(w, cfg, format)
}
