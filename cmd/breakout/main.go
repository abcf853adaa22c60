// breakout is a terminal brick breaker.
//
// Usage:
//
//	breakout                 - Play (same as "breakout play")
//	breakout play            - Play a game
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Override the simulation rate from the config
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Load a YAML or TOML config file
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Write logs to a file (the game owns the terminal)
//	--log-level <level>    - debug, info, warn or error
//	--mute                 - Disable sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal brick breaker with power-ups, levels
and a session leaderboard.

Available commands:
  play     - Play a game (default)
  config   - Print the effective configuration

Examples:
  breakout
  breakout play --difficulty hard
  breakout --config ./my-breakout.toml
  breakout config --format toml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config, default 50)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, preset and fps override.
func loadConfig(path, preset string, fps int) (config.BreakoutConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	p, err := config.ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, p)

	if fps > 0 {
		cfg.World.FPS = fps
	}
	return cfg, cfg.Validate()
}

// newLogger builds the logger. Without a log file logs go to fallback.
// On success the close function is never nil.
func newLogger(path, level string, fallback io.Writer) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
