package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a breakout session.

Controls:
  Left/A, Right/D  - Move the paddle
  Up/W             - Launch the ball
  Space/P          - Pause
  Esc              - End the game
  Enter            - Start / submit your name
  Ctrl+N           - New game (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Default settings
  hard   - Fewer lives, narrower paddle, faster ball
  fixed  - No per-level scaling

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --mute --seed 42
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // best-effort close on exit

	cfg, err := loadConfig(flagConfig, flagDifficulty, flagFPS)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(context.Background(), cfg.Gameplay.LeaderboardSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}

	var sound breakout.SoundPlayer = breakout.NopSound{}
	audioOn := false
	if !flagMute {
		player := audio.NewPlayer(logger)
		// A failed Init is logged and leaves the player silent.
		_ = player.Init()
		defer player.Close()
		if player.Enabled() {
			sound = player
			audioOn = true
		}
	}

	opts := []breakout.SessionOption{
		breakout.WithSessionSound(sound),
		breakout.WithSessionLogger(logger),
	}
	if flagSeed != 0 {
		opts = append(opts, breakout.WithSessionSeed(flagSeed))
	}
	session := breakout.NewSession(cfg, store, opts...)

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.World.FPS,
	}
	logger.Info("session started", "fps", rc.TickRate, "difficulty", flagDifficulty, "audio", audioOn)

	runErr := tui.Run(session, rc, logger)

	// Close store before potential exit
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("session ended")
}
