package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the config file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for formats other than yaml and toml.
var ErrUnknownFormat = errors.New("config: unknown format")

// FormatFromPath picks the format by file extension; anything but .toml is YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads the Breakout configuration.
// Search order: customPath -> ~/.breakout/breakout.{yaml,toml} ->
// ./configs/breakout.{yaml,toml} -> embedded default -> DefaultBreakoutConfig.
// Only a failing customPath is an error; other locations are skipped when broken.
func Load(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultBreakoutConfig()
	if err := Decode(defaultBreakoutYAML, FormatYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a file over the defaults, so partial files keep default values.
func loadFile(path string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(data, FormatFromPath(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the given format into cfg.
func Decode(data []byte, format Format, cfg *BreakoutConfig) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	case FormatTOML:
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg BreakoutConfig, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".breakout")
		paths = append(paths,
			filepath.Join(dir, "breakout.yaml"),
			filepath.Join(dir, "breakout.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "breakout.yaml"),
		filepath.Join("configs", "breakout.toml"),
	)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 140
		cfg.Ball.Speed = 2.0
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 70
		cfg.Ball.Speed = 3.0
	case DifficultyFixed:
		cfg.Difficulty.SpeedFactor = 1
		cfg.Difficulty.PaddleBoost = 0
		cfg.Difficulty.WaitDecrement = 0
		cfg.Difficulty.UnbreakableStep = 0
	}
}
