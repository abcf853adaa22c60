package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestLoadConfigPresetAndFPS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.toml")
	if err := os.WriteFile(path, []byte("[world]\nfps = 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, "hard", 0)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.World.FPS != 30 {
		t.Errorf("FPS = %d, expected 30 from the file", cfg.World.FPS)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("Lives = %d, expected 2 from the hard preset", cfg.Gameplay.Lives)
	}

	cfg, err = loadConfig(path, "", 60)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.World.FPS != 60 {
		t.Errorf("FPS = %d, expected the flag override 60", cfg.World.FPS)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig("", "insane", 0); !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("loadConfig() error = %v, expected ErrUnknownPreset", err)
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), "", 0); err == nil {
		t.Error("loadConfig() accepted a missing custom file")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := newLogger("", "warn", &buf)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	if err := closeFn(); err != nil {
		t.Errorf("close = %v, expected nil", err)
	}

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "breakout") {
		t.Errorf("log output = %q, expected prefixed warning", out)
	}

	if _, _, err := newLogger("", "loud", &buf); err == nil {
		t.Error("newLogger() accepted an unknown level")
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.log")
	logger, closeFn, err := newLogger(path, "info", nil)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("to file")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q, expected the message", data)
	}
}

func TestConfigCommandOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConfig(&buf, false, config.FormatTOML); err != nil {
		t.Fatalf("writeConfig() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "[world]") {
		t.Errorf("toml output missing [world] table:\n%s", buf.String())
	}
}

func TestConfigCommandDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConfig(&buf, true, config.FormatTOML); err != nil {
		t.Fatalf("writeConfig() failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), config.DefaultYAML()) {
		t.Error("--defaults output differs from the embedded config file")
	}
}

func TestMuteIsOneGlobalFlag(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("mute") == nil {
		t.Fatal("--mute is not a persistent root flag")
	}
	if playCmd.LocalNonPersistentFlags().Lookup("mute") != nil {
		t.Error("play registers its own --mute")
	}
	if playCmd.InheritedFlags().Lookup("mute") == nil {
		t.Error("play does not inherit --mute")
	}
}
