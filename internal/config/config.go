// Package config provides YAML/TOML game configuration loading, validation
// and per-level difficulty parameters for the breakout engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BreakoutConfig contains every tunable of the engine. Nothing in the engine
// keeps mutable package-level constants; values are threaded from here.
type BreakoutConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Bricks     BrickConfig      `yaml:"bricks" toml:"bricks"`
	PowerUps   PowerUpConfig    `yaml:"powerups" toml:"powerups"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	FPS    int     `yaml:"fps" toml:"fps"`
}

// BallConfig defines ball geometry and speed limits.
type BallConfig struct {
	Radius   float64 `yaml:"radius" toml:"radius"`
	Speed    float64 `yaml:"speed" toml:"speed"`
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"`
	LaunchX  float64 `yaml:"launch_x" toml:"launch_x"` // top-left of the ball box
	LaunchY  float64 `yaml:"launch_y" toml:"launch_y"`
}

// PaddleConfig defines the permanent paddle and temporary paddle flicker.
type PaddleConfig struct {
	Width         float64  `yaml:"width" toml:"width"`
	Height        float64  `yaml:"height" toml:"height"`
	Y             float64  `yaml:"y" toml:"y"`
	Speed         float64  `yaml:"speed" toml:"speed"`
	FlickerWindow Duration `yaml:"flicker_window" toml:"flicker_window"`
	FlickerStart  Duration `yaml:"flicker_start" toml:"flicker_start"`
	FlickerDecay  float64  `yaml:"flicker_decay" toml:"flicker_decay"`
	FlickerMin    Duration `yaml:"flicker_min" toml:"flicker_min"`
}

// BrickConfig defines the brick grid layout and point tiers (top to bottom).
type BrickConfig struct {
	Rows   int     `yaml:"rows" toml:"rows"`
	Cols   int     `yaml:"cols" toml:"cols"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Margin float64 `yaml:"margin" toml:"margin"`
	Top    float64 `yaml:"top" toml:"top"`
	Points []int   `yaml:"points" toml:"points"`
}

// PowerUpConfig defines falling collectibles and the spawn window.
type PowerUpConfig struct {
	Size          float64  `yaml:"size" toml:"size"`
	FallSpeed     float64  `yaml:"fall_speed" toml:"fall_speed"`
	LifeFallSpeed float64  `yaml:"life_fall_speed" toml:"life_fall_speed"`
	SpawnY        float64  `yaml:"spawn_y" toml:"spawn_y"`
	Blink         Duration `yaml:"blink" toml:"blink"`
	ExplodeDelay  Duration `yaml:"explode_delay" toml:"explode_delay"`
	MinWait       Duration `yaml:"min_wait" toml:"min_wait"`
	MaxWait       Duration `yaml:"max_wait" toml:"max_wait"`
}

// GameplayConfig defines lives and leaderboard limits.
type GameplayConfig struct {
	Lives           int `yaml:"lives" toml:"lives"`
	LeaderboardSize int `yaml:"leaderboard_size" toml:"leaderboard_size"`
	NameLength      int `yaml:"name_length" toml:"name_length"`
}

// DifficultyConfig defines how each level scales over the previous one.
type DifficultyConfig struct {
	SpeedFactor     float64  `yaml:"speed_factor" toml:"speed_factor"`         // ball speed multiplier per level
	PaddleBoost     float64  `yaml:"paddle_boost" toml:"paddle_boost"`         // paddle speed added every other level
	WaitDecrement   Duration `yaml:"wait_decrement" toml:"wait_decrement"`     // spawn window shrink per level
	MinWaitFloor    Duration `yaml:"min_wait_floor" toml:"min_wait_floor"`     // spawn window never shrinks below this
	UnbreakableStep float64  `yaml:"unbreakable_step" toml:"unbreakable_step"` // unbreakable fraction added per level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a CLI value to a preset. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Validate reports every constraint the config violates.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.FPS > 0, "world.fps must be positive, got %d", c.World.FPS)
	check(c.Ball.Radius > 0, "ball.radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.Speed > 0 && c.Ball.Speed <= c.Ball.MaxSpeed, "ball.speed must be in (0, max_speed], got %v (max %v)", c.Ball.Speed, c.Ball.MaxSpeed)
	check(c.Paddle.Width > 0 && c.Paddle.Width < c.World.Width, "paddle.width must be in (0, world.width), got %v", c.Paddle.Width)
	check(c.Paddle.Speed > 0, "paddle.speed must be positive, got %v", c.Paddle.Speed)
	check(c.Paddle.FlickerDecay > 0 && c.Paddle.FlickerDecay <= 1, "paddle.flicker_decay must be in (0, 1], got %v", c.Paddle.FlickerDecay)
	check(c.Bricks.Rows >= 1 && c.Bricks.Cols >= 1, "bricks grid must have at least one row and column, got %dx%d", c.Bricks.Rows, c.Bricks.Cols)
	check(c.gridWidth() <= c.World.Width, "bricks grid is %v wide, wider than world %v", c.gridWidth(), c.World.Width)
	check(len(c.Bricks.Points) == 3, "bricks.points must list 3 tiers, got %d", len(c.Bricks.Points))
	check(c.PowerUps.MinWait <= c.PowerUps.MaxWait, "powerups.min_wait %v exceeds max_wait %v", c.PowerUps.MinWait, c.PowerUps.MaxWait)
	check(c.Gameplay.Lives >= 1, "gameplay.lives must be at least 1, got %d", c.Gameplay.Lives)
	check(c.Gameplay.LeaderboardSize >= 1, "gameplay.leaderboard_size must be at least 1, got %d", c.Gameplay.LeaderboardSize)
	check(c.Difficulty.SpeedFactor >= 1, "difficulty.speed_factor must be >= 1, got %v", c.Difficulty.SpeedFactor)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}

func (c BreakoutConfig) gridWidth() float64 {
	cols := float64(c.Bricks.Cols)
	return cols*c.Bricks.Width + (cols-1)*c.Bricks.Margin
}

// Duration is a time.Duration that reads and writes as "15s" in both YAML and TOML.
type Duration time.Duration

// D returns the value as a time.Duration.
func (d Duration) D() time.Duration {
	return time.Duration(d)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config: bad duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}
