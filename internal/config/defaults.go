package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration. It mirrors the
// embedded defaults/breakout.yaml and is the last fallback of Load.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{
			Width:  500,
			Height: 500,
			FPS:    50,
		},
		Ball: BallConfig{
			Radius:   10,
			Speed:    2.5,
			MaxSpeed: 5.0,
			LaunchX:  240,
			LaunchY:  380,
		},
		Paddle: PaddleConfig{
			Width:         100,
			Height:        10,
			Y:             440,
			Speed:         5,
			FlickerWindow: Duration(3 * time.Second),
			FlickerStart:  Duration(500 * time.Millisecond),
			FlickerDecay:  0.75,
			FlickerMin:    Duration(50 * time.Millisecond),
		},
		Bricks: BrickConfig{
			Rows:   6,
			Cols:   8,
			Width:  50,
			Height: 20,
			Margin: 5,
			Top:    50,
			Points: []int{3, 2, 1},
		},
		PowerUps: PowerUpConfig{
			Size:          10,
			FallSpeed:     2.5,
			LifeFallSpeed: 4.5,
			SpawnY:        15,
			Blink:         Duration(100 * time.Millisecond),
			ExplodeDelay:  Duration(400 * time.Millisecond),
			MinWait:       Duration(15 * time.Second),
			MaxWait:       Duration(30 * time.Second),
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			LeaderboardSize: 10,
			NameLength:      3,
		},
		Difficulty: DifficultyConfig{
			SpeedFactor:     1.1,
			PaddleBoost:     1,
			WaitDecrement:   Duration(time.Second),
			MinWaitFloor:    Duration(5 * time.Second),
			UnbreakableStep: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
