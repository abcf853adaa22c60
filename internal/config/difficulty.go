package config

import (
	"math"
	"time"
)

// LevelParams are the values that change from level to level.
// They are computed fresh for every level instead of being scaled in place.
type LevelParams struct {
	Level               int
	BallSpeed           float64
	MaxBallSpeed        float64
	PaddleSpeed         float64
	MinWait             time.Duration
	MaxWait             time.Duration
	UnbreakableFraction float64
}

// DifficultyManager calculates level parameters from the configuration.
type DifficultyManager struct {
	cfg BreakoutConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg BreakoutConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Params returns the parameters for a 1-based level. Levels below 1 are treated as 1.
func (d *DifficultyManager) Params(level int) LevelParams {
	if level < 1 {
		level = 1
	}
	steps := level - 1
	diff := d.cfg.Difficulty

	ballSpeed := d.cfg.Ball.Speed * math.Pow(diff.SpeedFactor, float64(steps))

	// Paddle gets faster every other level
	paddleSpeed := d.cfg.Paddle.Speed + diff.PaddleBoost*float64(steps/2)

	minWait := d.cfg.PowerUps.MinWait.D() - time.Duration(steps)*diff.WaitDecrement.D()
	minWait = max(minWait, min(diff.MinWaitFloor.D(), d.cfg.PowerUps.MinWait.D()))
	maxWait := d.cfg.PowerUps.MaxWait.D() - time.Duration(steps)*diff.WaitDecrement.D()
	maxWait = max(maxWait, minWait)

	return LevelParams{
		Level:               level,
		BallSpeed:           math.Min(ballSpeed, d.cfg.Ball.MaxSpeed),
		MaxBallSpeed:        d.cfg.Ball.MaxSpeed,
		PaddleSpeed:         paddleSpeed,
		MinWait:             minWait,
		MaxWait:             maxWait,
		UnbreakableFraction: clampF(float64(steps)*diff.UnbreakableStep, 0.0, 1.0),
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
