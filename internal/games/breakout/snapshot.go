package breakout

import "math"

// Snapshot contains the simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Score     int
	Lives     int
	Level     int
	Launched  bool
	GameOver  bool
	NextSpawn int64 // nanoseconds of simulated time

	// Each ball is 4 values: X, Y, VX, VY
	BallCount int
	BallData  []float64

	// Each paddle is 3 values: X, Width, Primary (1/0)
	PaddleCount int
	PaddleData  []float64

	// Each power-up is 4 values: Effect, X, Y, Exploded (1/0)
	PowerUpCount int
	PowerUpData  []float64

	// Each brick is 4 values: X, Y, Tier, Breakable (1/0)
	BrickCount int
	BrickData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(s.balls)*4)
	for _, b := range s.balls {
		ballData = append(ballData, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}

	paddleData := make([]float64, 0, len(s.paddles)*3)
	for _, p := range s.paddles {
		paddleData = append(paddleData, p.Pos.X, p.Width, flag(p.Primary))
	}

	powerUpData := make([]float64, 0, len(s.powerUps)*4)
	for _, p := range s.powerUps {
		powerUpData = append(powerUpData, float64(p.Effect), p.Pos.X, p.Pos.Y, flag(p.exploded))
	}

	bricks := s.bricks.Bricks()
	brickData := make([]float64, 0, len(bricks)*4)
	for _, b := range bricks {
		brickData = append(brickData, b.Pos.X, b.Pos.Y, float64(b.Tier), flag(b.Breakable))
	}

	return Snapshot{
		Tick:      s.ticks,
		Score:     s.score,
		Lives:     s.lives,
		Level:     s.level,
		Launched:  s.launched,
		GameOver:  s.gameOver,
		NextSpawn: int64(s.nextSpawn),

		BallCount:    len(s.balls),
		BallData:     ballData,
		PaddleCount:  len(s.paddles),
		PaddleData:   paddleData,
		PowerUpCount: len(s.powerUps),
		PowerUpData:  powerUpData,
		BrickCount:   len(bricks),
		BrickData:    brickData,
	}
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(flag(snap.Launched)) //#nosec G115 -- hash computation
	h = h*31 + uint64(flag(snap.GameOver)) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextSpawn)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BrickCount)     //#nosec G115 -- hash computation

	for _, data := range [][]float64{snap.BallData, snap.PaddleData, snap.PowerUpData, snap.BrickData} {
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}

	return h
}
