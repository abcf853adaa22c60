// Package breakout implements the block-breaking simulation: balls, paddles,
// bricks, falling power-ups and the level/life state machine.
package breakout

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// State is one game in progress. It owns every entity collection and is the
// only mutator of score and lives. A new game gets a new State.
type State struct {
	ID string

	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	params     config.LevelParams
	rng        Rand
	sound      SoundPlayer
	logger     *log.Logger
	tick       time.Duration

	level     int
	score     int
	lives     int
	clock     time.Duration
	ticks     uint64
	nextSpawn time.Duration

	launched bool
	paused   bool
	gameOver bool

	balls    []*Ball
	paddles  []*Paddle // paddles[0] is the primary
	bricks   *BrickField
	powerUps []*PowerUp
}

// Option configures a State.
type Option func(*State)

// WithRand sets the randomness source.
func WithRand(r Rand) Option {
	return func(s *State) { s.rng = r }
}

// WithSeed seeds the default RNG.
func WithSeed(seed int64) Option {
	return func(s *State) { s.rng = NewSimpleRNG(seed) }
}

// WithSound sets the audio collaborator.
func WithSound(p SoundPlayer) Option {
	return func(s *State) {
		if p != nil {
			s.sound = p
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewState creates a game at level 1 with a full brick field, one ball
// waiting at its launch position and the primary paddle centered.
func NewState(cfg config.BreakoutConfig, opts ...Option) *State {
	s := &State{
		ID:         uuid.New().String(),
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg),
		rng:        NewSimpleRNG(1),
		sound:      NopSound{},
		logger:     log.New(io.Discard),
		level:      1,
		lives:      cfg.Gameplay.Lives,
	}
	for _, opt := range opts {
		opt(s)
	}

	fps := max(cfg.World.FPS, 1)
	s.tick = time.Second / time.Duration(fps)
	s.params = s.difficulty.Params(s.level)

	s.balls = []*Ball{s.newBall(s.launchPosition(), core.ColorWhite)}
	s.paddles = []*Paddle{NewPaddle(cfg.Paddle, cfg.World.Width, s.params.PaddleSpeed, core.ColorBrightBlue)}
	s.bricks = NewBrickLayout(cfg.Bricks, cfg.World.Width, s.params.UnbreakableFraction, s.rng)
	s.scheduleSpawn()

	s.logger.Info("game started", "game", s.ID, "bricks", s.bricks.Len())
	return s
}

func (s *State) launchPosition() core.Vec2 {
	return core.Vec2{X: s.cfg.Ball.LaunchX, Y: s.cfg.Ball.LaunchY}
}

func (s *State) newBall(pos core.Vec2, color core.Color) *Ball {
	return NewBall(pos, s.cfg.Ball.Radius, s.params.BallSpeed, s.params.MaxBallSpeed, color)
}

// Step advances the simulation by one tick.
func (s *State) Step(in core.InputFrame) core.StepResult {
	if s.gameOver {
		return core.StepResult{State: s.GameState()}
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if s.paused {
		return core.StepResult{State: s.GameState()}
	}
	if in.Has(core.ActionLaunch) {
		s.LaunchBall()
	}

	if s.launched {
		s.movePaddles(in)
		s.stepBalls()
	}
	if s.launched && !s.gameOver {
		s.stepPowerUps()
	}
	s.update()

	if s.launched {
		s.clock += s.tick
		s.ticks++
	}
	return core.StepResult{State: s.GameState()}
}

func (s *State) movePaddles(in core.InputFrame) {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	if left == right {
		return
	}
	for _, p := range s.paddles {
		if left {
			p.MoveLeft()
		} else {
			p.MoveRight()
		}
	}
}

func (s *State) stepBalls() {
	paddle := s.ActivePaddle()
	for _, b := range s.balls {
		if b.removed {
			continue
		}
		b.Integrate()
		if b.HandleWallCollisions(s.cfg.World.Width) {
			s.sound.Play(SoundWall)
		}
		if b.HandlePaddleCollision(paddle) {
			s.sound.Play(SoundPaddle)
		}
		if points, hits := b.HandleBrickCollisions(s.bricks, s.rng); hits > 0 {
			s.score += points
			s.sound.Play(SoundBrick)
		}

		if !b.OutOfBounds(s.cfg.World.Height) {
			continue
		}
		if s.liveBalls() > 1 {
			b.removed = true
			continue
		}
		s.LoseLife()
		break
	}
	s.balls = compact(s.balls)
}

func (s *State) liveBalls() int {
	n := 0
	for _, b := range s.balls {
		if !b.removed {
			n++
		}
	}
	return n
}

func (s *State) stepPowerUps() {
	active := s.ActivePaddle()
	for _, p := range s.powerUps {
		if s.gameOver || !s.launched {
			break
		}
		if p.removed {
			continue
		}
		p.Move(s.clock)

		if p.exploded {
			if p.Detonated(s.clock) {
				p.removed = true
				s.applyEffect(p)
			}
			continue
		}

		box := p.Bounds()
		switch {
		case p.Effect.Harmful() && s.touchesAnyPaddle(box):
			p.Explode(s.clock, s.cfg.PowerUps.ExplodeDelay.D())
		case !p.Effect.Harmful() && active != nil && box.Overlaps(active.Bounds()):
			p.removed = true
			s.sound.Play(SoundPowerUp)
			s.applyEffect(p)
		case box.Top() >= s.cfg.World.Height:
			p.removed = true
		}
	}
	s.powerUps = compact(s.powerUps)
}

func (s *State) touchesAnyPaddle(box core.Box) bool {
	for _, pd := range s.paddles {
		if !pd.removed && box.Overlaps(pd.Bounds()) {
			return true
		}
	}
	return false
}

// update runs the per-tick level bookkeeping: level-clear, then the
// power-up scheduler and paddle timeouts while launched.
func (s *State) update() {
	if s.gameOver {
		return
	}
	if s.bricks.Empty() {
		s.levelUp()
		return
	}
	if !s.launched {
		return
	}

	s.maybeSpawnPowerUp()
	for _, p := range s.paddles {
		if p.CheckTimeout(s.clock) {
			s.logger.Debug("paddle expired", "game", s.ID)
		}
	}
	s.paddles = compact(s.paddles)
}

func (s *State) scheduleSpawn() {
	s.nextSpawn = s.clock + randomWait(s.rng, s.params.MinWait, s.params.MaxWait)
}

func (s *State) maybeSpawnPowerUp() {
	if s.clock < s.nextSpawn || len(s.powerUps) > 0 {
		return
	}

	choices := spawnEffects
	if len(s.paddles) > 1 {
		choices = spawnEffects[1:]
	}
	effect := pick(s.rng, choices)

	size := s.cfg.PowerUps.Size
	x := uniform(s.rng, size*5, s.cfg.World.Width-size*5)
	s.powerUps = append(s.powerUps, NewPowerUp(effect, x, s.cfg.PowerUps, s.clock))
	s.scheduleSpawn()
	s.logger.Debug("power-up spawned", "game", s.ID, "effect", effect, "x", x)
}

func (s *State) levelUp() {
	s.level++
	s.params = s.difficulty.Params(s.level)

	for _, b := range s.balls {
		b.SetSpeed(s.params.BallSpeed)
		b.Reset()
	}
	for _, p := range s.paddles {
		p.ResetPosition()
		p.Speed = s.params.PaddleSpeed
	}
	s.bricks = NewBrickLayout(s.cfg.Bricks, s.cfg.World.Width, s.params.UnbreakableFraction, s.rng)
	s.launched = false

	s.logger.Info("level cleared", "game", s.ID, "level", s.level, "ball_speed", s.params.BallSpeed)
}

// LoseLife takes one life. On the last one the game ends; otherwise balls
// and paddles go back to their start positions and wait for launch.
func (s *State) LoseLife() {
	if s.gameOver {
		return
	}
	s.lives--
	s.launched = false

	if s.lives < 1 {
		s.gameOver = true
		s.sound.Play(SoundGameOver)
		s.logger.Info("game over", "game", s.ID, "score", s.score, "level", s.level)
		return
	}

	s.sound.Play(SoundLifeLost)
	for _, b := range s.balls {
		b.Reset()
	}
	for _, p := range s.paddles {
		p.ResetPosition()
	}
}

func (s *State) applyEffect(p *PowerUp) {
	switch p.Effect {
	case EffectEnlargePaddle:
		s.addPaddle()
	case EffectAddBall:
		s.addBall(p.Bounds().CenterX())
	case EffectAddLife:
		s.lives++
	case EffectLoseLife:
		s.LoseLife()
	}
	s.logger.Debug("effect applied", "game", s.ID, "effect", p.Effect)
}

func (s *State) addPaddle() {
	primary := s.primary()
	if primary == nil {
		return
	}
	timeout := s.clock + randomWait(s.rng, s.params.MinWait, s.params.MaxWait)
	p := newTemporaryPaddle(s.cfg.Paddle, s.cfg.World.Width, primary.Width*2,
		primary.Bounds().CenterX(), s.params.PaddleSpeed, pick(s.rng, core.Palette), timeout)
	s.paddles = append(s.paddles, p)
}

func (s *State) addBall(centerX float64) {
	d := s.cfg.Ball.Radius * 2
	pos := core.Vec2{
		X: core.ClampF(centerX-s.cfg.Ball.Radius, 0, s.cfg.World.Width-d),
		Y: s.cfg.Ball.LaunchY,
	}
	b := s.newBall(pos, pick(s.rng, core.Palette))
	s.balls = append(s.balls, b)
}

func (s *State) primary() *Paddle {
	for _, p := range s.paddles {
		if p.Primary && !p.removed {
			return p
		}
	}
	return nil
}

// ActivePaddle returns the paddle balls collide with: the newest live
// temporary paddle, else the primary. Nil when no paddle is left.
func (s *State) ActivePaddle() *Paddle {
	for i := len(s.paddles) - 1; i >= 0; i-- {
		if p := s.paddles[i]; p.Temporary() && !p.removed {
			return p
		}
	}
	return s.primary()
}

// LaunchBall releases the balls. Calling it again has no effect.
func (s *State) LaunchBall() {
	if s.gameOver {
		return
	}
	s.launched = true
}

// TogglePause flips the pause flag.
func (s *State) TogglePause() {
	s.paused = !s.paused
}

// End forces game over without touching lives.
func (s *State) End() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.launched = false
	s.logger.Info("game ended", "game", s.ID, "score", s.score)
}

func (s *State) Score() int { return s.score }
func (s *State) Lives() int { return s.lives }
func (s *State) Level() int { return s.level }
func (s *State) Launched() bool { return s.launched }
func (s *State) Paused() bool { return s.paused }
func (s *State) GameOver() bool { return s.gameOver }
func (s *State) Time() time.Duration { return s.clock }
func (s *State) Balls() []*Ball { return s.balls }
func (s *State) Paddles() []*Paddle { return s.paddles }
func (s *State) Bricks() *BrickField { return s.bricks }
func (s *State) PowerUps() []*PowerUp { return s.powerUps }
func (s *State) Params() config.LevelParams { return s.params }

// GameState returns the display values.
func (s *State) GameState() core.GameState {
	return core.GameState{
		Score:    s.score,
		Lives:    s.lives,
		Level:    s.level,
		Launched: s.launched,
		Paused:   s.paused,
		GameOver: s.gameOver,
	}
}
