package breakout

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PaddleGlyph fills the paddle's cells.
const PaddleGlyph = '▀'

// Paddle is a horizontal actuator. Only X changes; X always stays within
// [0, worldW-Width].
type Paddle struct {
	Pos    core.Vec2
	Width  float64
	Height float64
	Speed  float64
	Color  core.Color

	// Primary marks the permanent paddle. Temporary paddles carry a timeout.
	Primary bool
	timeout time.Duration

	startX  float64
	worldW  float64
	flicker config.PaddleConfig

	flickering bool
	dimmed     bool
	nextToggle time.Duration
	period     time.Duration
	removed    bool
}

// NewPaddle creates a permanent paddle centered in the world.
func NewPaddle(cfg config.PaddleConfig, worldW, speed float64, color core.Color) *Paddle {
	p := &Paddle{
		Pos:     core.Vec2{Y: cfg.Y},
		Width:   cfg.Width,
		Height:  cfg.Height,
		Speed:   speed,
		Color:   color,
		Primary: true,
		worldW:  worldW,
		flicker: cfg,
	}
	p.startX = (worldW - p.Width) / 2
	p.ResetPosition()
	return p
}

// newTemporaryPaddle creates a paddle of the given width centered on centerX
// that expires at timeout.
func newTemporaryPaddle(cfg config.PaddleConfig, worldW, width, centerX, speed float64, color core.Color, timeout time.Duration) *Paddle {
	width = core.ClampF(width, 1, worldW)
	p := &Paddle{
		Pos:     core.Vec2{Y: cfg.Y},
		Width:   width,
		Height:  cfg.Height,
		Speed:   speed,
		Color:   color,
		timeout: timeout,
		startX:  (worldW - width) / 2,
		worldW:  worldW,
		flicker: cfg,
	}
	p.Pos.X = core.ClampF(centerX-width/2, 0, worldW-width)
	return p
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.Box {
	return core.NewBox(p.Pos, core.Size{W: p.Width, H: p.Height})
}

// Visual returns the paddle glyph; a flickering paddle alternates to gray.
func (p *Paddle) Visual() Visual {
	if p.dimmed {
		return Visual{Glyph: PaddleGlyph, Color: core.ColorGray}
	}
	return Visual{Glyph: PaddleGlyph, Color: p.Color}
}

func (p *Paddle) Removed() bool { return p.removed }

// Temporary reports whether the paddle expires.
func (p *Paddle) Temporary() bool { return !p.Primary }

// Timeout returns the simulated time at which a temporary paddle expires.
func (p *Paddle) Timeout() time.Duration { return p.timeout }

// MoveLeft shifts the paddle left by its speed, clamped at the wall.
func (p *Paddle) MoveLeft() {
	p.Pos.X = core.ClampF(p.Pos.X-p.Speed, 0, p.maxX())
}

// MoveRight shifts the paddle right by its speed, clamped at the wall.
func (p *Paddle) MoveRight() {
	p.Pos.X = core.ClampF(p.Pos.X+p.Speed, 0, p.maxX())
}

// ResetPosition restores the canonical centered start position.
func (p *Paddle) ResetPosition() {
	p.Pos.X = p.startX
}

func (p *Paddle) maxX() float64 {
	return max(p.worldW-p.Width, 0)
}

// CheckTimeout expires a temporary paddle once now passes its timeout and
// reports whether it did. Within the flicker window before expiry the paddle
// toggles between its color and gray, each toggle shortening the period.
func (p *Paddle) CheckTimeout(now time.Duration) bool {
	if p.Primary || p.removed {
		return false
	}
	if now >= p.timeout {
		p.removed = true
		return true
	}

	if now < p.timeout-p.flicker.FlickerWindow.D() {
		return false
	}
	if !p.flickering {
		p.flickering = true
		p.period = p.flicker.FlickerStart.D()
		p.nextToggle = now
	}
	if now >= p.nextToggle {
		p.dimmed = !p.dimmed
		p.nextToggle = now + p.period
		p.period = max(time.Duration(float64(p.period)*p.flicker.FlickerDecay), p.flicker.FlickerMin.D())
	}
	return false
}
