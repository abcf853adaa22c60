package breakout

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Effect is what a falling collectible does when it takes effect.
type Effect int

const (
	EffectEnlargePaddle Effect = iota // temporary double-width paddle
	EffectAddBall                     // extra ball at the pickup position
	EffectAddLife                     // one more life
	EffectLoseLife                    // power-down: explodes, then costs a life
)

// spawnEffects lists the spawnable effects; the paddle effect must stay first
// so the scheduler can exclude it while a temporary paddle is out.
var spawnEffects = []Effect{EffectEnlargePaddle, EffectAddBall, EffectAddLife, EffectLoseLife}

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectEnlargePaddle:
		return "EnlargePaddle"
	case EffectAddBall:
		return "AddBall"
	case EffectAddLife:
		return "AddLife"
	case EffectLoseLife:
		return "LoseLife"
	default:
		return "?"
	}
}

// Harmful reports whether this is a power-down.
func (e Effect) Harmful() bool {
	return e == EffectLoseLife
}

// Glyph returns the display character for the effect.
func (e Effect) Glyph() rune {
	switch e {
	case EffectEnlargePaddle:
		return 'W'
	case EffectAddBall:
		return 'O'
	case EffectAddLife:
		return '♥'
	case EffectLoseLife:
		return '☠'
	default:
		return '?'
	}
}

// ExplosionGlyph is drawn for an exploded power-down.
const ExplosionGlyph = '✸'

// blinkPalette is cycled by falling collectibles.
var blinkPalette = []core.Color{
	core.ColorBrightYellow,
	core.ColorBrightCyan,
	core.ColorBrightMagenta,
	core.ColorBrightGreen,
}

// explosionPalette is cycled while a power-down explodes.
var explosionPalette = []core.Color{core.ColorBrightRed, core.ColorOrange, core.ColorBrightYellow}

// PowerUp is a falling collectible. A harmful one is a power-down.
type PowerUp struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Size   float64
	Effect Effect

	blink     time.Duration
	nextBlink time.Duration
	colorIdx  int

	exploded   bool
	detonateAt time.Duration
	removed    bool
}

// NewPowerUp creates a collectible at x (box left) falling from the spawn height.
func NewPowerUp(effect Effect, x float64, cfg config.PowerUpConfig, now time.Duration) *PowerUp {
	speed := cfg.FallSpeed
	if effect == EffectAddLife {
		speed = cfg.LifeFallSpeed
	}
	return &PowerUp{
		Pos:       core.Vec2{X: x, Y: cfg.SpawnY},
		Vel:       core.Vec2{Y: speed},
		Size:      cfg.Size,
		Effect:    effect,
		blink:     cfg.Blink.D(),
		nextBlink: now + cfg.Blink.D(),
	}
}

// Bounds returns the collectible's bounding box.
func (p *PowerUp) Bounds() core.Box {
	return core.NewBox(p.Pos, core.Size{W: p.Size, H: p.Size})
}

func (p *PowerUp) Visual() Visual {
	if p.exploded {
		return Visual{Glyph: ExplosionGlyph, Color: explosionPalette[p.colorIdx%len(explosionPalette)]}
	}
	return Visual{Glyph: p.Effect.Glyph(), Color: blinkPalette[p.colorIdx%len(blinkPalette)]}
}

func (p *PowerUp) Removed() bool { return p.removed }

// Exploded reports whether a power-down is waiting to detonate.
func (p *PowerUp) Exploded() bool { return p.exploded }

// Move advances the collectible one tick and cycles its color on the blink
// interval. An exploded power-down stays in place but keeps flashing.
func (p *PowerUp) Move(now time.Duration) {
	if !p.exploded {
		p.Pos = p.Pos.Add(p.Vel)
	}
	if p.blink > 0 && now >= p.nextBlink {
		p.colorIdx++
		p.nextBlink = now + p.blink
	}
}

// Explode stops a power-down and schedules its effect after delay.
func (p *PowerUp) Explode(now, delay time.Duration) {
	if p.exploded {
		return
	}
	p.exploded = true
	p.Vel = core.Vec2{}
	p.detonateAt = now + delay
}

// Detonated reports whether an exploded power-down's delay has elapsed.
func (p *PowerUp) Detonated(now time.Duration) bool {
	return p.exploded && now >= p.detonateAt
}
