package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BallGlyph is drawn at the ball's center cell.
const BallGlyph = '●'

// Ball is a moving ball. Pos is the top-left of its bounding box.
//
// The sign of Vel.Y is the travel direction (negative is up). Neither
// velocity component ever exceeds maxSpeed in magnitude.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Color  core.Color

	speed    float64 // base speed for launch and paddle deflection
	maxSpeed float64
	launch   core.Vec2

	// canHitPaddle is the paddle latch: cleared on a bounce, set again once
	// the ball's bottom is above the paddle top.
	canHitPaddle bool
	removed      bool
}

// NewBall creates a ball waiting at its launch position, moving straight up.
func NewBall(launch core.Vec2, radius, speed, maxSpeed float64, color core.Color) *Ball {
	b := &Ball{
		Radius:   radius,
		Color:    color,
		speed:    math.Min(speed, maxSpeed),
		maxSpeed: maxSpeed,
		launch:   launch,
	}
	b.Reset()
	return b
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Box {
	d := b.Radius * 2
	return core.NewBox(b.Pos, core.Size{W: d, H: d})
}

func (b *Ball) Visual() Visual {
	return Visual{Glyph: BallGlyph, Color: b.Color}
}

func (b *Ball) Removed() bool { return b.removed }

// Speed returns the ball's current base speed.
func (b *Ball) Speed() float64 { return b.speed }

// LaunchPosition returns where the ball waits before launch.
func (b *Ball) LaunchPosition() core.Vec2 { return b.launch }

// Reset puts the ball back at its launch position with zero horizontal and
// upward vertical speed.
func (b *Ball) Reset() {
	b.Pos = b.launch
	b.Vel = core.Vec2{X: 0, Y: -b.speed}
	b.canHitPaddle = true
}

// Integrate advances the position by one tick of velocity.
func (b *Ball) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// BounceX reflects horizontal velocity. A ball with no horizontal speed gets
// a random direction so it cannot bounce vertically forever off a brick edge.
func (b *Ball) BounceX(r Rand) {
	if b.Vel.X == 0 {
		sign := 1.0
		if r.Intn(2) == 0 {
			sign = -1.0
		}
		b.Vel.X = sign * b.speed
		return
	}
	b.Vel.X = -b.Vel.X
}

// BounceY reflects vertical velocity.
func (b *Ball) BounceY() {
	b.Vel.Y = -b.Vel.Y
}

// SetSpeed sets the base speed, capped at the maximum, and rescales the
// current velocity to match.
func (b *Ball) SetSpeed(speed float64) {
	next := math.Min(speed, b.maxSpeed)
	if b.speed > 0 {
		b.Vel = b.Vel.Scale(next / b.speed)
	} else {
		b.Vel = core.Vec2{X: 0, Y: -next}
	}
	b.Vel.X = core.ClampF(b.Vel.X, -b.maxSpeed, b.maxSpeed)
	b.Vel.Y = core.ClampF(b.Vel.Y, -b.maxSpeed, b.maxSpeed)
	b.speed = next
}

// HandleWallCollisions reflects off the left, right and top walls. Each axis
// is checked independently and only flips when moving into the wall; the
// position is clamped back inside. Returns true if any wall was hit.
func (b *Ball) HandleWallCollisions(worldW float64) bool {
	size := b.Radius * 2
	bounced := false

	if b.Pos.X <= 0 {
		b.Pos.X = 0
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X
			bounced = true
		}
	} else if b.Pos.X >= worldW-size {
		b.Pos.X = worldW - size
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X
			bounced = true
		}
	}

	if b.Pos.Y <= 0 {
		b.Pos.Y = 0
		if b.Vel.Y < 0 {
			b.BounceY()
			bounced = true
		}
	}
	return bounced
}

// HandlePaddleCollision bounces the ball off p when it falls onto it.
// The ball is placed flush on top and its horizontal speed follows the hit
// offset from the paddle center. A nil paddle is a no-op.
func (b *Ball) HandlePaddleCollision(p *Paddle) bool {
	if p == nil {
		return false
	}
	box := b.Bounds()
	pb := p.Bounds()

	if b.canHitPaddle && b.Vel.Y > 0 && box.Overlaps(pb) {
		b.BounceY()
		b.Pos.Y = pb.Top() - box.H

		offset := box.CenterX() - pb.CenterX()
		b.Vel.X = core.ClampF(b.speed*(offset/(pb.W/2)), -b.maxSpeed, b.maxSpeed)
		b.canHitPaddle = false
		return true
	}

	if box.Bottom() < pb.Top() {
		b.canHitPaddle = true
	}
	return false
}

// HandleBrickCollisions hits every brick the ball overlaps and returns the
// points earned and the number of bricks touched. The ball reflects along
// the axis of smaller overlap, at most once per axis per tick; a tie
// reflects vertically.
func (b *Ball) HandleBrickCollisions(field *BrickField, r Rand) (points, hits int) {
	if field == nil {
		return 0, 0
	}
	box := b.Bounds()
	var bouncedX, bouncedY bool

	for _, brick := range field.Overlapping(box) {
		bb := brick.Bounds()
		vertical := math.Min(math.Abs(box.Bottom()-bb.Top()), math.Abs(box.Top()-bb.Bottom()))
		horizontal := math.Min(math.Abs(box.Right()-bb.Left()), math.Abs(box.Left()-bb.Right()))

		if horizontal < vertical {
			if !bouncedX {
				b.BounceX(r)
				bouncedX = true
			}
		} else if !bouncedY {
			b.BounceY()
			bouncedY = true
		}

		points += brick.Hit()
		hits++
	}

	field.Compact()
	return points, hits
}

// OutOfBounds reports whether the ball has crossed the bottom of the world.
func (b *Ball) OutOfBounds(worldH float64) bool {
	return b.Pos.Y >= worldH
}
