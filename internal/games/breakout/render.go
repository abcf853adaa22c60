package breakout

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Minimum terminal size for the playfield to stay legible.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Prompt texts.
const (
	LaunchPrompt = "Press ↑ to launch"
	PausePrompt  = "PAUSED"
)

// viewport maps world coordinates onto the cells inside the border.
type viewport struct {
	inner  core.Rect
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	// Row 0 is the HUD; the border takes one cell on each side.
	inner := core.NewRect(1, 2, dst.Width()-2, dst.Height()-3)
	return viewport{
		inner: inner,
		sx:    float64(inner.W) / worldW,
		sy:    float64(inner.H) / worldH,
	}
}

func (v viewport) point(p core.Vec2) (int, int) {
	return v.inner.X + int(p.X*v.sx), v.inner.Y + int(p.Y*v.sy)
}

// rect converts a world box into cells. Every box covers at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left() * v.sx))
	y0 := int(math.Floor(b.Top() * v.sy))
	x1 := max(int(math.Round(b.Right()*v.sx)), x0+1)
	y1 := max(int(math.Round(b.Bottom()*v.sy)), y0+1)
	r := core.NewRect(v.inner.X+x0, v.inner.Y+y0, x1-x0, y1-y0)
	return clipRect(r, v.inner)
}

func clipRect(r, bounds core.Rect) core.Rect {
	x0 := core.Clamp(r.X, bounds.X, bounds.Right())
	y0 := core.Clamp(r.Y, bounds.Y, bounds.Bottom())
	x1 := core.Clamp(r.Right(), bounds.X, bounds.Right())
	y1 := core.Clamp(r.Bottom(), bounds.Y, bounds.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the game into dst.
func (s *State) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	s.renderHUD(dst)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorGray)

	vp := newViewport(dst, s.cfg.World.Width, s.cfg.World.Height)
	s.renderBricks(dst, vp)
	for _, p := range s.paddles {
		drawFilled(dst, vp, p)
	}
	for _, p := range s.powerUps {
		drawGlyph(dst, vp, p)
	}
	for _, b := range s.balls {
		drawGlyph(dst, vp, b)
	}

	s.renderOverlay(dst)
}

func (s *State) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.score), core.ColorBrightWhite)

	lives := fmt.Sprintf("Lives: %s", strings.Repeat("♥", max(s.lives, 0)))
	dst.DrawTextCentered(0, lives, core.ColorBrightRed)

	level := fmt.Sprintf("Level: %d", s.level)
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorBrightWhite)
}

// renderBricks leaves a one-cell gap to the right of each brick so
// neighbours stay distinguishable.
func (s *State) renderBricks(dst *core.Screen, vp viewport) {
	for _, b := range s.bricks.Bricks() {
		r := vp.rect(b.Bounds())
		if r.W > 1 {
			r.W--
		}
		v := b.Visual()
		dst.DrawRect(r, v.Glyph, v.Color)
	}
}

func (s *State) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch {
	case s.gameOver:
		dst.DrawTextCentered(mid, "GAME OVER", core.ColorBrightRed)
	case s.paused:
		dst.DrawTextCentered(mid, PausePrompt, core.ColorBrightYellow)
	case !s.launched:
		dst.DrawTextCentered(mid, LaunchPrompt, core.ColorBrightWhite)
	}
}

// drawFilled fills an entity's whole box with its glyph.
func drawFilled(dst *core.Screen, vp viewport, e Entity) {
	v := e.Visual()
	dst.DrawRect(vp.rect(e.Bounds()), v.Glyph, v.Color)
}

// drawGlyph draws an entity as a single glyph at the center of its box.
func drawGlyph(dst *core.Screen, vp viewport, e Entity) {
	b := e.Bounds()
	x, y := vp.point(core.Vec2{X: b.CenterX(), Y: b.Top() + b.H/2})
	if !vp.inner.Contains(x, y) {
		return
	}
	v := e.Visual()
	dst.SetColored(x, y, v.Glyph, v.Color)
}

// RenderStart draws the title screen. A positive best score is shown
// under the prompt.
func RenderStart(dst *core.Screen, best int) {
	dst.Clear()
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), core.ColorGray)

	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "B R E A K O U T", core.ColorBrightCyan)
	for i, c := range tierColors {
		dst.DrawTextCentered(mid-1+i, strings.Repeat(string(BrickGlyph), 15), c)
	}
	dst.DrawTextCentered(mid+3, "Press Enter to start", core.ColorBrightWhite)
	if best > 0 {
		dst.DrawTextCentered(mid+5, fmt.Sprintf("Best: %d", best), core.ColorBrightYellow)
	}
}
