package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Brick glyphs
const (
	BrickGlyph      = '█'
	SolidBrickGlyph = '▒' // unbreakable until hit once
	tierCount       = 3
)

// tierColors color the row bands from top to bottom.
var tierColors = [tierCount]core.Color{core.ColorRed, core.ColorOrange, core.ColorGreen}

// Brick is one cell of the brick field. An unbreakable brick absorbs its
// first hit and turns breakable; a breakable brick disappears when hit.
type Brick struct {
	Pos       core.Vec2
	Size      core.Size
	Tier      int
	Points    int
	Breakable bool
	removed   bool
}

// Bounds returns the brick's bounding box.
func (b *Brick) Bounds() core.Box {
	return core.NewBox(b.Pos, b.Size)
}

func (b *Brick) Visual() Visual {
	if !b.Breakable {
		return Visual{Glyph: SolidBrickGlyph, Color: core.ColorGray}
	}
	return Visual{Glyph: BrickGlyph, Color: tierColors[b.Tier]}
}

func (b *Brick) Removed() bool { return b.removed }

// Hit applies one hit and returns the points earned: zero for an
// unbreakable brick (which becomes breakable), its value otherwise.
func (b *Brick) Hit() int {
	if b.removed {
		return 0
	}
	if !b.Breakable {
		b.Breakable = true
		return 0
	}
	b.removed = true
	return b.Points
}

// BrickField is the level's collection of bricks.
type BrickField struct {
	bricks []*Brick
}

// TierRows splits rows into three bands: about a quarter, then about a third,
// then the remainder. With three or more rows every band gets at least one row.
func TierRows(rows int) [tierCount]int {
	top := max(1, rows/4)
	mid := max(1, rows/3)
	if top+mid > rows {
		// Too few rows for every band; fill from the top.
		top = min(top, rows)
		mid = rows - top
	}
	return [tierCount]int{top, mid, rows - top - mid}
}

// NewBrickLayout builds a horizontally centered grid of bricks. A fraction of
// bricks, chosen at random, starts unbreakable.
func NewBrickLayout(cfg config.BrickConfig, worldW, unbreakableFraction float64, r Rand) *BrickField {
	cols := float64(cfg.Cols)
	gridW := cols*cfg.Width + (cols-1)*cfg.Margin
	left := (worldW - gridW) / 2

	bands := TierRows(cfg.Rows)
	field := &BrickField{bricks: make([]*Brick, 0, cfg.Rows*cfg.Cols)}

	tier, remaining := 0, bands[0]
	for row := 0; row < cfg.Rows; row++ {
		for remaining == 0 && tier < tierCount-1 {
			tier++
			remaining = bands[tier]
		}
		remaining--

		y := cfg.Top + float64(row)*(cfg.Height+cfg.Margin)
		for col := 0; col < cfg.Cols; col++ {
			x := left + float64(col)*(cfg.Width+cfg.Margin)
			field.bricks = append(field.bricks, &Brick{
				Pos:       core.Vec2{X: x, Y: y},
				Size:      core.Size{W: cfg.Width, H: cfg.Height},
				Tier:      tier,
				Points:    tierPoints(cfg.Points, tier),
				Breakable: true,
			})
		}
	}

	field.markUnbreakable(unbreakableFraction, r)
	return field
}

func tierPoints(points []int, tier int) int {
	if tier < len(points) {
		return points[tier]
	}
	return 1
}

// markUnbreakable flags floor(fraction*n) distinct random bricks.
func (f *BrickField) markUnbreakable(fraction float64, r Rand) {
	n := len(f.bricks)
	count := int(core.ClampF(fraction, 0, 1) * float64(n))
	if count == 0 {
		return
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: the first count slots end up a random sample.
	for i := 0; i < count; i++ {
		j := i + r.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		f.bricks[idx[i]].Breakable = false
	}
}

// Bricks returns the live bricks.
func (f *BrickField) Bricks() []*Brick {
	return f.bricks
}

// Len returns the number of bricks left.
func (f *BrickField) Len() int {
	return len(f.bricks)
}

// Empty reports whether the field has been cleared.
func (f *BrickField) Empty() bool {
	return len(f.bricks) == 0
}

// Unbreakable counts bricks that still need an extra hit.
func (f *BrickField) Unbreakable() int {
	n := 0
	for _, b := range f.bricks {
		if !b.Breakable {
			n++
		}
	}
	return n
}

// Overlapping returns the live bricks whose boxes overlap box.
func (f *BrickField) Overlapping(box core.Box) []*Brick {
	var hits []*Brick
	for _, b := range f.bricks {
		if !b.removed && box.Overlaps(b.Bounds()) {
			hits = append(hits, b)
		}
	}
	return hits
}

// Compact drops bricks destroyed since the last call.
func (f *BrickField) Compact() {
	f.bricks = compact(f.bricks)
}
