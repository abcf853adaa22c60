package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Visual is the renderable handle of an entity.
type Visual struct {
	Glyph rune
	Color core.Color
}

// Entity is anything on the playfield: it has a bounding box and a visual.
type Entity interface {
	Bounds() core.Box
	Visual() Visual
}

type removable interface {
	Removed() bool
}

// compact drops removed entities in place, keeping order. Collections are
// only compacted after an update pass so iteration never skips an element.
func compact[E removable](items []E) []E {
	out := items[:0]
	for _, it := range items {
		if !it.Removed() {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}
