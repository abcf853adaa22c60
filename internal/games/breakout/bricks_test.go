package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestTierRows(t *testing.T) {
	tests := []struct {
		rows     int
		expected [3]int
	}{
		{1, [3]int{1, 0, 0}},
		{2, [3]int{1, 1, 0}},
		{3, [3]int{1, 1, 1}},
		{4, [3]int{1, 1, 2}},
		{6, [3]int{1, 2, 3}},
		{8, [3]int{2, 2, 4}},
		{12, [3]int{3, 4, 5}},
	}

	for _, tt := range tests {
		if got := TierRows(tt.rows); got != tt.expected {
			t.Errorf("TierRows(%d) = %v, expected %v", tt.rows, got, tt.expected)
		}
	}
}

func TestBrickLayout(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bricks
	field := NewBrickLayout(cfg, 500, 0, NewSimpleRNG(1))

	if field.Len() != 48 {
		t.Fatalf("Len() = %d, expected 48", field.Len())
	}
	if field.Unbreakable() != 0 {
		t.Errorf("Unbreakable() = %d, expected 0", field.Unbreakable())
	}

	bricks := field.Bricks()
	left := bricks[0].Bounds().Left()
	right := bricks[len(bricks)-1].Bounds().Right()
	if left != 500-right {
		t.Errorf("grid spans %v..%v, expected centered", left, right)
	}

	// Rows from the top: one of tier 0, two of tier 1, three of tier 2.
	expectedTiers := []int{0, 1, 1, 2, 2, 2}
	for row, tier := range expectedTiers {
		b := bricks[row*cfg.Cols]
		if b.Tier != tier {
			t.Errorf("row %d tier = %d, expected %d", row, b.Tier, tier)
		}
		if b.Points != cfg.Points[tier] {
			t.Errorf("row %d points = %d, expected %d", row, b.Points, cfg.Points[tier])
		}
	}
}

func TestBrickLayoutUnbreakable(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Bricks
	tests := []struct {
		fraction float64
		expected int
	}{
		{0, 0},
		{0.1, 4},
		{0.25, 12},
		{1, 48},
		{2, 48},
	}

	for _, tt := range tests {
		field := NewBrickLayout(cfg, 500, tt.fraction, NewSimpleRNG(7))
		if got := field.Unbreakable(); got != tt.expected {
			t.Errorf("fraction %v: Unbreakable() = %d, expected %d", tt.fraction, got, tt.expected)
		}
	}
}

func TestBrickHit(t *testing.T) {
	b := newTestBrick(0, 0, 0, 3, false)
	if got := b.Hit(); got != 0 {
		t.Errorf("first Hit() = %d, expected 0", got)
	}
	if b.Removed() || !b.Breakable {
		t.Error("unbreakable brick should survive its first hit and turn breakable")
	}
	if got := b.Hit(); got != 3 {
		t.Errorf("second Hit() = %d, expected 3", got)
	}
	if !b.Removed() {
		t.Error("brick not removed after a breaking hit")
	}
	if got := b.Hit(); got != 0 {
		t.Errorf("Hit() on removed brick = %d, expected 0", got)
	}
}
