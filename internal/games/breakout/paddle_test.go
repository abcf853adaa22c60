package breakout

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestPaddleStartsCentered(t *testing.T) {
	p := testPaddle()
	if p.Pos.X != 200 {
		t.Errorf("Pos.X = %v, expected 200", p.Pos.X)
	}
	if !p.Primary || p.Temporary() {
		t.Error("new paddle should be the primary")
	}
}

func TestPaddleClampLeft(t *testing.T) {
	p := testPaddle()
	p.Pos.X = 5
	for i := 0; i < 10; i++ {
		p.MoveLeft()
		if p.Pos.X < 0 {
			t.Fatalf("Pos.X = %v after %d moves, expected never negative", p.Pos.X, i+1)
		}
	}
	if p.Pos.X != 0 {
		t.Errorf("Pos.X = %v, expected 0", p.Pos.X)
	}
}

func TestPaddleClampRight(t *testing.T) {
	p := testPaddle()
	for i := 0; i < 100; i++ {
		p.MoveRight()
	}
	if p.Pos.X != 400 {
		t.Errorf("Pos.X = %v, expected 400", p.Pos.X)
	}
	p.ResetPosition()
	if p.Pos.X != 200 {
		t.Errorf("Pos.X after reset = %v, expected 200", p.Pos.X)
	}
}

func TestTemporaryPaddle(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Paddle
	p := newTemporaryPaddle(cfg, 500, 200, 60, 5, core.ColorPink, 10*time.Second)

	if p.Pos.X != 0 {
		t.Errorf("Pos.X = %v, expected clamped to 0", p.Pos.X)
	}
	if !p.Temporary() {
		t.Error("Temporary() = false, expected true")
	}
	p.ResetPosition()
	if p.Pos.X != 150 {
		t.Errorf("Pos.X after reset = %v, expected 150", p.Pos.X)
	}
}

func TestPaddleTimeoutFlicker(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Paddle
	p := newTemporaryPaddle(cfg, 500, 200, 250, 5, core.ColorPink, 10*time.Second)

	steps := []struct {
		now     time.Duration
		expired bool
		dimmed  bool
	}{
		{5 * time.Second, false, false},
		{7 * time.Second, false, true}, // flicker window opens
		{7200 * time.Millisecond, false, true},
		{7500 * time.Millisecond, false, false},
		{7875 * time.Millisecond, false, true}, // period shrank to 375ms
		{10 * time.Second, true, true},
	}

	for _, st := range steps {
		if got := p.CheckTimeout(st.now); got != st.expired {
			t.Errorf("CheckTimeout(%v) = %v, expected %v", st.now, got, st.expired)
		}
		if p.dimmed != st.dimmed {
			t.Errorf("at %v dimmed = %v, expected %v", st.now, p.dimmed, st.dimmed)
		}
	}
	if !p.Removed() {
		t.Error("paddle not removed after timeout")
	}
	if p.Visual().Color != core.ColorGray {
		t.Errorf("dimmed color = %v, expected gray", p.Visual().Color)
	}
}

func TestPrimaryPaddleNeverExpires(t *testing.T) {
	p := testPaddle()
	if p.CheckTimeout(time.Hour) {
		t.Error("primary paddle expired")
	}
}
