package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		phase    breakout.Phase
		msg      tea.KeyMsg
		expected core.Action
	}{
		{breakout.PhaseStart, keyMsg(tea.KeyEnter), core.ActionConfirm},
		{breakout.PhaseStart, runes("q"), core.ActionQuit},
		{breakout.PhaseStart, keyMsg(tea.KeyLeft), core.ActionNone},

		{breakout.PhaseGame, keyMsg(tea.KeyLeft), core.ActionLeft},
		{breakout.PhaseGame, runes("a"), core.ActionLeft},
		{breakout.PhaseGame, keyMsg(tea.KeyRight), core.ActionRight},
		{breakout.PhaseGame, runes("d"), core.ActionRight},
		{breakout.PhaseGame, keyMsg(tea.KeyUp), core.ActionLaunch},
		{breakout.PhaseGame, runes("w"), core.ActionLaunch},
		{breakout.PhaseGame, keyMsg(tea.KeySpace), core.ActionPause},
		{breakout.PhaseGame, runes("p"), core.ActionPause},
		{breakout.PhaseGame, keyMsg(tea.KeyEsc), core.ActionBack},
		{breakout.PhaseGame, runes("q"), core.ActionQuit},
		{breakout.PhaseGame, keyMsg(tea.KeyEnter), core.ActionNone},

		{breakout.PhaseEnd, keyMsg(tea.KeyEnter), core.ActionConfirm},
		{breakout.PhaseEnd, keyMsg(tea.KeyCtrlN), core.ActionRestart},
		{breakout.PhaseEnd, keyMsg(tea.KeyCtrlR), core.ActionClear},
		{breakout.PhaseGame, keyMsg(tea.KeyCtrlR), core.ActionNone},
		{breakout.PhaseEnd, keyMsg(tea.KeyEsc), core.ActionQuit},
		{breakout.PhaseEnd, runes("q"), core.ActionNone},
		{breakout.PhaseEnd, runes("a"), core.ActionNone},

		{breakout.PhaseEnd, keyMsg(tea.KeyCtrlC), core.ActionQuit},
		{breakout.PhaseGame, keyMsg(tea.KeyCtrlC), core.ActionQuit},
	}

	for _, tt := range tests {
		if got := km.MapKey(tt.msg, tt.phase); got != tt.expected {
			t.Errorf("MapKey(%q, %v) = %v, expected %v", tt.msg.String(), tt.phase, got, tt.expected)
		}
	}
}

func TestHelpPerPhase(t *testing.T) {
	km := DefaultKeyMap()

	if n := len(km.Help(breakout.PhaseGame, false).ShortHelp()); n != 6 {
		t.Errorf("game help has %d bindings, expected 6", n)
	}
	if n := len(km.Help(breakout.PhaseEnd, false).ShortHelp()); n != 4 {
		t.Errorf("end help has %d bindings, expected 4", n)
	}
	for _, b := range km.Help(breakout.PhaseEnd, true).ShortHelp() {
		if b.Help().Desc == "submit" {
			t.Error("submit shown after the score was saved")
		}
	}
}

func TestTickCmd(t *testing.T) {
	cmd := tickCmd(time.Millisecond)
	if cmd == nil {
		t.Fatal("tickCmd returned nil")
	}
	if _, ok := cmd().(TickMsg); !ok {
		t.Error("tick command did not produce a TickMsg")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorPurple)
	s.DrawTextColored(2, 0, "cd", core.ColorPink)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q is missing %q", out, want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText = %q, expected the text unchanged", got)
	}
}
