package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// KeyMap defines the key bindings for every screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Launch  key.Binding
	Pause   key.Binding
	Start   key.Binding
	Submit  key.Binding
	EndGame key.Binding
	NewGame key.Binding
	Clear   key.Binding
	Exit    key.Binding // leaves the end screen
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "launch"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		EndGame: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end game"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new game"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear board"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key press to the action for the given screen.
// Returns the action (may be ActionNone). The end screen only maps control
// keys; letters belong to the name field there.
func (k KeyMap) MapKey(msg tea.KeyMsg, phase breakout.Phase) core.Action {
	if msg.String() == "ctrl+c" {
		return core.ActionQuit
	}

	switch phase {
	case breakout.PhaseStart:
		switch {
		case key.Matches(msg, k.Start):
			return core.ActionConfirm
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		}

	case breakout.PhaseGame:
		switch {
		case key.Matches(msg, k.Left):
			return core.ActionLeft
		case key.Matches(msg, k.Right):
			return core.ActionRight
		case key.Matches(msg, k.Launch):
			return core.ActionLaunch
		case key.Matches(msg, k.Pause):
			return core.ActionPause
		case key.Matches(msg, k.EndGame):
			return core.ActionBack
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		}

	case breakout.PhaseEnd:
		switch {
		case key.Matches(msg, k.Submit):
			return core.ActionConfirm
		case key.Matches(msg, k.NewGame):
			return core.ActionRestart
		case key.Matches(msg, k.Clear):
			return core.ActionClear
		case key.Matches(msg, k.Exit):
			return core.ActionQuit
		}
	}

	return core.ActionNone
}

// bindings is a flat help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// Help returns the bindings shown in the help bar for a screen.
func (k KeyMap) Help(phase breakout.Phase, submitted bool) help.KeyMap {
	switch phase {
	case breakout.PhaseStart:
		return bindings{k.Start, k.Quit}
	case breakout.PhaseGame:
		return bindings{k.Left, k.Right, k.Launch, k.Pause, k.EndGame, k.Quit}
	default:
		if submitted {
			return bindings{k.NewGame, k.Clear, k.Exit}
		}
		return bindings{k.Submit, k.NewGame, k.Clear, k.Exit}
	}
}
