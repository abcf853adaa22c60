package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, _ := newTestModelWithStore(t)
	return m
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(context.Background(), 10)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newModelForStore(store *storage.Store) Model {
	session := breakout.NewSession(config.DefaultBreakoutConfig(), store, breakout.WithSessionSeed(7))
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50}
	return NewModel(session, cfg, nil)
}

func newTestModelWithStore(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	store := newTestStore(t)
	return newModelForStore(store), store
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelStartsGame(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, breakout.PhaseStart, m.session.Phase())
	assert.Contains(t, m.View(), "Press Enter to start")

	m = send(t, m, keyMsg(tea.KeyEnter), TickMsg{})
	require.Equal(t, breakout.PhaseGame, m.session.Phase())
	assert.Contains(t, m.View(), breakout.LaunchPrompt)
}

func TestModelMovementIsHeld(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keyMsg(tea.KeyEnter), TickMsg{})
	m = send(t, m, keyMsg(tea.KeyUp), TickMsg{})
	require.True(t, m.session.State().Launched())

	paddle := m.session.State().Paddles()[0]
	start := paddle.Pos.X

	// One press keeps moving for several ticks without a release event.
	m = send(t, m, keyMsg(tea.KeyLeft))
	for range m.holdTicks {
		m = send(t, m, TickMsg{})
	}
	moved := start - paddle.Pos.X
	assert.InDelta(t, float64(m.holdTicks)*paddle.Speed, moved, 1e-9)

	// The latch expires.
	m = send(t, m, TickMsg{})
	assert.InDelta(t, moved, start-paddle.Pos.X, 1e-9)

	// Pressing the opposite direction cancels the first.
	m = send(t, m, keyMsg(tea.KeyLeft), keyMsg(tea.KeyRight))
	assert.Len(t, m.held, 1)
	assert.Contains(t, m.held, core.ActionRight)
}

func TestModelEndScreenSubmit(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keyMsg(tea.KeyEnter), TickMsg{})
	m = send(t, m, keyMsg(tea.KeyEsc), TickMsg{})
	require.Equal(t, breakout.PhaseEnd, m.session.Phase())
	assert.True(t, m.nameInput.Focused())

	view := m.View()
	assert.Contains(t, view, "GAME OVER")
	assert.Contains(t, view, "TOP 10")
	assert.Contains(t, view, "No scores recorded yet.")

	// An empty name is rejected.
	m = send(t, m, keyMsg(tea.KeyEnter))
	assert.False(t, m.session.Submitted())
	assert.Equal(t, "Type a name first", m.status)

	// Letters go to the name field, not to the game or quit bindings.
	m = send(t, m, runes("q"), runes("a"), runes("z"))
	assert.False(t, m.quitting)
	assert.Equal(t, "qaz", m.nameInput.Value())

	m = send(t, m, keyMsg(tea.KeyEnter))
	require.True(t, m.session.Submitted())
	require.Len(t, m.scores, 1)
	assert.Equal(t, "QAZ", m.scores[0].Name)
	assert.Equal(t, "Saved as QAZ", m.status)
	assert.Contains(t, m.View(), "QAZ")

	// A second enter does nothing.
	m = send(t, m, keyMsg(tea.KeyEnter))
	assert.Len(t, m.scores, 1)
}

func TestModelNewGameFromEndScreen(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keyMsg(tea.KeyEnter), TickMsg{})
	first := m.session.State().ID
	m = send(t, m, keyMsg(tea.KeyEsc), TickMsg{})
	require.Equal(t, breakout.PhaseEnd, m.session.Phase())

	m = send(t, m, keyMsg(tea.KeyCtrlN), TickMsg{})
	require.Equal(t, breakout.PhaseGame, m.session.Phase())
	assert.NotEqual(t, first, m.session.State().ID)
	assert.False(t, m.nameInput.Focused())
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name  string
		setup []tea.Msg
		key   tea.KeyMsg
	}{
		{"q on start", nil, runes("q")},
		{"ctrl+c on start", nil, keyMsg(tea.KeyCtrlC)},
		{"q in game", []tea.Msg{keyMsg(tea.KeyEnter), TickMsg{}}, runes("q")},
		{"esc on end", []tea.Msg{keyMsg(tea.KeyEnter), TickMsg{}, keyMsg(tea.KeyEsc), TickMsg{}}, keyMsg(tea.KeyEsc)},
		{"ctrl+c on end", []tea.Msg{keyMsg(tea.KeyEnter), TickMsg{}, keyMsg(tea.KeyEsc), TickMsg{}}, keyMsg(tea.KeyCtrlC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(t, newTestModel(t), tt.setup...)
			next, cmd := m.Update(tt.key)
			require.NotNil(t, cmd)
			assert.True(t, next.(Model).quitting)
			assert.Empty(t, next.(Model).View())
		})
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keyMsg(tea.KeyEnter), TickMsg{})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height())
	assert.Equal(t, breakout.PhaseGame, m.session.Phase(), "resizing keeps the game")

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 30)
}

func TestModelShowsBestScore(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveScore(context.Background(), breakout.ScoreEntry{Name: "ACE", Score: 500, Level: 3}))

	m := newModelForStore(store)
	assert.Equal(t, 500, m.best)
	assert.Contains(t, m.View(), "Best: 500")

	m = send(t, m, keyMsg(tea.KeyEnter), TickMsg{}, keyMsg(tea.KeyEsc), TickMsg{})
	require.Equal(t, breakout.PhaseEnd, m.session.Phase())
	assert.Contains(t, m.View(), "Best: 500")
}

func TestModelClearBoard(t *testing.T) {
	m, store := newTestModelWithStore(t)
	m = send(t, m, keyMsg(tea.KeyEnter), TickMsg{}, keyMsg(tea.KeyEsc), TickMsg{})
	m = send(t, m, runes("z"), runes("e"), runes("d"), keyMsg(tea.KeyEnter))
	require.Len(t, m.scores, 1)

	m = send(t, m, keyMsg(tea.KeyCtrlR))
	assert.Empty(t, m.scores)
	assert.Zero(t, m.best)
	assert.Equal(t, "Leaderboard cleared", m.status)
	assert.Contains(t, m.View(), "No scores recorded yet.")

	entries, err := store.TopScores(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
