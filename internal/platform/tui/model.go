// Package tui provides the Bubble Tea front-end for breakout.
// It owns the tick loop, maps keys to actions and draws each screen.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// holdTime is how long a movement key counts as held after a press.
// Terminals report repeats but no releases, so a press latches the
// direction for a few ticks and key repeat keeps it alive.
const holdTime = 0.12 // seconds

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next simulation tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model for a breakout session.
type Model struct {
	session   *breakout.Session
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	nameInput textinput.Model
	table     table.Model
	scores    []breakout.ScoreEntry
	best      int
	status    string
	config    core.RuntimeConfig
	interval  time.Duration
	input     core.InputFrame
	held      map[core.Action]int
	holdTicks int
	lastPhase breakout.Phase
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *breakout.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "AAA"
	ti.Prompt = "Name: "
	ti.CharLimit = 3
	ti.Width = 4

	h := help.New()
	h.ShowAll = false

	m := Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		keys:      DefaultKeyMap(),
		help:      h,
		nameInput: ti,
		table:     newLeaderboardTable(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		interval:  time.Second / time.Duration(cfg.TickRate),
		input:     core.NewInputFrame(),
		held:      make(map[core.Action]int),
		holdTicks: max(1, int(holdTime*float64(cfg.TickRate))),
		lastPhase: session.Phase(),
		logger:    logger,
	}
	m.loadBest()
	return m
}

// playHeight leaves one row under the playfield for the help bar.
func playHeight(h int) int {
	return max(1, h-1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.session.Phase() == breakout.PhaseEnd {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := m.session.Phase()
	action := m.keys.MapKey(msg, phase)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		m.hold(action)
		return m, nil

	case core.ActionConfirm:
		if phase == breakout.PhaseEnd {
			m.submit()
			return m, nil
		}

	case core.ActionClear:
		m.clearBoard()
		return m, nil
	}

	if action != core.ActionNone {
		m.input.Set(action)
		return m, nil
	}

	// Everything else on the end screen is typing.
	if phase == breakout.PhaseEnd && !m.session.Submitted() {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// hold latches a movement direction and cancels the opposite one.
func (m *Model) hold(a core.Action) {
	opposite := core.ActionLeft
	if a == core.ActionLeft {
		opposite = core.ActionRight
	}
	delete(m.held, opposite)
	m.held[a] = m.holdTicks
}

// handleResize processes window resize events. The engine works in world
// units, so the game continues at any size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	m.table = newLeaderboardTable(msg.Width, msg.Height)
	m.refreshTable()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for a, n := range m.held {
		m.input.Set(a)
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}

	m.session.Step(m.input)
	m.input.Clear()

	var cmd tea.Cmd
	if phase := m.session.Phase(); phase != m.lastPhase {
		cmd = m.enterPhase(phase)
		m.lastPhase = phase
	}

	return m, tea.Batch(cmd, tickCmd(m.interval))
}

// enterPhase resets per-screen widgets when the session changes screen.
func (m *Model) enterPhase(phase breakout.Phase) tea.Cmd {
	clear(m.held)
	m.status = ""

	if phase != breakout.PhaseEnd {
		m.nameInput.Blur()
		return nil
	}

	if st := m.session.State(); st != nil {
		m.logger.Debug("game ended", "game", st.ID, "score", st.Score(), "level", st.Level())
	}
	m.nameInput.Reset()
	m.loadScores()
	return m.nameInput.Focus()
}

// submit saves the typed name to the leaderboard.
func (m *Model) submit() {
	if m.session.Submitted() {
		return
	}

	err := m.session.SubmitScore(context.Background(), m.nameInput.Value())
	switch {
	case errors.Is(err, breakout.ErrEmptyName):
		m.status = "Type a name first"
	case err != nil:
		m.logger.Error("could not save score", "error", err)
		m.status = "Could not save score"
	default:
		name := breakout.NormalizeName(m.nameInput.Value(), m.nameInput.CharLimit)
		m.nameInput.Blur()
		m.loadScores()
		highlightEntry(&m.table, m.scores, name)
		m.status = fmt.Sprintf("Saved as %s", name)
	}
}

// clearBoard empties the leaderboard from the end screen.
func (m *Model) clearBoard() {
	if err := m.session.ClearScores(context.Background()); err != nil {
		m.logger.Error("could not clear scores", "error", err)
		m.status = "Could not clear scores"
		return
	}
	m.loadScores()
	m.status = "Leaderboard cleared"
}

// loadScores reloads the leaderboard and best score from the session.
func (m *Model) loadScores() {
	scores, err := m.session.TopScores(context.Background())
	if err != nil {
		m.logger.Warn("could not load scores", "error", err)
		scores = nil
	}
	m.scores = scores
	m.refreshTable()
	m.loadBest()
}

func (m *Model) loadBest() {
	best, err := m.session.HighScore(context.Background())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	m.best = best
}

func (m *Model) refreshTable() {
	m.table.SetRows(leaderboardRows(m.scores, len(m.table.Columns())))
	m.table.GotoTop()
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session.Phase() {
	case breakout.PhaseStart:
		breakout.RenderStart(m.screen, m.best)
	case breakout.PhaseGame:
		m.session.State().Render(m.screen)
	default:
		return m.endView()
	}

	return RenderScreen(m.screen) + "\n" + m.helpView()
}

func (m Model) helpView() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return helpStyle.Render(m.help.View(m.keys.Help(m.session.Phase(), m.session.Submitted())))
}

// endView renders the game over screen with name entry and leaderboard.
func (m Model) endView() string {
	var b strings.Builder
	width := m.config.ScreenW

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))
	statsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229"))
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true)

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("GAME OVER"), width))
	b.WriteString("\n\n")

	if st := m.session.State(); st != nil {
		stats := fmt.Sprintf("Score: %d   Level: %d   Best: %d", st.Score(), st.Level(), m.best)
		b.WriteString(centerText(statsStyle.Render(stats), width))
		b.WriteString("\n\n")
	}

	if !m.session.Submitted() {
		b.WriteString(centerText(m.nameInput.View(), width))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(centerText(statusStyle.Render(m.status), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render(fmt.Sprintf("TOP %d", m.session.BoardSize()))
	b.WriteString(centerText(title, width))
	b.WriteString("\n")
	board := renderLeaderboard(m.table, m.scores)
	for _, line := range strings.Split(board, "\n") {
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}

// Run starts the Bubble Tea program for the session.
func Run(session *breakout.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
