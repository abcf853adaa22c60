package breakout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Phase is the screen the session is on.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseGame
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhaseGame:
		return "GAME"
	case PhaseEnd:
		return "END"
	default:
		return "?"
	}
}

var (
	// ErrEmptyName is returned when a score is submitted without a name.
	ErrEmptyName = errors.New("breakout: empty player name")
	// ErrAlreadySubmitted is returned on a second submission for the same game.
	ErrAlreadySubmitted = errors.New("breakout: score already submitted")
	// ErrNoGame is returned when there is no finished game to submit.
	ErrNoGame = errors.New("breakout: no finished game")
)

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	Name      string
	Score     int
	Level     int
	GameID    string
	CreatedAt time.Time
}

// Leaderboard stores the best scores.
type Leaderboard interface {
	SaveScore(ctx context.Context, entry ScoreEntry) error
	TopScores(ctx context.Context) ([]ScoreEntry, error)
	HighScore(ctx context.Context) (int, error)
	ClearScores(ctx context.Context) error
	Limit() int
}

// Session drives the START -> GAME -> END screen flow around a State.
type Session struct {
	cfg    config.BreakoutConfig
	board  Leaderboard
	sound  SoundPlayer
	logger *log.Logger
	seed   int64
	games  int64

	phase     Phase
	state     *State
	submitted bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionSeed sets the base seed; each game uses seed+n.
func WithSessionSeed(seed int64) SessionOption {
	return func(s *Session) { s.seed = seed }
}

// WithSessionSound sets the audio collaborator for every game.
func WithSessionSound(p SoundPlayer) SessionOption {
	return func(s *Session) {
		if p != nil {
			s.sound = p
		}
	}
}

// WithSessionLogger sets the logger for the session and its games.
func WithSessionLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session on the start screen.
func NewSession(cfg config.BreakoutConfig, board Leaderboard, opts ...SessionOption) *Session {
	s := &Session{
		cfg:    cfg,
		board:  board,
		sound:  NopSound{},
		logger: log.New(io.Discard),
		seed:   time.Now().UnixNano(),
		phase:  PhaseStart,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) State() *State { return s.state }
func (s *Session) Submitted() bool { return s.submitted }

// StartNewGame replaces the current game with a fresh one.
func (s *Session) StartNewGame() {
	s.games++
	s.state = NewState(s.cfg,
		WithSeed(s.seed+s.games),
		WithSound(s.sound),
		WithLogger(s.logger),
	)
	s.phase = PhaseGame
	s.submitted = false
	s.sound.Play(SoundMusic)
}

// EndGame stops the current game and shows the end screen.
func (s *Session) EndGame() {
	if s.state != nil {
		s.state.End()
	}
	s.phase = PhaseEnd
}

// Step applies one tick of input to the current screen.
func (s *Session) Step(in core.InputFrame) {
	switch s.phase {
	case PhaseStart:
		if in.Has(core.ActionConfirm) {
			s.StartNewGame()
		}
	case PhaseGame:
		if in.Has(core.ActionBack) {
			s.EndGame()
			return
		}
		res := s.state.Step(in)
		if res.State.GameOver {
			s.phase = PhaseEnd
		}
	case PhaseEnd:
		if in.Has(core.ActionRestart) {
			s.StartNewGame()
		}
	}
}

// NormalizeName trims, upper-cases and truncates a player name to n runes.
func NormalizeName(name string, n int) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if n > 0 && utf8.RuneCountInString(name) > n {
		name = string([]rune(name)[:n])
	}
	return name
}

// SubmitScore records the finished game's score under name.
func (s *Session) SubmitScore(ctx context.Context, name string) error {
	if s.state == nil || !s.state.GameOver() {
		return ErrNoGame
	}
	if s.submitted {
		return ErrAlreadySubmitted
	}
	name = NormalizeName(name, s.cfg.Gameplay.NameLength)
	if name == "" {
		return ErrEmptyName
	}

	entry := ScoreEntry{
		Name:      name,
		Score:     s.state.Score(),
		Level:     s.state.Level(),
		GameID:    s.state.ID,
		CreatedAt: time.Now(),
	}
	if err := s.board.SaveScore(ctx, entry); err != nil {
		return fmt.Errorf("breakout: save score: %w", err)
	}
	s.submitted = true
	s.logger.Info("score saved", "game", entry.GameID, "name", entry.Name, "score", entry.Score)
	return nil
}

// TopScores returns the leaderboard.
func (s *Session) TopScores(ctx context.Context) ([]ScoreEntry, error) {
	entries, err := s.board.TopScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("breakout: top scores: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score on the board, 0 when it is empty.
func (s *Session) HighScore(ctx context.Context) (int, error) {
	best, err := s.board.HighScore(ctx)
	if err != nil {
		return 0, fmt.Errorf("breakout: high score: %w", err)
	}
	return best, nil
}

// ClearScores empties the leaderboard.
func (s *Session) ClearScores(ctx context.Context) error {
	if err := s.board.ClearScores(ctx); err != nil {
		return fmt.Errorf("breakout: clear scores: %w", err)
	}
	s.logger.Info("leaderboard cleared")
	return nil
}

// BoardSize is the number of entries the leaderboard keeps.
func (s *Session) BoardSize() int { return s.board.Limit() }
