// Package session runs a headless match3 game: it owns the board and its
// supplier, keeps per-game counters, and can play itself by picking legal
// swaps.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/match3"
	"github.com/vovakirdan/match3/internal/supply"
)

// State represents the session lifecycle.
type State string

const (
	StatePlaying    State = "playing"
	StateDeadlocked State = "deadlocked" // No legal swap left
	StateFailed     State = "failed"     // A cascade did not terminate
)

// ErrSessionFailed is returned by Move once a cascade has failed to terminate.
var ErrSessionFailed = errors.New("session: cascade failed earlier, board is frozen")

// Session is one game over a string-valued board.
type Session struct {
	id       string
	cfg      config.Config
	board    *match3.Board[string]
	supplier *supply.Counting
	rng      *rand.Rand
	logger   *log.Logger

	moves        int
	rejected     int
	matches      int
	refills      int
	tilesCleared int
	maxCascade   int
	state        State
	err          error // Cascade error that failed the session
}

// New creates a session with a board filled from tiles.
// The logger may be nil.
func New(cfg config.Config, tiles supply.Tiles, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := newSession(cfg, tiles, logger)
	board, err := match3.New[string](s.supplier, cfg.Board.Width, cfg.Board.Height, s.boardOptions()...)
	if err != nil {
		return nil, fmt.Errorf("session: cannot create board: %w", err)
	}
	return s.start(board)
}

// FromLayout creates a session over a fixed board. Layout refill values are
// handed out before tiles takes over. The board size comes from the layout.
func FromLayout(cfg config.Config, layout config.Layout, tiles supply.Tiles, logger *log.Logger) (*Session, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	cfg.Board.Width = layout.Width()
	cfg.Board.Height = layout.Height()
	cfg.Board.Preset = ""
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(layout.Refill) > 0 {
		tiles = supply.NewScript(layout.Refill, tiles)
	}

	s := newSession(cfg, tiles, logger)
	board, err := match3.FromValues[string](s.supplier, layout.Rows, s.boardOptions()...)
	if err != nil {
		return nil, fmt.Errorf("session: cannot create board: %w", err)
	}
	return s.start(board)
}

func newSession(cfg config.Config, tiles supply.Tiles, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		supplier: &supply.Counting{Tiles: tiles},
		rng:      rand.New(rand.NewSource(cfg.Tiles.Seed)),
		logger:   logger,
		state:    StatePlaying,
	}
}

func (s *Session) boardOptions() []match3.Option {
	if s.cfg.Cascade.MaxPasses > 0 {
		return []match3.Option{match3.WithMaxPasses(s.cfg.Cascade.MaxPasses)}
	}
	return nil
}

// start settles the initial board if configured, then starts counting.
func (s *Session) start(board *match3.Board[string]) (*Session, error) {
	s.board = board

	if s.cfg.Cascade.SettleInitial {
		res, err := board.Settle()
		if err != nil {
			return nil, fmt.Errorf("session: cannot settle initial board: %w", err)
		}
		s.logger.Debug("settled initial board", "effects", len(res.Effects))
	}

	board.AddListener(match3.ListenerFunc[string](s.onEffect))

	if board.Deadlocked() {
		s.state = StateDeadlocked
		s.logger.Warn("initial board has no legal moves")
	}
	return s, nil
}

// onEffect counts and logs each effect as the engine reports it.
func (s *Session) onEffect(e match3.Effect[string]) {
	switch e.Kind {
	case match3.EffectMatch:
		s.matches++
		s.logger.Debug("match",
			"value", e.Match.Value,
			"len", e.Match.Len(),
			"from", e.Match.Positions[0],
			"to", e.Match.Positions[e.Match.Len()-1],
		)
	case match3.EffectRefill:
		s.refills++
		s.logger.Debug("refill", "pass", s.refills)
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Board returns the underlying board.
func (s *Session) Board() *match3.Board[string] {
	return s.board
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Move attempts a swap and updates the counters.
// Rejected swaps are counted but are not errors. After a cascade fails the
// board is frozen: Move returns ErrSessionFailed without touching it.
func (s *Session) Move(a, b match3.Position) (match3.MoveResult[string], error) {
	if s.state == StateFailed {
		return match3.MoveResult[string]{Board: s.board}, fmt.Errorf("%w: %w", ErrSessionFailed, s.err)
	}

	suppliedBefore := s.supplier.Calls
	refillsBefore := s.refills

	res, err := s.board.Move(a, b)
	if err == nil && !res.Accepted() {
		s.rejected++
		s.logger.Info("move rejected", "from", a, "to", b)
		return res, nil
	}

	// Every cleared cell is refilled exactly once, also for the passes
	// completed before a runaway cascade was stopped.
	cleared := s.supplier.Calls - suppliedBefore
	depth := s.refills - refillsBefore
	s.moves++
	s.tilesCleared += cleared
	s.maxCascade = max(s.maxCascade, depth)

	if err != nil {
		s.state = StateFailed
		s.err = err
		s.logger.Error("cascade aborted", "from", a, "to", b, "passes", depth, "error", err)
		return res, err
	}

	s.logger.Info("move", "n", s.moves, "from", a, "to", b, "cleared", cleared, "cascade", depth)

	if s.board.Deadlocked() {
		s.state = StateDeadlocked
		s.logger.Warn("no legal moves left", "moves", s.moves)
	}
	return res, nil
}

// AutoStep plays one legal swap chosen by the configured policy.
// Returns false when the session can no longer move.
func (s *Session) AutoStep() (match3.Swap, bool, error) {
	if s.state != StatePlaying {
		return match3.Swap{}, false, nil
	}

	moves := s.board.ValidMoves()
	if len(moves) == 0 {
		s.state = StateDeadlocked
		return match3.Swap{}, false, nil
	}

	pick := moves[0]
	if s.cfg.Autoplay.Policy == config.PolicyRandom {
		pick = moves[s.rng.Intn(len(moves))]
	}

	if _, err := s.Move(pick.A, pick.B); err != nil {
		return pick, false, err
	}
	return pick, true, nil
}

// Play runs up to n auto steps and returns how many were played.
func (s *Session) Play(n int) (int, error) {
	played := 0
	for played < n {
		_, ok, err := s.AutoStep()
		if err != nil {
			return played, err
		}
		if !ok {
			break
		}
		played++
	}
	return played, nil
}
