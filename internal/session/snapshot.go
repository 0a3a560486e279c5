package session

import (
	"fmt"
	"time"
)

// Snapshot captures the session counters and grid for determinism testing and reporting.
type Snapshot struct {
	Moves        int // Accepted swaps
	Rejected     int // Illegal swaps attempted through Move
	Matches      int // Match effects across all moves
	Refills      int // Cascade passes across all moves
	TilesCleared int
	MaxCascade   int // Most passes triggered by a single move
	Supplied     int // Values drawn from the supplier, including the initial fill
	Width        int
	Height       int
	Grid         [][]string
	State        State
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Moves:        s.moves,
		Rejected:     s.rejected,
		Matches:      s.matches,
		Refills:      s.refills,
		TilesCleared: s.tilesCleared,
		MaxCascade:   s.maxCascade,
		Supplied:     s.supplier.Calls,
		Width:        s.board.Width(),
		Height:       s.board.Height(),
		Grid:         s.board.Values(),
		State:        s.state,
	}
}

// Summary is the record kept for a finished session.
type Summary struct {
	ID           string
	Preset       string // Empty for custom sizes and layouts
	Supplier     string
	Seed         int64
	Width        int
	Height       int
	Moves        int
	Matches      int
	Refills      int
	TilesCleared int
	MaxCascade   int
	Deadlocked   bool
	Duration     time.Duration
}

// SummarySaver persists finished sessions.
// Implemented by storage.Store; kept as an interface so session has no storage dependency.
type SummarySaver interface {
	SaveSummary(sum Summary) error
}

// Summary builds the record for this session.
func (s *Session) Summary(elapsed time.Duration) Summary {
	return Summary{
		ID:           s.id,
		Preset:       string(s.cfg.Board.Preset),
		Supplier:     s.cfg.Tiles.Supplier,
		Seed:         s.cfg.Tiles.Seed,
		Width:        s.board.Width(),
		Height:       s.board.Height(),
		Moves:        s.moves,
		Matches:      s.matches,
		Refills:      s.refills,
		TilesCleared: s.tilesCleared,
		MaxCascade:   s.maxCascade,
		Deadlocked:   s.state == StateDeadlocked,
		Duration:     elapsed,
	}
}

// Finish saves the session summary. A nil saver is allowed and does nothing.
func (s *Session) Finish(saver SummarySaver, elapsed time.Duration) (Summary, error) {
	sum := s.Summary(elapsed)
	if saver == nil {
		return sum, nil
	}
	if err := saver.SaveSummary(sum); err != nil {
		return sum, fmt.Errorf("session: cannot save summary: %w", err)
	}
	s.logger.Info("session saved", "id", sum.ID, "moves", sum.Moves)
	return sum, nil
}
