package session

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/match3"
	"github.com/vovakirdan/match3/internal/supply"
)

func scenarioLayout() config.Layout {
	return config.Layout{
		Name: "column-three",
		Rows: [][]string{
			{"A", "B", "A", "C"},
			{"D", "C", "A", "C"},
			{"D", "A", "D", "D"},
			{"C", "C", "D", "C"},
		},
		Refill: []string{"X", "Y", "Z"},
	}
}

func layoutConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Cascade.SettleInitial = false
	return cfg
}

func TestSessionIsDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tiles.Seed = 42
	cfg.Autoplay.Policy = config.PolicyRandom

	run := func() Snapshot {
		s, err := New(cfg, supply.NewRandom(cfg.Tiles.Symbols, cfg.Tiles.Seed), nil)
		require.NoError(t, err)
		_, err = s.Play(30)
		require.NoError(t, err)
		return s.Snapshot()
	}

	first, second := run(), run()
	assert.Equal(t, first, second, "same seed must replay identically")
	assert.Positive(t, first.Moves)
}

func TestSessionSettlesInitialBoard(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tiles.Seed = 9

	s, err := New(cfg, supply.NewRandom(cfg.Tiles.Symbols, cfg.Tiles.Seed), nil)
	require.NoError(t, err)

	assert.Empty(t, s.Board().Matches())
	snap := s.Snapshot()
	assert.Zero(t, snap.Matches, "settling happens before counting starts")
	assert.GreaterOrEqual(t, snap.Supplied, cfg.Board.Width*cfg.Board.Height)
}

func TestSessionCountsMove(t *testing.T) {
	s, err := FromLayout(layoutConfig(), scenarioLayout(), supply.NewCycle([]string{"Q"}), nil)
	require.NoError(t, err)

	res, err := s.Move(match3.P(2, 3), match3.P(3, 3))
	require.NoError(t, err)
	require.True(t, res.Accepted())

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Moves)
	assert.Equal(t, 1, snap.Matches)
	assert.Equal(t, 1, snap.Refills)
	assert.Equal(t, 3, snap.TilesCleared)
	assert.Equal(t, 1, snap.MaxCascade)
	assert.Equal(t, 3, snap.Supplied)
	assert.Equal(t, []string{"X", "Y", "Z", "D"}, []string{
		snap.Grid[0][3], snap.Grid[1][3], snap.Grid[2][3], snap.Grid[3][3],
	})
	assert.Equal(t, StatePlaying, snap.State)

	res, err = s.Move(match3.P(0, 0), match3.P(0, 1))
	require.NoError(t, err)
	assert.False(t, res.Accepted())
	assert.Equal(t, 1, s.Snapshot().Rejected)
	assert.Equal(t, 1, s.Snapshot().Moves)
}

func TestSessionDeadlock(t *testing.T) {
	layout := config.Layout{Rows: [][]string{{"A", "B"}, {"B", "A"}}}

	s, err := FromLayout(layoutConfig(), layout, supply.NewCycle([]string{"Q"}), nil)
	require.NoError(t, err)
	assert.Equal(t, StateDeadlocked, s.State())

	_, ok, err := s.AutoStep()
	require.NoError(t, err)
	assert.False(t, ok)

	played, err := s.Play(10)
	require.NoError(t, err)
	assert.Zero(t, played)
}

func TestSessionRunawayCascade(t *testing.T) {
	cfg := layoutConfig()
	cfg.Cascade.MaxPasses = 3
	layout := config.Layout{Rows: [][]string{
		{"A", "A", "A"},
		{"A", "A", "A"},
		{"A", "A", "A"},
	}}

	s, err := FromLayout(cfg, layout, supply.NewCycle([]string{"A"}), nil)
	require.NoError(t, err)

	_, err = s.Move(match3.P(0, 0), match3.P(1, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, match3.ErrCascadeDidNotTerminate))
	assert.Equal(t, StateFailed, s.State())

	// The passes that ran before the stop are fully accounted for.
	failed := s.Snapshot()
	assert.Equal(t, 1, failed.Moves)
	assert.Equal(t, 18, failed.Matches)
	assert.Equal(t, 3, failed.Refills)
	assert.Equal(t, 27, failed.TilesCleared)
	assert.Equal(t, 27, failed.Supplied)
	assert.Equal(t, 3, failed.MaxCascade)

	res, err := s.Move(match3.P(0, 0), match3.P(1, 0))
	require.ErrorIs(t, err, ErrSessionFailed)
	assert.ErrorIs(t, err, match3.ErrCascadeDidNotTerminate)
	assert.Empty(t, res.Effects)
	assert.Equal(t, failed, s.Snapshot(), "a failed session must not touch the board again")

	_, ok, err := s.AutoStep()
	require.NoError(t, err)
	assert.False(t, ok, "a failed session does not keep playing")
}

func TestSessionLogsEffects(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	s, err := FromLayout(layoutConfig(), scenarioLayout(), supply.NewCycle([]string{"Q"}), logger)
	require.NoError(t, err)

	_, err = s.Move(match3.P(2, 3), match3.P(3, 3))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "match")
	assert.Contains(t, out, "refill")
	assert.Contains(t, out, "cleared=3")
}

func TestSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tiles.Symbols = []string{"A"}

	_, err := New(cfg, supply.NewCycle([]string{"A"}), nil)
	var verr config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "TOO_FEW_SYMBOLS", verr.Code)
}

type fakeSaver struct {
	saved []Summary
	err   error
}

func (f *fakeSaver) SaveSummary(sum Summary) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, sum)
	return nil
}

func TestSessionFinish(t *testing.T) {
	s, err := FromLayout(layoutConfig(), scenarioLayout(), supply.NewCycle([]string{"Q"}), nil)
	require.NoError(t, err)
	_, err = s.Move(match3.P(2, 3), match3.P(3, 3))
	require.NoError(t, err)

	saver := &fakeSaver{}
	sum, err := s.Finish(saver, 2*time.Second)
	require.NoError(t, err)
	require.Len(t, saver.saved, 1)

	assert.Equal(t, s.ID(), sum.ID)
	assert.Equal(t, saver.saved[0], sum)
	assert.Equal(t, 1, sum.Moves)
	assert.Equal(t, 3, sum.TilesCleared)
	assert.Equal(t, 4, sum.Width)
	assert.False(t, sum.Deadlocked)

	_, err = s.Finish(nil, time.Second)
	assert.NoError(t, err)

	_, err = s.Finish(&fakeSaver{err: errors.New("disk full")}, time.Second)
	assert.ErrorContains(t, err, "disk full")
}
