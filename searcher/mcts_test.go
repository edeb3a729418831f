package searcher

import (
	"gametree/experiments/metrics"
	"gametree/game"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func newMCTS(t *testing.T, options ...Option) *MCTS {
	t.Helper()
	m, err := NewMCTS(options...)
	require.NoError(t, err)
	return m
}

func TestNewMCTS(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m := newMCTS(t)
		require.Equal(t, DefaultSimulations, m.Simulations())
		require.Equal(t, math.Sqrt2, m.Exploration())
	})

	t.Run("rejects non-positive simulations", func(t *testing.T) {
		for _, n := range []int{0, -5} {
			_, err := NewMCTS(WithSimulations(n))
			require.ErrorIs(t, err, ErrInvalidSimulations)
		}
	})

	t.Run("rejects negative exploration", func(t *testing.T) {
		_, err := NewMCTS(WithExploration(-0.1))
		require.ErrorIs(t, err, ErrInvalidExploration)
	})

	t.Run("zero exploration is allowed", func(t *testing.T) {
		m := newMCTS(t, WithExploration(0))
		require.Zero(t, m.Exploration())
	})
}

func TestMCTSSearch(t *testing.T) {
	t.Run("terminal state", func(t *testing.T) {
		s := game.MustParse("XOX/XOO/OXX", game.O)
		move, stats, err := newMCTS(t).Search(s)

		require.ErrorIs(t, err, game.ErrGameOver)
		require.Equal(t, game.NoMove, move)
		require.Equal(t, Stats{}, stats)
	})

	t.Run("every simulation reaches the root", func(t *testing.T) {
		for _, n := range []int{1, 7, 100, 333} {
			s, _ := game.NewState(game.O)
			_, stats, err := newMCTS(t, WithSimulations(n), WithSeed(3)).Search(s)

			require.NoError(t, err)
			require.Equal(t, n, stats.Simulations)
			require.Equal(t, n, stats.RootVisits, "Root visits should equal the simulation count")
			require.GreaterOrEqual(t, stats.Nodes, n, "Each simulation explores at least one node")
			require.LessOrEqual(t, stats.TreeSize, n+1, "At most one expansion per simulation")
		}
	})

	t.Run("single legal move", func(t *testing.T) {
		s := game.MustParse("XOX/XOO/OX.", game.X)
		move, stats, err := newMCTS(t, WithSimulations(10), WithSeed(1)).Search(s)

		require.NoError(t, err)
		require.Equal(t, game.Move(8), move)
		require.Equal(t, 2, stats.TreeSize)
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		// Cell 2 completes the top row; the alternatives leave O a winning reply
		s := game.MustParse("XX./OOX/O..", game.X)
		move, _, err := newMCTS(t, WithSimulations(500), WithSeed(9)).Search(s)

		require.NoError(t, err)
		require.Equal(t, game.Move(2), move)
	})

	t.Run("returned move is always legal", func(t *testing.T) {
		m := newMCTS(t, WithSimulations(20), WithSeed(5))
		for _, s := range randomStates(t, 13, 10) {
			move, _, err := m.Search(s)
			require.NoError(t, err)
			_, err = s.Play(move)
			require.NoError(t, err, "Move %v should be legal on %v", move, s)
		}
	})

	t.Run("same seed reproduces the same search", func(t *testing.T) {
		s, _ := game.NewState(game.X)
		m1, st1, err1 := newMCTS(t, WithSimulations(200), WithSeed(77)).Search(s)
		m2, st2, err2 := newMCTS(t, WithSimulations(200), WithSeed(77)).Search(s)

		require.NoError(t, err1)
		require.NoError(t, err2)
		require.Equal(t, m1, m2)
		require.Equal(t, st1, st2)
	})
}

func TestMCTSMetrics(t *testing.T) {
	collector := metrics.NewCollector()
	m := newMCTS(t, WithSimulations(50), WithSeed(2), WithMetrics(collector))
	s, _ := game.NewState(game.X)

	_, nodes, err := m.FindMove(s)
	require.NoError(t, err)

	got := collector.Complete()
	require.Equal(t, "mcts", got.Algorithm)
	require.Equal(t, 50, got.Simulations)
	require.Equal(t, 50, got.RootVisits)
	require.Equal(t, nodes, got.Nodes)
}
