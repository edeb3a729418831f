package searcher

import (
	"gametree/game"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func newAlphaBeta(t *testing.T, depth int, options ...Option) *AlphaBeta {
	t.Helper()
	a, err := NewAlphaBeta(depth, options...)
	require.NoError(t, err)
	return a
}

func TestNewAlphaBeta(t *testing.T) {
	_, err := NewAlphaBeta(-3)
	require.ErrorIs(t, err, ErrInvalidDepth)
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	t.Run("empty board at every depth", func(t *testing.T) {
		for _, first := range []game.Mark{game.X, game.O} {
			s, _ := game.NewState(first)
			for depth := 0; depth <= 9; depth++ {
				maximizing := first == game.X
				want := newMinimax(t, depth).Search(s, 0, maximizing)
				got := newAlphaBeta(t, depth).Search(s, 0, maximizing, math.MinInt, math.MaxInt)

				require.Equal(t, want.Value, got.Value, "Depth %d from %v should agree on the value", depth, first)
				require.Equal(t, want.Move, got.Move, "Depth %d from %v should agree on the first-seen move", depth, first)
				require.LessOrEqual(t, got.Nodes, want.Nodes, "Pruning should never explore more nodes")
			}
		}
	})

	t.Run("random positions at every depth", func(t *testing.T) {
		for _, s := range randomStates(t, 11, 15) {
			maximizing := s.Turn() == game.X
			for depth := 0; depth <= 9; depth++ {
				want := newMinimax(t, depth).Search(s, 0, maximizing)
				got := newAlphaBeta(t, depth).Search(s, 0, maximizing, math.MinInt, math.MaxInt)

				require.Equal(t, want.Value, got.Value, "Depth %d on %v should agree on the value", depth, s)
				require.Equal(t, want.Move, got.Move, "Depth %d on %v should agree on the first-seen move", depth, s)
				require.LessOrEqual(t, got.Nodes, want.Nodes)
			}
		}
	})
}

func TestAlphaBetaPruning(t *testing.T) {
	t.Run("full-depth search from the empty board prunes", func(t *testing.T) {
		s, _ := game.NewState(game.X)
		move, nodes, err := newAlphaBeta(t, 9).FindMove(s)

		require.NoError(t, err)
		require.Equal(t, game.Move(0), move)
		require.Less(t, nodes, 549946, "Cut-offs should remove whole subtrees")
	})

	t.Run("no cut-off without siblings to prune", func(t *testing.T) {
		// A single legal move leaves nothing to cut
		s := game.MustParse("XOX/XOO/OX.", game.X)
		m := newMinimax(t, 9).Search(s, 0, true)
		a := newAlphaBeta(t, 9).Search(s, 0, true, math.MinInt, math.MaxInt)
		require.Equal(t, m, a)
	})

	t.Run("beta cut-off skips the remaining siblings", func(t *testing.T) {
		// O to move; the first reply (cell 2) only draws, which already fails to beat alpha = 0
		s := game.MustParse("XX./OO./X..", game.O)
		got := newAlphaBeta(t, 9).Search(s, 1, false, 0, math.MaxInt)
		require.LessOrEqual(t, got.Value, 0)

		want := newMinimax(t, 9).Search(s, 1, false)
		require.Less(t, got.Nodes, want.Nodes)
	})

	t.Run("depth zero evaluates the root", func(t *testing.T) {
		s := game.MustParse("XX./O../...", game.O)
		got := newAlphaBeta(t, 0).Search(s, 0, false, math.MinInt, math.MaxInt)

		require.Equal(t, Result{Value: 10, Move: game.NoMove, Nodes: 1}, got)
	})
}

func TestAlphaBetaFindMove(t *testing.T) {
	t.Run("terminal state", func(t *testing.T) {
		s := game.MustParse("XXX/OO./...", game.O)
		_, _, err := newAlphaBeta(t, 4).FindMove(s)
		require.ErrorIs(t, err, game.ErrGameOver)
	})

	t.Run("depth zero cannot choose a move", func(t *testing.T) {
		s := game.MustParse("XX./O../...", game.O)
		move, nodes, err := newAlphaBeta(t, 0).FindMove(s)

		require.ErrorIs(t, err, ErrInvalidDepth)
		require.Equal(t, game.NoMove, move)
		require.Zero(t, nodes)
	})

	t.Run("depth one always returns a legal move", func(t *testing.T) {
		for _, s := range randomStates(t, 17, 10) {
			move, _, err := newAlphaBeta(t, 1).FindMove(s)
			require.NoError(t, err)
			_, err = s.Play(move)
			require.NoError(t, err, "Move %v should be legal on %v", move, s)
		}
	})

	t.Run("perfect play against itself draws", func(t *testing.T) {
		for _, first := range []game.Mark{game.X, game.O} {
			a := newAlphaBeta(t, 9)
			s, _ := game.NewState(first)
			for !s.IsTerminal() {
				move, _, err := a.FindMove(s)
				require.NoError(t, err)
				s, err = s.Play(move)
				require.NoError(t, err)
			}
			require.True(t, s.IsDraw(), "Game started by %v ended as %v", first, s)
		}
	})
}
