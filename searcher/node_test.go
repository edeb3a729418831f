package searcher

import (
	"gametree/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	s, _ := game.NewState(game.X)

	t.Run("new tree holds only the root", func(t *testing.T) {
		tr := newTree(s)

		require.Len(t, tr.nodes, 1)
		require.Equal(t, noParent, tr.root().parent)
		require.Equal(t, game.NoMove, tr.root().move)
		require.Len(t, tr.root().untried, 9)
		require.False(t, tr.root().fullyExpanded(), "A node without children is never fully expanded")
	})

	t.Run("add links the child to its parent", func(t *testing.T) {
		tr := newTree(s)
		next := play(s, 4)
		id := tr.add(0, 4, next)

		require.Equal(t, 1, id)
		require.Equal(t, []int{1}, tr.root().children)
		require.Equal(t, 0, tr.nodes[id].parent)
		require.Equal(t, game.Move(4), tr.nodes[id].move)
		require.Equal(t, game.O, tr.nodes[id].state.Turn())
		require.Len(t, tr.nodes[id].untried, 8)
	})

	t.Run("terminal nodes have nothing to try", func(t *testing.T) {
		tr := newTree(game.MustParse("XXX/OO./...", game.O))
		require.True(t, tr.root().terminal)
		require.Empty(t, tr.root().untried)
	})

	t.Run("backup updates every ancestor with the same result", func(t *testing.T) {
		tr := newTree(s)
		a := tr.add(0, 0, play(s, 0))
		b := tr.add(a, 1, play(tr.nodes[a].state, 1))

		tr.backup(b, 1)
		tr.backup(b, -1)
		tr.backup(a, 1)

		require.Equal(t, 3, tr.root().visits)
		require.Equal(t, 1.0, tr.root().wins)
		require.Equal(t, 3, tr.nodes[a].visits)
		require.Equal(t, 1.0, tr.nodes[a].wins, "Results are not negated between levels")
		require.Equal(t, 2, tr.nodes[b].visits)
		require.Equal(t, 0.0, tr.nodes[b].wins)
	})
}

func TestSelectChild(t *testing.T) {
	s, _ := game.NewState(game.X)
	tr := newTree(s)
	first := tr.add(0, 0, play(s, 0))
	second := tr.add(0, 1, play(s, 1))
	third := tr.add(0, 2, play(s, 2))

	t.Run("unvisited children are tried in order", func(t *testing.T) {
		require.Equal(t, first, tr.selectChild(0, 1))
		tr.backup(first, 1)
		require.Equal(t, second, tr.selectChild(0, 1))
		tr.backup(second, -1)
		require.Equal(t, third, tr.selectChild(0, 1))
		tr.backup(third, 0)
	})

	t.Run("highest score wins once all are visited", func(t *testing.T) {
		require.Equal(t, first, tr.selectChild(0, 1))
		require.Equal(t, first, tr.selectChild(0, 0))
	})

	t.Run("ties keep the earlier child", func(t *testing.T) {
		tied := newTree(s)
		a := tied.add(0, 3, play(s, 3))
		b := tied.add(0, 5, play(s, 5))
		tied.backup(b, 1)
		tied.backup(a, 1)
		require.Equal(t, a, tied.selectChild(0, 2))
	})
}

func TestMostVisited(t *testing.T) {
	s, _ := game.NewState(game.X)

	t.Run("no children", func(t *testing.T) {
		require.Equal(t, -1, newTree(s).mostVisited(0))
	})

	t.Run("most visits regardless of value", func(t *testing.T) {
		tr := newTree(s)
		a := tr.add(0, 0, play(s, 0))
		b := tr.add(0, 8, play(s, 8))
		tr.backup(a, 1)
		tr.backup(b, -1)
		tr.backup(b, -1)
		require.Equal(t, b, tr.mostVisited(0))
	})

	t.Run("ties keep the earlier child", func(t *testing.T) {
		tr := newTree(s)
		a := tr.add(0, 6, play(s, 6))
		b := tr.add(0, 2, play(s, 2))
		tr.backup(b, 1)
		tr.backup(a, -1)
		require.Equal(t, a, tr.mostVisited(0))
	})
}
