package searcher

import (
	"fmt"
	"gametree/game"
)

// Minimax searches the full game tree down to a fixed depth, scoring
// terminal states by their utility and cut-off states by the evaluation
// function. X maximizes, O minimizes.
type Minimax struct {
	settings
	maxDepth int
}

func NewMinimax(maxDepth int, options ...Option) (*Minimax, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, maxDepth)
	}
	return &Minimax{settings: newSettings(options), maxDepth: maxDepth}, nil
}

func (m *Minimax) MaxDepth() int {
	return m.maxDepth
}

// Search returns the minimax value of state, the move achieving it and the
// number of nodes explored, counting every call including this one.
func (m *Minimax) Search(state game.State, depth int, maximizing bool) Result {
	if utility, err := state.Utility(); err == nil {
		return Result{Value: utility, Move: game.NoMove, Nodes: 1}
	}
	if depth >= m.maxDepth {
		return Result{Value: m.evaluate(state), Move: game.NoMove, Nodes: 1}
	}

	var random randIntn
	if m.randomTieBreak {
		random = m.rng
	}

	best := newChoice(maximizing, random)
	nodes := 1
	for _, move := range state.LegalMoves() {
		result := m.Search(play(state, move), depth+1, !maximizing)
		nodes += result.Nodes
		best.offer(result.Value, move)
	}

	return Result{Value: best.value, Move: best.move, Nodes: nodes}
}

// FindMove searches from state for the player on turn. It needs a depth of
// at least 1, since a search cut off at the root returns no move.
func (m *Minimax) FindMove(state game.State) (game.Move, int, error) {
	if state.IsTerminal() {
		return game.NoMove, 0, game.ErrGameOver
	}
	if m.maxDepth < 1 { // A root cut off at depth 0 has no move to offer
		return game.NoMove, 0, fmt.Errorf("%w: a move needs depth of at least 1, got %d", ErrInvalidDepth, m.maxDepth)
	}

	m.metrics.Start("minimax")
	result := m.Search(state, 0, state.Turn() == game.X)
	m.metrics.AddNodes(result.Nodes)
	return result.Move, result.Nodes, nil
}
