package searcher

import (
	"fmt"
	"gametree/game"
	"math"
)

/*
function alphabeta(node, depth, α, β, maximizingPlayer) is

	if depth = 0 or node is a terminal node then
	    return the heuristic value of node
	if maximizingPlayer then
	    value := −∞
	    for each child of node do
	        value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
	        α := max(α, value)
	        if α ≥ β then
	            break (* β cut-off *)
	    return value
	else
	    value := +∞
	    for each child of node do
	        value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
	        β := min(β, value)
	        if β ≤ α then
	            break (* α cut-off *)
	    return value
*/

// AlphaBeta is Minimax with alpha-beta pruning. It returns the same value
// (and, with first-seen tie-breaking, the same root move) while exploring
// at most as many nodes.
//
// Random tie-breaking is not offered: a pruned sibling only reports a bound,
// so an apparent tie may hide a worse move.
type AlphaBeta struct {
	settings
	maxDepth int
}

func NewAlphaBeta(maxDepth int, options ...Option) (*AlphaBeta, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, maxDepth)
	}
	return &AlphaBeta{settings: newSettings(options), maxDepth: maxDepth}, nil
}

func (a *AlphaBeta) MaxDepth() int {
	return a.maxDepth
}

// Search counts nodes the same way Minimax.Search does; cut-off siblings are
// never visited and therefore never counted.
func (a *AlphaBeta) Search(state game.State, depth int, maximizing bool, alpha, beta int) Result {
	if utility, err := state.Utility(); err == nil {
		return Result{Value: utility, Move: game.NoMove, Nodes: 1}
	}
	if depth >= a.maxDepth {
		return Result{Value: a.evaluate(state), Move: game.NoMove, Nodes: 1}
	}

	best := newChoice(maximizing, nil)
	nodes := 1
	for _, move := range state.LegalMoves() {
		result := a.Search(play(state, move), depth+1, !maximizing, alpha, beta)
		nodes += result.Nodes
		best.offer(result.Value, move)

		if maximizing {
			alpha = max(alpha, result.Value)
			if alpha >= beta {
				break // β cut-off
			}
		} else {
			beta = min(beta, result.Value)
			if beta <= alpha {
				break // α cut-off
			}
		}
	}

	return Result{Value: best.value, Move: best.move, Nodes: nodes}
}

// FindMove opens the window to (-∞, +∞) and searches for the player on turn,
// returning the chosen move and the nodes visited for this decision.
func (a *AlphaBeta) FindMove(state game.State) (game.Move, int, error) {
	if state.IsTerminal() {
		return game.NoMove, 0, game.ErrGameOver
	}
	if a.maxDepth < 1 { // A root cut off at depth 0 has no move to offer
		return game.NoMove, 0, fmt.Errorf("%w: a move needs depth of at least 1, got %d", ErrInvalidDepth, a.maxDepth)
	}

	a.metrics.Start("alphabeta")
	result := a.Search(state, 0, state.Turn() == game.X, math.MinInt, math.MaxInt)
	a.metrics.AddNodes(result.Nodes)
	return result.Move, result.Nodes, nil
}
