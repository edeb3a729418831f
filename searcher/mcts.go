package searcher

import (
	"fmt"
	"gametree/game"
)

// Stats describes one MCTS decision.
type Stats struct {
	Nodes       int // Selection descents plus expansions
	Simulations int
	RootVisits  int
	TreeSize    int
}

// MCTS is a single-threaded UCB1 Monte Carlo Tree Search. Every call to
// Search builds a fresh tree and discards it on return.
type MCTS struct {
	settings
}

func NewMCTS(options ...Option) (*MCTS, error) {
	m := &MCTS{settings: newSettings(options)}
	if m.simulations <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSimulations, m.simulations)
	}
	if m.exploration < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExploration, m.exploration)
	}
	return m, nil
}

func (m *MCTS) Simulations() int {
	return m.simulations
}

func (m *MCTS) Exploration() float64 {
	return m.exploration
}

// Search runs the configured number of simulations from state and returns the
// move of the most visited root child.
func (m *MCTS) Search(state game.State) (game.Move, Stats, error) {
	if state.IsTerminal() {
		return game.NoMove, Stats{}, game.ErrGameOver
	}

	m.metrics.Start("mcts")
	t := newTree(state)
	nodes := 0
	for i := 0; i < m.simulations; i++ {
		leaf, explored := m.selectThenExpand(t)
		result := m.rollout(t.nodes[leaf].state)
		t.backup(leaf, result)

		nodes += explored
		m.metrics.AddSimulation()
	}

	stats := Stats{
		Nodes:       nodes,
		Simulations: m.simulations,
		RootVisits:  t.root().visits,
		TreeSize:    len(t.nodes),
	}
	m.metrics.AddNodes(stats.Nodes)
	m.metrics.SetRootVisits(stats.RootVisits)

	best := t.mostVisited(0)
	if best == -1 {
		moves := state.LegalMoves()
		return moves[m.rng.Intn(len(moves))], stats, nil
	}
	return t.nodes[best].move, stats, nil
}

// FindMove is Search without the tree statistics.
func (m *MCTS) FindMove(state game.State) (game.Move, int, error) {
	move, stats, err := m.Search(state)
	return move, stats.Nodes, err
}

// selectThenExpand descends by UCB1 through fully expanded nodes, then
// expands one random untried move if the reached node allows it. It returns
// the node to simulate from and the number of nodes explored on the way.
func (m *MCTS) selectThenExpand(t *tree) (int, int) {
	id := 0
	explored := 0
	for n := &t.nodes[id]; n.fullyExpanded() && !n.terminal; n = &t.nodes[id] {
		id = t.selectChild(id, m.exploration)
		explored++
	}

	if n := &t.nodes[id]; len(n.untried) > 0 && !n.terminal {
		id = m.expand(t, id)
		explored++
	}
	return id, explored
}

func (m *MCTS) expand(t *tree, parent int) int {
	n := &t.nodes[parent]
	i := m.rng.Intn(len(n.untried))
	move := n.untried[i]
	n.untried = append(n.untried[:i], n.untried[i+1:]...)

	return t.add(parent, move, play(n.state, move))
}

// rollout plays uniformly random moves on a copy of state until the game ends
// and returns the utility from X's perspective.
func (m *MCTS) rollout(state game.State) float64 {
	moves := state.LegalMoves()
	for len(moves) > 0 {
		state = play(state, moves[m.rng.Intn(len(moves))])
		moves = state.LegalMoves()
	}

	utility, err := state.Utility()
	if err != nil {
		panic(fmt.Sprintf("rollout ended on a non-terminal state %v", state))
	}
	return float64(utility)
}
