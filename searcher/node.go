package searcher

import (
	"gametree/game"
	"math"
)

const noParent = -1

// node is one MCTS tree node. Parent and children are indices into the
// owning tree's arena, which keeps upward traversal without reference cycles.
type node struct {
	state    game.State
	parent   int
	move     game.Move // Move leading here from the parent
	children []int
	untried  []game.Move
	terminal bool
	visits   int
	wins     float64 // Accumulated utility from X's perspective
}

func (n *node) fullyExpanded() bool {
	return len(n.untried) == 0 && len(n.children) > 0
}

// tree is the arena holding every node of one search. Index 0 is the root.
type tree struct {
	nodes []node
}

func newTree(state game.State) *tree {
	t := &tree{nodes: make([]node, 0, 64)}
	t.add(noParent, game.NoMove, state)
	return t
}

func (t *tree) root() *node {
	return &t.nodes[0]
}

// add appends a node and links it to its parent. Pointers into the arena
// are invalidated by add.
func (t *tree) add(parent int, move game.Move, state game.State) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		state:    state,
		parent:   parent,
		move:     move,
		untried:  state.LegalMoves(),
		terminal: state.IsTerminal(),
	})
	if parent != noParent {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}
	return id
}

// selectChild returns the child with the highest UCB1 score. Ties keep the
// earlier child.
func (t *tree) selectChild(parent int, c float64) int {
	p := &t.nodes[parent]
	best := -1
	bestScore := math.Inf(-1)
	for _, id := range p.children {
		child := &t.nodes[id]
		score := ucb1(child.wins, child.visits, p.visits, c)
		if best == -1 || score > bestScore {
			best = id
			bestScore = score
		}
	}
	return best
}

// mostVisited returns the child with the most visits, ties broken by child
// order, or -1 when parent has no children.
func (t *tree) mostVisited(parent int) int {
	best := -1
	maxVisits := -1
	for _, id := range t.nodes[parent].children {
		if v := t.nodes[id].visits; v > maxVisits {
			maxVisits = v
			best = id
		}
	}
	return best
}

// backup credits a simulation result to id and every ancestor up to the root.
// The result is not negated between levels.
func (t *tree) backup(id int, result float64) {
	for id != noParent {
		n := &t.nodes[id]
		n.visits++
		n.wins += result
		id = n.parent
	}
}
