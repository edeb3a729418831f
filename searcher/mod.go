package searcher

import (
	"errors"
	"fmt"
	"gametree/game"
	"math"
)

// Hyperparameters for MCTS

const DefaultExploration = math.Sqrt2
const DefaultSimulations = 100

var (
	ErrInvalidDepth       = errors.New("search depth must not be negative")
	ErrInvalidSimulations = errors.New("number of simulations must be positive")
	ErrInvalidExploration = errors.New("exploration constant must not be negative")
)

// Searcher picks a move for the player on turn and reports how many nodes it explored.
type Searcher interface {
	FindMove(state game.State) (move game.Move, nodes int, err error)
}

// Result of a minimax or alpha-beta search. Move is game.NoMove at the leaves.
type Result struct {
	Value int
	Move  game.Move
	Nodes int
}

// play applies a move taken from state.LegalMoves(), which cannot fail.
func play(state game.State, move game.Move) game.State {
	next, err := state.Play(move)
	if err != nil {
		panic(fmt.Sprintf("legal move %v rejected on %v: %v", move, state, err))
	}
	return next
}

// choice tracks the best value seen so far and the move achieving it.
// Without a random source the first move reaching the best value wins.
type choice struct {
	maximizing bool
	random     randIntn
	value      int
	move       game.Move
	ties       int
}

type randIntn interface {
	Intn(n int) int
}

func newChoice(maximizing bool, random randIntn) *choice {
	value := math.MaxInt
	if maximizing {
		value = math.MinInt
	}
	return &choice{maximizing: maximizing, random: random, value: value, move: game.NoMove}
}

func (c *choice) offer(value int, move game.Move) {
	better := value < c.value
	if c.maximizing {
		better = value > c.value
	}

	if c.move == game.NoMove || better {
		c.value, c.move, c.ties = value, move, 1
		return
	}

	// Reservoir sampling keeps every tied move equally likely
	if value == c.value && c.random != nil {
		c.ties++
		if c.random.Intn(c.ties) == 0 {
			c.move = move
		}
	}
}
