package agent

import (
	"errors"
	"fmt"
	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/meta"
	"gametree/searcher"
	"time"

	"golang.org/x/exp/rand"
)

// Algorithm names accepted by New and recorded in metrics.
const (
	Minimax   = "minimax"
	AlphaBeta = "alphabeta"
	MCTS      = "mcts"
	Random    = "random"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

type Agent interface {
	// FindMove returns the move to play and the metrics collected while searching for it
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}

// New builds the agent described by config. An unset depth searches the
// whole tree. The seed drives every random choice of the agent, so equal
// seeds replay equal games.
func New(config metrics.AgentConfig, seed uint64) (Agent, error) {
	options := []searcher.Option{searcher.WithSeed(seed)}
	depth := config.Depth
	if depth == 0 {
		depth = meta.FULL_DEPTH
	}

	switch config.Algorithm {
	case Minimax:
		if config.RandomTieBreak {
			options = append(options, searcher.WithRandomTieBreak())
		}
		return NewMinimaxAgent(depth, options...)
	case AlphaBeta:
		return NewAlphaBetaAgent(depth, options...)
	case MCTS:
		if config.Simulations > 0 {
			options = append(options, searcher.WithSimulations(config.Simulations))
		}
		if config.Exploration > 0 {
			options = append(options, searcher.WithExploration(config.Exploration))
		}
		return NewMCTSAgent(options...)
	case Random:
		return NewRandomAgent(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, config.Algorithm)
	}
}

type searchAgent struct {
	searcher  searcher.Searcher
	collector metrics.Collector
}

func NewMinimaxAgent(depth int, options ...searcher.Option) (Agent, error) {
	collector := metrics.NewCollector()
	m, err := searcher.NewMinimax(depth, append(options, searcher.WithMetrics(collector))...)
	if err != nil {
		return nil, err
	}
	return searchAgent{searcher: m, collector: collector}, nil
}

func NewAlphaBetaAgent(depth int, options ...searcher.Option) (Agent, error) {
	collector := metrics.NewCollector()
	a, err := searcher.NewAlphaBeta(depth, append(options, searcher.WithMetrics(collector))...)
	if err != nil {
		return nil, err
	}
	return searchAgent{searcher: a, collector: collector}, nil
}

func NewMCTSAgent(options ...searcher.Option) (Agent, error) {
	collector := metrics.NewCollector()
	m, err := searcher.NewMCTS(append(options, searcher.WithMetrics(collector))...)
	if err != nil {
		return nil, err
	}
	return searchAgent{searcher: m, collector: collector}, nil
}

func (a searchAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	move, _, err := a.searcher.FindMove(state)
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}
	return move, a.collector.Complete(), nil
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays a uniformly random legal move.
func NewRandomAgent(seed uint64) Agent {
	return randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a randomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, game.ErrGameOver
	}

	move := moves[a.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{Algorithm: Random, Duration: time.Since(start)}, nil
}
