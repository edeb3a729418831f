package experiments

import (
	"errors"
	"fmt"
	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/meta"
	"gametree/searcher/agent"
	"strconv"

	"github.com/samber/lo"
)

var ErrUnknownExperiment = errors.New("unknown experiment")

// MatchUp pairs the agent playing X with the agent playing O in games
// started by First.
type MatchUp struct {
	Name  string
	X     metrics.AgentConfig
	O     metrics.AgentConfig
	First game.Mark
}

type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps []MatchUp
}

// Names lists the built-in experiments accepted by Named.
var Names = []string{"minimax", "alphabeta", "exploration", "strength"}

func Named(name string) (Experiment, error) {
	switch name {
	case "minimax":
		return DepthExperiment(agent.Minimax, meta.DEPTHS), nil
	case "alphabeta":
		return DepthExperiment(agent.AlphaBeta, meta.DEPTHS), nil
	case "exploration":
		return ExplorationExperiment(meta.EXPLORATIONS, meta.SIMULATIONS), nil
	case "strength":
		return StrengthExperiment([]int{1, 10, meta.SIMULATIONS, 500}), nil
	default:
		return Experiment{}, fmt.Errorf("%w: %q", ErrUnknownExperiment, name)
	}
}

// DepthExperiment plays a depth-limited searcher against itself at each
// depth. Minimax breaks ties at random so that self-play games differ.
func DepthExperiment(algorithm string, depths []int) Experiment {
	configs := lo.Map(depths, func(depth int, i int) metrics.AgentConfig {
		return metrics.AgentConfig{
			ID:             i + 1,
			Algorithm:      algorithm,
			Depth:          depth,
			RandomTieBreak: algorithm == agent.Minimax,
		}
	})

	return Experiment{
		Name:     algorithm + "_depth",
		Configs:  configs,
		MatchUps: selfPlay(configs, func(c metrics.AgentConfig) string { return "depth=" + strconv.Itoa(c.Depth) }),
	}
}

// ExplorationExperiment plays MCTS against itself for each exploration constant.
func ExplorationExperiment(explorations []float64, simulations int) Experiment {
	configs := lo.Map(explorations, func(c float64, i int) metrics.AgentConfig {
		return metrics.AgentConfig{
			ID:          i + 1,
			Algorithm:   agent.MCTS,
			Exploration: c,
			Simulations: simulations,
		}
	})

	return Experiment{
		Name:    "mcts_exploration",
		Configs: configs,
		MatchUps: selfPlay(configs, func(c metrics.AgentConfig) string {
			return "c=" + strconv.FormatFloat(c.Exploration, 'f', 3, 64)
		}),
	}
}

// StrengthExperiment plays MCTS as X, moving first, against a random O for
// every simulation budget.
func StrengthExperiment(simulations []int) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Algorithm: agent.Random}
	configs := lo.Map(simulations, func(n int, i int) metrics.AgentConfig {
		return metrics.AgentConfig{ID: i + 1, Algorithm: agent.MCTS, Simulations: n}
	})

	matchUps := lo.Map(configs, func(c metrics.AgentConfig, _ int) MatchUp {
		return MatchUp{
			Name:  "simulations=" + strconv.Itoa(c.Simulations),
			X:     c,
			O:     baseline,
			First: game.X,
		}
	})

	return Experiment{
		Name:     "mcts_strength",
		Configs:  append(configs, baseline),
		MatchUps: matchUps,
	}
}

// selfPlay pairs every config with itself, once for each starting player.
func selfPlay(configs []metrics.AgentConfig, label func(metrics.AgentConfig) string) []MatchUp {
	matchUps := []MatchUp{}
	for _, config := range configs {
		for _, first := range []game.Mark{game.X, game.O} {
			matchUps = append(matchUps, MatchUp{
				Name:  fmt.Sprintf("%s first=%v", label(config), first),
				X:     config,
				O:     config,
				First: first,
			})
		}
	}
	return matchUps
}
