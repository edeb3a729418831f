package engine

import (
	"context"
	"errors"
	"fmt"
	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrMissingAgent = errors.New("no agent for player")

type Local struct {
	State  game.State
	Agents map[game.Mark]agent.Agent
}

// LocalEngine sets up a game on an empty board, started by first, in which
// every player is driven by its agent in the same process.
func LocalEngine(agents map[game.Mark]agent.Agent, first game.Mark) (*Local, error) {
	state, err := game.NewState(first)
	if err != nil {
		return nil, err
	}
	for _, player := range []game.Mark{game.X, game.O} {
		if agents[player] == nil {
			return nil, fmt.Errorf("%w %v", ErrMissingAgent, player)
		}
	}

	return &Local{State: state, Agents: agents}, nil
}

// Run executes the entire game loop until the game is over. The context is
// checked between moves; a search that has started always completes.
func (e *Local) Run(ctx context.Context) (game.Mark, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Turn(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Debug().Msgf("player %v is starting", e.State.Turn())

	for step := 1; !e.State.IsTerminal() && step <= MaxMoves; step++ {
		if err := ctx.Err(); err != nil {
			return game.Empty, gameMetric, moveMetrics, err
		}

		player := e.State.Turn()
		move, searchMetric, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("player %v at step %d: %w", player, step, err)
		}

		next, err := e.State.Play(move)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("player %v at step %d: %w", player, step, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		gameMetric.TotalNodes += searchMetric.Nodes
		e.State = next

		log.Debug().Msgf("step %d: player %v played %v with %d nodes, board %v", step, player, move, searchMetric.Nodes, e.State)
	}

	gameMetric.Winner = e.State.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Msgf("game over after %d moves, winner: %v", gameMetric.TotalMoves, gameMetric.Winner)

	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
