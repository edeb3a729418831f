package experiments

import (
	"context"
	"fmt"
	"gametree/engine"
	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher/agent"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

type Options struct {
	Games      int // Per matchup
	Workers    int
	Seed       uint64 // Zero picks a random seed
	OutputDir  string // Empty skips writing records
	Confidence float64
}

type Result struct {
	Summaries []metrics.Summary
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Dir       string // Where the records were written
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// Run plays opts.Games games for every matchup of the experiment, up to
// opts.Workers at a time, and aggregates them into one summary per matchup.
// Every game gets its own agents, seeded from opts.Seed and the game ID.
func Run(ctx context.Context, experiment Experiment, opts Options) (Result, error) {
	if opts.Games <= 0 || opts.Workers <= 0 {
		return Result{}, fmt.Errorf("games and workers must be positive, got %d and %d", opts.Games, opts.Workers)
	}
	if opts.Confidence <= 0 || opts.Confidence >= 100 {
		return Result{}, fmt.Errorf("confidence must be within (0, 100), got %v", opts.Confidence)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64)
	}

	log.Info().Msgf("starting %s experiment with %d matchups of %d games, seed %d...",
		experiment.Name, len(experiment.MatchUps), opts.Games, seed)

	results := make([]gameResult, len(experiment.MatchUps)*opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for mi, matchUp := range experiment.MatchUps {
		for i := 0; i < opts.Games; i++ {
			id := mi*opts.Games + i + 1
			g.Go(func() error {
				result, err := runGame(ctx, matchUp, id, seed)
				if err != nil {
					return fmt.Errorf("matchup %q game %d: %w", matchUp.Name, id, err)
				}
				results[id-1] = result
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{
		Games: lo.Map(results, func(r gameResult, _ int) metrics.GameRecord { return r.record }),
		Moves: lo.FlatMap(results, func(r gameResult, _ int) []metrics.MoveRecord {
			return lo.Map(r.moves, func(m metrics.MoveMetric, _ int) metrics.MoveRecord {
				return metrics.MoveRecord{Game: r.record.ID, MoveMetric: m}
			})
		}),
	}
	for mi, matchUp := range experiment.MatchUps {
		games := result.Games[mi*opts.Games : (mi+1)*opts.Games]
		summary := summarize(matchUp, games, opts.Confidence)
		result.Summaries = append(result.Summaries, summary)

		log.Info().Msgf("matchup %d of %d (%s): X won %d, O won %d, drew %d; starter non-loss rate %.3f [%.3f, %.3f]",
			mi+1, len(experiment.MatchUps), matchUp.Name, summary.XWins, summary.OWins, summary.Draws,
			summary.NonLossRate, summary.NonLossLow, summary.NonLossHigh)
	}

	log.Info().Msgf("completed %s experiment", experiment.Name)

	if opts.OutputDir == "" {
		return result, nil
	}
	dir, err := write(opts.OutputDir, experiment, result)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	return result, nil
}

// runGame plays a single game of the matchup. Agent seeds derive from the
// experiment seed and the game ID, so a game can be replayed on its own.
func runGame(ctx context.Context, matchUp MatchUp, id int, seed uint64) (gameResult, error) {
	x, err := agent.New(matchUp.X, seed+uint64(2*id))
	if err != nil {
		return gameResult{}, err
	}
	o, err := agent.New(matchUp.O, seed+uint64(2*id+1))
	if err != nil {
		return gameResult{}, err
	}

	e, err := engine.LocalEngine(map[game.Mark]agent.Agent{game.X: x, game.O: o}, matchUp.First)
	if err != nil {
		return gameResult{}, err
	}
	_, gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return gameResult{}, err
	}

	log.Debug().Msgf("completed matchup %q game %d with winner: %v", matchUp.Name, id, gameMetric.Winner)

	return gameResult{
		record: metrics.GameRecord{
			ID:         id,
			MatchUp:    matchUp.Name,
			AgentX:     matchUp.X.ID,
			AgentO:     matchUp.O.ID,
			GameMetric: gameMetric,
		},
		moves: moveMetrics,
	}, nil
}

func summarize(matchUp MatchUp, games []metrics.GameRecord, confidence float64) metrics.Summary {
	nodes := metrics.Statistic{}
	duration := metrics.Statistic{}
	for _, g := range games {
		nodes.Push(float64(g.TotalNodes))
		duration.Push(float64(g.Duration))
	}

	outcomes := lo.CountValuesBy(games, func(g metrics.GameRecord) game.Mark { return g.Winner })
	nonLosses := len(games) - outcomes[matchUp.First.Opponent()]
	rate, low, high := metrics.WinRateInterval(nonLosses, len(games), confidence)

	return metrics.Summary{
		MatchUp:        matchUp.Name,
		AgentX:         matchUp.X.ID,
		AgentO:         matchUp.O.ID,
		StartingPlayer: matchUp.First,
		Games:          len(games),
		XWins:          outcomes[game.X],
		OWins:          outcomes[game.O],
		Draws:          outcomes[game.Empty],
		MeanNodes:      nodes.Mean(),
		StdevNodes:     nodes.Stdev(),
		MeanDuration:   time.Duration(duration.Mean()),
		NonLossRate:    rate,
		NonLossLow:     low,
		NonLossHigh:    high,
	}
}

func write(root string, experiment Experiment, result Result) (string, error) {
	writer, err := metrics.NewWriter(root, experiment.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(experiment.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteSummaries(result.Summaries); err != nil {
		return "", fmt.Errorf("failed to write summaries: %w", err)
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}

	log.Info().Msgf("stored %s records in %s", experiment.Name, writer.Dir())
	return writer.Dir(), nil
}
