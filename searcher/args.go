package searcher

import (
	"gametree/experiments/metrics"
	"gametree/game"
	"math"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Option func(s *settings)

type settings struct {
	evaluate       game.Evaluate
	rng            *rand.Rand
	randomTieBreak bool
	exploration    float64
	simulations    int
	metrics        metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithSeed makes every random choice of the searcher reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithRandomTieBreak picks uniformly among equally valued best moves instead
// of the first one. Only minimax honors it.
func WithRandomTieBreak() Option {
	return func(s *settings) {
		s.randomTieBreak = true
	}
}

func WithExploration(c float64) Option {
	return func(s *settings) {
		s.exploration = c
	}
}

func WithSimulations(simulations int) Option {
	return func(s *settings) {
		s.simulations = simulations
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		evaluate:    game.EvaluateLines,
		exploration: DefaultExploration,
		simulations: DefaultSimulations,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(frand.Uint64n(math.MaxUint64)))
	}
	return s
}
