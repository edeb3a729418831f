package experiments

import (
	"errors"
	"fmt"
	"gametree/experiments/metrics"
	"gametree/game"
)

var ErrConflictingAgentID = errors.New("agent ID used by different configs")

// Pairing is a matchup as written in a configuration file.
type Pairing struct {
	Name  string              `yaml:"name"`
	X     metrics.AgentConfig `yaml:"x"`
	O     metrics.AgentConfig `yaml:"o"`
	First string              `yaml:"first"`
}

// Custom builds an experiment from configured pairings. Pairings without a
// starting player are played from both. Agents without an ID get the next
// free one, equal configs sharing it.
func Custom(name string, pairings []Pairing) (Experiment, error) {
	ids := newIDs(pairings)
	experiment := Experiment{Name: name}
	for i, p := range pairings {
		firsts := []game.Mark{game.X, game.O}
		if p.First != "" {
			first, err := game.ParseMark(p.First)
			if err != nil {
				return Experiment{}, fmt.Errorf("pairing %d: %w", i, err)
			}
			firsts = []game.Mark{first}
		}

		x, err := ids.assign(p.X)
		if err != nil {
			return Experiment{}, fmt.Errorf("pairing %d: %w", i, err)
		}
		o, err := ids.assign(p.O)
		if err != nil {
			return Experiment{}, fmt.Errorf("pairing %d: %w", i, err)
		}

		label := p.Name
		if label == "" {
			label = fmt.Sprintf("%s vs %s", x.Algorithm, o.Algorithm)
		}
		for _, first := range firsts {
			experiment.MatchUps = append(experiment.MatchUps, MatchUp{
				Name:  fmt.Sprintf("%s first=%v", label, first),
				X:     x,
				O:     o,
				First: first,
			})
		}
	}
	experiment.Configs = ids.configs
	return experiment, nil
}

type agentIDs struct {
	byID    map[int]metrics.AgentConfig
	unset   map[metrics.AgentConfig]int // Configs without an ID, keyed with ID 0
	next    int
	configs []metrics.AgentConfig
}

func newIDs(pairings []Pairing) *agentIDs {
	next := 1
	for _, p := range pairings {
		next = max(next, p.X.ID+1, p.O.ID+1)
	}
	return &agentIDs{byID: map[int]metrics.AgentConfig{}, unset: map[metrics.AgentConfig]int{}, next: next}
}

func (s *agentIDs) assign(c metrics.AgentConfig) (metrics.AgentConfig, error) {
	if c.ID == 0 {
		id, ok := s.unset[c]
		if !ok {
			id = s.next
			s.next++
			s.unset[c] = id
		}
		c.ID = id
	}

	known, ok := s.byID[c.ID]
	if !ok {
		s.byID[c.ID] = c
		s.configs = append(s.configs, c)
		return c, nil
	}
	if known != c {
		return metrics.AgentConfig{}, fmt.Errorf("%w: %d", ErrConflictingAgentID, c.ID)
	}
	return c, nil
}
