package metrics

import (
	"gametree/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm   string
	Duration    time.Duration
	Nodes       int // Nodes explored during one decision
	Simulations int // MCTS only
	RootVisits  int // MCTS only
}

type MoveMetric struct {
	Step   int
	Player game.Mark
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Mark
	Winner         game.Mark // Empty for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	TotalNodes     int
}

type Collector interface {
	Start(algorithm string)
	AddNodes(n int)
	AddSimulation()
	SetRootVisits(n int)
	Complete() SearchMetric
}

type collector struct {
	algorithm   string
	startTime   time.Time
	nodes       atomic.Int64
	simulations atomic.Int32
	rootVisits  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string) {
	m.algorithm = algorithm
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.simulations.Store(0)
	m.rootVisits.Store(0)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int64(n))
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) SetRootVisits(n int) {
	m.rootVisits.Store(int32(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:   m.algorithm,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Simulations: int(m.simulations.Load()),
		RootVisits:  int(m.rootVisits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string) {}
func (m *dummyCollector) AddNodes(n int)         {}
func (m *dummyCollector) AddSimulation()         {}
func (m *dummyCollector) SetRootVisits(n int)    {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
