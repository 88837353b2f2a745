package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int // Fixed ply cutoff, 0 when adaptive
	NodeBudget int
	Duration   time.Duration
	Nodes      int // Positions visited
	Leaves     int // Positions scored by the evaluation function
	Terminals  int // Positions where a network was found
	Cutoffs    int // Alpha-beta prunings
}

type MoveMetric struct {
	Step   int
	Player string // Side name
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string // Side name
	Winner         string // Side name, "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines, depth, nodeBudget int)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	nodeBudget int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	terminals  atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth, nodeBudget int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.nodeBudget = nodeBudget
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.terminals.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		NodeBudget: m.nodeBudget,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Terminals:  int(m.terminals.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth, nodeBudget int) {}
func (m *dummyCollector) AddNode()                                {}
func (m *dummyCollector) AddLeaf()                                {}
func (m *dummyCollector) AddTerminal()                            {}
func (m *dummyCollector) AddCutoff()                              {}
func (m *dummyCollector) Complete() SearchMetric                  { return SearchMetric{} }
