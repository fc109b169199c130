package metrics

import (
	"sync/atomic"
	"time"
)

// TreeMetric summarizes the work done while building a decision tree.
type TreeMetric struct {
	Duration          time.Duration
	Nodes             int // nodes constructed
	Terminals         int // constructed nodes with a finished outcome
	Expansions        int // nodes whose children were computed
	TranspositionHits int // children served from the transposition table
}

type Collector interface {
	Start()
	AddNode(terminal bool)
	AddExpansion()
	AddTranspositionHit()
	Complete() TreeMetric
}

type collector struct {
	startTime         time.Time
	nodes             atomic.Int64
	terminals         atomic.Int64
	expansions        atomic.Int64
	transpositionHits atomic.Int64
}

func NewCollector() Collector {
	c := &collector{}
	c.Start()
	return c
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.expansions.Store(0)
	m.transpositionHits.Store(0)
}

func (m *collector) AddNode(terminal bool) {
	m.nodes.Add(1)
	if terminal {
		m.terminals.Add(1)
	}
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddTranspositionHit() {
	m.transpositionHits.Add(1)
}

func (m *collector) Complete() TreeMetric {
	return TreeMetric{
		Duration:          time.Since(m.startTime),
		Nodes:             int(m.nodes.Load()),
		Terminals:         int(m.terminals.Load()),
		Expansions:        int(m.expansions.Load()),
		TranspositionHits: int(m.transpositionHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                {}
func (m *dummyCollector) AddNode(terminal bool) {}
func (m *dummyCollector) AddExpansion()         {}
func (m *dummyCollector) AddTranspositionHit()  {}
func (m *dummyCollector) Complete() TreeMetric  { return TreeMetric{} }
