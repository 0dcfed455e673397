package searcher

import "time"

// SearchMetric summarizes one call to Searcher.Search.
type SearchMetric struct {
	Duration time.Duration
	Depth    int // Deepest completed depth
	Nodes    int64
	Prunes   int64
	TimedOut bool
}

type Collector interface {
	Start()
	AddNode()
	AddPrune()
	CompleteDepth(depth int)
	TimedOut()
	Complete() SearchMetric
}

// collector is not safe for concurrent use; a search runs on a single goroutine
type collector struct {
	startTime time.Time
	depth     int
	nodes     int64
	prunes    int64
	timedOut  bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	*m = collector{startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddPrune() {
	m.prunes++
}

func (m *collector) CompleteDepth(depth int) {
	m.depth = depth
}

func (m *collector) TimedOut() {
	m.timedOut = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration: time.Since(m.startTime),
		Depth:    m.depth,
		Nodes:    m.nodes,
		Prunes:   m.prunes,
		TimedOut: m.timedOut,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddNode()                {}
func (m *dummyCollector) AddPrune()               {}
func (m *dummyCollector) CompleteDepth(depth int) {}
func (m *dummyCollector) TimedOut()               {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
