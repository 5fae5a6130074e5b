// Package metrics collects per-turn engine measurements for offline weight
// tuning runs.
package metrics

import "time"

// TurnMetric summarizes one engine turn.
type TurnMetric struct {
	Turn       int
	Candidates int // legal placement candidates scored
	Placements int // PLACE_TRACKS actions emitted
	PaintSpent int
	Disrupted  bool
	Elapsed    time.Duration
}

// Collector accumulates turn metrics. The dummy implementation makes
// collection free when metrics are disabled.
type Collector interface {
	Record(TurnMetric)
	All() []TurnMetric
}

type collector struct {
	turns []TurnMetric
}

// NewCollector returns a recording collector.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Record(m TurnMetric) {
	c.turns = append(c.turns, m)
}

func (c *collector) All() []TurnMetric {
	return c.turns
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that discards everything.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Record(TurnMetric) {}

func (dummyCollector) All() []TurnMetric { return nil }
