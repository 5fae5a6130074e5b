// Package engine drives the per-turn pipeline: observe the snapshot into the
// world model, score all candidates, allocate the budgets, emit the plan.
// The world has a single writer (the observe step); everything downstream of
// it reads only.
package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"railbot/config"
	"railbot/metrics"
	"railbot/pathfind"
	"railbot/planner"
	"railbot/protocol"
	"railbot/scoring"
	"railbot/world"
)

// Engine owns the long-lived world model and the per-turn pipeline stages.
// It keeps no other state between turns.
type Engine struct {
	world     *world.World
	finder    *pathfind.Finder
	scorer    *scoring.Engine
	strategy  planner.Strategy
	collector metrics.Collector
	turn      int
}

// Option configures an Engine.
type Option func(*Engine)

// WithCollector records turn metrics into c instead of discarding them.
func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.collector = c
		}
	}
}

// New builds the engine from the initialization layout and configuration.
func New(layout world.Layout, cfg config.Config, options ...Option) (*Engine, error) {
	w, err := world.New(layout)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	strategy, err := planner.ForName(cfg.Strategy, cfg.PaintBudget)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		world:     w,
		finder:    pathfind.New(w, cfg.PathCaution),
		scorer:    scoring.New(w, cfg.Track, cfg.Disruption),
		strategy:  strategy,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// World exposes the engine's world model, mainly for tests and tooling.
func (e *Engine) World() *world.World {
	return e.world
}

// RunTurn ingests one snapshot and produces the turn's plan. Desired paths
// are recomputed after every update because routing depends on the mutable
// instability and inked state.
func (e *Engine) RunTurn(snap world.Snapshot) (planner.Plan, error) {
	start := time.Now()
	e.turn++

	if err := e.world.Update(snap); err != nil {
		return nil, fmt.Errorf("turn %d: %w", e.turn, err)
	}
	e.scorer.SetPaths(e.finder.DesiredPaths())
	plan := e.strategy.Allocate(e.scorer)

	metric := e.measure(plan, time.Since(start))
	e.collector.Record(metric)
	log.Info().
		Int("turn", metric.Turn).
		Int("placements", metric.Placements).
		Int("paint", metric.PaintSpent).
		Bool("disrupted", metric.Disrupted).
		Dur("elapsed", metric.Elapsed).
		Msg("turn planned")
	return plan, nil
}

// Run loops snapshots from the reader into plans on the writer until the
// input stream ends.
func (e *Engine) Run(r *protocol.Reader, out io.Writer) error {
	for {
		snap, err := r.ReadSnapshot(e.world.Width, e.world.Height)
		if err == io.EOF {
			log.Info().Int("turns", e.turn).Msg("input stream closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading snapshot: %w", err)
		}
		plan, err := e.RunTurn(snap)
		if err != nil {
			return err
		}
		if err := protocol.Emit(out, plan); err != nil {
			return err
		}
	}
}

func (e *Engine) measure(plan planner.Plan, elapsed time.Duration) metrics.TurnMetric {
	metric := metrics.TurnMetric{Turn: e.turn, Elapsed: elapsed}
	for _, action := range plan {
		switch a := action.(type) {
		case planner.PlaceTracks:
			metric.Placements++
			metric.PaintSpent += e.world.Cost(a.At)
		case planner.Disrupt:
			metric.Disrupted = true
		}
	}
	for y := 0; y < e.world.Height; y++ {
		for x := 0; x < e.world.Width; x++ {
			c := world.Coord{X: x, Y: y}
			tile := e.world.TileAt(c)
			if !tile.Inked && !tile.HasTrack() && !e.world.IsTown(c) {
				metric.Candidates++
			}
		}
	}
	return metric
}
