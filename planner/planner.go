// Package planner turns candidate rankings into a bounded action list. The
// allocator is stateless between turns; the only persistent state in the
// pipeline lives in the world model.
package planner

import (
	"fmt"

	"railbot/scoring"
)

// DefaultPaintBudget is the paint points available each turn.
const DefaultPaintBudget = 3

// Strategy allocates one turn's budget given a scored world. Alternative
// allocators are configuration values, selected by name through ForName.
type Strategy interface {
	Allocate(eng *scoring.Engine) Plan
}

// Greedy walks the placement ranking best-first under the paint budget, then
// takes the single best strictly-positive disruption.
type Greedy struct {
	PaintBudget int
}

// NewGreedy returns the Greedy strategy with the given paint budget.
func NewGreedy(budget int) Greedy {
	if budget <= 0 {
		budget = DefaultPaintBudget
	}
	return Greedy{PaintBudget: budget}
}

// Allocate produces the turn plan: at most budget-many placements and at most
// one disruption. Candidates arrive in descending score order, so the walk
// stops outright at the first non-positive score; nothing after it can be
// worth paint. Unaffordable candidates are skipped, not terminal.
func (g Greedy) Allocate(eng *scoring.Engine) Plan {
	var plan Plan

	paint := g.PaintBudget
	for _, candidate := range eng.PlacementCandidates() {
		if candidate.Score <= 0 {
			break
		}
		cost := eng.World.Cost(candidate.At)
		if cost <= paint {
			plan = append(plan, PlaceTracks{At: candidate.At})
			paint -= cost
		}
		if paint <= 0 {
			break
		}
	}

	// Exactly one disruption point per turn, spent only on a strictly
	// positive target.
	regions := eng.DisruptionCandidates()
	if len(regions) > 0 && regions[0].Score > 0 {
		plan = append(plan, Disrupt{RegionID: regions[0].RegionID})
	}

	if len(plan) == 0 {
		plan = Plan{Wait{}}
	}
	return plan
}

// ForName resolves a strategy by its configured name.
func ForName(name string, paintBudget int) (Strategy, error) {
	switch name {
	case "", "greedy":
		return NewGreedy(paintBudget), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
