// Package scoring ranks candidate moves with explicit weighted linear
// models. The engine is a pure function of the current world state and the
// configured weights: same inputs, same scores.
package scoring

import (
	"sort"

	"railbot/world"
)

// PathLookup answers whether a coordinate lies on a current desired
// town-to-town path. Satisfied by *pathfind.PathSet.
type PathLookup interface {
	OnPath(world.Coord) bool
}

// Engine scores track placements and region disruptions over one World.
type Engine struct {
	World      *world.World
	Track      TrackWeights
	Disruption DisruptionWeights

	paths PathLookup
}

// New returns an Engine over w with the given weights.
func New(w *world.World, track TrackWeights, disruption DisruptionWeights) *Engine {
	return &Engine{World: w, Track: track, Disruption: disruption}
}

// SetPaths installs this turn's desired-path lookup. Must be refreshed after
// every world update; path membership feeds the placement score.
func (e *Engine) SetPaths(paths PathLookup) {
	e.paths = paths
}

// TrackScore computes the desirability of placing a track at c. Inked tiles
// and tiles already carrying a track return their sentinel penalties, which
// no additive term can overcome.
func (e *Engine) TrackScore(c world.Coord) float64 {
	tile := e.World.TileAt(c)
	w := e.Track

	if tile.Inked {
		return w.Inked
	}
	if tile.HasTrack() {
		return w.ExistingTrack
	}

	score := w.Base
	score += w.TerrainCost * float64(tile.Terrain.Cost())
	if e.World.RegionAt(c).HasTown {
		score += w.TownRegion
	}
	if e.paths != nil && e.paths.OnPath(c) {
		score += w.OnDesiredPath
	}
	if e.World.AdjacentToOwnTrack(c) {
		score += w.AdjacentOwnTrack
	}
	score += w.Instability * float64(tile.Instability)
	return score
}

// DisruptScore computes the desirability of disrupting the given region.
// Inked regions and town regions are illegal targets and return the sentinel.
func (e *Engine) DisruptScore(regionID int) float64 {
	region := e.World.Region(regionID)
	w := e.Disruption

	if region == nil || !region.Disruptable() {
		return w.Illegal
	}

	score := w.Base
	own, opponent, _ := e.World.TrackCounts(regionID)
	score += w.OpponentTracks * float64(opponent)
	score += w.OwnTracks * float64(own)
	if e.World.NearTownRegion(regionID) {
		score += w.NearTownRegion
	}
	score += w.Instability * float64(region.Instability)
	return score
}

// ScoredCoord is a placement candidate with its score.
type ScoredCoord struct {
	At    world.Coord
	Score float64
}

// ScoredRegion is a disruption candidate with its score.
type ScoredRegion struct {
	RegionID int
	Score    float64
}

// PlacementCandidates scores every legal placement coordinate (empty,
// non-inked, not a town cell) and returns them sorted by descending score.
// Ties break by row-major scan order, y then x, so identical world states
// always rank identically.
func (e *Engine) PlacementCandidates() []ScoredCoord {
	var candidates []ScoredCoord
	for y := 0; y < e.World.Height; y++ {
		for x := 0; x < e.World.Width; x++ {
			c := world.Coord{X: x, Y: y}
			tile := e.World.TileAt(c)
			if tile.Inked || tile.HasTrack() || e.World.IsTown(c) {
				continue
			}
			candidates = append(candidates, ScoredCoord{At: c, Score: e.TrackScore(c)})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].At.Y != candidates[j].At.Y {
			return candidates[i].At.Y < candidates[j].At.Y
		}
		return candidates[i].At.X < candidates[j].At.X
	})
	return candidates
}

// DisruptionCandidates scores every legal disruption region and returns them
// sorted by descending score, ties broken by ascending region id.
func (e *Engine) DisruptionCandidates() []ScoredRegion {
	var candidates []ScoredRegion
	for _, id := range e.World.RegionIDs() {
		if !e.World.Region(id).Disruptable() {
			continue
		}
		candidates = append(candidates, ScoredRegion{RegionID: id, Score: e.DisruptScore(id)})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].RegionID < candidates[j].RegionID
	})
	return candidates
}
