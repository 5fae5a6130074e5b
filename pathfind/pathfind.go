// Package pathfind computes deterministic shortest paths over the current
// planning-passability graph. A tile is traversable when its region is not
// inked and its instability sits below the caution threshold: a region one
// disruption away from being inked is treated as already lost for routing.
package pathfind

import "railbot/world"

// DefaultCaution marks regions at instability 2 (one disruption from inked)
// as untraversable for planning.
const DefaultCaution = 2

// Finder runs breadth-first searches over one World. Paths depend on mutable
// instability and inked state, so results are only valid for the turn the
// query runs in.
type Finder struct {
	world   *world.World
	caution int
}

// New returns a Finder with the given caution threshold. Values outside
// [1,3] fall back to DefaultCaution.
func New(w *world.World, caution int) *Finder {
	if caution < 1 || caution > 3 {
		caution = DefaultCaution
	}
	return &Finder{world: w, caution: caution}
}

func (f *Finder) traversable(c world.Coord) bool {
	if !f.world.Passable(c) {
		return false
	}
	return f.world.RegionAt(c).Instability < f.caution
}

// ShortestPath returns the shortest coordinate sequence from from to to,
// excluding from and including to. Nil when from == to or no path exists.
// Equal-length paths resolve to the one found by N, E, S, W expansion order,
// which keeps repeat queries on identical state byte-identical.
func (f *Finder) ShortestPath(from, to world.Coord) []world.Coord {
	if from == to {
		return nil
	}

	parent := map[world.Coord]world.Coord{from: from}
	queue := []world.Coord{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			return f.backtrace(parent, from, to)
		}

		for _, n := range f.world.Neighbors(current) {
			if !f.traversable(n) {
				continue
			}
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = current
			queue = append(queue, n)
		}
	}
	return nil
}

// backtrace walks the parent pointers from goal to start and reverses.
func (f *Finder) backtrace(parent map[world.Coord]world.Coord, from, to world.Coord) []world.Coord {
	var path []world.Coord
	for c := to; c != from; c = parent[c] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Route is the current shortest path serving one desired connection, with
// the town cells themselves omitted.
type Route struct {
	From int // town id
	To   int // town id
	Path []world.Coord
}

// PathSet is the union of all desired-connection routes for one turn.
type PathSet struct {
	Routes []Route
	Tiles  map[world.Coord]struct{} // every coordinate on any route
}

// OnPath reports whether c lies on any desired-connection route.
func (ps *PathSet) OnPath(c world.Coord) bool {
	if ps == nil {
		return false
	}
	_, ok := ps.Tiles[c]
	return ok
}

// DesiredPaths computes the shortest path for every (town, desired
// connection) pair. An unreachable pair simply contributes no route; that is
// a normal outcome, not an error.
func (f *Finder) DesiredPaths() *PathSet {
	ps := &PathSet{Tiles: make(map[world.Coord]struct{})}

	for _, town := range f.world.Towns() {
		for _, targetID := range town.Desired {
			target := f.world.TownByID(targetID)
			if target == nil {
				continue
			}
			path := f.ShortestPath(town.At, target.At)
			if len(path) == 0 {
				continue
			}
			// Drop the goal town cell; the start is already excluded.
			path = path[:len(path)-1]
			ps.Routes = append(ps.Routes, Route{From: town.ID, To: targetID, Path: path})
			for _, c := range path {
				ps.Tiles[c] = struct{}{}
			}
		}
	}
	return ps
}
