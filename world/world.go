package world

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

// World owns the grid, the region arena, the towns, and the static derived
// structures precomputed once at construction. Mutable per-tile and
// per-region fields are overwritten every turn by Update; everything else is
// immutable after New.
type World struct {
	MyID     int
	Width    int
	Height   int
	MyScore  int
	FoeScore int

	tiles   [][]Tile // indexed [y][x]
	regions map[int]*Region
	towns   []Town

	// Static precomputed structures
	neighbors       map[Coord][]Coord // in-bounds orthogonal neighbors, N E S W order
	regionAdjacency map[int]map[int]struct{}
	nearTownRegions map[int]struct{} // region ids bordering a region with a town
	townCoords      map[Coord]struct{}
}

// New builds a World from the initialization layout: the tile grid, the
// region arena (grouping tiles by region id in a single scan), the town list,
// and the static precomputed adjacency structures.
func New(layout Layout) (*World, error) {
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", layout.Width, layout.Height)
	}
	if len(layout.Tiles) != layout.Width*layout.Height {
		return nil, fmt.Errorf("layout has %d tiles, want %d", len(layout.Tiles), layout.Width*layout.Height)
	}

	w := &World{
		MyID:            layout.MyID,
		Width:           layout.Width,
		Height:          layout.Height,
		regions:         make(map[int]*Region),
		neighbors:       make(map[Coord][]Coord),
		regionAdjacency: make(map[int]map[int]struct{}),
		nearTownRegions: make(map[int]struct{}),
		townCoords:      make(map[Coord]struct{}),
	}

	w.tiles = make([][]Tile, layout.Height)
	for y := 0; y < layout.Height; y++ {
		row := make([]Tile, layout.Width)
		for x := 0; x < layout.Width; x++ {
			lt := layout.Tiles[y*layout.Width+x]
			row[x] = Tile{
				RegionID:   lt.RegionID,
				Terrain:    lt.Terrain,
				TrackOwner: NoOwner,
			}
			region, ok := w.regions[lt.RegionID]
			if !ok {
				region = &Region{ID: lt.RegionID}
				w.regions[lt.RegionID] = region
			}
			region.Coords = append(region.Coords, Coord{X: x, Y: y})
		}
		w.tiles[y] = row
	}

	for _, spec := range layout.Towns {
		if !w.Valid(spec.At) {
			return nil, fmt.Errorf("town %d at %d %d is out of bounds", spec.ID, spec.At.X, spec.At.Y)
		}
		w.towns = append(w.towns, Town{ID: spec.ID, At: spec.At, Desired: spec.Desired})
		w.RegionAt(spec.At).HasTown = true
		w.townCoords[spec.At] = struct{}{}
	}
	for _, town := range w.towns {
		for _, id := range town.Desired {
			if w.TownByID(id) == nil {
				return nil, fmt.Errorf("town %d desires unknown town %d", town.ID, id)
			}
		}
	}

	w.precompute()
	return w, nil
}

// precompute fills the static derived structures: per-coordinate in-bounds
// neighbors, the region adjacency graph, and the set of regions bordering a
// town region. Runs once; none of these depend on mutable state.
func (w *World) precompute() {
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			c := Coord{X: x, Y: y}
			candidates := []Coord{
				{X: x, Y: y - 1}, // north
				{X: x + 1, Y: y}, // east
				{X: x, Y: y + 1}, // south
				{X: x - 1, Y: y}, // west
			}
			for _, n := range candidates {
				if w.Valid(n) {
					w.neighbors[c] = append(w.neighbors[c], n)
				}
			}
		}
	}

	for id := range w.regions {
		w.regionAdjacency[id] = make(map[int]struct{})
	}
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			c := Coord{X: x, Y: y}
			id := w.TileAt(c).RegionID
			for _, n := range w.neighbors[c] {
				nid := w.TileAt(n).RegionID
				if nid != id {
					w.regionAdjacency[id][nid] = struct{}{}
				}
			}
		}
	}

	for id, region := range w.regions {
		if region.HasTown {
			for adj := range w.regionAdjacency[id] {
				w.nearTownRegions[adj] = struct{}{}
			}
		}
	}
}

// Update overwrites every tile's mutable fields from the turn snapshot and
// propagates instability and inked status onto the owning regions. The
// snapshot must cover the whole grid in row-major order.
func (w *World) Update(snap Snapshot) error {
	if len(snap.Tiles) != w.Width*w.Height {
		return fmt.Errorf("snapshot has %d tiles, want %d", len(snap.Tiles), w.Width*w.Height)
	}
	w.MyScore = snap.MyScore
	w.FoeScore = snap.FoeScore

	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			ts := snap.Tiles[y*w.Width+x]
			if ts.Instability < 0 || ts.Instability > 3 {
				return fmt.Errorf("tile %d %d: instability %d out of range", x, y, ts.Instability)
			}
			tile := &w.tiles[y][x]
			tile.TrackOwner = ts.Owner
			tile.Instability = ts.Instability
			tile.Inked = ts.Inked
			tile.Connections = ts.Connections

			region := w.regions[tile.RegionID]
			region.Instability = ts.Instability
			// Inked is terminal: it never flips back off.
			region.Inked = region.Inked || ts.Inked
		}
	}
	return nil
}

// TileAt returns the tile at c. The coordinate must be in bounds.
func (w *World) TileAt(c Coord) *Tile {
	return &w.tiles[c.Y][c.X]
}

// RegionAt returns the region owning the tile at c.
func (w *World) RegionAt(c Coord) *Region {
	return w.regions[w.TileAt(c).RegionID]
}

// Region returns the region with the given id, nil if unknown.
func (w *World) Region(id int) *Region {
	return w.regions[id]
}

// RegionIDs returns all region ids in ascending order.
func (w *World) RegionIDs() []int {
	ids := maps.Keys(w.regions)
	sort.Ints(ids)
	return ids
}

// Towns returns all towns in layout order.
func (w *World) Towns() []Town {
	return w.towns
}

// TownByID returns the town with the given id, nil if unknown.
func (w *World) TownByID(id int) *Town {
	for i := range w.towns {
		if w.towns[i].ID == id {
			return &w.towns[i]
		}
	}
	return nil
}

// IsTown reports whether a town stands at c.
func (w *World) IsTown(c Coord) bool {
	_, ok := w.townCoords[c]
	return ok
}

// Valid reports whether c lies within the grid bounds.
func (w *World) Valid(c Coord) bool {
	return c.X >= 0 && c.X < w.Width && c.Y >= 0 && c.Y < w.Height
}

// Passable reports whether c is in bounds and not part of an inked region.
func (w *World) Passable(c Coord) bool {
	return w.Valid(c) && !w.TileAt(c).Inked
}

// Cost returns the paint cost to place a track at c.
func (w *World) Cost(c Coord) int {
	return w.TileAt(c).Terrain.Cost()
}

// Neighbors returns the precomputed orthogonal neighbors of c, in N E S W
// order, filtered by current passability.
func (w *World) Neighbors(c Coord) []Coord {
	all := w.neighbors[c]
	passable := make([]Coord, 0, len(all))
	for _, n := range all {
		if !w.TileAt(n).Inked {
			passable = append(passable, n)
		}
	}
	return passable
}

// AdjacentRegions returns whether the two regions share a border.
func (w *World) AdjacentRegions(a, b int) bool {
	_, ok := w.regionAdjacency[a][b]
	return ok
}

// NearTownRegion reports whether the region borders any region containing a
// town.
func (w *World) NearTownRegion(id int) bool {
	_, ok := w.nearTownRegions[id]
	return ok
}

// AdjacentToOwnTrack reports whether any orthogonal neighbor of c carries a
// track owned by this player.
func (w *World) AdjacentToOwnTrack(c Coord) bool {
	for _, n := range w.neighbors[c] {
		if w.TileAt(n).OwnedBy(w.MyID) {
			return true
		}
	}
	return false
}

// TrackCounts tallies the tracks inside a region by ownership.
func (w *World) TrackCounts(regionID int) (own, opponent, neutral int) {
	region := w.regions[regionID]
	opponentID := 1 - w.MyID
	for _, c := range region.Coords {
		tile := w.TileAt(c)
		switch {
		case tile.OwnedBy(w.MyID):
			own++
		case tile.OwnedBy(opponentID):
			opponent++
		case tile.TrackOwner == Neutral:
			neutral++
		}
	}
	return own, opponent, neutral
}
