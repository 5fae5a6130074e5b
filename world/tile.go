package world

// Coord identifies a tile on the grid. Value type, usable as a map key.
type Coord struct {
	X int
	Y int
}

// Terrain classifies a tile and fixes its paint cost.
type Terrain int

const (
	Plain Terrain = iota
	River
	Mountain
	POI // point of interest
)

// Cost returns the paint points needed to place a track on this terrain.
func (t Terrain) Cost() int {
	switch t {
	case Plain:
		return 1
	case River:
		return 2
	case Mountain, POI:
		return 3
	default:
		return 1
	}
}

// Owner identifies who holds the track on a tile. Player tracks carry the
// player id (0 or 1) directly.
type Owner int

const (
	NoOwner Owner = -1 // no track on the tile
	Neutral Owner = 2  // environment-placed track
)

// Connection is a pair of town ids whose completed track path crosses a tile.
type Connection struct {
	From int
	To   int
}

// Tile carries the static terrain data plus the mutable per-turn fields
// overwritten by World.Update. Instability is a denormalized copy of the
// owning region's counter.
type Tile struct {
	RegionID    int
	Terrain     Terrain
	TrackOwner  Owner
	Inked       bool
	Instability int
	Connections []Connection // active town pairs routed through this tile
}

// HasTrack reports whether any player or the environment holds this tile.
func (t *Tile) HasTrack() bool {
	return t.TrackOwner != NoOwner
}

// OwnedBy reports whether the tile carries a track of the given player.
func (t *Tile) OwnedBy(player int) bool {
	return t.TrackOwner == Owner(player)
}

// Region is a connected group of tiles sharing one id. Tiles reference it by
// id only; the World owns the arena of regions.
type Region struct {
	ID          int
	Instability int // [0,3], inked at 3
	Inked       bool
	Coords      []Coord
	HasTown     bool
}

// Disruptable reports whether the region may legally receive a disruption
// point. Inked is terminal and town regions are protected by the game rules.
func (r *Region) Disruptable() bool {
	return !r.Inked && !r.HasTown
}

// Town is a fixed grid point with the ids of the towns it wants linked by
// tracks. Towns never move and are never paintable targets.
type Town struct {
	ID      int
	At      Coord
	Desired []int // desired-connection town ids
}
