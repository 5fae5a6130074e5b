package world

// Layout is the one-time initialization snapshot: everything that never
// changes after the first read.
type Layout struct {
	MyID   int
	Width  int
	Height int
	Tiles  []LayoutTile // row-major, length Width*Height
	Towns  []TownSpec
}

// LayoutTile is the static part of one tile.
type LayoutTile struct {
	RegionID int
	Terrain  Terrain
}

// TownSpec declares a town and its desired connections.
type TownSpec struct {
	ID      int
	At      Coord
	Desired []int
}

// Snapshot carries one turn's worth of mutable state. Everything in it
// replaces the corresponding World fields wholesale.
type Snapshot struct {
	MyScore  int
	FoeScore int
	Tiles    []TileState // row-major, length Width*Height
}

// TileState is the mutable part of one tile.
type TileState struct {
	Owner       Owner
	Instability int
	Inked       bool
	Connections []Connection
}
