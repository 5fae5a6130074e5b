package planner

import (
	"fmt"

	"railbot/world"
)

// Action is one entry of a turn's output, renderable to the host protocol.
type Action interface {
	Protocol() string
}

// PlaceTracks paints the tile at At.
type PlaceTracks struct {
	At world.Coord
}

func (p PlaceTracks) Protocol() string {
	return fmt.Sprintf("PLACE_TRACKS %d %d", p.At.X, p.At.Y)
}

// Disrupt applies one disruption point to the named region.
type Disrupt struct {
	RegionID int
}

func (d Disrupt) Protocol() string {
	return fmt.Sprintf("DISRUPT %d", d.RegionID)
}

// Wait is the explicit no-op turn result.
type Wait struct{}

func (Wait) Protocol() string {
	return "WAIT"
}

// Plan is the ordered action list for one turn. It is never empty: a turn
// with nothing worth doing yields a single Wait.
type Plan []Action
