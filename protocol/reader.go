// Package protocol implements the line-oriented host codec: the
// initialization and per-turn snapshot readers and the action emitter. It is
// a pure adapter; all decisions happen elsewhere. Malformed input is an
// input-contract violation and surfaces as an error, never a guess.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"railbot/world"
)

const noneField = "x" // the host's marker for an empty list field

// Reader parses host snapshots from a line stream.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader wraps r in a snapshot reader.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: s}
}

func (r *Reader) line() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

func (r *Reader) intLine() (int, error) {
	s, err := r.line()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", s)
	}
	return v, nil
}

// fields splits the next line into exactly n whitespace-separated fields.
func (r *Reader) fields(n int) ([]string, error) {
	s, err := r.line()
	if err != nil {
		return nil, err
	}
	parts := strings.Fields(s)
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d fields, got %q", n, s)
	}
	return parts, nil
}

// ReadLayout parses the one-time initialization snapshot: player id, grid
// dimensions, one "regionId terrain" line per tile in row-major order, then
// the town list with desired connections.
func (r *Reader) ReadLayout() (world.Layout, error) {
	var layout world.Layout
	var err error

	if layout.MyID, err = r.intLine(); err != nil {
		return layout, fmt.Errorf("player id: %w", err)
	}
	if layout.Width, err = r.intLine(); err != nil {
		return layout, fmt.Errorf("grid width: %w", err)
	}
	if layout.Height, err = r.intLine(); err != nil {
		return layout, fmt.Errorf("grid height: %w", err)
	}

	layout.Tiles = make([]world.LayoutTile, 0, layout.Width*layout.Height)
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			parts, err := r.fields(2)
			if err != nil {
				return layout, fmt.Errorf("tile %d %d: %w", x, y, err)
			}
			regionID, err1 := strconv.Atoi(parts[0])
			terrain, err2 := strconv.Atoi(parts[1])
			if err1 != nil || err2 != nil {
				return layout, fmt.Errorf("tile %d %d: bad fields %q", x, y, parts)
			}
			if terrain < int(world.Plain) || terrain > int(world.POI) {
				return layout, fmt.Errorf("tile %d %d: unknown terrain %d", x, y, terrain)
			}
			layout.Tiles = append(layout.Tiles, world.LayoutTile{
				RegionID: regionID,
				Terrain:  world.Terrain(terrain),
			})
		}
	}

	townCount, err := r.intLine()
	if err != nil {
		return layout, fmt.Errorf("town count: %w", err)
	}
	for i := 0; i < townCount; i++ {
		parts, err := r.fields(4)
		if err != nil {
			return layout, fmt.Errorf("town %d: %w", i, err)
		}
		id, err1 := strconv.Atoi(parts[0])
		x, err2 := strconv.Atoi(parts[1])
		y, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return layout, fmt.Errorf("town %d: bad fields %q", i, parts)
		}
		desired, err := parseIDList(parts[3])
		if err != nil {
			return layout, fmt.Errorf("town %d: %w", id, err)
		}
		layout.Towns = append(layout.Towns, world.TownSpec{
			ID:      id,
			At:      world.Coord{X: x, Y: y},
			Desired: desired,
		})
	}
	return layout, nil
}

// ReadSnapshot parses one turn snapshot for a width x height grid: both
// scores, then one "owner instability inked connections" line per tile in
// row-major order. Returns io.EOF untouched when the stream ends cleanly
// before a new turn.
func (r *Reader) ReadSnapshot(width, height int) (world.Snapshot, error) {
	var snap world.Snapshot

	myScore, err := r.intLine()
	if err != nil {
		if err == io.EOF {
			return snap, io.EOF
		}
		return snap, fmt.Errorf("own score: %w", err)
	}
	snap.MyScore = myScore
	if snap.FoeScore, err = r.intLine(); err != nil {
		return snap, fmt.Errorf("opponent score: %w", err)
	}

	snap.Tiles = make([]world.TileState, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			parts, err := r.fields(4)
			if err != nil {
				return snap, fmt.Errorf("tile %d %d: %w", x, y, err)
			}
			owner, err1 := strconv.Atoi(parts[0])
			instability, err2 := strconv.Atoi(parts[1])
			if err1 != nil || err2 != nil {
				return snap, fmt.Errorf("tile %d %d: bad fields %q", x, y, parts)
			}
			connections, err := parseConnections(parts[3])
			if err != nil {
				return snap, fmt.Errorf("tile %d %d: %w", x, y, err)
			}
			snap.Tiles = append(snap.Tiles, world.TileState{
				Owner:       world.Owner(owner),
				Instability: instability,
				Inked:       parts[2] != "0",
				Connections: connections,
			})
		}
	}
	return snap, nil
}

// parseIDList parses a comma-separated id list, "x" for none.
func parseIDList(s string) ([]int, error) {
	if s == noneField {
		return nil, nil
	}
	var ids []int
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad id list %q", s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseConnections parses the active-connection field: "-"-separated town
// pairs joined by commas, e.g. "0-1,1-2", or "x" for none.
func parseConnections(s string) ([]world.Connection, error) {
	if s == noneField {
		return nil, nil
	}
	var connections []world.Connection
	for _, pair := range strings.Split(s, ",") {
		ids := strings.Split(pair, "-")
		if len(ids) != 2 {
			return nil, fmt.Errorf("bad connection pair %q", pair)
		}
		from, err1 := strconv.Atoi(ids[0])
		to, err2 := strconv.Atoi(ids[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("bad connection pair %q", pair)
		}
		connections = append(connections, world.Connection{From: from, To: to})
	}
	return connections, nil
}
