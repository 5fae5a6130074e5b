package protocol

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"railbot/planner"
	"railbot/world"
)

const initFixture = `0
2
2
0 0
0 1
1 2
1 3
2
0 0 0 1
1 1 1 x
`

func TestReadLayout(t *testing.T) {
	t.Run("parses the full initialization snapshot", func(t *testing.T) {
		layout, err := NewReader(strings.NewReader(initFixture)).ReadLayout()
		require.NoError(t, err)

		require.Equal(t, 0, layout.MyID)
		require.Equal(t, 2, layout.Width)
		require.Equal(t, 2, layout.Height)
		require.Equal(t, []world.LayoutTile{
			{RegionID: 0, Terrain: world.Plain},
			{RegionID: 0, Terrain: world.River},
			{RegionID: 1, Terrain: world.Mountain},
			{RegionID: 1, Terrain: world.POI},
		}, layout.Tiles)
		require.Equal(t, []world.TownSpec{
			{ID: 0, At: world.Coord{X: 0, Y: 0}, Desired: []int{1}},
			{ID: 1, At: world.Coord{X: 1, Y: 1}},
		}, layout.Towns)
	})

	t.Run("rejects malformed tile lines", func(t *testing.T) {
		_, err := NewReader(strings.NewReader("0\n2\n1\n0 0\n0 banana\n0\n")).ReadLayout()
		require.Error(t, err)
		require.Contains(t, err.Error(), "tile 1 0")
	})

	t.Run("rejects unknown terrain", func(t *testing.T) {
		_, err := NewReader(strings.NewReader("0\n1\n1\n0 9\n0\n")).ReadLayout()
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown terrain")
	})

	t.Run("rejects truncated input", func(t *testing.T) {
		_, err := NewReader(strings.NewReader("0\n3\n3\n0 0\n")).ReadLayout()
		require.Error(t, err)
	})
}

func TestReadSnapshot(t *testing.T) {
	t.Run("parses owners, instability, ink, and connections", func(t *testing.T) {
		input := "5\n3\n-1 0 0 x\n1 2 0 0-1,1-2\n2 3 1 x\n0 0 0 0-1\n"
		snap, err := NewReader(strings.NewReader(input)).ReadSnapshot(2, 2)
		require.NoError(t, err)

		require.Equal(t, 5, snap.MyScore)
		require.Equal(t, 3, snap.FoeScore)
		require.Equal(t, []world.TileState{
			{Owner: world.NoOwner},
			{Owner: 1, Instability: 2, Connections: []world.Connection{{From: 0, To: 1}, {From: 1, To: 2}}},
			{Owner: world.Neutral, Instability: 3, Inked: true},
			{Owner: 0, Connections: []world.Connection{{From: 0, To: 1}}},
		}, snap.Tiles)
	})

	t.Run("clean end of stream is io.EOF", func(t *testing.T) {
		_, err := NewReader(strings.NewReader("")).ReadSnapshot(2, 2)
		require.Equal(t, io.EOF, err)
	})

	t.Run("truncation mid-snapshot is an error, not EOF", func(t *testing.T) {
		_, err := NewReader(strings.NewReader("5\n3\n-1 0 0 x\n")).ReadSnapshot(2, 2)
		require.Error(t, err)
		require.NotEqual(t, io.EOF, err)
	})

	t.Run("rejects malformed connection pairs", func(t *testing.T) {
		_, err := NewReader(strings.NewReader("0\n0\n-1 0 0 0-1-2\n")).ReadSnapshot(1, 1)
		require.Error(t, err)
		require.Contains(t, err.Error(), "connection pair")
	})
}

func TestEmit(t *testing.T) {
	t.Run("joins actions with semicolons", func(t *testing.T) {
		var buf bytes.Buffer
		plan := planner.Plan{
			planner.PlaceTracks{At: world.Coord{X: 4, Y: 2}},
			planner.PlaceTracks{At: world.Coord{X: 5, Y: 2}},
			planner.Disrupt{RegionID: 7},
		}
		require.NoError(t, Emit(&buf, plan))
		require.Equal(t, "PLACE_TRACKS 4 2;PLACE_TRACKS 5 2;DISRUPT 7\n", buf.String())
	})

	t.Run("empty plan degrades to WAIT", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Emit(&buf, nil))
		require.Equal(t, "WAIT\n", buf.String())
	})

	t.Run("explicit no-op renders WAIT", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Emit(&buf, planner.Plan{planner.Wait{}}))
		require.Equal(t, "WAIT\n", buf.String())
	})
}
