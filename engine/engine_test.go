package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"railbot/config"
	"railbot/metrics"
	"railbot/planner"
	"railbot/protocol"
	"railbot/world"
)

// columnLayout is a width x height all-plain layout, one region per column.
func columnLayout(width, height int) world.Layout {
	tiles := make([]world.LayoutTile, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tiles[y*width+x].RegionID = x
		}
	}
	return world.Layout{MyID: 0, Width: width, Height: height, Tiles: tiles}
}

func emptySnapshot(width, height int) world.Snapshot {
	tiles := make([]world.TileState, width*height)
	for i := range tiles {
		tiles[i].Owner = world.NoOwner
	}
	return world.Snapshot{Tiles: tiles}
}

func render(t *testing.T, plan planner.Plan) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, protocol.Emit(&buf, plan))
	return strings.TrimSuffix(buf.String(), "\n")
}

func TestRunTurn(t *testing.T) {
	t.Run("identical snapshots yield byte-identical plans", func(t *testing.T) {
		first, err := New(columnLayout(4, 3), config.Default())
		require.NoError(t, err)
		second, err := New(columnLayout(4, 3), config.Default())
		require.NoError(t, err)

		snap := emptySnapshot(4, 3)
		snap.Tiles[1] = world.TileState{Owner: 1}
		snap.Tiles[5] = world.TileState{Owner: 0}

		planA, err := first.RunTurn(snap)
		require.NoError(t, err)
		planB, err := second.RunTurn(snap)
		require.NoError(t, err)

		require.Equal(t, render(t, planA), render(t, planB))
	})

	t.Run("disrupting an instability-2 region finishes it off", func(t *testing.T) {
		e, err := New(columnLayout(3, 1), config.Default())
		require.NoError(t, err)

		// Column 2 is one disruption from inked and full of opponent track.
		snap := emptySnapshot(3, 1)
		snap.Tiles[2] = world.TileState{Owner: 1, Instability: 2}

		plan, err := e.RunTurn(snap)
		require.NoError(t, err)
		require.Contains(t, render(t, plan), "DISRUPT 2",
			"the destabilized opponent region is the best disruption target")

		// The host applies the disruption: instability hits 3, the region
		// inks, and it must never be targeted again.
		next := emptySnapshot(3, 1)
		next.Tiles[2] = world.TileState{Owner: 1, Instability: 3, Inked: true}

		plan, err = e.RunTurn(next)
		require.NoError(t, err)
		require.NotContains(t, render(t, plan), "DISRUPT 2")
		require.True(t, e.World().Region(2).Inked)
	})

	t.Run("malformed snapshots abort the turn", func(t *testing.T) {
		e, err := New(columnLayout(3, 1), config.Default())
		require.NoError(t, err)

		short := emptySnapshot(2, 1)
		_, err = e.RunTurn(short)
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("loops snapshots into plans until the stream ends", func(t *testing.T) {
		e, err := New(columnLayout(2, 1), config.Default())
		require.NoError(t, err)

		// Two turns: an open board, then everything inked.
		input := "0\n0\n-1 0 0 x\n-1 0 0 x\n" +
			"1\n0\n-1 3 1 x\n-1 3 1 x\n"
		var out bytes.Buffer

		require.NoError(t, e.Run(protocol.NewReader(strings.NewReader(input)), &out))

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		require.Len(t, lines, 2, "one output line per snapshot")
		require.Equal(t, "PLACE_TRACKS 0 0;PLACE_TRACKS 1 0;DISRUPT 0", lines[0])
		require.Equal(t, "WAIT", lines[1])
	})

	t.Run("records one metric per turn when collecting", func(t *testing.T) {
		collector := metrics.NewCollector()
		e, err := New(columnLayout(2, 1), config.Default(), WithCollector(collector))
		require.NoError(t, err)

		input := "0\n0\n-1 0 0 x\n-1 0 0 x\n"
		var out bytes.Buffer
		require.NoError(t, e.Run(protocol.NewReader(strings.NewReader(input)), &out))

		turns := collector.All()
		require.Len(t, turns, 1)
		require.Equal(t, 1, turns[0].Turn)
		require.Equal(t, 2, turns[0].Placements)
		require.Equal(t, 2, turns[0].PaintSpent)
		require.True(t, turns[0].Disrupted)
		require.Equal(t, 2, turns[0].Candidates)
	})
}
