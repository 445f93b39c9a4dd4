package cave_test

import (
	"fmt"
	"strings"
	"testing"

	"deedles.dev/aoc2022/geom"
	"deedles.dev/aoc2022/internal/cave"
	"github.com/stretchr/testify/require"
)

const example = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
`

func TestParseStructure(t *testing.T) {
	s, err := cave.ParseStructure("498,4 -> 498,6 -> 496,6")
	require.NoError(t, err)
	require.Equal(t, []geom.Line[int]{
		geom.Ln(geom.Pt(498, 4), geom.Pt(498, 6)),
		geom.Ln(geom.Pt(498, 6), geom.Pt(496, 6)),
	}, s.Lines)
	require.Equal(t, geom.Rt(geom.Pt(496, 4), geom.Pt(498, 6)), s.Bounds())
}

func TestParseStructureInvalid(t *testing.T) {
	for _, in := range []string{"", "498,4", "498,4 -> x,6", "498,4 -> 500,6", "498,4 ->"} {
		t.Run(in, func(t *testing.T) {
			_, err := cave.ParseStructure(in)
			require.ErrorIs(t, err, geom.ErrParse)
		})
	}
}

func TestStructureOccupied(t *testing.T) {
	s, err := cave.ParseStructure("498,4 -> 498,6 -> 496,6")
	require.NoError(t, err)

	for _, p := range []geom.Point[int]{
		geom.Pt(498, 5),
		geom.Pt(498, 4),
		geom.Pt(498, 6),
		geom.Pt(497, 6),
	} {
		require.True(t, s.Occupied(p), p)
	}
	for _, p := range []geom.Point[int]{
		geom.Pt(498, 3),
		geom.Pt(498, 7),
		geom.Pt(495, 6),
		geom.Pt(499, 4),
		geom.Pt(499, 3),
		geom.Pt(493, 9),
	} {
		require.False(t, s.Occupied(p), p)
	}
}

func TestParse(t *testing.T) {
	c, err := cave.Parse(strings.NewReader(example))
	require.NoError(t, err)
	require.Len(t, c.Rocks, 2)
	require.Equal(t, 9, c.Depth())
	require.Equal(t, geom.Rt(geom.Pt(494, 0), geom.Pt(503, 9)), c.Bounds())
	require.True(t, c.Bounds().InBounds(cave.DefaultEntry))

	_, err = cave.Parse(strings.NewReader("\n\n"))
	require.ErrorIs(t, err, cave.ErrNoRocks)

	_, err = cave.Parse(strings.NewReader("1,1 -> 1,2\nbad\n"))
	require.ErrorIs(t, err, geom.ErrParse)
	require.ErrorContains(t, err, "line 2")
}

func TestFill(t *testing.T) {
	c, err := cave.Parse(strings.NewReader(example))
	require.NoError(t, err)
	require.Equal(t, 24, c.Fill())
	require.False(t, c.Drop())

	c.Reset()
	require.Equal(t, 0, c.Sand())
	c.AddFloor()
	require.True(t, c.HasFloor())
	require.Equal(t, 93, c.Fill())
	require.True(t, c.Occupied(c.Entry))
}

func TestFillBlockedEntry(t *testing.T) {
	c, err := cave.Parse(strings.NewReader("499,0 -> 499,2 -> 501,2 -> 501,0\n"))
	require.NoError(t, err)
	require.Equal(t, 1, c.Fill())
	require.False(t, c.Occupied(c.Entry))

	c.Reset()
	c.AddFloor()
	require.Equal(t, 2, c.Fill())
	require.True(t, c.Occupied(c.Entry))
}

func TestRender(t *testing.T) {
	c, err := cave.Parse(strings.NewReader(example))
	require.NoError(t, err)
	require.Equal(t, ""+
		"......+...\n"+
		"..........\n"+
		"..........\n"+
		"..........\n"+
		"....#...##\n"+
		"....#...#.\n"+
		"..###...#.\n"+
		"........#.\n"+
		"........#.\n"+
		"#########.\n",
		fmt.Sprint(c),
	)

	c.Fill()
	require.Equal(t, ""+
		"......+...\n"+
		"..........\n"+
		"......o...\n"+
		".....ooo..\n"+
		"....#ooo##\n"+
		"...o#ooo#.\n"+
		"..###ooo#.\n"+
		"....oooo#.\n"+
		".o.ooooo#.\n"+
		"#########.\n",
		fmt.Sprint(c),
	)
}
