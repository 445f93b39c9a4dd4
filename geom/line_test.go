package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/aoc2022/geom"
	"github.com/stretchr/testify/require"
)

func TestLineOrientation(t *testing.T) {
	h := geom.Ln(geom.Pt(2, 4), geom.Pt(6, 4))
	require.True(t, h.IsHorizontal())
	require.False(t, h.IsVertical())

	v := geom.Ln(geom.Pt(3, 1), geom.Pt(3, 5))
	require.True(t, v.IsVertical())
	require.False(t, v.IsHorizontal())

	d := geom.Ln(geom.Pt(0, 0), geom.Pt(2, 2))
	require.False(t, d.IsHorizontal())
	require.False(t, d.IsVertical())
	require.False(t, d.IsAxisAligned())

	p := geom.Ln(geom.Pt(1, 1), geom.Pt(1, 1))
	require.True(t, p.IsPoint())
	require.False(t, p.IsHorizontal())
	require.False(t, p.IsVertical())
}

func TestLineOccupied(t *testing.T) {
	h := geom.Ln(geom.Pt(2, 4), geom.Pt(6, 4))
	require.True(t, h.Occupied(geom.Pt(4, 4)))
	require.True(t, h.Occupied(geom.Pt(2, 4)))
	require.True(t, h.Occupied(geom.Pt(6, 4)))
	require.False(t, h.Occupied(geom.Pt(7, 4)))
	require.False(t, h.Occupied(geom.Pt(2, 3)))

	v := geom.Ln(geom.Pt(3, 5), geom.Pt(3, 1))
	require.True(t, v.Occupied(geom.Pt(3, 3)))
	require.True(t, v.Occupied(geom.Pt(3, 1)))
	require.False(t, v.Occupied(geom.Pt(3, 6)))
	require.False(t, v.Occupied(geom.Pt(4, 3)))

	p := geom.Ln(geom.Pt(1, 1), geom.Pt(1, 1))
	require.True(t, p.Occupied(geom.Pt(1, 1)))
	require.False(t, p.Occupied(geom.Pt(1, 2)))

	d := geom.Ln(geom.Pt(0, 0), geom.Pt(2, 2))
	require.False(t, d.Occupied(geom.Pt(0, 1)))
	require.False(t, d.Occupied(geom.Pt(1, 1)))
}

func TestLineBounds(t *testing.T) {
	l := geom.Ln(geom.Pt(498, 6), geom.Pt(496, 6))
	require.Equal(t, geom.Rt(geom.Pt(496, 6), geom.Pt(498, 6)), l.Bounds())

	l = geom.Ln(geom.Pt(5, 9), geom.Pt(1, 2))
	require.Equal(t, geom.Rt(geom.Pt(1, 2), geom.Pt(5, 9)), l.Bounds())
}

func TestLinePoints(t *testing.T) {
	l := geom.Ln(geom.Pt(498, 6), geom.Pt(496, 6))
	require.Equal(t, []geom.Point[int]{
		geom.Pt(498, 6),
		geom.Pt(497, 6),
		geom.Pt(496, 6),
	}, slices.Collect(l.Points()))

	l = geom.Ln(geom.Pt(2, 0), geom.Pt(2, 2))
	require.Equal(t, []geom.Point[int]{
		geom.Pt(2, 0),
		geom.Pt(2, 1),
		geom.Pt(2, 2),
	}, slices.Collect(l.Points()))

	l = geom.Ln(geom.Pt(7, 7), geom.Pt(7, 7))
	require.Equal(t, []geom.Point[int]{geom.Pt(7, 7)}, slices.Collect(l.Points()))

	l = geom.Ln(geom.Pt(0, 0), geom.Pt(3, 3))
	require.Empty(t, slices.Collect(l.Points()))

	u := geom.Ln(geom.Pt[uint](2, 0), geom.Pt[uint](0, 0))
	require.Len(t, slices.Collect(u.Points()), 3)

	for _, p := range slices.Collect(geom.Ln(geom.Pt(4, 1), geom.Pt(4, 9)).Points()) {
		require.True(t, geom.Ln(geom.Pt(4, 1), geom.Pt(4, 9)).Occupied(p), p)
	}
}
