package geom_test

import (
	"testing"

	"deedles.dev/aoc2022/geom"
	"github.com/stretchr/testify/require"
)

func TestRectSize(t *testing.T) {
	r := geom.Rt(geom.Pt(-5, 2), geom.Pt(5, 10))
	require.Equal(t, 10, r.Width())
	require.Equal(t, 8, r.Height())
	require.Equal(t, geom.Pt(10, 8), r.Size())
	require.True(t, r.WellFormed())
}

func TestRectInBounds(t *testing.T) {
	r := geom.Rt(geom.Pt(494, 0), geom.Pt(503, 9))
	require.True(t, r.InBounds(r.TopLeft))
	require.True(t, r.InBounds(r.BottomRight))
	require.True(t, r.InBounds(geom.Pt(500, 0)))
	require.True(t, geom.Pt(494, 9).In(r))
	require.False(t, r.InBounds(geom.Pt(493, 5)))
	require.False(t, r.InBounds(geom.Pt(500, 10)))
	require.False(t, r.InBounds(geom.Pt(500, -1)))
}

func TestRectMerge(t *testing.T) {
	a := geom.Rt(geom.Pt(0, 0), geom.Pt(4, 4))
	b := geom.Rt(geom.Pt(2, -3), geom.Pt(9, 1))
	c := geom.Rt(geom.Pt(-6, 2), geom.Pt(-1, 8))

	want := geom.Rt(geom.Pt(0, -3), geom.Pt(9, 4))
	require.Equal(t, want, a.Merge(b))
	require.Equal(t, a.Merge(b), b.Merge(a))
	require.Equal(t, a.Merge(b).Merge(c), a.Merge(b.Merge(c)))
	require.Equal(t, a, a.Merge(a))
}

func TestRectMergeMalformed(t *testing.T) {
	r := geom.Rt(geom.Pt(5, 5), geom.Pt(-5, -5))
	require.False(t, r.WellFormed())
	require.Equal(t, geom.Rt(geom.Pt(-5, -5), geom.Pt(5, 5)), r.Merge(r))
	require.Equal(t, r.Merge(r), r.Canon())
}

func TestMergeBounds(t *testing.T) {
	_, ok := geom.MergeBounds[int, geom.Line[int]]()
	require.False(t, ok)

	lines := []geom.Line[int]{
		geom.Ln(geom.Pt(498, 4), geom.Pt(498, 6)),
		geom.Ln(geom.Pt(498, 6), geom.Pt(496, 6)),
	}
	r, ok := geom.MergeBounds[int](lines...)
	require.True(t, ok)
	require.Equal(t, geom.Rt(geom.Pt(496, 4), geom.Pt(498, 6)), r)

	require.True(t, geom.Contains[int](r, geom.Pt(497, 5)))
	require.False(t, geom.Contains[int](lines[0], geom.Pt(497, 5)))
}
