// Package geom provides 2D coordinate geometry and a growable grid.
//
// It is patterned loosely after image.Rectangle and image.Point, but
// is generic over the coordinate type and uses an inclusive
// rectangle convention: a Rect contains both of its corners.
package geom

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

var (
	// ErrParse is returned when text can not be parsed as a coordinate.
	ErrParse = errors.New("geom: parse error")

	// ErrOutOfBounds is returned by Grid accessors when a coordinate
	// lies outside of the grid's current bounds.
	ErrOutOfBounds = errors.New("geom: coordinate out of bounds")

	// ErrMalformedRect is returned when a Rect's top-left corner is
	// not above and to the left of its bottom-right corner.
	ErrMalformedRect = errors.New("geom: malformed rectangle")
)

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var buf []byte
	for _, edge := range []struct {
		e    Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e&edge.e == 0 {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, edge.name...)
	}
	return string(buf)
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
