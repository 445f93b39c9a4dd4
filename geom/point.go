package geom

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// A Point is an X, Y coordinate pair. Points are values and are never
// modified in place by the methods in this package.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{x, y}
}

// ParsePoint parses a point written as "x,y". The text is split at
// the first comma and each half must parse as a T. Whitespace around
// either half is ignored.
func ParsePoint[T Scalar](s string) (Point[T], error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point[T]{}, fmt.Errorf("%w: point %q: missing separator", ErrParse, s)
	}

	x, err := ParseScalar[T](xs)
	if err != nil {
		return Point[T]{}, fmt.Errorf("point %q: x: %w", s, err)
	}
	y, err := ParseScalar[T](ys)
	if err != nil {
		return Point[T]{}, fmt.Errorf("point %q: y: %w", s, err)
	}

	return Point[T]{x, y}, nil
}

// PConv converts a Point[In] to a Point[Out] with possible loss of
// precision.
func PConv[Out Scalar, In Scalar](p Point[In]) Point[Out] {
	return Pt(Out(p.X), Out(p.Y))
}

// Add returns the componentwise sum of p and q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y}
}

// Sub returns the componentwise difference of p and q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

// In reports whether p lies inside of r, edges included.
func (p Point[T]) In(r Rect[T]) bool {
	return r.InBounds(p)
}

// Compare orders points by Y and then by X. This is a total order
// chosen to match the order in which a Grid visits its cells, not a
// componentwise one. It returns -1, 0, or +1.
func (p Point[T]) Compare(q Point[T]) int {
	if c := cmp.Compare(p.Y, q.Y); c != 0 {
		return c
	}
	return cmp.Compare(p.X, q.X)
}

// Less reports whether p sorts before q according to Compare.
func (p Point[T]) Less(q Point[T]) bool {
	return p.Compare(q) < 0
}

// IsZero reports whether p is the origin.
func (p Point[T]) IsZero() bool {
	return (p.X == 0) && (p.Y == 0)
}

// String returns p in the same "x,y" form accepted by ParsePoint.
func (p Point[T]) String() string {
	return fmt.Sprintf("%v,%v", p.X, p.Y)
}

// MarshalText implements encoding.TextMarshaler.
func (p Point[T]) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParsePoint.
func (p *Point[T]) UnmarshalText(text []byte) error {
	v, err := ParsePoint[T](string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ManhattanDist returns the taxicab distance between p and q.
func ManhattanDist[T constraints.Signed | constraints.Float](p, q Point[T]) T {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Min returns a point made of the smallest X and smallest Y of all of
// the given points. It panics if points is empty.
func Min[T Scalar](points ...Point[T]) Point[T] {
	r := points[0]
	for _, p := range points[1:] {
		r.X = min(r.X, p.X)
		r.Y = min(r.Y, p.Y)
	}
	return r
}

// Max is like Min but for the largest coordinates.
func Max[T Scalar](points ...Point[T]) Point[T] {
	r := points[0]
	for _, p := range points[1:] {
		r.X = max(r.X, p.X)
		r.Y = max(r.Y, p.Y)
	}
	return r
}
