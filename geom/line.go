package geom

import "iter"

// A Line is a straight segment between two points, both included.
type Line[T Scalar] struct {
	Start, End Point[T]
}

// Ln is shorthand for Line[T]{start, end}.
func Ln[T Scalar](start, end Point[T]) Line[T] {
	return Line[T]{start, end}
}

// IsHorizontal reports whether l runs along the x axis.
func (l Line[T]) IsHorizontal() bool {
	return l.Start.Y == l.End.Y && l.Start.X != l.End.X
}

// IsVertical reports whether l runs along the y axis.
func (l Line[T]) IsVertical() bool {
	return l.Start.X == l.End.X && l.Start.Y != l.End.Y
}

// IsPoint reports whether l starts and ends at the same point.
func (l Line[T]) IsPoint() bool {
	return l.Start == l.End
}

// IsAxisAligned reports whether l is horizontal, vertical, or a
// single point.
func (l Line[T]) IsAxisAligned() bool {
	return l.Start.X == l.End.X || l.Start.Y == l.End.Y
}

// Occupied reports whether p lies on l. Only axis-aligned lines are
// supported; Occupied always returns false for a diagonal line.
func (l Line[T]) Occupied(p Point[T]) bool {
	switch {
	case l.IsHorizontal():
		return p.Y == l.Start.Y &&
			min(l.Start.X, l.End.X) <= p.X && p.X <= max(l.Start.X, l.End.X)
	case l.IsAxisAligned():
		return p.X == l.Start.X &&
			min(l.Start.Y, l.End.Y) <= p.Y && p.Y <= max(l.Start.Y, l.End.Y)
	default:
		return false
	}
}

// Bounds returns the smallest well-formed Rect containing l.
func (l Line[T]) Bounds() Rect[T] {
	return Rect[T]{
		TopLeft:     Min(l.Start, l.End),
		BottomRight: Max(l.Start, l.End),
	}
}

// Points returns an iterator over the unit-spaced points of an
// axis-aligned line from Start to End, both included. Nothing is
// yielded for a diagonal line. For floating-point lines, iteration
// stops at the last point that does not overshoot End.
func (l Line[T]) Points() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if !l.IsAxisAligned() {
			return
		}

		p := l.Start
		for {
			if !yield(p) {
				return
			}

			switch {
			case p.X < l.End.X:
				p.X++
				if p.X > l.End.X {
					return
				}
			case p.X > l.End.X:
				p.X--
				if p.X < l.End.X {
					return
				}
			case p.Y < l.End.Y:
				p.Y++
				if p.Y > l.End.Y {
					return
				}
			case p.Y > l.End.Y:
				p.Y--
				if p.Y < l.End.Y {
					return
				}
			default:
				return
			}
		}
	}
}
