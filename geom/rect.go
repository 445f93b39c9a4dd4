package geom

import "fmt"

// A Rect is an axis-aligned box described by two corners. Unlike
// image.Rectangle, both corners are part of the rectangle: it
// contains the points with
//
//	TopLeft.X <= X <= BottomRight.X
//	TopLeft.Y <= Y <= BottomRight.Y
//
// A Rect is well-formed if TopLeft is not below or to the right of
// BottomRight. Rects are stored exactly as given and are not
// normalized on construction; use Canon to obtain a well-formed copy.
type Rect[T Scalar] struct {
	TopLeft, BottomRight Point[T]
}

// Rt is shorthand for Rect[T]{tl, br}.
func Rt[T Scalar](tl, br Point[T]) Rect[T] {
	return Rect[T]{tl, br}
}

// RConv converts a Rect[In] to a Rect[Out] with possible loss of
// precision.
func RConv[Out Scalar, In Scalar](r Rect[In]) Rect[Out] {
	return Rect[Out]{
		TopLeft:     PConv[Out](r.TopLeft),
		BottomRight: PConv[Out](r.BottomRight),
	}
}

// Width returns BottomRight.X - TopLeft.X.
func (r Rect[T]) Width() T {
	return r.BottomRight.X - r.TopLeft.X
}

// Height returns BottomRight.Y - TopLeft.Y.
func (r Rect[T]) Height() T {
	return r.BottomRight.Y - r.TopLeft.Y
}

// Size returns the width and height of r as a Point.
func (r Rect[T]) Size() Point[T] {
	return Pt(r.Width(), r.Height())
}

// WellFormed reports whether the corners of r are in order.
func (r Rect[T]) WellFormed() bool {
	return r.TopLeft.X <= r.BottomRight.X && r.TopLeft.Y <= r.BottomRight.Y
}

// Canon returns a copy of r with its coordinates swapped as necessary
// so that it is well-formed.
func (r Rect[T]) Canon() Rect[T] {
	if r.BottomRight.X < r.TopLeft.X {
		r.TopLeft.X, r.BottomRight.X = r.BottomRight.X, r.TopLeft.X
	}
	if r.BottomRight.Y < r.TopLeft.Y {
		r.TopLeft.Y, r.BottomRight.Y = r.BottomRight.Y, r.TopLeft.Y
	}
	return r
}

// InBounds reports whether p lies inside of r, edges included.
func (r Rect[T]) InBounds(p Point[T]) bool {
	return r.TopLeft.X <= p.X && p.X <= r.BottomRight.X &&
		r.TopLeft.Y <= p.Y && p.Y <= r.BottomRight.Y
}

// Merge returns the smallest rectangle that covers all four corners
// of both r and s. The result is always well-formed.
func (r Rect[T]) Merge(s Rect[T]) Rect[T] {
	return Rect[T]{
		TopLeft:     Min(r.TopLeft, r.BottomRight, s.TopLeft, s.BottomRight),
		BottomRight: Max(r.TopLeft, r.BottomRight, s.TopLeft, s.BottomRight),
	}
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{r.TopLeft.Add(p), r.BottomRight.Add(p)}
}

// Bounds returns r, making every Rect a Bounder.
func (r Rect[T]) Bounds() Rect[T] {
	return r
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("(%v)-(%v)", r.TopLeft, r.BottomRight)
}
