package geom

// A Circle is a center point and a radius.
type Circle[T Scalar] struct {
	Center Point[T]
	Radius T
}

// Circ is shorthand for Circle[T]{center, radius}.
func Circ[T Scalar](center Point[T], radius T) Circle[T] {
	return Circle[T]{center, radius}
}

// Bounds returns the bounding box of c. The y axis of the result
// points upwards: TopLeft is (Center.X-Radius, Center.Y+Radius) and
// BottomRight is (Center.X+Radius, Center.Y-Radius), so the returned
// Rect is not well-formed for a positive radius. Call Canon on the
// result before using it with InBounds.
func (c Circle[T]) Bounds() Rect[T] {
	return Rect[T]{
		TopLeft:     Pt(c.Center.X-c.Radius, c.Center.Y+c.Radius),
		BottomRight: Pt(c.Center.X+c.Radius, c.Center.Y-c.Radius),
	}
}
