package geom

// A Bounder is anything with an axis-aligned bounding box.
type Bounder[T Scalar] interface {
	Bounds() Rect[T]
}

// MergeBounds returns the merged, well-formed bounding box of all of
// the given shapes. It returns false if shapes is empty.
func MergeBounds[T Scalar, B Bounder[T]](shapes ...B) (Rect[T], bool) {
	if len(shapes) == 0 {
		return Rect[T]{}, false
	}

	r := shapes[0].Bounds().Canon()
	for _, s := range shapes[1:] {
		r = r.Merge(s.Bounds())
	}
	return r, true
}

// Contains reports whether p lies within the bounding box of b.
func Contains[T Scalar](b Bounder[T], p Point[T]) bool {
	return b.Bounds().InBounds(p)
}
