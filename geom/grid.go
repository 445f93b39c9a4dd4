package geom

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// Grid is a dense, rectangular 2D array of cells addressed by integer
// coordinates that may be negative. The grid grows in any direction
// on demand when written to with SetOrInsert, filling new cells with
// a default value.
//
// A Grid must be created with one of NewGrid, GridWithSize, or
// GridWithCoordinates.
type Grid[T any] struct {
	cells  [][]T
	w      int
	offset Point[int]
	def    T

	limit    Rect[int]
	hasLimit bool
}

// NewGrid returns a 1x1 grid at the origin containing def.
func NewGrid[T any](def T) *Grid[T] {
	return GridWithSize(1, 1, def)
}

// GridWithSize returns a width x height grid with its top-left cell
// at the origin and every cell set to def. It panics if either
// dimension is negative.
func GridWithSize[T any](width, height int, def T) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Errorf("geom: invalid grid size %vx%v", width, height))
	}

	g := Grid[T]{
		cells: make([][]T, height),
		w:     width,
		def:   def,
	}
	for i := range g.cells {
		g.cells[i] = g.newRow(width)
	}
	return &g
}

// GridWithCoordinates returns a grid covering r with every cell set
// to def. As with Bounds, r.BottomRight is one past the last cell, so
// the grid is r.Width() x r.Height() cells with its top-left cell at
// r.TopLeft.
func GridWithCoordinates[T any](r Rect[int], def T) (*Grid[T], error) {
	if !r.WellFormed() {
		return nil, fmt.Errorf("grid coordinates %v: %w", r, ErrMalformedRect)
	}

	g := GridWithSize(r.Width(), r.Height(), def)
	g.offset = r.TopLeft
	return g, nil
}

func (g *Grid[T]) newRow(n int) []T {
	row := make([]T, n)
	for i := range row {
		row[i] = g.def
	}
	return row
}

// SetMaxBounds installs a hard limit on the grid. SetOrInsert silently
// ignores any coordinate outside of r, edges included, from then on.
// It does not shrink the grid if it already extends past r.
func (g *Grid[T]) SetMaxBounds(r Rect[int]) {
	g.limit = r
	g.hasLimit = true
}

// MaxBounds returns the limit installed by SetMaxBounds, if any.
func (g *Grid[T]) MaxBounds() (Rect[int], bool) {
	return g.limit, g.hasLimit
}

// Default returns the value that new cells are filled with.
func (g *Grid[T]) Default() T {
	return g.def
}

// Width returns the number of columns in g.
func (g *Grid[T]) Width() int {
	return g.w
}

// Height returns the number of rows in g.
func (g *Grid[T]) Height() int {
	return len(g.cells)
}

// Offset returns the coordinate of the top-left cell.
func (g *Grid[T]) Offset() Point[int] {
	return g.offset
}

// Bounds returns the area covered by the grid. Unlike most Rects in
// this package, BottomRight is one past the last cell in each
// direction: it is Offset plus the grid's width and height.
func (g *Grid[T]) Bounds() Rect[int] {
	return Rect[int]{
		TopLeft:     g.offset,
		BottomRight: g.offset.Add(Pt(g.w, len(g.cells))),
	}
}

// Has reports whether (x, y) is currently backed by a cell.
func (g *Grid[T]) Has(x, y int) bool {
	x, y = x-g.offset.X, y-g.offset.Y
	return x >= 0 && x < g.w && y >= 0 && y < len(g.cells)
}

// At returns the value at (x, y).
func (g *Grid[T]) At(x, y int) (T, error) {
	p, err := g.Ptr(x, y)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ptr returns a pointer to the cell at (x, y). The pointer is only
// valid until the next call to SetOrInsert that grows the grid.
func (g *Grid[T]) Ptr(x, y int) (*T, error) {
	if !g.Has(x, y) {
		return nil, fmt.Errorf("(%v, %v) not in %v: %w", x, y, g.Bounds(), ErrOutOfBounds)
	}
	return &g.cells[y-g.offset.Y][x-g.offset.X], nil
}

// Set writes v to (x, y) without growing the grid.
func (g *Grid[T]) Set(x, y int, v T) error {
	p, err := g.Ptr(x, y)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// SetOrInsert writes v to (x, y), first growing the grid as necessary
// so that it includes that coordinate. If a limit has been installed
// with SetMaxBounds and (x, y) is outside of it, SetOrInsert does
// nothing. The returned Edges indicate which sides of the grid were
// extended.
func (g *Grid[T]) SetOrInsert(x, y int, v T) Edges {
	if g.hasLimit && !g.limit.InBounds(Pt(x, y)) {
		return EdgeNone
	}

	var grown Edges
	if !g.Has(x, y) {
		grown = g.grow(x, y)
	}
	g.cells[y-g.offset.Y][x-g.offset.X] = v
	return grown
}

// grow extends the grid to include (x, y). Each side is handled in
// turn, left, top, right, then bottom, against the bounds left by the
// previous step.
func (g *Grid[T]) grow(x, y int) (grown Edges) {
	if n := g.offset.X - x; n > 0 {
		for i, row := range g.cells {
			g.cells[i] = append(g.newRow(n), row...)
		}
		g.w += n
		g.offset.X = x
		grown |= EdgeLeft
	}

	if n := g.offset.Y - y; n > 0 {
		rows := make([][]T, n, n+len(g.cells))
		for i := range rows {
			rows[i] = g.newRow(g.w)
		}
		g.cells = append(rows, g.cells...)
		g.offset.Y = y
		grown |= EdgeTop
	}

	if n := x - (g.offset.X + g.w) + 1; n > 0 {
		for i, row := range g.cells {
			row = slices.Grow(row, n)
			for range n {
				row = append(row, g.def)
			}
			g.cells[i] = row
		}
		g.w += n
		grown |= EdgeRight
	}

	if n := y - (g.offset.Y + len(g.cells)) + 1; n > 0 {
		g.cells = slices.Grow(g.cells, n)
		for range n {
			g.cells = append(g.cells, g.newRow(g.w))
		}
		grown |= EdgeBottom
	}

	return grown
}

// Row returns an iterator over the values of row y from the left edge
// of the grid to the right. It yields nothing if y is outside of the
// grid.
func (g *Grid[T]) Row(y int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := y - g.offset.Y
		if i < 0 || i >= len(g.cells) {
			return
		}

		for _, v := range g.cells[i] {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over every cell of the grid and its
// coordinate in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point[int], T] {
	return func(yield func(Point[int], T) bool) {
		for y := g.offset.Y; y < g.offset.Y+len(g.cells); y++ {
			for i, v := range xiter.Enumerate(g.Row(y)) {
				if !yield(Pt(g.offset.X+i, y), v) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	c := *g
	c.cells = make([][]T, len(g.cells))
	for i, row := range g.cells {
		c.cells[i] = slices.Clone(row)
	}
	return &c
}
