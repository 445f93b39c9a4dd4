// Package cave simulates sand pouring into a cave of rock paths.
package cave

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"deedles.dev/aoc2022/geom"
)

// Cell values of the grid returned by Grid.
const (
	Air   = '.'
	Rock  = '#'
	Sand  = 'o'
	Entry = '+'
)

// ErrNoRocks is returned by Parse when the input has no structures.
var ErrNoRocks = errors.New("cave: no rock structures")

// DefaultEntry is where sand enters the cave.
var DefaultEntry = geom.Pt(500, 0)

// falls lists the moves a grain of sand tries, in order.
var falls = [...]geom.Point[int]{
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: 1, Y: 1},
}

// A Cave is a slice of rock that sand is poured into from above.
type Cave struct {
	Rocks []Structure
	Entry geom.Point[int]

	bounds geom.Rect[int]
	depth  int
	rocks  *geom.Grid[rune]
	state  *geom.Grid[rune]
	floor  bool
	sand   int
}

// Parse reads one rock structure per line from r. Blank lines are
// ignored.
func Parse(r io.Reader) (*Cave, error) {
	var rocks []Structure
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}

		st, err := ParseStructure(text)
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		rocks = append(rocks, st)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read cave: %w", err)
	}

	return New(rocks, DefaultEntry)
}

// New returns a cave containing the given rocks with sand entering at
// entry.
func New(rocks []Structure, entry geom.Point[int]) (*Cave, error) {
	if len(rocks) == 0 {
		return nil, ErrNoRocks
	}

	bounds, _ := geom.MergeBounds[int](rocks...)
	depth := bounds.BottomRight.Y
	bounds = bounds.Merge(geom.Rt(entry, entry))
	bounds.TopLeft.Y = min(bounds.TopLeft.Y, 0)

	// Grid bounds exclude their bottom-right corner.
	grid, err := geom.GridWithCoordinates(geom.Rt(bounds.TopLeft, bounds.BottomRight.Add(geom.Pt(1, 1))), Air)
	if err != nil {
		return nil, err
	}
	for _, st := range rocks {
		for _, l := range st.Lines {
			for p := range l.Points() {
				grid.SetOrInsert(p.X, p.Y, Rock)
			}
		}
	}
	grid.SetOrInsert(entry.X, entry.Y, Entry)

	c := Cave{
		Rocks:  rocks,
		Entry:  entry,
		bounds: bounds,
		depth:  depth,
		rocks:  grid,
	}
	c.Reset()
	return &c, nil
}

// Bounds returns the area spanned by the rocks and the entry point,
// extended upwards to y=0.
func (c *Cave) Bounds() geom.Rect[int] {
	return c.bounds
}

// Depth returns the y coordinate of the lowest rock.
func (c *Cave) Depth() int {
	return c.depth
}

// AddFloor places an infinitely wide floor two rows below the lowest
// rock. Sand can then no longer fall out of the cave and instead piles
// up until it blocks the entry.
func (c *Cave) AddFloor() {
	c.floor = true
	c.state.SetMaxBounds(c.floorLimit())
}

// HasFloor reports whether AddFloor has been called.
func (c *Cave) HasFloor() bool {
	return c.floor
}

// floorLimit returns the area that sand can come to rest in when the
// cave has a floor. A pile can not be wider than twice its height.
func (c *Cave) floorLimit() geom.Rect[int] {
	floor := c.depth + 2
	height := floor - c.Entry.Y
	return geom.Rt(
		geom.Pt(c.Entry.X-height, c.Entry.Y),
		geom.Pt(c.Entry.X+height, floor-1),
	)
}

// Reset removes all of the sand from the cave.
func (c *Cave) Reset() {
	c.state = c.rocks.Clone()
	c.sand = 0
	if c.floor {
		c.state.SetMaxBounds(c.floorLimit())
	}
}

// Sand returns the number of grains of sand at rest in the cave.
func (c *Cave) Sand() int {
	return c.sand
}

// Occupied reports whether p is blocked by rock, sand, or the floor.
func (c *Cave) Occupied(p geom.Point[int]) bool {
	if c.floor && p.Y >= c.depth+2 {
		return true
	}

	v, err := c.state.At(p.X, p.Y)
	if err != nil {
		return false
	}
	return v == Rock || v == Sand
}

// Drop pours a single grain of sand into the cave. It returns false if
// the grain could not come to rest, either because it fell below the
// lowest rock or because the entry is already blocked. Without a
// floor, a grain that would stop at the entry itself is not counted.
func (c *Cave) Drop() bool {
	if c.Occupied(c.Entry) {
		return false
	}

	p := c.Entry
	for {
		if !c.floor && p.Y >= c.depth {
			return false
		}

		next, ok := c.fall(p)
		if !ok {
			break
		}
		p = next
	}
	if !c.floor && p == c.Entry {
		return false
	}

	c.state.SetOrInsert(p.X, p.Y, Sand)
	c.sand++
	return true
}

func (c *Cave) fall(p geom.Point[int]) (geom.Point[int], bool) {
	for _, d := range falls {
		next := p.Add(d)
		if !c.Occupied(next) {
			return next, true
		}
	}
	return p, false
}

// Fill drops sand until a grain can no longer come to rest and returns
// the total number of grains at rest.
func (c *Cave) Fill() int {
	for c.Drop() {
	}
	return c.sand
}

// Grid returns the current state of the cave. The returned grid must
// not be modified.
func (c *Cave) Grid() *geom.Grid[rune] {
	return c.state
}

// Format implements fmt.Formatter by rendering the current state of
// the cave. See geom.Grid.Format.
func (c *Cave) Format(f fmt.State, verb rune) {
	c.state.Format(f, verb)
}
