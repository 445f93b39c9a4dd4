package cave

import (
	"fmt"
	"strings"

	"deedles.dev/aoc2022/geom"
)

// A Structure is a path of rock made of connected straight lines.
type Structure struct {
	Lines []geom.Line[int]
}

// ParseStructure parses a path written as a list of points separated
// by arrows, such as
//
//	498,4 -> 498,6 -> 496,6
//
// Consecutive points become the lines of the structure.
func ParseStructure(s string) (Structure, error) {
	parts := strings.Split(s, "->")
	if len(parts) < 2 {
		return Structure{}, fmt.Errorf("%w: structure %q: need at least two points", geom.ErrParse, s)
	}

	points := make([]geom.Point[int], 0, len(parts))
	for _, part := range parts {
		p, err := geom.ParsePoint[int](part)
		if err != nil {
			return Structure{}, fmt.Errorf("structure %q: %w", s, err)
		}
		points = append(points, p)
	}

	lines := make([]geom.Line[int], 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		l := geom.Ln(points[i-1], points[i])
		if !l.IsAxisAligned() {
			return Structure{}, fmt.Errorf("%w: structure %q: diagonal segment %v -> %v", geom.ErrParse, s, l.Start, l.End)
		}
		lines = append(lines, l)
	}

	return Structure{Lines: lines}, nil
}

// Occupied reports whether any line of s passes through p.
func (s Structure) Occupied(p geom.Point[int]) bool {
	for _, l := range s.Lines {
		if l.Occupied(p) {
			return true
		}
	}
	return false
}

func (s Structure) Bounds() geom.Rect[int] {
	r, _ := geom.MergeBounds[int](s.Lines...)
	return r
}
