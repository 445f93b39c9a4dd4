// Package sensor locates beacons from sensor readings. Every sensor
// reports the beacon closest to it by Manhattan distance, so no other
// beacon can lie within that distance of the sensor.
package sensor

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"deedles.dev/aoc2022/geom"
)

var coordExpr = regexp.MustCompile(`[xy]=(-?\d+)`)

// A Sensor is a sensor position and the position of the beacon
// nearest to it.
type Sensor struct {
	Pos, Beacon geom.Point[int]
}

// ParseSensor parses a reading of the form
//
//	Sensor at x=2, y=18: closest beacon is at x=-2, y=15
func ParseSensor(line string) (Sensor, error) {
	m := coordExpr.FindAllStringSubmatch(line, -1)
	if len(m) != 4 {
		return Sensor{}, fmt.Errorf("%w: sensor %q: expected 4 coordinates, found %v", geom.ErrParse, line, len(m))
	}

	var v [4]int
	for i := range v {
		n, err := geom.ParseScalar[int](m[i][1])
		if err != nil {
			return Sensor{}, fmt.Errorf("sensor %q: %w", line, err)
		}
		v[i] = n
	}

	return Sensor{
		Pos:    geom.Pt(v[0], v[1]),
		Beacon: geom.Pt(v[2], v[3]),
	}, nil
}

// Parse reads one sensor per line from r. Blank lines are ignored.
func Parse(r io.Reader) ([]Sensor, error) {
	var sensors []Sensor
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}

		sensor, err := ParseSensor(text)
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		sensors = append(sensors, sensor)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read sensors: %w", err)
	}
	return sensors, nil
}

// Radius returns the distance from s to its beacon.
func (s Sensor) Radius() int {
	return geom.ManhattanDist(s.Pos, s.Beacon)
}

// Circle returns the area covered by s as a circle in the Manhattan
// metric.
func (s Sensor) Circle() geom.Circle[int] {
	return geom.Circ(s.Pos, s.Radius())
}

// Bounds returns the well-formed bounding box of the area covered by
// s.
func (s Sensor) Bounds() geom.Rect[int] {
	return s.Circle().Bounds().Canon()
}

// Covers reports whether p is within the radius of s.
func (s Sensor) Covers(p geom.Point[int]) bool {
	return geom.ManhattanDist(s.Pos, p) <= s.Radius()
}

// Span returns the line of cells in row y that s covers.
func (s Sensor) Span(y int) (geom.Line[int], bool) {
	dx := s.Radius() - geom.Abs(y-s.Pos.Y)
	if dx < 0 {
		return geom.Line[int]{}, false
	}
	return geom.Ln(geom.Pt(s.Pos.X-dx, y), geom.Pt(s.Pos.X+dx, y)), true
}

// Bounds returns the merged bounding box of the areas covered by all
// of the sensors.
func Bounds(sensors []Sensor) (geom.Rect[int], bool) {
	return geom.MergeBounds[int](sensors...)
}

// Plot marks every sensor with 'S' and every beacon with 'B' on a
// grid that grows to fit them. The grid always includes the origin.
func Plot(sensors []Sensor) *geom.Grid[rune] {
	g := geom.NewGrid('.')
	for _, s := range sensors {
		g.SetOrInsert(s.Pos.X, s.Pos.Y, 'S')
		g.SetOrInsert(s.Beacon.X, s.Beacon.Y, 'B')
	}
	return g
}
