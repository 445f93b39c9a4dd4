package sensor

import (
	"cmp"
	"slices"

	"deedles.dev/aoc2022/geom"
)

// TuningMultiplier scales the x coordinate in TuningFrequency.
const TuningMultiplier = 4000000

// coverage returns the merged, sorted spans of row y covered by the
// sensors. Spans that touch or overlap are joined.
func coverage(sensors []Sensor, y int) []geom.Line[int] {
	spans := make([]geom.Line[int], 0, len(sensors))
	for _, s := range sensors {
		if span, ok := s.Span(y); ok {
			spans = append(spans, span)
		}
	}
	slices.SortFunc(spans, func(a, b geom.Line[int]) int {
		return cmp.Compare(a.Start.X, b.Start.X)
	})

	merged := spans[:0]
	for _, span := range spans {
		if n := len(merged); n > 0 && span.Start.X <= merged[n-1].End.X+1 {
			merged[n-1].End.X = max(merged[n-1].End.X, span.End.X)
			continue
		}
		merged = append(merged, span)
	}
	return merged
}

// CoveredInRow returns the number of positions in row y at which a
// beacon can not be present.
func CoveredInRow(sensors []Sensor, y int) int {
	spans := coverage(sensors, y)

	var total int
	for _, span := range spans {
		total += span.End.X - span.Start.X + 1
	}

	beacons := make(map[geom.Point[int]]struct{})
	for _, s := range sensors {
		if s.Beacon.Y != y {
			continue
		}
		if _, ok := beacons[s.Beacon]; ok {
			continue
		}
		beacons[s.Beacon] = struct{}{}
		for _, span := range spans {
			if span.Occupied(s.Beacon) {
				total--
				break
			}
		}
	}

	return total
}

// FindGap searches the square from (0, 0) to (limit, limit) for the
// one position that none of the sensors cover.
func FindGap(sensors []Sensor, limit int) (geom.Point[int], bool) {
	for y := 0; y <= limit; y++ {
		x := 0
		for _, span := range coverage(sensors, y) {
			if span.Start.X > x {
				break
			}
			x = max(x, span.End.X+1)
			if x > limit {
				break
			}
		}
		if x <= limit {
			return geom.Pt(x, y), true
		}
	}
	return geom.Point[int]{}, false
}

// TuningFrequency returns the tuning frequency of a distress beacon at
// p.
func TuningFrequency(p geom.Point[int]) int {
	return p.X*TuningMultiplier + p.Y
}
