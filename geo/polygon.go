package geo

import "math"

// Point is a single vertex or fix in decimal degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Polygon is a closed ring of vertices. The closing edge from the last
// vertex back to the first is implicit; callers should not repeat the
// first vertex.
type Polygon []Point

// ContainsBuffered reports whether p lies inside the polygon or within
// tol degrees of its boundary. The tolerance ring absorbs the
// floating-point ambiguity of fixes sitting exactly on an edge, so a
// track point on a selection-box border still counts as selected.
//
// The edge distance is planar in degree space, which is adequate at
// the small tolerances (hundredths of a degree) selection uses.
func (pg Polygon) ContainsBuffered(p Point, tol float64) bool {
	if len(pg) < 3 {
		return false
	}
	return pg.contains(p) || pg.boundaryDistance(p) <= tol
}

// contains is an even-odd ray cast: a point is inside when a ray to
// the east crosses the boundary an odd number of times.
func (pg Polygon) contains(p Point) bool {
	inside := false
	j := len(pg) - 1
	for i := 0; i < len(pg); i++ {
		vi, vj := pg[i], pg[j]
		if (vi.Lat > p.Lat) != (vj.Lat > p.Lat) &&
			p.Lon < (vj.Lon-vi.Lon)*(p.Lat-vi.Lat)/(vj.Lat-vi.Lat)+vi.Lon {
			inside = !inside
		}
		j = i
	}
	return inside
}

// boundaryDistance returns the minimum planar distance in degrees from
// p to any polygon edge.
func (pg Polygon) boundaryDistance(p Point) float64 {
	min := math.Inf(1)
	j := len(pg) - 1
	for i := 0; i < len(pg); i++ {
		if d := segmentDistance(p, pg[j], pg[i]); d < min {
			min = d
		}
		j = i
	}
	return min
}

// segmentDistance returns the planar distance from p to the segment
// ab, clamping the projection to the segment's ends.
func segmentDistance(p, a, b Point) float64 {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.Lon-a.Lon, p.Lat-a.Lat)
	}

	t := ((p.Lon-a.Lon)*dx + (p.Lat-a.Lat)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	return math.Hypot(p.Lon-(a.Lon+t*dx), p.Lat-(a.Lat+t*dy))
}
