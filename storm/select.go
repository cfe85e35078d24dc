package storm

import (
	"time"

	"github.com/couchcryptid/bdeck-climatology/geo"
)

// boundaryTolerance buffers polygon selection outward so samples
// sitting on an edge are not lost to floating-point error.
const boundaryTolerance = 0.01

// SelectWithin returns a new Storm holding exactly the samples whose
// position lies inside poly, buffered outward by a small tolerance.
// ok is false when no sample matches. The result's subset flag is set
// once fewer than all samples survive, and its continuity is cleared
// once a gap opens between selected indices.
func (s *Storm) SelectWithin(poly geo.Polygon) (ns *Storm, ok bool) {
	var idx []int
	for i := range s.lons {
		if poly.ContainsBuffered(geo.Point{Lon: s.lons[i], Lat: s.lats[i]}, boundaryTolerance) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil, false
	}
	return s.subsetAt(idx), true
}

// subsetAt builds a Storm from the samples at the given ascending
// indices.
func (s *Storm) subsetAt(idx []int) *Storm {
	n := len(idx)
	times := make([]time.Time, n)
	lons := make([]float64, n)
	lats := make([]float64, n)
	winds := make([]float64, n)
	var pressures []float64
	if s.pressures != nil {
		pressures = make([]float64, n)
	}
	var types []string
	if s.types != nil {
		types = make([]string, n)
	}

	continuous := true
	for j, i := range idx {
		if j > 0 && i-idx[j-1] > 1 {
			continuous = false
		}
		times[j] = s.times[i]
		lons[j] = s.lons[i]
		lats[j] = s.lats[i]
		winds[j] = s.winds[i]
		if pressures != nil {
			pressures[j] = s.pressures[i]
		}
		if types != nil {
			types[j] = s.types[i]
		}
	}

	ns := s.derive(times, lons, lats, winds, pressures, types)
	ns.continuous = s.continuous && continuous
	ns.subset = s.subset || n < len(s.times)
	ns.interpolated = s.interpolated
	return ns
}
