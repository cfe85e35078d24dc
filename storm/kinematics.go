package storm

import "github.com/couchcryptid/bdeck-climatology/geo"

// movement holds per-step kinematics between consecutive samples.
type movement struct {
	bearings []float64
	speeds   []float64
}

// Movement returns the initial bearing in degrees and the translation
// speed in knots for every step between consecutive samples. Both
// slices have length Len()-1; step i covers samples i and i+1. Speed
// is zero when no time elapses across a step.
func (s *Storm) Movement() (bearings, speeds []float64) {
	m := s.movement()
	return m.bearings, m.speeds
}

func (s *Storm) computeMovement() movement {
	n := len(s.times)
	m := movement{
		bearings: make([]float64, n-1),
		speeds:   make([]float64, n-1),
	}
	for i := 0; i+1 < n; i++ {
		m.bearings[i] = geo.Bearing(s.lons[i], s.lats[i], s.lons[i+1], s.lats[i+1])
		hours := s.times[i+1].Sub(s.times[i]).Hours()
		if hours > 0 {
			m.speeds[i] = geo.Distance(s.lons[i], s.lats[i], s.lons[i+1], s.lats[i+1]) / hours
		}
	}
	return m
}
