package storm

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/couchcryptid/bdeck-climatology/julian"
)

var (
	// ErrDiscontinuousTrack rejects interpolation across a selection
	// gap.
	ErrDiscontinuousTrack = errors.New("storm: track is not continuous")

	// ErrNonPositiveInterval rejects a zero or negative resampling
	// interval.
	ErrNonPositiveInterval = errors.New("storm: resampling interval must be positive")
)

// Interpolate resamples the track onto a uniform time grid starting
// at StartTime and stepping by interval up to EndTime. Longitude,
// latitude, wind, and pressure interpolate linearly on the MJD axis;
// the type column snaps to the nearest sample. The storm must be
// continuous and the interval positive. The result is flagged
// interpolated.
func (s *Storm) Interpolate(interval time.Duration) (*Storm, error) {
	if !s.continuous {
		return nil, ErrDiscontinuousTrack
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrNonPositiveInterval, interval)
	}

	var grid []time.Time
	for t := s.StartTime(); !t.After(s.EndTime()); t = t.Add(interval) {
		grid = append(grid, t)
	}

	n := len(grid)
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

	for i, t := range grid {
		m := julian.FromTime(t)
		lons[i] = interpLinear(s.mjds, s.lons, m)
		lats[i] = interpLinear(s.mjds, s.lats, m)
		winds[i] = interpLinear(s.mjds, s.winds, m)
		if pressures != nil {
			pressures[i] = interpLinear(s.mjds, s.pressures, m)
		}
		if types != nil {
			types[i] = s.types[nearestIndex(s.mjds, m)]
		}
	}

	ns := s.derive(grid, lons, lats, winds, pressures, types)
	ns.subset = s.subset
	ns.interpolated = true
	return ns, nil
}

// interpLinear evaluates the piecewise-linear function through
// (xs[i], ys[i]) at x, extrapolating from the end segments outside
// the domain. xs must be sorted ascending; an exact hit on a
// duplicated x takes the first matching sample.
func interpLinear(xs, ys []float64, x float64) float64 {
	if len(xs) == 1 {
		return ys[0]
	}
	j := sort.SearchFloat64s(xs, x)
	if j < len(xs) && xs[j] == x {
		return ys[j]
	}
	switch j {
	case 0:
		j = 1
	case len(xs):
		j = len(xs) - 1
	}
	x0, x1 := xs[j-1], xs[j]
	if x1 == x0 {
		return ys[j-1]
	}
	t := (x - x0) / (x1 - x0)
	return ys[j-1] + t*(ys[j]-ys[j-1])
}

// nearestIndex returns the index of the axis value closest to x,
// preferring the earlier sample on a halfway tie.
func nearestIndex(xs []float64, x float64) int {
	j := sort.SearchFloat64s(xs, x)
	if j == 0 {
		return 0
	}
	if j == len(xs) {
		return len(xs) - 1
	}
	if x-xs[j-1] <= xs[j]-x {
		return j - 1
	}
	return j
}
