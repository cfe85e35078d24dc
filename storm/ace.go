package storm

import (
	"gonum.org/v1/gonum/floats"

	"github.com/couchcryptid/bdeck-climatology/julian"
)

// aceFloorKnots is the weakest wind that accrues accumulated cyclone
// energy.
const aceFloorKnots = 35

// tropicalAt reports whether sample i counts toward ACE. Tracks with
// no type column are assumed tropical throughout.
func (s *Storm) tropicalAt(i int) bool {
	if s.types == nil {
		return true
	}
	return tropicalTypes[s.types[i]]
}

// DailyACE returns accumulated cyclone energy bucketed by UTC day
// (Modified Julian Day number) and basin of occurrence. Only tropical
// samples on main synoptic hours at or above 35 kt contribute; each
// contributes wind squared times 1e-4.
func (s *Storm) DailyACE() map[int]BasinACE {
	return s.dailyACE()
}

func (s *Storm) computeDailyACE() map[int]BasinACE {
	buckets := make(map[int]BasinACE)
	for i, w := range s.winds {
		if !s.tropicalAt(i) || !IsSynoptic(s.times[i]) || w < aceFloorKnots {
			continue
		}
		day := julian.DayNumber(s.times[i])
		b := buckets[day]
		b.add(ClassifyBasin(s.lons[i], s.lats[i]), w*w*1e-4)
		buckets[day] = b
	}
	return buckets
}

// TotalACE returns the storm's accumulated cyclone energy across all
// days and basins.
func (s *Storm) TotalACE() float64 {
	return s.totalACE()
}

func (s *Storm) computeTotalACE() float64 {
	daily := s.dailyACE()
	totals := make([]float64, 0, len(daily))
	for _, b := range daily {
		totals = append(totals, b.Total())
	}
	if len(totals) == 0 {
		return 0
	}
	return floats.Sum(totals)
}
