// Package storm models a single tropical cyclone track: position,
// intensity, and type code columns under one ATCF identity, with
// derived climatology (season assignment, accumulated cyclone energy,
// kinematics) computed lazily and cached.
//
// A Storm is immutable once built. Construction copies its input
// columns; operations that reshape a track (SelectWithin,
// Interpolate) return a new Storm and leave the receiver untouched.
// Accessors hand out the underlying slices for zero-copy iteration,
// so callers must not modify them.
package storm

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/couchcryptid/bdeck-climatology/julian"
)

// tropicalTypes are the raw deck type codes that count as tropical.
// Matching happens before reclassification, which is why the
// class-style codes TY, HU, and ST appear here.
var tropicalTypes = map[string]bool{
	"TD": true,
	"TS": true,
	"TY": true,
	"HU": true,
	"ST": true,
}

// northernBasins are the ATCF basin codes whose season is the
// calendar year the track starts in.
var northernBasins = map[string]bool{
	"WP": true,
	"EP": true,
	"CP": true,
	"AL": true,
	"IO": true,
}

// IsTropical reports whether a raw type code counts as tropical.
func IsTropical(stype string) bool {
	return tropicalTypes[stype]
}

// IsSynoptic reports whether t falls on a main synoptic hour (00, 06,
// 12, or 18 UTC).
func IsSynoptic(t time.Time) bool {
	return t.Hour()%6 == 0
}

// Storm is one cyclone's best track.
type Storm struct {
	atcfID string
	name   string

	times     []time.Time
	lons      []float64
	lats      []float64
	winds     []float64
	pressures []float64 // nil when the source carried no pressure column
	types     []string  // nil when the source carried no type column
	mjds      []float64

	continuous   bool
	subset       bool
	interpolated bool

	season   func() int
	maxWind  func() float64
	dailyACE func() map[int]BasinACE
	totalACE func() float64
	movement func() movement
	tropical func() tropicalBounds
}

// New builds a Storm from column data. atcfID is the short ATCF
// identifier, basin code plus number ("WP14"). The columns must share
// one length of at least one sample; pressures and types may instead
// be nil when the source had none. Timestamps are converted to UTC
// and must be non-decreasing. All columns are copied.
func New(atcfID string, times []time.Time, lons, lats, winds, pressures []float64, types []string, name string) (*Storm, error) {
	n := len(times)
	if n == 0 {
		return nil, errors.New("storm: empty track")
	}
	if len(lons) != n || len(lats) != n || len(winds) != n {
		return nil, fmt.Errorf("storm: column lengths differ: %d times, %d lons, %d lats, %d winds",
			n, len(lons), len(lats), len(winds))
	}
	if pressures != nil && len(pressures) != n {
		return nil, fmt.Errorf("storm: pressure column length %d, want %d", len(pressures), n)
	}
	if types != nil && len(types) != n {
		return nil, fmt.Errorf("storm: type column length %d, want %d", len(types), n)
	}
	if len(atcfID) < 3 {
		return nil, fmt.Errorf("storm: malformed ATCF identifier %q", atcfID)
	}
	if _, err := strconv.Atoi(atcfID[2:]); err != nil {
		return nil, fmt.Errorf("storm: malformed ATCF identifier %q", atcfID)
	}

	utc := make([]time.Time, n)
	for i, t := range times {
		utc[i] = t.UTC()
		if i > 0 && utc[i].Before(utc[i-1]) {
			return nil, fmt.Errorf("storm: timestamps out of order at index %d", i)
		}
	}

	s := &Storm{
		atcfID:     atcfID,
		name:       name,
		times:      utc,
		lons:       slices.Clone(lons),
		lats:       slices.Clone(lats),
		winds:      slices.Clone(winds),
		pressures:  slices.Clone(pressures),
		types:      slices.Clone(types),
		continuous: true,
	}
	s.finish()
	return s, nil
}

// derive builds a Storm sharing this one's identity over new columns.
// The columns are owned by the callee; derived constructors build
// fresh slices and hand them over.
func (s *Storm) derive(times []time.Time, lons, lats, winds, pressures []float64, types []string) *Storm {
	ns := &Storm{
		atcfID:     s.atcfID,
		name:       s.name,
		times:      times,
		lons:       lons,
		lats:       lats,
		winds:      winds,
		pressures:  pressures,
		types:      types,
		continuous: true,
	}
	ns.finish()
	return ns
}

// finish precomputes the MJD axis and arms the lazy derived values.
func (s *Storm) finish() {
	s.mjds = make([]float64, len(s.times))
	for i, t := range s.times {
		s.mjds[i] = julian.FromTime(t)
	}

	s.season = sync.OnceValue(s.computeSeason)
	s.maxWind = sync.OnceValue(s.computeMaxWind)
	s.dailyACE = sync.OnceValue(s.computeDailyACE)
	s.totalACE = sync.OnceValue(s.computeTotalACE)
	s.movement = sync.OnceValue(s.computeMovement)
	s.tropical = sync.OnceValue(s.computeTropicalBounds)
}

// ATCFID returns the short identifier, basin code plus number.
func (s *Storm) ATCFID() string { return s.atcfID }

// Name returns the storm's name, empty when unnamed.
func (s *Storm) Name() string { return s.name }

// Len returns the number of track samples.
func (s *Storm) Len() int { return len(s.times) }

// Times returns the track timestamps in UTC.
func (s *Storm) Times() []time.Time { return s.times }

// Lons returns the longitude column, west negative.
func (s *Storm) Lons() []float64 { return s.lons }

// Lats returns the latitude column.
func (s *Storm) Lats() []float64 { return s.lats }

// Winds returns the sustained wind column in knots.
func (s *Storm) Winds() []float64 { return s.winds }

// Pressures returns the pressure column in millibars, nil when the
// source carried none.
func (s *Storm) Pressures() []float64 { return s.pressures }

// Types returns the raw type code column, nil when the source carried
// none.
func (s *Storm) Types() []string { return s.types }

// MJDs returns the Modified Julian Date of every sample, the axis
// interpolation and daily bucketing run on.
func (s *Storm) MJDs() []float64 { return s.mjds }

// StartTime returns the first track timestamp.
func (s *Storm) StartTime() time.Time { return s.times[0] }

// EndTime returns the last track timestamp.
func (s *Storm) EndTime() time.Time { return s.times[len(s.times)-1] }

// Continuous reports whether the samples are gap-free with respect to
// the track they were selected from. Fresh storms are continuous.
func (s *Storm) Continuous() bool { return s.continuous }

// Subset reports whether this storm is a strict subset of another
// track's samples.
func (s *Storm) Subset() bool { return s.subset }

// Interpolated reports whether the samples come from resampling
// rather than the source deck.
func (s *Storm) Interpolated() bool { return s.interpolated }

// ATCFBasin returns the two-letter basin code of the identifier.
func (s *Storm) ATCFBasin() string { return s.atcfID[:2] }

// ATCFNumber returns the cyclone number of the identifier.
func (s *Storm) ATCFNumber() int {
	n, _ := strconv.Atoi(s.atcfID[2:])
	return n
}

// Season returns the year this storm is accounted under.
func (s *Storm) Season() int { return s.season() }

// FullATCFID returns the identifier qualified by season, e.g.
// "WP142016".
func (s *Storm) FullATCFID() string {
	return fmt.Sprintf("%s%d", s.atcfID, s.Season())
}

// MaxWind returns the peak sustained wind in knots.
func (s *Storm) MaxWind() float64 { return s.maxWind() }

func (s *Storm) computeMaxWind() float64 {
	return floats.Max(s.winds)
}

func (s *Storm) computeSeason() int {
	startYear := s.times[0].Year()
	endYear := s.times[len(s.times)-1].Year()

	if startYear == endYear {
		if northernBasins[s.ATCFBasin()] {
			return startYear
		}
		// Southern hemisphere seasons are named for the year they
		// end in: a July start already belongs to the next year.
		if s.times[0].Month() >= time.July {
			return startYear + 1
		}
		return startYear
	}

	// Year-crossing track. The first couple of numbers of a season
	// belong to the year it ends in; the modulus keeps renumbered and
	// invest identifiers (60+, 90+) with their start year.
	if s.ATCFNumber()%60 < 3 {
		return endYear
	}
	return startYear
}

// tropicalBounds brackets the tropical phase of a track. A nil type
// column brackets the whole track; a track whose codes are never
// tropical has neither bound.
type tropicalBounds struct {
	start, end       time.Time
	hasStart, hasEnd bool
}

func (s *Storm) computeTropicalBounds() tropicalBounds {
	if s.types == nil {
		return tropicalBounds{
			start: s.StartTime(), end: s.EndTime(),
			hasStart: true, hasEnd: true,
		}
	}

	var tb tropicalBounds
	for i, st := range s.types {
		if tropicalTypes[st] {
			tb.start, tb.hasStart = s.times[i], true
			break
		}
	}
	for i := len(s.types) - 1; i >= 0; i-- {
		if tropicalTypes[s.types[i]] {
			tb.end, tb.hasEnd = s.times[i], true
			break
		}
	}
	return tb
}

// StartTimeTropical returns the first tropical sample's time. ok is
// false when the track has type codes but none of them are tropical.
func (s *Storm) StartTimeTropical() (time.Time, bool) {
	tb := s.tropical()
	return tb.start, tb.hasStart
}

// EndTimeTropical returns the last tropical sample's time. ok is
// false when the track has type codes but none of them are tropical.
func (s *Storm) EndTimeTropical() (time.Time, bool) {
	tb := s.tropical()
	return tb.end, tb.hasEnd
}

// TropicalInterval returns both tropical bounds at once.
func (s *Storm) TropicalInterval() (start, end time.Time, ok bool) {
	tb := s.tropical()
	if !tb.hasStart || !tb.hasEnd {
		return time.Time{}, time.Time{}, false
	}
	return tb.start, tb.end, true
}
