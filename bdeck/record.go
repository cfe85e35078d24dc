package bdeck

import "time"

// Sentinel is the value numeric fields take when the source text is
// empty or unparseable. Latitude and longitude fields, which the deck
// stores in tenths of degrees, surface it as Sentinel/10.
const Sentinel = -999

// Radii holds quadrant wind radii in nautical miles for one wind
// threshold, in the deck's NE, SE, SW, NW order.
type Radii struct {
	NE int
	SE int
	SW int
	NW int
}

// Record is one parsed best-track fix.
type Record struct {
	Basin   string    // two-letter ATCF basin code, e.g. "WP"
	Number  int       // annual cyclone number within the basin
	Time    time.Time // synoptic time, UTC
	TimeRaw string    // timestamp exactly as written, YYYYMMDDHH

	TechNum  string
	TechCode string // "BEST" for best tracks
	Tau      int    // forecast period in hours, 0 for best tracks

	Lat  float64 // degrees north
	Lon  float64 // degrees east, west negative
	Wind int     // maximum sustained wind, knots

	// Category is the intensity label after reclassification: the
	// source type code when it is specific, otherwise a wind-derived
	// rung of the TD/TS/C1-C5 ladder. RawCategory preserves the
	// source code; nil means the line had no type field at all.
	Category    string
	RawCategory *string

	// Pressure is the minimum sea level pressure in millibars; nil
	// when the line stopped before the pressure field.
	Pressure *int

	// LongFormat marks lines with the modern full field set. The
	// fields below it are only populated on long-format lines.
	LongFormat bool

	R34 *Radii // gale-force radii, nil below 35 kt
	R50 *Radii // storm-force radii from the continuation line
	R64 *Radii // typhoon-force radii from the second continuation line

	LCIPressure int // pressure of the last closed isobar, millibars
	LCIRadius   int // radius of the last closed isobar, nautical miles
	RMW         int // radius of maximum winds, nautical miles

	Name  string
	Depth string // D, M, or S
}

// Metadata is the per-file summary accumulated across one read.
type Metadata struct {
	// Name is the storm's name as of its strongest fix. Later fixes
	// that merely tie the peak do not change it.
	Name string

	// MaxWind is the highest wind seen, and PeakTimes every synoptic
	// time that reported it, in file order.
	MaxWind   int
	PeakTimes []time.Time

	// MinPressure is the lowest pressure seen, 9999 when no fix
	// carried one.
	MinPressure int

	// FullCode is the combined ATCF identifier, basin plus
	// zero-padded number, e.g. "WP14". The last fix wins.
	FullCode string

	// ReadAt stamps when the read finished.
	ReadAt time.Time
}
