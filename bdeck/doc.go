// Package bdeck parses ATCF best-track ("b-deck") files into typed
// track records.
//
// # Data Source
//
// Best-track files are the post-season reanalysis decks maintained by
// the tropical cyclone warning centers (NHC and JTWC), one file per
// storm, named like bwp142016.dat. Each line is one fix: a
// comma-separated snapshot of position and intensity at a synoptic
// time. Lines within a file are ordered by timestamp.
//
// # Line Layout
//
// Fields are positional. The ones this package reads:
//
//	 0  basin            two letters, e.g. "WP", "AL"
//	 1  storm number     annual cyclone number within the basin
//	 2  timestamp        YYYYMMDDHH, UTC
//	 3  technum          objective technique sorting number
//	 4  tech             acronym of the reporting technique, "BEST" here
//	 5  tau              forecast period in hours, 0 for best tracks
//	 6  latitude         tenths of degrees with hemisphere suffix: "142N" = 14.2
//	 7  longitude        tenths of degrees with suffix; "W" gives west-negative
//	 8  wind             maximum sustained wind in knots
//	 9  pressure         minimum sea level pressure in millibars
//	10  type code        storm type, e.g. "TS", "TY", "EX"
//	13-16  wind radii    quadrant radii in nautical miles, NE SE SW NW
//	17  LCI pressure     pressure of the last closed isobar in millibars
//	18  LCI radius       radius of the last closed isobar in nautical miles
//	19  RMW              radius of maximum winds in nautical miles
//	27  name             storm name, upper case
//	28  depth            system depth: D (deep), M (medium), S (shallow)
//
// Decks come in two vintages. Older files stop after the type code;
// modern files carry the full field set. A line with more than 20
// comma-separated fields is treated as long format, decided per line,
// and only long-format lines yield radii, LCI, RMW, name, and depth.
//
// # Continuation Lines
//
// Long-format decks repeat a fix at higher wind thresholds to carry
// the corresponding radii. When a fix reports at least 50 kt, the
// next line restates it with the 50-kt radii; above 64 kt, one more
// line follows with the 64-kt radii. The reader consumes these
// continuation lines eagerly: a consumed line whose timestamp does
// not match the fix it should extend is discarded, the fix keeps nil
// radii for that threshold, and reading moves on. See [Parse].
//
// # Type Codes
//
// Most type codes pass through as-is (TD, TS, EX, SS, SD, LO, DB...).
// The codes TY, HU, ST, and MH name a storm class rather than an
// intensity step, so records carrying them (or no code at all) are
// reclassified from wind speed onto the C1-C5 ladder by
// [ClassifyCategory].
//
// # Unknown Values
//
// Numeric fields that are empty or unparseable become the sentinel
// -999 rather than failing the record; latitude and longitude, stored
// in tenths, surface it as -99.9. A malformed line never aborts a
// read.
//
// # Metadata
//
// Alongside the records, a read accumulates per-file [Metadata]: peak
// wind and the times it occurred, minimum pressure, the storm's name
// as of its peak, and the combined ATCF identifier (basin plus
// zero-padded number, e.g. "WP14").
package bdeck
