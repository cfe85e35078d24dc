package bdeck

import "time"

// Columns is the column-major form of a record slice, index-aligned
// on Times. It is the shape the storm package consumes.
type Columns struct {
	Times []time.Time
	Lons  []float64
	Lats  []float64
	Winds []int

	// Pressures is nil when no record carried a pressure field.
	// When some records did and some did not, missing entries are
	// padded with Sentinel to keep the column aligned.
	Pressures []int

	// Types carries the raw source type codes, not the reclassified
	// categories: downstream tropical checks match on TY, HU, and ST.
	// Nil when no record carried a type field; in a mixed deck,
	// records without one contribute an empty string.
	Types []string
}

// ColumnsFrom pivots records from row-major to column-major. An empty
// record slice yields all-nil columns.
func ColumnsFrom(records []Record) Columns {
	if len(records) == 0 {
		return Columns{}
	}

	cols := Columns{
		Times: make([]time.Time, len(records)),
		Lons:  make([]float64, len(records)),
		Lats:  make([]float64, len(records)),
		Winds: make([]int, len(records)),
	}

	hasPressure, hasType := false, false
	for _, rec := range records {
		if rec.Pressure != nil {
			hasPressure = true
		}
		if rec.RawCategory != nil {
			hasType = true
		}
	}
	if hasPressure {
		cols.Pressures = make([]int, len(records))
	}
	if hasType {
		cols.Types = make([]string, len(records))
	}

	for i, rec := range records {
		cols.Times[i] = rec.Time
		cols.Lons[i] = rec.Lon
		cols.Lats[i] = rec.Lat
		cols.Winds[i] = rec.Wind

		if hasPressure {
			if rec.Pressure != nil {
				cols.Pressures[i] = *rec.Pressure
			} else {
				cols.Pressures[i] = Sentinel
			}
		}
		if hasType {
			cols.Types[i] = derefOrEmpty(rec.RawCategory)
		}
	}

	return cols
}
