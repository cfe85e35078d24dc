package storm

import (
	"fmt"

	"github.com/couchcryptid/bdeck-climatology/bdeck"
)

// FromRecords builds a Storm from one deck's parsed records and the
// metadata accumulated over them. The identifier and name come from
// the metadata; missing pressure or type columns stay absent.
func FromRecords(records []bdeck.Record, meta bdeck.Metadata) (*Storm, error) {
	cols := bdeck.ColumnsFrom(records)

	winds := make([]float64, len(cols.Winds))
	for i, w := range cols.Winds {
		winds[i] = float64(w)
	}
	var pressures []float64
	if cols.Pressures != nil {
		pressures = make([]float64, len(cols.Pressures))
		for i, p := range cols.Pressures {
			pressures[i] = float64(p)
		}
	}

	return New(meta.FullCode, cols.Times, cols.Lons, cols.Lats, winds, pressures, cols.Types, meta.Name)
}

// FromFile reads one storm's track from the deck file at path. All
// deck lines are retained; pass read options through opts to filter.
func FromFile(path string, opts bdeck.ReadOptions) (*Storm, error) {
	f := bdeck.NewFile(path)
	if err := f.Open(); err != nil {
		return nil, fmt.Errorf("build storm from %s: %w", path, err)
	}
	defer f.Close()

	records, meta, err := f.Read(opts)
	if err != nil {
		return nil, fmt.Errorf("build storm from %s: %w", path, err)
	}
	s, err := FromRecords(records, meta)
	if err != nil {
		return nil, fmt.Errorf("build storm from %s: %w", path, err)
	}
	if opts.Metrics != nil {
		opts.Metrics.StormsBuilt.Inc()
	}
	return s, nil
}
