package season

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Overlap is one span during which two or more storms coexist.
type Overlap struct {
	Start    time.Time
	End      time.Time
	StormIDs []string
}

// OverlapOptions narrows overlap detection.
type OverlapOptions struct {
	// TropicalOnly compares tropical phases instead of whole tracks.
	// Storms with no tropical phase are excluded.
	TropicalOnly bool

	// ATCFBasin keeps only storms whose identifier carries this
	// basin code. Case-insensitive; empty keeps all.
	ATCFBasin string
}

// interval is one storm's comparison window.
type interval struct {
	id         string
	start, end time.Time
}

// OverlappingStorms returns every span of the given season during
// which at least two storms coexist, in time order. Each span carries
// the identifiers of the storms active across it.
func (d *Dataset) OverlappingStorms(year int, opts OverlapOptions) ([]Overlap, error) {
	ss, ok := d.seasons[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSeasonNotFound, year)
	}

	basin := strings.ToUpper(opts.ATCFBasin)
	var ivs []interval
	for _, s := range ss {
		if basin != "" && s.ATCFBasin() != basin {
			continue
		}
		iv := interval{id: s.FullATCFID(), start: s.StartTime(), end: s.EndTime()}
		if opts.TropicalOnly {
			start, end, ok := s.TropicalInterval()
			if !ok {
				continue
			}
			iv.start, iv.end = start, end
		}
		ivs = append(ivs, iv)
	}

	return sweep(ivs), nil
}

// boundary is one end of an interval, tagged with its interval index.
type boundary struct {
	t     time.Time
	end   bool
	index int
}

// sweep walks interval boundaries in time order, starts before ends
// on ties, and emits one overlap span for every stretch where at
// least two intervals are active.
func sweep(ivs []interval) []Overlap {
	bounds := make([]boundary, 0, 2*len(ivs))
	for i, iv := range ivs {
		bounds = append(bounds, boundary{t: iv.start, index: i})
		bounds = append(bounds, boundary{t: iv.end, end: true, index: i})
	}
	sort.SliceStable(bounds, func(i, j int) bool {
		if !bounds[i].t.Equal(bounds[j].t) {
			return bounds[i].t.Before(bounds[j].t)
		}
		return !bounds[i].end && bounds[j].end
	})

	active := make(map[int]bool)
	var (
		overlaps []Overlap
		spanFrom time.Time
		open     bool
	)
	for _, b := range bounds {
		// Close the running span before the active set changes.
		if open && b.t.After(spanFrom) {
			overlaps = append(overlaps, Overlap{
				Start:    spanFrom,
				End:      b.t,
				StormIDs: activeIDs(ivs, active),
			})
		}
		if b.end {
			delete(active, b.index)
		} else {
			active[b.index] = true
		}
		if len(active) >= 2 {
			spanFrom = b.t
			open = true
		} else {
			open = false
		}
	}
	return overlaps
}

// activeIDs lists the active interval identifiers in input order.
func activeIDs(ivs []interval, active map[int]bool) []string {
	ids := make([]string, 0, len(active))
	for i, iv := range ivs {
		if active[i] {
			ids = append(ids, iv.id)
		}
	}
	return ids
}
