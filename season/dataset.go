// Package season aggregates storms into per-year climatology: daily
// and cumulative accumulated cyclone energy across a target year, and
// detection of temporal overlaps between concurrent storms.
package season

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/couchcryptid/bdeck-climatology/bdeck"
	"github.com/couchcryptid/bdeck-climatology/julian"
	"github.com/couchcryptid/bdeck-climatology/observability"
	"github.com/couchcryptid/bdeck-climatology/storm"
)

var (
	// ErrNoSeasonData means neither the queried year nor its two
	// neighbors hold any storms.
	ErrNoSeasonData = errors.New("season: no data for year or its neighbors")

	// ErrSeasonNotFound means the queried year holds no storms.
	ErrSeasonNotFound = errors.New("season: year not in dataset")
)

// Options configures dataset construction.
type Options struct {
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return observability.Discard()
}

// Dataset indexes storms by season year and by full identifier. It
// holds non-owning references and is read-only after construction.
type Dataset struct {
	seasons map[int][]*storm.Storm
	storms  map[string]*storm.Storm
	logger  *slog.Logger
}

// New partitions storms by their derived season year and indexes each
// by full identifier.
func New(storms []*storm.Storm, opts Options) *Dataset {
	start := time.Now()
	d := &Dataset{
		seasons: make(map[int][]*storm.Storm),
		storms:  make(map[string]*storm.Storm, len(storms)),
		logger:  opts.logger(),
	}
	for _, s := range storms {
		year := s.Season()
		d.seasons[year] = append(d.seasons[year], s)
		d.storms[s.FullATCFID()] = s
	}

	d.logger.Info("dataset built", "storms", len(d.storms), "seasons", len(d.seasons))
	if opts.Metrics != nil {
		opts.Metrics.DatasetStorms.Set(float64(len(d.storms)))
		opts.Metrics.DatasetBuildDuration.Observe(time.Since(start).Seconds())
	}
	return d
}

// FromFiles builds one storm per deck file and assembles the dataset.
// The first unreadable file fails the whole batch.
func FromFiles(paths []string, ropts bdeck.ReadOptions, opts Options) (*Dataset, error) {
	ss := make([]*storm.Storm, 0, len(paths))
	for _, path := range paths {
		s, err := storm.FromFile(path, ropts)
		if err != nil {
			return nil, err
		}
		ss = append(ss, s)
	}
	return New(ss, opts), nil
}

// Len returns the number of stored storms.
func (d *Dataset) Len() int { return len(d.storms) }

// Seasons returns the stored season years in ascending order.
func (d *Dataset) Seasons() []int {
	years := make([]int, 0, len(d.seasons))
	for y := range d.seasons {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// GetStorm looks a storm up by its full identifier, e.g. "WP142016".
func (d *Dataset) GetStorm(fullID string) (*storm.Storm, bool) {
	s, ok := d.storms[fullID]
	return s, ok
}

// ACEOptions narrows an ACE query.
type ACEOptions struct {
	// PushLeapDay folds the Feb 29 slot into Mar 1 in leap years, so
	// day indexes line up across years.
	PushLeapDay bool

	// Basin restricts accumulation to one basin of occurrence.
	Basin *storm.Basin
}

// DailyACE returns accumulated cyclone energy per day of the given
// year, index 0 at Jan 1. Storms of the year and of both adjacent
// seasons are scanned, so energy spilling across a year boundary
// lands on the right days.
func (d *Dataset) DailyACE(year int, opts ACEOptions) ([]float64, error) {
	known := false
	for y := year - 1; y <= year+1; y++ {
		if _, ok := d.seasons[y]; ok {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %d", ErrNoSeasonData, year)
	}

	size := 365
	if isLeap(year) {
		size = 366
	}
	daily := make([]float64, size)
	base := julian.DayNumber(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))

	for y := year - 1; y <= year+1; y++ {
		for _, s := range d.seasons[y] {
			for day, b := range s.DailyACE() {
				offset := day - base
				if offset < 0 || offset >= size {
					continue
				}
				if opts.Basin != nil {
					daily[offset] += b.Get(*opts.Basin)
				} else {
					daily[offset] += b.Total()
				}
			}
		}
	}

	if opts.PushLeapDay && isLeap(year) {
		daily[59] += daily[60]
		daily = slices.Delete(daily, 60, 61)
	}
	return daily, nil
}

// CumulativeACE returns the running sum of DailyACE over the year.
func (d *Dataset) CumulativeACE(year int, opts ACEOptions) ([]float64, error) {
	daily, err := d.DailyACE(year, opts)
	if err != nil {
		return nil, err
	}
	return floats.CumSum(make([]float64, len(daily)), daily), nil
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
