package storm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/bdeck-climatology/julian"
)

var testStart = time.Date(2016, time.September, 9, 0, 0, 0, 0, time.UTC)

// steps builds n timestamps a fixed interval apart.
func steps(start time.Time, interval time.Duration, n int) []time.Time {
	ts := make([]time.Time, n)
	for i := range ts {
		ts[i] = start.Add(time.Duration(i) * interval)
	}
	return ts
}

// testTrack is a typed west-Pacific track peaking at 90 kt, with an
// extratropical final sample.
func testTrack(t *testing.T) *Storm {
	t.Helper()
	s, err := New("WP14",
		steps(testStart, 6*time.Hour, 8),
		[]float64{141.1, 140.0, 138.9, 137.6, 136.6, 135.5, 134.3, 133.4},
		[]float64{13.6, 13.9, 14.2, 14.8, 15.4, 16.2, 17.0, 18.0},
		[]float64{35, 45, 55, 75, 90, 90, 55, 35},
		[]float64{1000, 996, 985, 970, 950, 950, 985, 1000},
		[]string{"TS", "TS", "TS", "TY", "TY", "TY", "TS", "EX"},
		"MERANTI")
	require.NoError(t, err)
	return s
}

// spanStorm is a bare two-sample track for season and interval tests.
func spanStorm(t *testing.T, id string, start, end time.Time) *Storm {
	t.Helper()
	s, err := New(id, []time.Time{start, end},
		[]float64{140, 141}, []float64{15, 16}, []float64{35, 40}, nil, nil, "")
	require.NoError(t, err)
	return s
}

func TestNewValidation(t *testing.T) {
	times := steps(testStart, 6*time.Hour, 2)
	lons := []float64{140, 141}
	lats := []float64{15, 16}
	winds := []float64{35, 40}

	tests := []struct {
		name string
		err  string
		call func() (*Storm, error)
	}{
		{
			name: "empty track",
			err:  "empty track",
			call: func() (*Storm, error) {
				return New("WP14", nil, nil, nil, nil, nil, nil, "")
			},
		},
		{
			name: "column length mismatch",
			err:  "column lengths differ",
			call: func() (*Storm, error) {
				return New("WP14", times, lons[:1], lats, winds, nil, nil, "")
			},
		},
		{
			name: "pressure length mismatch",
			err:  "pressure column length",
			call: func() (*Storm, error) {
				return New("WP14", times, lons, lats, winds, []float64{1000}, nil, "")
			},
		},
		{
			name: "type length mismatch",
			err:  "type column length",
			call: func() (*Storm, error) {
				return New("WP14", times, lons, lats, winds, nil, []string{"TS"}, "")
			},
		},
		{
			name: "identifier too short",
			err:  "malformed ATCF identifier",
			call: func() (*Storm, error) {
				return New("W", times, lons, lats, winds, nil, nil, "")
			},
		},
		{
			name: "identifier number not numeric",
			err:  "malformed ATCF identifier",
			call: func() (*Storm, error) {
				return New("WPXX", times, lons, lats, winds, nil, nil, "")
			},
		},
		{
			name: "timestamps out of order",
			err:  "timestamps out of order",
			call: func() (*Storm, error) {
				return New("WP14", []time.Time{times[1], times[0]}, lons, lats, winds, nil, nil, "")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.call()
			require.Error(t, err)
			assert.Nil(t, s)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestNewCopiesColumns(t *testing.T) {
	lons := []float64{140, 141}
	s, err := New("WP14", steps(testStart, 6*time.Hour, 2),
		lons, []float64{15, 16}, []float64{35, 40}, nil, nil, "")
	require.NoError(t, err)

	lons[0] = 0
	assert.Equal(t, []float64{140, 141}, s.Lons())
}

func TestNewNormalizesToUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	local := time.Date(2016, time.September, 8, 19, 0, 0, 0, est)

	s := spanStorm(t, "AL09", local, local.Add(6*time.Hour))

	assert.Equal(t, time.UTC, s.StartTime().Location())
	assert.True(t, s.StartTime().Equal(local))
	assert.Equal(t, testStart, s.StartTime())
}

func TestIdentity(t *testing.T) {
	s := testTrack(t)

	assert.Equal(t, "WP14", s.ATCFID())
	assert.Equal(t, "WP", s.ATCFBasin())
	assert.Equal(t, 14, s.ATCFNumber())
	assert.Equal(t, "WP142016", s.FullATCFID())
	assert.Equal(t, "MERANTI", s.Name())
	assert.Equal(t, 8, s.Len())
	assert.Equal(t, testStart, s.StartTime())
	assert.Equal(t, testStart.Add(42*time.Hour), s.EndTime())
	assert.Equal(t, float64(90), s.MaxWind())

	assert.True(t, s.Continuous())
	assert.False(t, s.Subset())
	assert.False(t, s.Interpolated())
}

func TestMJDAxis(t *testing.T) {
	s := testTrack(t)

	mjds := s.MJDs()
	require.Len(t, mjds, s.Len())
	for i, tm := range s.Times() {
		assert.Equal(t, julian.FromTime(tm), mjds[i])
	}
}

func TestSeason(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		start, end time.Time
		want       int
	}{
		{
			name:  "northern basin same year",
			id:    "WP14",
			start: time.Date(2016, time.September, 9, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2016, time.September, 15, 0, 0, 0, 0, time.UTC),
			want:  2016,
		},
		{
			name:  "atlantic same year",
			id:    "AL09",
			start: time.Date(1997, time.July, 17, 0, 0, 0, 0, time.UTC),
			end:   time.Date(1997, time.July, 19, 0, 0, 0, 0, time.UTC),
			want:  1997,
		},
		{
			name:  "southern hemisphere before july",
			id:    "SH05",
			start: time.Date(2017, time.February, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2017, time.February, 10, 0, 0, 0, 0, time.UTC),
			want:  2017,
		},
		{
			name:  "southern hemisphere july onward",
			id:    "SH02",
			start: time.Date(2016, time.November, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2016, time.December, 5, 0, 0, 0, 0, time.UTC),
			want:  2017,
		},
		{
			name:  "year crossing low number lands after",
			id:    "SH02",
			start: time.Date(2016, time.December, 28, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2017, time.January, 3, 0, 0, 0, 0, time.UTC),
			want:  2017,
		},
		{
			name:  "year crossing regular number lands before",
			id:    "SH10",
			start: time.Date(2016, time.December, 28, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2017, time.January, 3, 0, 0, 0, 0, time.UTC),
			want:  2016,
		},
		{
			name:  "year crossing renumbered track wraps modulus",
			id:    "WP62",
			start: time.Date(2016, time.December, 28, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2017, time.January, 3, 0, 0, 0, 0, time.UTC),
			want:  2017,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := spanStorm(t, tt.id, tt.start, tt.end)
			assert.Equal(t, tt.want, s.Season())
		})
	}
}

func TestTropicalBounds(t *testing.T) {
	t.Run("typed track brackets tropical phase", func(t *testing.T) {
		s := testTrack(t)

		start, ok := s.StartTimeTropical()
		require.True(t, ok)
		assert.Equal(t, testStart, start)

		end, ok := s.EndTimeTropical()
		require.True(t, ok)
		assert.Equal(t, testStart.Add(36*time.Hour), end)
	})

	t.Run("extratropical edges are trimmed", func(t *testing.T) {
		times := steps(testStart, 6*time.Hour, 4)
		s, err := New("AL01", times,
			[]float64{-50, -51, -52, -53}, []float64{30, 31, 32, 33},
			[]float64{40, 45, 45, 40}, nil,
			[]string{"EX", "TS", "TY", "EX"}, "")
		require.NoError(t, err)

		start, end, ok := s.TropicalInterval()
		require.True(t, ok)
		assert.Equal(t, times[1], start)
		assert.Equal(t, times[2], end)
	})

	t.Run("never tropical has no bounds", func(t *testing.T) {
		times := steps(testStart, 6*time.Hour, 2)
		s, err := New("AL01", times,
			[]float64{-50, -51}, []float64{30, 31},
			[]float64{40, 45}, nil, []string{"EX", "SS"}, "")
		require.NoError(t, err)

		_, ok := s.StartTimeTropical()
		assert.False(t, ok)
		_, ok = s.EndTimeTropical()
		assert.False(t, ok)
		_, _, ok = s.TropicalInterval()
		assert.False(t, ok)
	})

	t.Run("untyped track is tropical throughout", func(t *testing.T) {
		s := spanStorm(t, "AL03", testStart, testStart.Add(6*time.Hour))

		start, end, ok := s.TropicalInterval()
		require.True(t, ok)
		assert.Equal(t, s.StartTime(), start)
		assert.Equal(t, s.EndTime(), end)
	})
}

// Derived values are cached per storm; repeated access must agree.
func TestDerivedValuesAreStable(t *testing.T) {
	s := testTrack(t)

	assert.Equal(t, s.Season(), s.Season())
	assert.Equal(t, s.MaxWind(), s.MaxWind())
	assert.Equal(t, s.TotalACE(), s.TotalACE())
	assert.Equal(t, s.DailyACE(), s.DailyACE())

	b1, v1 := s.Movement()
	b2, v2 := s.Movement()
	assert.Equal(t, b1, b2)
	assert.Equal(t, v1, v2)
}

func TestIsTropical(t *testing.T) {
	for _, code := range []string{"TD", "TS", "TY", "HU", "ST"} {
		assert.True(t, IsTropical(code), code)
	}
	for _, code := range []string{"EX", "SS", "SD", "LO", ""} {
		assert.False(t, IsTropical(code), code)
	}
}

func TestIsSynoptic(t *testing.T) {
	assert.True(t, IsSynoptic(time.Date(2016, 9, 9, 12, 0, 0, 0, time.UTC)))
	assert.True(t, IsSynoptic(time.Date(2016, 9, 9, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsSynoptic(time.Date(2016, 9, 9, 15, 0, 0, 0, time.UTC)))
}
