// Package julian converts between time.Time and Modified Julian Date.
//
// Best-track climatology keys its daily accumulators by whole MJD day
// numbers, which makes cross-year arithmetic (day-of-season offsets,
// leap-day folding) plain integer math instead of calendar juggling.
// MJD 0 corresponds to 1858-11-17 00:00 UTC.
package julian

import (
	"math"
	"time"
)

// mjdEpochOffset is the Julian Date of the MJD epoch.
const mjdEpochOffset = 2400000.5

// FromTime converts t to a Modified Julian Date. The time is read on
// the UTC clock; fractional days carry hours down to nanoseconds.
//
// The calendar-to-JD step follows Meeus, Astronomical Algorithms,
// chapter 7, and is exact for any Gregorian date after 1582.
func FromTime(t time.Time) float64 {
	t = t.UTC()

	year := t.Year()
	month := int(t.Month())
	day := t.Day()
	if month <= 2 {
		year--
		month += 12
	}

	a := year / 100
	b := 2 - a + a/4

	jd := math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + float64(b) - 1524.5

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3.6e12) / 24

	return jd + dayFrac - mjdEpochOffset
}

// ToTime converts a Modified Julian Date back to a UTC time.Time.
//
// The JD-to-calendar step is the integer algorithm of Fliegel and
// Van Flandern (1968). Sub-day precision is recovered to the
// nanosecond, so FromTime and ToTime round-trip within clock
// resolution.
func ToTime(mjd float64) time.Time {
	jd := mjd + mjdEpochOffset

	jdInt := int(math.Floor(jd))
	frac := jd - float64(jdInt) + 0.5
	if frac >= 1.0 {
		jdInt++
		frac -= 1.0
	}

	hour := int(frac * 24)
	frac = frac*24 - float64(hour)
	minute := int(frac * 60)
	frac = frac*60 - float64(minute)
	second := int(frac * 60)
	frac = frac*60 - float64(second)
	nanosecond := int(frac * 1e9)

	l := jdInt + 68569
	n := 4 * l / 146097
	l -= (146097*n + 3) / 4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	day := l - 2447*j/80
	l = j / 11
	month := j + 2 - 12*l
	year := 100*(n-49) + i + l

	return time.Date(year, time.Month(month), day, hour, minute, second, nanosecond, time.UTC)
}

// DayNumber returns the whole MJD day containing t, the bucket key
// used by daily accumulators. Days roll over at 00:00 UTC.
func DayNumber(t time.Time) int {
	return int(math.Floor(FromTime(t)))
}
