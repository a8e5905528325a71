// Package timescale converts civil (UTC) instants to Terrestrial Time and
// splits Julian Dates for precision-sensitive arithmetic.
package timescale

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// SecondsPerDay is the length of a civil day in SI seconds.
const SecondsPerDay = 86400.0

// MJDOffset is the Julian Date of the Modified Julian Date epoch.
const MJDOffset = 2400000.5

// Instant is an immutable moment in UTC stored as a two-part Julian Date:
// jd1 is the preceding midnight (ends in .5) and jd2 the fraction of the
// day in [0, 1).
type Instant struct {
	jd1, jd2 float64
}

// FromJulianDate returns the Instant for a UTC Julian Date.
func FromJulianDate(jd float64) Instant {
	return fromParts(jd, 0)
}

// FromSplit returns the Instant for a two-part UTC Julian Date. The parts
// need not be normalized.
func FromSplit(jd1, jd2 float64) Instant {
	return fromParts(jd1, jd2)
}

// FromCalendar returns the Instant for a Gregorian calendar date and time
// of day in UTC.
func FromCalendar(year, month, day, hour, minute int, second float64) Instant {
	jd1 := julian.CalendarGregorianToJD(year, month, float64(day))
	jd2 := (float64(hour)*3600 + float64(minute)*60 + second) / SecondsPerDay
	return fromParts(jd1, jd2)
}

// FromTime returns the Instant for t, converted to UTC.
func FromTime(t time.Time) Instant {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	jd1 := julian.CalendarGregorianToJD(t.Year(), int(t.Month()), float64(t.Day()))
	return fromParts(jd1, t.Sub(midnight).Seconds()/SecondsPerDay)
}

func fromParts(a, b float64) Instant {
	jd1 := math.Floor(a-0.5) + 0.5
	jd2 := (a - jd1) + b
	shift := math.Floor(jd2)
	return Instant{jd1: jd1 + shift, jd2: jd2 - shift}
}

// JulianDate returns the UTC Julian Date.
func (i Instant) JulianDate() float64 {
	return i.jd1 + i.jd2
}

// Split returns the midnight and day-fraction parts of the Julian Date.
func (i Instant) Split() (jd1, jd2 float64) {
	return i.jd1, i.jd2
}

// MJD returns the Modified Julian Date.
func (i Instant) MJD() float64 {
	return (i.jd1 - MJDOffset) + i.jd2
}

// JulianYearsSinceJ2000 returns the Julian years elapsed since J2000.0.
func (i Instant) JulianYearsSinceJ2000() float64 {
	return ((i.jd1 - 2451545.0) + i.jd2) / 365.25
}

// Calendar returns the UTC calendar date of the instant.
func (i Instant) Calendar() (year, month, day int) {
	y, m, d := julian.JDToCalendar(i.jd1)
	return y, m, int(math.Round(d))
}

// Time returns the instant as a UTC time.Time.
func (i Instant) Time() time.Time {
	y, m, d := i.Calendar()
	ns := math.Round(i.jd2 * SecondsPerDay * 1e9)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Add(time.Duration(ns))
}

// Add returns the instant shifted by d.
func (i Instant) Add(d time.Duration) Instant {
	return fromParts(i.jd1, i.jd2+d.Seconds()/SecondsPerDay)
}

// Before reports whether i is earlier than j.
func (i Instant) Before(j Instant) bool {
	return i.jd1 < j.jd1 || (i.jd1 == j.jd1 && i.jd2 < j.jd2)
}

func (i Instant) String() string {
	return i.Time().Format(time.RFC3339Nano)
}

// SplitForPrecision splits jd at the nearest half-day boundary: jd1 ends in
// .5 and jd1+jd2 == jd.
func SplitForPrecision(jd float64) (jd1, jd2 float64) {
	jd1 = math.Floor(jd) + 0.5
	return jd1, jd - jd1
}
