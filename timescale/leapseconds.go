package timescale

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"gopkg.in/yaml.v3"
)

// LeapSecond is one row of the TAI−UTC history: Offset seconds apply from
// the given UTC date onward.
type LeapSecond struct {
	Year   int
	Month  int
	Day    int
	Offset float64
	mjd    float64
}

// LeapSecondTable is an immutable, versioned TAI−UTC history sorted by
// date. It is safe for concurrent use.
type LeapSecondTable struct {
	version string
	entries []LeapSecond
}

// NewLeapSecondTable validates entries and returns a table. Entries must be
// strictly increasing in date and non-decreasing in offset.
func NewLeapSecondTable(version string, entries []LeapSecond) (*LeapSecondTable, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("leap second table %q: no entries", version)
	}
	out := make([]LeapSecond, len(entries))
	for i, e := range entries {
		if e.Month < 1 || e.Month > 12 || e.Day < 1 || e.Day > 31 {
			return nil, fmt.Errorf("leap second table %q: entry %d: invalid date %04d-%02d-%02d",
				version, i, e.Year, e.Month, e.Day)
		}
		e.mjd = mjdOfDate(e.Year, e.Month, e.Day)
		if i > 0 {
			prev := out[i-1]
			if e.mjd <= prev.mjd {
				return nil, fmt.Errorf("leap second table %q: entry %d: date %04d-%02d-%02d not after previous entry",
					version, i, e.Year, e.Month, e.Day)
			}
			if e.Offset < prev.Offset {
				return nil, fmt.Errorf("leap second table %q: entry %d: offset %g decreases from %g",
					version, i, e.Offset, prev.Offset)
			}
		}
		out[i] = e
	}
	return &LeapSecondTable{version: version, entries: out}, nil
}

// Version returns the table's version label.
func (t *LeapSecondTable) Version() string {
	return t.version
}

// Entries returns a copy of the table rows.
func (t *LeapSecondTable) Entries() []LeapSecond {
	return append([]LeapSecond(nil), t.entries...)
}

// Offset returns TAI−UTC in seconds in effect on the given UTC date. Dates
// before the first entry return the earliest offset.
func (t *LeapSecondTable) Offset(year, month, day int) float64 {
	return t.offsetMJD(mjdOfDate(year, month, day))
}

// OffsetAt returns TAI−UTC in seconds in effect at the given UTC Julian Date.
func (t *LeapSecondTable) OffsetAt(jdUTC float64) float64 {
	return t.offsetMJD(math.Floor(jdUTC - MJDOffset))
}

func (t *LeapSecondTable) offsetMJD(mjd float64) float64 {
	// First entry strictly after mjd; the one before it is in effect.
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].mjd > mjd
	})
	if i == 0 {
		return t.entries[0].Offset
	}
	return t.entries[i-1].Offset
}

func mjdOfDate(year, month, day int) float64 {
	return julian.CalendarGregorianToJD(year, month, float64(day)) - MJDOffset
}

// DefaultLeapSeconds returns the built-in table, current through the
// 2017-01-01 leap second.
func DefaultLeapSeconds() *LeapSecondTable {
	return defaultTable
}

var defaultTable = mustTable("IERS-2017-01-01", []LeapSecond{
	{Year: 1972, Month: 1, Day: 1, Offset: 10},
	{Year: 1972, Month: 7, Day: 1, Offset: 11},
	{Year: 1973, Month: 1, Day: 1, Offset: 12},
	{Year: 1974, Month: 1, Day: 1, Offset: 13},
	{Year: 1975, Month: 1, Day: 1, Offset: 14},
	{Year: 1976, Month: 1, Day: 1, Offset: 15},
	{Year: 1977, Month: 1, Day: 1, Offset: 16},
	{Year: 1978, Month: 1, Day: 1, Offset: 17},
	{Year: 1979, Month: 1, Day: 1, Offset: 18},
	{Year: 1980, Month: 1, Day: 1, Offset: 19},
	{Year: 1981, Month: 7, Day: 1, Offset: 20},
	{Year: 1982, Month: 7, Day: 1, Offset: 21},
	{Year: 1983, Month: 7, Day: 1, Offset: 22},
	{Year: 1985, Month: 7, Day: 1, Offset: 23},
	{Year: 1988, Month: 1, Day: 1, Offset: 24},
	{Year: 1990, Month: 1, Day: 1, Offset: 25},
	{Year: 1991, Month: 1, Day: 1, Offset: 26},
	{Year: 1992, Month: 7, Day: 1, Offset: 27},
	{Year: 1993, Month: 7, Day: 1, Offset: 28},
	{Year: 1994, Month: 7, Day: 1, Offset: 29},
	{Year: 1996, Month: 1, Day: 1, Offset: 30},
	{Year: 1997, Month: 7, Day: 1, Offset: 31},
	{Year: 1999, Month: 1, Day: 1, Offset: 32},
	{Year: 2006, Month: 1, Day: 1, Offset: 33},
	{Year: 2009, Month: 1, Day: 1, Offset: 34},
	{Year: 2012, Month: 7, Day: 1, Offset: 35},
	{Year: 2015, Month: 7, Day: 1, Offset: 36},
	{Year: 2017, Month: 1, Day: 1, Offset: 37},
})

func mustTable(version string, entries []LeapSecond) *LeapSecondTable {
	t, err := NewLeapSecondTable(version, entries)
	if err != nil {
		panic(err)
	}
	return t
}

type leapSecondFile struct {
	Version string `yaml:"version"`
	Entries []struct {
		Date   string  `yaml:"date"`
		Offset float64 `yaml:"tai_utc"`
	} `yaml:"entries"`
}

// ParseLeapSecondTable decodes a table from YAML of the form:
//
//	version: IERS-2017-01-01
//	entries:
//	  - date: "1972-01-01"
//	    tai_utc: 10
//	  - date: "2017-01-01"
//	    tai_utc: 37
func ParseLeapSecondTable(data []byte) (*LeapSecondTable, error) {
	var f leapSecondFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse leap second table: %w", err)
	}
	if f.Version == "" {
		return nil, fmt.Errorf("leap second table: missing version")
	}
	entries := make([]LeapSecond, 0, len(f.Entries))
	for i, e := range f.Entries {
		d, err := time.Parse(time.DateOnly, e.Date)
		if err != nil {
			return nil, fmt.Errorf("leap second table %q: entry %d: %w", f.Version, i, err)
		}
		entries = append(entries, LeapSecond{
			Year:   d.Year(),
			Month:  int(d.Month()),
			Day:    d.Day(),
			Offset: e.Offset,
		})
	}
	return NewLeapSecondTable(f.Version, entries)
}
