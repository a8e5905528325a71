// Package sidereal computes Greenwich and local sidereal time.
//
// Universal Time is taken to be UTC; the sub-second UT1−UTC difference is
// below the accuracy of the pipeline.
package sidereal

import (
	"math"

	"github.com/litescript/ls-astrometry/astro"
	"github.com/litescript/ls-astrometry/nutation"
	"github.com/litescript/ls-astrometry/timescale"
)

// Mean returns Greenwich mean sidereal time in hours [0, 24) for a UT
// Julian Date, using the IAU 1982 expression.
func Mean(jdUT float64) float64 {
	jd1, jd2 := timescale.SplitForPrecision(jdUT)
	return meanSplit(jd1, jd2)
}

func meanSplit(jd1, jd2 float64) float64 {
	// Whole days contribute exactly 360° per day, so only the day fraction
	// is multiplied by the full rate.
	d := (jd1 - astro.J2000) + jd2
	whole := math.Floor(d)
	frac := d - whole
	T := d / astro.DaysPerJulianCentury

	gmst := 280.46061837 +
		360*frac +
		0.98564736629*d +
		0.000387933*T*T -
		T*T*T/38710000.0

	return astro.NormalizeHours(astro.NormalizeDeg(gmst) / 15)
}

// Clock computes apparent and local sidereal time. The zero value uses the
// built-in leap-second table and the reduced nutation series.
type Clock struct {
	Scale timescale.Scale
	Model nutation.Model
}

// Mean returns Greenwich mean sidereal time in hours.
func (c Clock) Mean(jdUT float64) float64 {
	return Mean(jdUT)
}

// Apparent returns Greenwich apparent sidereal time in hours: GMST plus the
// equation of the equinoxes evaluated at TT.
func (c Clock) Apparent(jdUT float64) float64 {
	eqeq := nutation.EquationOfEquinoxes(c.Scale.ToTT(jdUT), c.Model)
	return astro.NormalizeHours(Mean(jdUT) + eqeq/3600)
}

// Local returns local apparent sidereal time in hours for a longitude in
// degrees, east positive.
func (c Clock) Local(jdUT, lonDeg float64) float64 {
	return astro.NormalizeHours(c.Apparent(jdUT) + lonDeg/15)
}

// LocalMean returns local mean sidereal time in hours.
func (c Clock) LocalMean(jdUT, lonDeg float64) float64 {
	return astro.NormalizeHours(Mean(jdUT) + lonDeg/15)
}

// LocalAt returns local apparent sidereal time in hours at an instant.
func (c Clock) LocalAt(i timescale.Instant, lonDeg float64) float64 {
	return c.Local(i.JulianDate(), lonDeg)
}

// HourAngle returns the local hour angle in degrees [0, 360) of a right
// ascension at an instant.
func (c Clock) HourAngle(i timescale.Instant, lonDeg, raDeg float64) float64 {
	return astro.NormalizeDeg(c.LocalAt(i, lonDeg)*15 - raDeg)
}
