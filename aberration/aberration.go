// Package aberration applies and removes annual aberration.
//
// The correction is the classical vector displacement u′ = (u + β)/|u + β|
// where β is the Earth's orbital velocity in units of c, built from the
// Sun's true longitude and the orbit's eccentricity and perihelion (the
// e-terms are included). Nothing else is bundled, so the displacement never
// exceeds κ(1+e) ≈ 20.85″.
package aberration

import (
	"math"

	"github.com/litescript/ls-astrometry/astro"
	"github.com/litescript/ls-astrometry/nutation"
)

// Constant is the constant of aberration κ in arcseconds.
const Constant = 20.49552

// MaxMagnitude bounds Magnitude for any date within a few millennia of
// J2000.0, in arcseconds.
const MaxMagnitude = Constant * (1 + 0.0168)

// Velocity returns the Earth's heliocentric velocity in units of c,
// referred to the mean equator and equinox of date.
func Velocity(jdTT float64) astro.Vec3 {
	sun := astro.DegToRad(astro.Sun(jdTT).TrueDeg)
	e, perihelion := astro.EarthOrbit(jdTT)
	p := astro.DegToRad(perihelion)
	k := astro.ArcsecToRad(Constant)

	ecl := astro.Vec3{
		X: k * (math.Sin(sun) - e*math.Sin(p)),
		Y: -k * (math.Cos(sun) - e*math.Cos(p)),
	}
	return astro.EclipticToEquatorial(ecl, nutation.MeanObliquity(jdTT))
}

// Apply converts a geometric direction to the aberrated (apparent)
// direction at the TT Julian Date.
func Apply(ra, dec, jdTT float64) (float64, float64, error) {
	if err := astro.ValidateRADec(ra, dec); err != nil {
		return 0, 0, err
	}
	r, d := astro.Displace(astro.FromRADec(ra, dec), Velocity(jdTT)).RADec()
	return r, d, nil
}

// Remove inverts Apply exactly.
func Remove(ra, dec, jdTT float64) (float64, float64, error) {
	if err := astro.ValidateRADec(ra, dec); err != nil {
		return 0, 0, err
	}
	r, d := astro.Undisplace(astro.FromRADec(ra, dec), Velocity(jdTT)).RADec()
	return r, d, nil
}

// Magnitude returns the angular displacement in arcseconds that Apply
// would produce for (ra, dec).
func Magnitude(ra, dec, jdTT float64) (float64, error) {
	ra2, dec2, err := Apply(ra, dec, jdTT)
	if err != nil {
		return 0, err
	}
	return astro.AngularSeparation(ra, dec, ra2, dec2) * astro.ArcsecPerDeg, nil
}
