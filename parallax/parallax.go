// Package parallax applies and removes diurnal (topocentric) and annual
// (heliocentric) parallax.
package parallax

import (
	"math"

	"github.com/litescript/ls-astrometry/astro"
	"github.com/litescript/ls-astrometry/nutation"
	"github.com/litescript/ls-astrometry/sidereal"
	"github.com/litescript/ls-astrometry/timescale"
)

const (
	// EarthRadiusKm is the WGS84 equatorial radius.
	EarthRadiusKm = 6378.137

	// Flattening is the WGS84 flattening of the Earth.
	Flattening = 1 / 298.257223563

	// SolarParallax is the equatorial horizontal parallax of a body at 1 AU
	// in arcseconds.
	SolarParallax = 8.794
)

// ObserverTerms returns ρ·sin φ′ and ρ·cos φ′ for a location, in units of
// the equatorial radius (Meeus ch. 11).
func ObserverTerms(loc astro.GeoLocation) (rhoSinPhi, rhoCosPhi float64) {
	lat := astro.DegToRad(loc.LatDeg)
	ba := 1 - Flattening
	u := math.Atan(ba * math.Tan(lat))
	h := loc.HeightM / 1000 / EarthRadiusKm
	rhoSinPhi = ba*math.Sin(u) + h*math.Sin(lat)
	rhoCosPhi = math.Cos(u) + h*math.Cos(lat)
	return rhoSinPhi, rhoCosPhi
}

// GeocentricDistance returns the observer's distance from the Earth's
// centre in equatorial radii.
func GeocentricDistance(loc astro.GeoLocation) float64 {
	s, c := ObserverTerms(loc)
	return math.Hypot(s, c)
}

// HorizontalParallax returns sin π for a body at distanceAU.
func HorizontalParallax(distanceAU float64) (float64, error) {
	if !(distanceAU > 0) {
		return 0, astro.NewRangeError("distance", distanceAU, 0, math.Inf(1))
	}
	sinPi := math.Sin(astro.ArcsecToRad(SolarParallax)) / distanceAU
	if sinPi >= 0.5 {
		// Bodies within two Earth radii are rejected.
		return 0, astro.NewRangeError("distance", distanceAU, math.Sin(astro.ArcsecToRad(SolarParallax))*2, math.Inf(1))
	}
	return sinPi, nil
}

// Topocentric converts between geocentric and topocentric places. The zero
// value uses the default sidereal clock.
type Topocentric struct {
	Clock sidereal.Clock
}

// Diurnal converts a geocentric (ra, dec) of a body at distanceAU to the
// place seen by an observer at loc.
func (tc Topocentric) Diurnal(ra, dec, distanceAU float64, i timescale.Instant, loc astro.GeoLocation) (float64, float64, error) {
	return tc.diurnal(ra, dec, distanceAU, i, loc, false)
}

// RemoveDiurnal inverts Diurnal exactly.
func (tc Topocentric) RemoveDiurnal(ra, dec, distanceAU float64, i timescale.Instant, loc astro.GeoLocation) (float64, float64, error) {
	return tc.diurnal(ra, dec, distanceAU, i, loc, true)
}

func (tc Topocentric) diurnal(ra, dec, distanceAU float64, i timescale.Instant, loc astro.GeoLocation, inverse bool) (float64, float64, error) {
	if err := astro.ValidateRADec(ra, dec); err != nil {
		return 0, 0, err
	}
	if err := loc.Validate(); err != nil {
		return 0, 0, err
	}
	sinPi, err := HorizontalParallax(distanceAU)
	if err != nil {
		return 0, 0, err
	}

	// Work in the hour-angle frame, where the observer sits on the
	// meridian plane.
	lst := tc.Clock.LocalAt(i, loc.LonDeg) * 15
	ha := astro.NormalizeDeg(lst - ra)
	u := astro.FromRADec(ha, dec)

	rhoSin, rhoCos := ObserverTerms(loc)
	b := astro.Vec3{X: rhoCos, Z: rhoSin}.Scale(-sinPi)

	var p astro.Vec3
	if inverse {
		p = astro.Undisplace(u, b)
	} else {
		p = astro.Displace(u, b)
	}
	ha2, dec2 := p.RADec()
	return astro.NormalizeDeg(lst - ha2), dec2, nil
}

// Diurnal applies diurnal parallax using the default sidereal clock.
func Diurnal(ra, dec, distanceAU float64, i timescale.Instant, loc astro.GeoLocation) (float64, float64, error) {
	return Topocentric{}.Diurnal(ra, dec, distanceAU, i, loc)
}

// RemoveDiurnal removes diurnal parallax using the default sidereal clock.
func RemoveDiurnal(ra, dec, distanceAU float64, i timescale.Instant, loc astro.GeoLocation) (float64, float64, error) {
	return Topocentric{}.RemoveDiurnal(ra, dec, distanceAU, i, loc)
}

// sunVector returns ϖ·Ŝ, where Ŝ is the geocentric direction of the Sun
// from its apparent longitude and the mean obliquity.
func sunVector(parallaxMas, jdTT float64) astro.Vec3 {
	lon := astro.Sun(jdTT).ApparentDeg
	s := astro.SunDirection(lon, nutation.MeanObliquity(jdTT))
	return s.Scale(astro.DegToRad(parallaxMas / astro.MasPerDeg))
}

// Annual converts a barycentric direction of a star with the given
// parallax (mas) to its geocentric direction at the TT Julian Date.
func Annual(ra, dec, parallaxMas, jdTT float64) (float64, float64, error) {
	if err := checkAnnual(ra, dec, parallaxMas); err != nil {
		return 0, 0, err
	}
	r, d := astro.Displace(astro.FromRADec(ra, dec), sunVector(parallaxMas, jdTT)).RADec()
	return r, d, nil
}

// RemoveAnnual inverts Annual exactly.
func RemoveAnnual(ra, dec, parallaxMas, jdTT float64) (float64, float64, error) {
	if err := checkAnnual(ra, dec, parallaxMas); err != nil {
		return 0, 0, err
	}
	r, d := astro.Undisplace(astro.FromRADec(ra, dec), sunVector(parallaxMas, jdTT)).RADec()
	return r, d, nil
}

func checkAnnual(ra, dec, parallaxMas float64) error {
	if err := astro.ValidateRADec(ra, dec); err != nil {
		return err
	}
	if !(parallaxMas > 0) {
		return astro.NewRangeError("parallax", parallaxMas, 0, math.Inf(1))
	}
	return nil
}
