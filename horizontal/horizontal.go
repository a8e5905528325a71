// Package horizontal converts between apparent equatorial coordinates and
// the observer's horizon system (altitude, azimuth from north through east).
package horizontal

import (
	"math"

	"github.com/litescript/ls-astrometry/astro"
	"github.com/litescript/ls-astrometry/sidereal"
	"github.com/litescript/ls-astrometry/timescale"
)

// degenerate is the size below which an azimuth or hour-angle is undefined:
// the object is at the zenith, the observer at a pole, or the position at a
// celestial pole.
const degenerate = 1e-12

// Transformer converts positions for one sidereal clock. The zero value uses
// the default clock and GOMAXPROCS batch workers.
type Transformer struct {
	Clock sidereal.Clock

	// Workers bounds the number of goroutines used by batch calls. Zero or
	// negative means runtime.GOMAXPROCS(0).
	Workers int
}

// LocalSiderealDeg returns the local apparent sidereal time in degrees.
func (t Transformer) LocalSiderealDeg(i timescale.Instant, loc astro.GeoLocation) float64 {
	return t.Clock.LocalAt(i, loc.LonDeg) * 15
}

// EquatorialToHorizontal returns the altitude and azimuth of an apparent
// (ra, dec) seen from loc at instant i.
func (t Transformer) EquatorialToHorizontal(ra, dec float64, i timescale.Instant, loc astro.GeoLocation) (astro.Horizontal, error) {
	if err := astro.ValidateRADec(ra, dec); err != nil {
		return astro.Horizontal{}, err
	}
	if err := loc.Validate(); err != nil {
		return astro.Horizontal{}, err
	}
	return toHorizontal(ra, dec, t.LocalSiderealDeg(i, loc), loc.LatDeg), nil
}

// HorizontalToEquatorial is the inverse of EquatorialToHorizontal.
func (t Transformer) HorizontalToEquatorial(alt, az float64, i timescale.Instant, loc astro.GeoLocation) (astro.Equatorial, error) {
	if err := validateAltAz(alt, az); err != nil {
		return astro.Equatorial{}, err
	}
	if err := loc.Validate(); err != nil {
		return astro.Equatorial{}, err
	}
	return toEquatorial(alt, az, t.LocalSiderealDeg(i, loc), loc.LatDeg), nil
}

func validateAltAz(alt, az float64) error {
	if err := astro.ValidateAltitude(alt); err != nil {
		return err
	}
	return astro.ValidateAzimuth(az)
}

func toHorizontal(ra, dec, lstDeg, latDeg float64) astro.Horizontal {
	sh, ch := math.Sincos(astro.DegToRad(astro.NormalizeDeg(lstDeg - ra)))
	sd, cd := math.Sincos(astro.DegToRad(dec))
	sl, cl := math.Sincos(astro.DegToRad(latDeg))

	alt := math.Asin(clampUnit(sd*sl + cd*cl*ch))

	var az float64
	if math.Cos(alt)*math.Abs(cl) < degenerate {
		// Zenith or polar observer: azimuth follows the side of the meridian.
		if sh > 0 {
			az = 180
		}
	} else {
		az = astro.RadToDeg(math.Atan2(-sh*cd, sd*cl-cd*sl*ch))
	}
	return astro.Horizontal{AltDeg: astro.RadToDeg(alt), AzDeg: astro.NormalizeDeg(az)}
}

func toEquatorial(alt, az, lstDeg, latDeg float64) astro.Equatorial {
	sa, ca := math.Sincos(astro.DegToRad(alt))
	sz, cz := math.Sincos(astro.DegToRad(az))
	sl, cl := math.Sincos(astro.DegToRad(latDeg))

	dec := math.Asin(clampUnit(sa*sl + ca*cl*cz))

	y := -sz * ca
	x := sa*cl - ca*sl*cz
	var ha float64
	if math.Hypot(x, y) >= degenerate {
		ha = astro.RadToDeg(math.Atan2(y, x))
	}
	// At a celestial pole the hour angle is undefined and RA is taken as LST.
	return astro.Equatorial{RAdeg: astro.NormalizeDeg(lstDeg - ha), DecDeg: astro.RadToDeg(dec)}
}

func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

var defaultTransformer Transformer

// EquatorialToHorizontal converts using the default transformer.
func EquatorialToHorizontal(ra, dec float64, i timescale.Instant, loc astro.GeoLocation) (astro.Horizontal, error) {
	return defaultTransformer.EquatorialToHorizontal(ra, dec, i, loc)
}

// HorizontalToEquatorial converts using the default transformer.
func HorizontalToEquatorial(alt, az float64, i timescale.Instant, loc astro.GeoLocation) (astro.Equatorial, error) {
	return defaultTransformer.HorizontalToEquatorial(alt, az, i, loc)
}
