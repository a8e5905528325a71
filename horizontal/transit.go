package horizontal

import (
	"math"

	"github.com/litescript/ls-astrometry/astro"
)

// Standard altitudes of the centre of an object at rise and set, in degrees.
const (
	StarRiseAltitude = -0.5667
	SunRiseAltitude  = -0.8333
)

// Culmination returns the altitudes of the upper and lower meridian
// transits of an object at declination dec.
func Culmination(dec float64, loc astro.GeoLocation) (upper, lower float64, err error) {
	if err := astro.ValidateDec(dec); err != nil {
		return 0, 0, err
	}
	if err := loc.Validate(); err != nil {
		return 0, 0, err
	}
	upper = 90 - math.Abs(loc.LatDeg-dec)
	lower = math.Abs(loc.LatDeg+dec) - 90
	return upper, lower, nil
}

// RiseSetHourAngle returns the hour angle in degrees [0, 180] at which an
// object at declination dec crosses altitude h0. Rise happens at −H and set
// at +H. A *NeverRisesOrSetsError is returned when the object stays above or
// below h0 all day.
func RiseSetHourAngle(dec float64, loc astro.GeoLocation, h0 float64) (float64, error) {
	if err := astro.ValidateDec(dec); err != nil {
		return 0, err
	}
	if err := astro.ValidateAltitude(h0); err != nil {
		return 0, err
	}
	if err := loc.Validate(); err != nil {
		return 0, err
	}

	sd, cd := math.Sincos(astro.DegToRad(dec))
	sl, cl := math.Sincos(astro.DegToRad(loc.LatDeg))
	den := cl * cd
	num := math.Sin(astro.DegToRad(h0)) - sl*sd

	if math.Abs(den) < degenerate {
		// Polar observer or polar object: altitude is constant all day.
		return 0, &astro.NeverRisesOrSetsError{AlwaysAbove: num < 0}
	}
	cosH := num / den
	switch {
	case cosH < -1:
		return 0, &astro.NeverRisesOrSetsError{AlwaysAbove: true}
	case cosH > 1:
		return 0, &astro.NeverRisesOrSetsError{AlwaysAbove: false}
	}
	return astro.RadToDeg(math.Acos(cosH)), nil
}
