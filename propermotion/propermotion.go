// Package propermotion propagates catalog positions through space motion.
package propermotion

import (
	"math"

	"github.com/litescript/ls-astrometry/astro"
)

const (
	// KmPerSecPerAUPerYear is the speed of 1 AU/yr in km/s.
	KmPerSecPerAUPerYear = 4.740470446

	// PcPerYearPerKmPerSec is the distance in parsecs covered in one Julian
	// year at 1 km/s.
	PcPerYearPerKmPerSec = 1 / 977792.2
)

// ApplyLinear advances a J2000.0 position to targetJD by adding the proper
// motion components (mas/yr) times the elapsed Julian years directly to RA
// and Dec. The RA rate is added without a 1/cos δ factor, so the result is
// a small-angle approximation that degrades away from the equator; use
// ApplyRigorous when the parallax is known.
func ApplyLinear(ra0, dec0, pmRACosDec, pmDec, targetJD float64) (float64, float64, error) {
	return ApplyLinearFrom(ra0, dec0, pmRACosDec, pmDec, astro.J2000, targetJD)
}

// ApplyLinearFrom is ApplyLinear for a catalog epoch other than J2000.0.
func ApplyLinearFrom(ra0, dec0, pmRACosDec, pmDec, epochJD, targetJD float64) (float64, float64, error) {
	if err := astro.ValidateRADec(ra0, dec0); err != nil {
		return 0, 0, err
	}
	if err := validateMotion(pmRACosDec, pmDec); err != nil {
		return 0, 0, err
	}
	dt := (targetJD - epochJD) / astro.DaysPerJulianYear
	ra := astro.NormalizeDeg(ra0 + pmRACosDec*dt/astro.MasPerDeg)
	dec := dec0 + pmDec*dt/astro.MasPerDeg
	if err := astro.ValidateDec(dec); err != nil {
		return 0, 0, err
	}
	return ra, dec, nil
}

// ApplyRigorous advances a J2000.0 position to targetJD by straight-line
// motion in Cartesian space. It returns the new position and parallax (mas).
// Parallax must be positive.
func ApplyRigorous(ra0, dec0, pmRACosDec, pmDec, parallaxMas, rvKmS, targetJD float64) (float64, float64, float64, error) {
	return ApplyRigorousFrom(ra0, dec0, pmRACosDec, pmDec, parallaxMas, rvKmS, astro.J2000, targetJD)
}

// ApplyRigorousFrom is ApplyRigorous for a catalog epoch other than J2000.0.
func ApplyRigorousFrom(ra0, dec0, pmRACosDec, pmDec, parallaxMas, rvKmS, epochJD, targetJD float64) (float64, float64, float64, error) {
	if err := astro.ValidateRADec(ra0, dec0); err != nil {
		return 0, 0, 0, err
	}
	if err := validateMotion(pmRACosDec, pmDec); err != nil {
		return 0, 0, 0, err
	}
	if !(parallaxMas > 0) || math.IsInf(parallaxMas, 1) {
		return 0, 0, 0, astro.NewRangeError("parallax", parallaxMas, 0, math.Inf(1))
	}
	if !finite(rvKmS) {
		return 0, 0, 0, astro.NewRangeError("radial velocity", rvKmS, math.Inf(-1), math.Inf(1))
	}

	dt := (targetJD - epochJD) / astro.DaysPerJulianYear
	distPc := 1000 / parallaxMas

	sa, ca := math.Sincos(astro.DegToRad(ra0))
	sd, cd := math.Sincos(astro.DegToRad(dec0))

	// Unit vectors toward the star, east and north.
	r := astro.Vec3{X: cd * ca, Y: cd * sa, Z: sd}
	east := astro.Vec3{X: -sa, Y: ca}
	north := astro.Vec3{X: -sd * ca, Y: -sd * sa, Z: cd}

	vEast := KmPerSecPerAUPerYear * pmRACosDec / 1000 * distPc
	vNorth := KmPerSecPerAUPerYear * pmDec / 1000 * distPc
	v := east.Scale(vEast).Add(north.Scale(vNorth)).Add(r.Scale(rvKmS))

	pos := r.Scale(distPc).Add(v.Scale(PcPerYearPerKmPerSec * dt))
	ra, dec := pos.RADec()
	return ra, dec, 1000 / pos.Norm(), nil
}

// ApplyStar advances a catalog star to targetJD from its own epoch, using
// the rigorous model when the parallax is known and the linear model
// otherwise. The returned parallax is 0 when unknown.
func ApplyStar(s astro.CatalogStar, targetJD float64) (float64, float64, float64, error) {
	if s.ParallaxMas > 0 {
		return ApplyRigorousFrom(s.RAdeg, s.DecDeg, s.PMRACosDec, s.PMDec,
			s.ParallaxMas, s.RadialVelocityKmS, s.Epoch(), targetJD)
	}
	ra, dec, err := ApplyLinearFrom(s.RAdeg, s.DecDeg, s.PMRACosDec, s.PMDec, s.Epoch(), targetJD)
	return ra, dec, 0, err
}

// Total returns the total proper motion in mas/yr.
func Total(pmRACosDec, pmDec float64) float64 {
	return math.Hypot(pmRACosDec, pmDec)
}

// PositionAngle returns the direction of motion in degrees [0, 360),
// measured from north through east.
func PositionAngle(pmRACosDec, pmDec float64) float64 {
	return astro.NormalizeDeg(astro.RadToDeg(math.Atan2(pmRACosDec, pmDec)))
}

// PMRAToPMRACosDec converts a coordinate RA rate to the great-circle rate.
func PMRAToPMRACosDec(pmRA, decDeg float64) float64 {
	return pmRA * math.Cos(astro.DegToRad(decDeg))
}

// PMRACosDecToPMRA converts a great-circle RA rate to a coordinate rate.
func PMRACosDecToPMRA(pmRACosDec, decDeg float64) float64 {
	return pmRACosDec / math.Cos(astro.DegToRad(decDeg))
}

func validateMotion(pmRACosDec, pmDec float64) error {
	if !finite(pmRACosDec) {
		return astro.NewRangeError("proper motion in RA", pmRACosDec, math.Inf(-1), math.Inf(1))
	}
	if !finite(pmDec) {
		return astro.NewRangeError("proper motion in Dec", pmDec, math.Inf(-1), math.Inf(1))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
