// Package precession rotates positions between the mean equator and
// equinox of J2000.0 and the mean equator and equinox of date, using the
// IAU 1976 (Lieske) angles.
//
// No frame bias is applied: the matrix is exactly the identity at J2000.0
// and its transpose is used for the inverse.
package precession

import (
	"github.com/litescript/ls-astrometry/astro"
)

// Angles returns the precession angles ζ, z and θ in degrees from J2000.0
// to the TT Julian Date.
func Angles(jdTT float64) (zeta, z, theta float64) {
	T := astro.JulianCenturies(jdTT)
	zeta = T * (2306.2181 + T*(0.30188+T*0.017998))
	z = T * (2306.2181 + T*(1.09468+T*0.018203))
	theta = T * (2004.3109 + T*(-0.42665-T*0.041833))
	return zeta / astro.ArcsecPerDeg, z / astro.ArcsecPerDeg, theta / astro.ArcsecPerDeg
}

// MatrixJ2000ToDate returns the rotation R3(−z)·R2(θ)·R3(−ζ) from the mean
// frame of J2000.0 to the mean frame of date.
func MatrixJ2000ToDate(jdTT float64) astro.Matrix3 {
	zeta, z, theta := Angles(jdTT)
	return astro.RotZ(-astro.DegToRad(z)).
		Mul(astro.RotY(astro.DegToRad(theta))).
		Mul(astro.RotZ(-astro.DegToRad(zeta)))
}

// Apply precesses a J2000.0 mean position to the mean equinox of date.
func Apply(ra, dec, jdTT float64) (float64, float64, error) {
	if err := astro.ValidateRADec(ra, dec); err != nil {
		return 0, 0, err
	}
	r, d := MatrixJ2000ToDate(jdTT).RotateRADec(ra, dec)
	return r, d, nil
}

// ApplyInverse precesses a mean position of date back to J2000.0.
func ApplyInverse(ra, dec, jdTT float64) (float64, float64, error) {
	if err := astro.ValidateRADec(ra, dec); err != nil {
		return 0, 0, err
	}
	r, d := MatrixJ2000ToDate(jdTT).Transpose().RotateRADec(ra, dec)
	return r, d, nil
}

// Between precesses a mean position from one epoch to another, both given
// as TT Julian Dates.
func Between(ra, dec, fromJD, toJD float64) (float64, float64, error) {
	if err := astro.ValidateRADec(ra, dec); err != nil {
		return 0, 0, err
	}
	m := MatrixJ2000ToDate(toJD).Mul(MatrixJ2000ToDate(fromJD).Transpose())
	r, d := m.RotateRADec(ra, dec)
	return r, d, nil
}
