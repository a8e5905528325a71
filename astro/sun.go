package astro

import (
	"math"
)

// SunLongitude holds the Sun's geocentric ecliptic longitudes for an
// instant, referred to the mean equinox of date.
type SunLongitude struct {
	TrueDeg     float64 // geometric longitude
	ApparentDeg float64 // corrected for nutation and aberration
	MeanAnomaly float64 // degrees
}

// Sun returns the Sun's longitude at the given TT Julian Date using the
// low-precision theory of Meeus ch. 25, accurate to about 0.01°.
func Sun(jdTT float64) SunLongitude {
	T := JulianCenturies(jdTT)

	// Mean longitude of the Sun (degrees)
	L0 := NormalizeDeg(280.46646 + 36000.76983*T + 0.0003032*T*T)

	// Mean anomaly of the Sun (degrees)
	M := NormalizeDeg(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := DegToRad(M)

	// Sun's equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	sunLon := NormalizeDeg(L0 + C)

	omega := 125.04 - 1934.136*T
	sunLonApp := NormalizeDeg(sunLon - 0.00569 - 0.00478*math.Sin(DegToRad(omega)))

	return SunLongitude{TrueDeg: sunLon, ApparentDeg: sunLonApp, MeanAnomaly: M}
}

// EarthOrbit returns the eccentricity of the Earth's orbit and the
// longitude of its perihelion in degrees at the given TT Julian Date.
func EarthOrbit(jdTT float64) (eccentricity, perihelionDeg float64) {
	T := JulianCenturies(jdTT)
	eccentricity = 0.016708634 - 0.000042037*T - 0.0000001267*T*T
	perihelionDeg = NormalizeDeg(102.93735 + 1.71946*T + 0.00046*T*T)
	return eccentricity, perihelionDeg
}

// SunDirection returns the geocentric unit vector toward the Sun in
// equatorial coordinates, given its ecliptic longitude and the obliquity.
func SunDirection(lonDeg, obliquityDeg float64) Vec3 {
	l, e := DegToRad(lonDeg), DegToRad(obliquityDeg)
	return Vec3{
		X: math.Cos(l),
		Y: math.Sin(l) * math.Cos(e),
		Z: math.Sin(l) * math.Sin(e),
	}
}
