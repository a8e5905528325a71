package refraction

import (
	"math"

	"github.com/litescript/ls-astrometry/astro"
)

// PlaneParallel returns sec z. It is +Inf at or below the horizon.
func PlaneParallel(altDeg float64) (float64, error) {
	if err := astro.ValidateAltitude(altDeg); err != nil {
		return 0, err
	}
	if altDeg <= 0 {
		return math.Inf(1), nil
	}
	return 1 / math.Sin(astro.DegToRad(altDeg)), nil
}

// KastenYoung returns the Kasten & Young (1989) airmass. It is +Inf at or
// below the horizon.
func KastenYoung(altDeg float64) (float64, error) {
	if err := astro.ValidateAltitude(altDeg); err != nil {
		return 0, err
	}
	if altDeg <= 0 {
		return math.Inf(1), nil
	}
	return kastenYoung(altDeg), nil
}

// Young evaluates the Kasten & Young expression down to −0.5°, so that a
// star on the refracted horizon still has a finite airmass. It is +Inf at
// or below −0.5°.
func Young(altDeg float64) (float64, error) {
	if err := astro.ValidateAltitude(altDeg); err != nil {
		return 0, err
	}
	if altDeg <= -0.5 {
		return math.Inf(1), nil
	}
	return kastenYoung(altDeg), nil
}

func kastenYoung(altDeg float64) float64 {
	z := 90 - altDeg
	return 1 / (math.Cos(astro.DegToRad(z)) + 0.50572*math.Pow(96.07995-z, -1.6364))
}

// Pickering returns the Pickering (2002) airmass, which stays finite at
// the horizon. It is +Inf at or below −0.5°; altitudes between −0.5° and 0°
// are evaluated at 0°.
func Pickering(altDeg float64) (float64, error) {
	if err := astro.ValidateAltitude(altDeg); err != nil {
		return 0, err
	}
	if altDeg <= -0.5 {
		return math.Inf(1), nil
	}
	h := math.Max(altDeg, 0)
	return 1 / math.Sin(astro.DegToRad(h+244/(165+47*math.Pow(h, 1.1)))), nil
}

// ExtinctionCoefficient estimates the zenith extinction in magnitudes per
// airmass at a wavelength: Rayleigh scattering, aerosols and a flat ozone
// term across the Chappuis band.
func ExtinctionCoefficient(wavelengthNm float64) (float64, error) {
	if !(wavelengthNm > 0) || math.IsInf(wavelengthNm, 1) {
		return 0, astro.NewRangeError("wavelength", wavelengthNm, 0, math.Inf(1))
	}
	x := 550 / wavelengthNm
	k := 0.145*math.Pow(x, 4) + 0.10*math.Pow(x, 1.3)
	if wavelengthNm > 500 && wavelengthNm < 700 {
		k += 0.016
	}
	return k, nil
}

// ExtinctionMagnitudes returns the dimming in magnitudes at airmass x for
// an extinction coefficient k.
func ExtinctionMagnitudes(x, k float64) float64 {
	return x * k
}
