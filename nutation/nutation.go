// Package nutation computes the nutation in longitude and obliquity and the
// obliquity of the ecliptic, and rotates positions between the mean and
// true equator of date.
package nutation

import (
	"fmt"
	"math"
	"strings"

	"github.com/litescript/ls-astrometry/astro"
	meeusnut "github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"
)

// Model selects the nutation series.
type Model int

const (
	// Reduced sums the 34 largest terms of the IAU 1980 series. It stays
	// within 0.05″ of IAU1980 over 1900–2100.
	Reduced Model = iota
	// IAU1980 sums all 63 terms of Meeus table 22.A.
	IAU1980
)

func (m Model) String() string {
	switch m {
	case Reduced:
		return "reduced"
	case IAU1980:
		return "iau1980"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// ParseModel parses a model name as produced by String.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reduced", "":
		return Reduced, nil
	case "iau1980", "full":
		return IAU1980, nil
	}
	return Reduced, fmt.Errorf("unknown nutation model %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Model) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Model) UnmarshalText(b []byte) error {
	v, err := ParseModel(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Result is the nutation at an instant.
type Result struct {
	JD             float64 // TT Julian Date
	DeltaPsiArcsec float64 // nutation in longitude
	DeltaEpsArcsec float64 // nutation in obliquity
}

// DeltaPsi returns the nutation in longitude as an angle.
func (r Result) DeltaPsi() unit.Angle {
	return unit.AngleFromSec(r.DeltaPsiArcsec)
}

// DeltaEps returns the nutation in obliquity as an angle.
func (r Result) DeltaEps() unit.Angle {
	return unit.AngleFromSec(r.DeltaEpsArcsec)
}

// Compute returns the nutation at jdTT using the reduced series.
func Compute(jdTT float64) Result {
	return ComputeModel(jdTT, Reduced)
}

// ComputeFull returns the nutation at jdTT using the IAU1980 series.
func ComputeFull(jdTT float64) Result {
	dpsi, deps := meeusnut.Nutation(jdTT)
	return Result{JD: jdTT, DeltaPsiArcsec: dpsi.Sec(), DeltaEpsArcsec: deps.Sec()}
}

// ComputeModel returns the nutation at jdTT using model m.
func ComputeModel(jdTT float64, m Model) Result {
	if m == IAU1980 {
		return ComputeFull(jdTT)
	}
	T := astro.JulianCenturies(jdTT)
	a := fundamentalArguments(T)

	var dpsi, deps float64
	for _, t := range terms {
		arg := astro.DegToRad(float64(t.d)*a.d + float64(t.m)*a.m + float64(t.mp)*a.mp +
			float64(t.f)*a.f + float64(t.om)*a.om)
		s, c := math.Sincos(arg)
		dpsi += (t.psi0 + t.psi1*T) * s
		deps += (t.eps0 + t.eps1*T) * c
	}
	// Coefficients are in units of 0.0001″.
	return Result{JD: jdTT, DeltaPsiArcsec: dpsi * 1e-4, DeltaEpsArcsec: deps * 1e-4}
}

type arguments struct {
	d, m, mp, f, om float64 // degrees
}

// fundamentalArguments returns the Delaunay arguments of Meeus ch. 22.
func fundamentalArguments(T float64) arguments {
	return arguments{
		d:  297.85036 + T*(445267.111480+T*(-0.0019142+T/189474)),
		m:  357.52772 + T*(35999.050340+T*(-0.0001603-T/300000)),
		mp: 134.96298 + T*(477198.867398+T*(0.0086972+T/56250)),
		f:  93.27191 + T*(483202.017538+T*(-0.0036825+T/327270)),
		om: 125.04452 + T*(-1934.136261+T*(0.0020708+T/450000)),
	}
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees
// (IAU 1980, Meeus 22.2).
func MeanObliquity(jdTT float64) float64 {
	T := astro.JulianCenturies(jdTT)
	sec := 21.448 + T*(-46.8150+T*(-0.00059+T*0.001813))
	return 23 + 26.0/60 + sec/astro.ArcsecPerDeg
}

// TrueObliquity returns the true obliquity of the ecliptic in degrees.
func TrueObliquity(jdTT float64) float64 {
	return TrueObliquityModel(jdTT, Reduced)
}

// TrueObliquityModel returns the true obliquity using model m for Δε.
func TrueObliquityModel(jdTT float64, m Model) float64 {
	return MeanObliquity(jdTT) + ComputeModel(jdTT, m).DeltaEpsArcsec/astro.ArcsecPerDeg
}

// EquationOfEquinoxes returns Δψ·cos ε in seconds of time.
func EquationOfEquinoxes(jdTT float64, m Model) float64 {
	r := ComputeModel(jdTT, m)
	eps := MeanObliquity(jdTT) + r.DeltaEpsArcsec/astro.ArcsecPerDeg
	return r.DeltaPsiArcsec * math.Cos(astro.DegToRad(eps)) / 15
}

// Matrix returns the rotation from the mean equator and equinox of date to
// the true equator and equinox of date.
func Matrix(jdTT float64, m Model) astro.Matrix3 {
	r := ComputeModel(jdTT, m)
	eps0 := astro.DegToRad(MeanObliquity(jdTT))
	eps := eps0 + astro.ArcsecToRad(r.DeltaEpsArcsec)
	dpsi := astro.ArcsecToRad(r.DeltaPsiArcsec)
	return astro.RotX(-eps).Mul(astro.RotZ(-dpsi)).Mul(astro.RotX(eps0))
}

// Apply converts a mean place of date to a true place of date.
func Apply(ra, dec, jdTT float64, m Model) (float64, float64, error) {
	if err := astro.ValidateRADec(ra, dec); err != nil {
		return 0, 0, err
	}
	r, d := Matrix(jdTT, m).RotateRADec(ra, dec)
	return r, d, nil
}

// ApplyInverse converts a true place of date back to a mean place of date.
func ApplyInverse(ra, dec, jdTT float64, m Model) (float64, float64, error) {
	if err := astro.ValidateRADec(ra, dec); err != nil {
		return 0, 0, err
	}
	r, d := Matrix(jdTT, m).Transpose().RotateRADec(ra, dec)
	return r, d, nil
}
