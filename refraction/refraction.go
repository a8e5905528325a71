// Package refraction computes atmospheric refraction, airmass and
// extinction.
//
// All refraction models take the apparent (observed) altitude. The same
// model is used in both directions, so TrueToApparent and ApparentToTrue
// are consistent with each other.
package refraction

import (
	"fmt"
	"math"
	"strings"

	"github.com/litescript/ls-astrometry/astro"
)

// Model selects a refraction formula.
type Model int

const (
	// Bennett is the cotangent formula of Bennett (1982), Meeus 16.4. It
	// ignores the weather and is valid down to −0.5°.
	Bennett Model = iota
	// Saemundsson is Sæmundsson's formula scaled for pressure and
	// temperature. Valid down to −1°.
	Saemundsson
	// Radio scales the cotangent of Sæmundsson's regularised altitude by the
	// Smith–Weintraub refractivity, which includes water vapour. Valid down
	// to −1°.
	Radio
)

func (m Model) String() string {
	switch m {
	case Bennett:
		return "bennett"
	case Saemundsson:
		return "saemundsson"
	case Radio:
		return "radio"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// ParseModel parses a model name as produced by String.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bennett", "":
		return Bennett, nil
	case "saemundsson":
		return Saemundsson, nil
	case "radio":
		return Radio, nil
	}
	return Bennett, fmt.Errorf("unknown refraction model %q", s)
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

// Floor returns the lowest altitude in degrees at which m is evaluated.
// Refraction is 0 below it.
func (m Model) Floor() float64 {
	if m == Bennett {
		return -0.5
	}
	return -1
}

// Conditions describes the atmosphere at the observer.
type Conditions struct {
	PressureHPa     float64 `yaml:"pressure_hpa" json:"pressure_hpa"`
	TemperatureC    float64 `yaml:"temperature_c" json:"temperature_c"`
	HumidityPercent float64 `yaml:"humidity_percent" json:"humidity_percent"`
	WavelengthNm    float64 `yaml:"wavelength_nm" json:"wavelength_nm"`
}

// Standard atmosphere used when no conditions are given.
const (
	DefaultPressureHPa     = 1010.0
	DefaultTemperatureC    = 10.0
	DefaultHumidityPercent = 0.0
	DefaultWavelengthNm    = 550.0
)

// DefaultConditions returns the standard atmosphere.
func DefaultConditions() Conditions {
	return Conditions{
		PressureHPa:     DefaultPressureHPa,
		TemperatureC:    DefaultTemperatureC,
		HumidityPercent: DefaultHumidityPercent,
		WavelengthNm:    DefaultWavelengthNm,
	}
}

// Validate checks that every field is physical.
func (c Conditions) Validate() error {
	if !(c.PressureHPa >= 0 && c.PressureHPa <= 2000) {
		return astro.NewRangeError("pressure", c.PressureHPa, 0, 2000)
	}
	if !(c.TemperatureC > -273.15 && c.TemperatureC <= 100) {
		return astro.NewRangeError("temperature", c.TemperatureC, -273.15, 100)
	}
	if !(c.HumidityPercent >= 0 && c.HumidityPercent <= 100) {
		return astro.NewRangeError("humidity", c.HumidityPercent, 0, 100)
	}
	if !(c.WavelengthNm > 0) {
		return astro.NewRangeError("wavelength", c.WavelengthNm, 0, math.Inf(1))
	}
	return nil
}

// Refraction returns the refraction in degrees for an apparent altitude.
// The result is never negative and is 0 below the model's floor.
func Refraction(m Model, altDeg float64, c Conditions) (float64, error) {
	if err := astro.ValidateAltitude(altDeg); err != nil {
		return 0, err
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if altDeg < m.Floor() {
		return 0, nil
	}

	var r float64
	switch m {
	case Bennett:
		r = bennett(altDeg)
	case Saemundsson:
		r = saemundsson(altDeg) * (c.PressureHPa / 1010) * (283 / (273 + c.TemperatureC))
	case Radio:
		r = radio(altDeg, c)
	default:
		return 0, fmt.Errorf("refraction: unknown model %v", m)
	}
	return math.Max(r, 0), nil
}

// bennett returns refraction in degrees.
func bennett(h float64) float64 {
	return 1 / math.Tan(astro.DegToRad(h+7.31/(h+4.4))) / 60
}

// saemundssonArg is the horizon-regularised altitude used by Sæmundsson's
// formula. It stays positive down to −1°.
func saemundssonArg(h float64) float64 {
	return h + 10.3/(h+5.11)
}

func saemundsson(h float64) float64 {
	return 1.02 / math.Tan(astro.DegToRad(saemundssonArg(h))) / 60
}

// Refractivity returns (n−1)·10⁶ for the given conditions using the
// Smith–Weintraub expression with a Magnus saturation vapour pressure.
func Refractivity(c Conditions) float64 {
	tk := 273.15 + c.TemperatureC
	es := 6.105 * math.Exp(17.27*c.TemperatureC/(237.7+c.TemperatureC))
	e := c.HumidityPercent / 100 * es
	return 77.6*c.PressureHPa/tk + 3.73e5*e/(tk*tk)
}

func radio(h float64, c Conditions) float64 {
	n := Refractivity(c) * 1e-6
	return astro.RadToDeg(n / math.Tan(astro.DegToRad(saemundssonArg(h))))
}

// Iterations is the number of fixed-point steps taken by TrueToApparent.
const Iterations = 5

// TrueToApparent returns the apparent altitude of an object at a true
// (airless) altitude.
func TrueToApparent(m Model, trueAltDeg float64, c Conditions) (float64, error) {
	if err := astro.ValidateAltitude(trueAltDeg); err != nil {
		return 0, err
	}
	app := trueAltDeg
	for range Iterations {
		r, err := Refraction(m, math.Min(app, 90), c)
		if err != nil {
			return 0, err
		}
		app = trueAltDeg + r
	}
	return math.Min(app, 90), nil
}

// ApparentToTrue returns the true altitude of an object observed at an
// apparent altitude.
func ApparentToTrue(m Model, appAltDeg float64, c Conditions) (float64, error) {
	r, err := Refraction(m, appAltDeg, c)
	if err != nil {
		return 0, err
	}
	return appAltDeg - r, nil
}
