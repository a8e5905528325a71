package refraction

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-astrometry/astro"
)

var airmassFuncs = []struct {
	name  string
	fn    func(float64) (float64, error)
	floor float64
}{
	{"plane parallel", PlaneParallel, 0},
	{"kasten young", KastenYoung, 0},
	{"young", Young, -0.5},
	{"pickering", Pickering, -0.5},
}

func airmass(t *testing.T, name string, fn func(float64) (float64, error), alt float64) float64 {
	t.Helper()
	x, err := fn(alt)
	if err != nil {
		t.Fatalf("%s(%v): %v", name, alt, err)
	}
	return x
}

func TestAirmassZenith(t *testing.T) {
	for _, a := range airmassFuncs {
		if got := airmass(t, a.name, a.fn, 90); math.Abs(got-1) > 0.001 {
			t.Errorf("%s(90) = %v, want 1", a.name, got)
		}
	}
	if got := airmass(t, "PlaneParallel", PlaneParallel, 90); math.Abs(got-1) > 1e-12 {
		t.Errorf("PlaneParallel(90) = %v, want exactly 1", got)
	}
}

func TestAirmass45(t *testing.T) {
	for _, a := range airmassFuncs {
		if got := airmass(t, a.name, a.fn, 45); math.Abs(got-math.Sqrt2) > 0.01 {
			t.Errorf("%s(45) = %v, want %v", a.name, got, math.Sqrt2)
		}
	}
}

func TestAirmassIncreasesTowardHorizon(t *testing.T) {
	for _, a := range airmassFuncs {
		t.Run(a.name, func(t *testing.T) {
			prev := airmass(t, a.name, a.fn, 90)
			for alt := 89.0; alt >= 1; alt-- {
				got := airmass(t, a.name, a.fn, alt)
				if got <= prev {
					t.Errorf("%s(%v) = %v, not above %v", a.name, alt, got, prev)
				}
				prev = got
			}
		})
	}
}

func TestAirmassBelowFloor(t *testing.T) {
	for _, a := range airmassFuncs {
		for _, alt := range []float64{a.floor, a.floor - 1, -90} {
			if got := airmass(t, a.name, a.fn, alt); !math.IsInf(got, 1) {
				t.Errorf("%s(%v) = %v, want +Inf", a.name, alt, got)
			}
		}
	}
}

func TestAirmassInvalidAltitude(t *testing.T) {
	for _, a := range airmassFuncs {
		for _, alt := range []float64{100, -200, 90.0001, math.NaN()} {
			if _, err := a.fn(alt); !errors.Is(err, astro.ErrInvalidCoordinate) {
				t.Errorf("%s(%v) error = %v, want ErrInvalidCoordinate", a.name, alt, err)
			}
		}
	}
}

func TestAirmassHorizon(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) (float64, error)
		alt  float64
	}{
		{"Pickering", Pickering, 0},
		{"KastenYoung", KastenYoung, 0.01},
		{"Young", Young, 0},
		{"Young", Young, -0.25},
	}
	for _, tt := range tests {
		if got := airmass(t, tt.name, tt.fn, tt.alt); got < 30 || got > 50 {
			t.Errorf("%s(%v) = %v, want 30-50", tt.name, tt.alt, got)
		}
	}
}

func TestYoungMatchesKastenYoungAboveHorizon(t *testing.T) {
	for _, alt := range []float64{0.5, 5, 30, 60, 89} {
		ky := airmass(t, "KastenYoung", KastenYoung, alt)
		y := airmass(t, "Young", Young, alt)
		if ky != y {
			t.Errorf("Young(%v) = %v, KastenYoung = %v", alt, y, ky)
		}
	}
}

func TestExtinction(t *testing.T) {
	blue, err := ExtinctionCoefficient(450)
	if err != nil {
		t.Fatal(err)
	}
	red, err := ExtinctionCoefficient(650)
	if err != nil {
		t.Fatal(err)
	}
	if blue <= red {
		t.Errorf("k(450) = %v <= k(650) = %v", blue, red)
	}
	if blue < 0.15 || blue > 0.5 {
		t.Errorf("k(450) = %v, want 0.15-0.5", blue)
	}
	if red < 0.05 || red > 0.3 {
		t.Errorf("k(650) = %v, want 0.05-0.3", red)
	}
	if v, _ := ExtinctionCoefficient(550); math.Abs(v-0.261) > 1e-9 {
		t.Errorf("k(550) = %v, want 0.261", v)
	}

	if got := ExtinctionMagnitudes(2, 0.15); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("ExtinctionMagnitudes(2, 0.15) = %v, want 0.3", got)
	}
}

func TestExtinctionCoefficientOutOfRange(t *testing.T) {
	for _, wl := range []float64{0, -550, math.NaN(), math.Inf(1)} {
		if _, err := ExtinctionCoefficient(wl); !errors.Is(err, astro.ErrOutOfRange) {
			t.Errorf("ExtinctionCoefficient(%v) error = %v, want ErrOutOfRange", wl, err)
		}
	}
}
