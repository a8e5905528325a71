package refraction

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-astrometry/astro"
	meeusrefr "github.com/soniakeys/meeus/v3/refraction"
	"github.com/soniakeys/unit"
)

var models = []Model{Bennett, Saemundsson, Radio}

func TestRefractionValues(t *testing.T) {
	std := DefaultConditions()
	tests := []struct {
		name     string
		model    Model
		alt      float64
		cond     Conditions
		min, max float64
	}{
		{"bennett horizon", Bennett, 0, std, 0.55, 0.60},
		{"bennett 45", Bennett, 45, std, 0.015, 0.020},
		{"bennett zenith", Bennett, 90, std, 0, 0.001},
		{"saemundsson 10", Saemundsson, 10, Conditions{1013.25, 10, 0, 550}, 0.08, 0.10},
		{"saemundsson zenith", Saemundsson, 90, std, 0, 0.001},
		{"radio zenith", Radio, 90, std, 0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Refraction(tt.model, tt.alt, tt.cond)
			if err != nil {
				t.Fatalf("Refraction() error = %v", err)
			}
			if got < tt.min || got > tt.max {
				t.Errorf("Refraction(%v, %v) = %v°, want [%v, %v]", tt.model, tt.alt, got, tt.min, tt.max)
			}
		})
	}
}

func TestBennettMeeusExample(t *testing.T) {
	// Meeus example 16.a: apparent altitude 0°30′ refracts by 28.754′.
	got, err := Refraction(Bennett, 0.5, DefaultConditions())
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got*60-28.754) > 0.01 {
		t.Errorf("Refraction(0.5°) = %v′, want 28.754′", got*60)
	}
}

func TestAgainstMeeus(t *testing.T) {
	for h := 5.0; h <= 85; h += 5 {
		b, _ := Refraction(Bennett, h, DefaultConditions())
		if want := meeusrefr.Bennett(unit.AngleFromDeg(h)).Deg(); math.Abs(b-want) > 1e-6 {
			t.Errorf("Bennett(%v) = %v, meeus %v", h, b, want)
		}
		s, _ := Refraction(Saemundsson, h, DefaultConditions())
		if want := meeusrefr.Saemundsson(unit.AngleFromDeg(h)).Deg(); math.Abs(s-want) > 1e-6 {
			t.Errorf("Saemundsson(%v) = %v, meeus %v", h, s, want)
		}
	}
}

func TestRefractionIncreasesTowardHorizon(t *testing.T) {
	for _, m := range models {
		t.Run(m.String(), func(t *testing.T) {
			prev, _ := Refraction(m, 90, DefaultConditions())
			for alt := 89.0; alt >= 0; alt-- {
				r, err := Refraction(m, alt, DefaultConditions())
				if err != nil {
					t.Fatal(err)
				}
				if r <= prev {
					t.Errorf("Refraction(%v) = %v, not above Refraction(%v) = %v", alt, r, alt+1, prev)
				}
				prev = r
			}
		})
	}
}

func TestRefractionBelowFloor(t *testing.T) {
	for _, m := range models {
		for _, alt := range []float64{m.Floor() - 0.01, -10, -90} {
			r, err := Refraction(m, alt, DefaultConditions())
			if err != nil || r != 0 {
				t.Errorf("Refraction(%v, %v) = %v, %v; want 0, nil", m, alt, r, err)
			}
		}
		// Just above the floor the formula is still finite and positive.
		r, err := Refraction(m, m.Floor()+0.01, DefaultConditions())
		if err != nil || !(r > 0) || math.IsInf(r, 0) {
			t.Errorf("Refraction(%v, floor) = %v, %v", m, r, err)
		}
	}
}

func TestWeatherEffects(t *testing.T) {
	low, _ := Refraction(Saemundsson, 10, Conditions{980, 10, 0, 550})
	high, _ := Refraction(Saemundsson, 10, Conditions{1040, 10, 0, 550})
	if high <= low {
		t.Errorf("pressure: high %v <= low %v", high, low)
	}

	cold, _ := Refraction(Saemundsson, 10, Conditions{1013.25, -10, 0, 550})
	hot, _ := Refraction(Saemundsson, 10, Conditions{1013.25, 30, 0, 550})
	if cold <= hot {
		t.Errorf("temperature: cold %v <= hot %v", cold, hot)
	}

	c := Conditions{1013.25, 20, 50, 550}
	radio, _ := Refraction(Radio, 10, c)
	optical, _ := Refraction(Saemundsson, 10, c)
	if radio <= optical {
		t.Errorf("radio %v <= optical %v", radio, optical)
	}

	dry := Refractivity(Conditions{1013.25, 20, 0, 550})
	wet := Refractivity(c)
	if wet <= dry {
		t.Errorf("Refractivity() wet %v <= dry %v", wet, dry)
	}
}

func TestTrueApparentRoundTrip(t *testing.T) {
	tests := []struct {
		alt float64
		tol float64
	}{
		{60, 1e-9},
		{15, 1e-9},
		{5, 1e-7},
		{1, 1e-4},
	}

	for _, m := range models {
		for _, tt := range tests {
			app, err := TrueToApparent(m, tt.alt, DefaultConditions())
			if err != nil {
				t.Fatal(err)
			}
			if app <= tt.alt {
				t.Errorf("TrueToApparent(%v, %v) = %v, want above true altitude", m, tt.alt, app)
			}
			back, err := ApparentToTrue(m, app, DefaultConditions())
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(back-tt.alt) > tt.tol {
				t.Errorf("%v round trip at %v = %v", m, tt.alt, back)
			}
		}
	}
}

func TestZenithUnchanged(t *testing.T) {
	app, err := TrueToApparent(Saemundsson, 90, DefaultConditions())
	if err != nil || app != 90 {
		t.Errorf("TrueToApparent(90) = %v, %v; want 90", app, err)
	}
}

func TestRefractionErrors(t *testing.T) {
	tests := []struct {
		name string
		alt  float64
		cond Conditions
		want error
	}{
		{"altitude high", 91, DefaultConditions(), astro.ErrInvalidCoordinate},
		{"altitude low", -91, DefaultConditions(), astro.ErrInvalidCoordinate},
		{"altitude NaN", math.NaN(), DefaultConditions(), astro.ErrInvalidCoordinate},
		{"humidity", 10, Conditions{1010, 10, 120, 550}, astro.ErrOutOfRange},
		{"negative pressure", 10, Conditions{-1, 10, 0, 550}, astro.ErrOutOfRange},
		{"below absolute zero", 10, Conditions{1010, -300, 0, 550}, astro.ErrOutOfRange},
		{"zero wavelength", 10, Conditions{1010, 10, 0, 0}, astro.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Refraction(Bennett, tt.alt, tt.cond); !errors.Is(err, tt.want) {
				t.Errorf("Refraction() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseModel(t *testing.T) {
	tests := []struct {
		in      string
		want    Model
		wantErr bool
	}{
		{"bennett", Bennett, false},
		{"", Bennett, false},
		{"Saemundsson", Saemundsson, false},
		{" radio ", Radio, false},
		{"lunar", Bennett, true},
	}

	for _, tt := range tests {
		got, err := ParseModel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseModel(%q) = %v, %v", tt.in, got, err)
		}
	}

	var m Model
	if err := m.UnmarshalText([]byte("radio")); err != nil || m != Radio {
		t.Errorf("UnmarshalText(radio) = %v, %v", m, err)
	}
}
