package nutation

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-astrometry/astro"
	meeusnut "github.com/soniakeys/meeus/v3/nutation"
)

// Meeus example 22.a: 1987 April 10, 0h TD.
const jdeExample = 2446895.5

func TestComputeMeeusExample(t *testing.T) {
	tests := []struct {
		name  string
		model Model
		tol   float64
	}{
		{"reduced", Reduced, 0.05},
		{"iau1980", IAU1980, 0.002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeModel(jdeExample, tt.model)
			if math.Abs(r.DeltaPsiArcsec-(-3.788)) > tt.tol {
				t.Errorf("DeltaPsi = %v″, want -3.788″", r.DeltaPsiArcsec)
			}
			if math.Abs(r.DeltaEpsArcsec-9.443) > tt.tol {
				t.Errorf("DeltaEps = %v″, want 9.443″", r.DeltaEpsArcsec)
			}
			if r.JD != jdeExample {
				t.Errorf("JD = %v, want %v", r.JD, jdeExample)
			}
		})
	}
}

func TestReducedTracksFullSeries(t *testing.T) {
	for jd := 2415020.0; jd < 2488070; jd += 1234.5 {
		r := Compute(jd)
		dpsi, deps := meeusnut.Nutation(jd)
		if d := math.Abs(r.DeltaPsiArcsec - dpsi.Sec()); d > 0.05 {
			t.Errorf("jd %v: DeltaPsi differs from full series by %v″", jd, d)
		}
		if d := math.Abs(r.DeltaEpsArcsec - deps.Sec()); d > 0.05 {
			t.Errorf("jd %v: DeltaEps differs from full series by %v″", jd, d)
		}
	}
}

func TestResultAngles(t *testing.T) {
	r := Result{DeltaPsiArcsec: -3.6, DeltaEpsArcsec: 7.2}
	if got := r.DeltaPsi().Deg(); math.Abs(got+0.001) > 1e-12 {
		t.Errorf("DeltaPsi().Deg() = %v, want -0.001", got)
	}
	if got := r.DeltaEps().Sec(); math.Abs(got-7.2) > 1e-9 {
		t.Errorf("DeltaEps().Sec() = %v, want 7.2", got)
	}
}

func TestObliquity(t *testing.T) {
	// 23°26′27.407″ and 23°26′36.850″.
	wantMean := 23 + 26.0/60 + 27.407/3600
	wantTrue := 23 + 26.0/60 + 36.850/3600

	if got := MeanObliquity(jdeExample); math.Abs(got-wantMean)*3600 > 0.001 {
		t.Errorf("MeanObliquity() = %v, want %v", got, wantMean)
	}
	if got := TrueObliquityModel(jdeExample, IAU1980); math.Abs(got-wantTrue)*3600 > 0.005 {
		t.Errorf("TrueObliquity() = %v, want %v", got, wantTrue)
	}
	if got := TrueObliquity(jdeExample); math.Abs(got-wantTrue)*3600 > 0.05 {
		t.Errorf("TrueObliquity() = %v, want %v", got, wantTrue)
	}

	want := meeusnut.MeanObliquity(jdeExample).Deg()
	if got := MeanObliquity(jdeExample); math.Abs(got-want) > 1e-8 {
		t.Errorf("MeanObliquity() = %v, meeus = %v", got, want)
	}
}

func TestEquationOfEquinoxes(t *testing.T) {
	// Meeus example 12.a: Δψ cos ε = -0.2317 s.
	got := EquationOfEquinoxes(jdeExample, IAU1980)
	if math.Abs(got-(-0.2317)) > 1e-3 {
		t.Errorf("EquationOfEquinoxes() = %v s, want -0.2317 s", got)
	}
}

func TestMatrixOrthonormal(t *testing.T) {
	for _, m := range []Model{Reduced, IAU1980} {
		if !Matrix(2460000.5, m).IsOrthonormal(1e-12) {
			t.Errorf("Matrix(%v) is not orthonormal", m)
		}
	}
}

func TestApplyShiftsRAByDeltaPsi(t *testing.T) {
	// At the vernal equinox direction the RA shift is Δψ cos ε and the
	// Dec shift is Δψ sin ε.
	r := Compute(jdeExample)
	eps := astro.DegToRad(TrueObliquity(jdeExample))
	ra, dec, err := Apply(0, 0, jdeExample, Reduced)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	wantRA := astro.NormalizeDeg(r.DeltaPsiArcsec * math.Cos(eps) / 3600)
	wantDec := r.DeltaPsiArcsec * math.Sin(eps) / 3600
	if math.Abs(astro.NormalizeSigned(ra-wantRA))*3600 > 1e-3 {
		t.Errorf("Apply() RA = %v, want %v", ra, wantRA)
	}
	if math.Abs(dec-wantDec)*3600 > 1e-3 {
		t.Errorf("Apply() Dec = %v, want %v", dec, wantDec)
	}
}

func TestApplyRoundTrip(t *testing.T) {
	tests := []struct {
		ra, dec float64
	}{
		{0, 0},
		{41.0581825, 49.2270323},
		{279.23473479, 38.78368896},
		{180, -89.5},
	}

	for _, tt := range tests {
		ra, dec, err := Apply(tt.ra, tt.dec, 2460676.5, Reduced)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		ra, dec, err = ApplyInverse(ra, dec, 2460676.5, Reduced)
		if err != nil {
			t.Fatalf("ApplyInverse() error = %v", err)
		}
		if math.Abs(astro.NormalizeSigned(ra-tt.ra)) > 1e-9 || math.Abs(dec-tt.dec) > 1e-9 {
			t.Errorf("round trip (%v, %v) = (%v, %v)", tt.ra, tt.dec, ra, dec)
		}
	}
}

func TestApplyInvalidCoordinate(t *testing.T) {
	if _, _, err := Apply(400, 0, jdeExample, Reduced); !errors.Is(err, astro.ErrInvalidCoordinate) {
		t.Errorf("Apply(400, 0) error = %v, want ErrInvalidCoordinate", err)
	}
	if _, _, err := ApplyInverse(0, 100, jdeExample, Reduced); !errors.Is(err, astro.ErrInvalidCoordinate) {
		t.Errorf("ApplyInverse(0, 100) error = %v, want ErrInvalidCoordinate", err)
	}
}

func TestParseModel(t *testing.T) {
	tests := []struct {
		in      string
		want    Model
		wantErr bool
	}{
		{"reduced", Reduced, false},
		{"", Reduced, false},
		{"IAU1980", IAU1980, false},
		{"full", IAU1980, false},
		{"iau2000a", Reduced, true},
	}

	for _, tt := range tests {
		got, err := ParseModel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseModel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseModel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	var m Model
	if err := m.UnmarshalText([]byte("iau1980")); err != nil || m != IAU1980 {
		t.Errorf("UnmarshalText() = %v, %v", m, err)
	}
}
