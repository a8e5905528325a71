package astro

import (
	"errors"
	"math"
	"testing"
)

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg float64
		rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
		{-90, -math.Pi / 2},
	}

	for _, tt := range tests {
		got := DegToRad(tt.deg)
		if math.Abs(got-tt.rad) > 1e-10 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
		back := RadToDeg(got)
		if math.Abs(back-tt.deg) > 1e-10 {
			t.Errorf("RadToDeg(%v) = %v, want %v", got, back, tt.deg)
		}
	}
}

func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{720.5, 0.5},
		{-10, 350},
		{-360, 0},
		{-1e-15, 0},
		{359.999, 359.999},
	}

	for _, tt := range tests {
		got := NormalizeDeg(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDeg(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDeg(%v) = %v, outside [0, 360)", tt.in, got)
		}
	}
}

func TestNormalizeHours(t *testing.T) {
	for _, h := range []float64{-48.5, -0.1, 0, 23.99, 24, 100} {
		got := NormalizeHours(h)
		if got < 0 || got >= 24 {
			t.Errorf("NormalizeHours(%v) = %v, outside [0, 24)", h, got)
		}
	}
	if got := NormalizeHours(-1); math.Abs(got-23) > 1e-12 {
		t.Errorf("NormalizeHours(-1) = %v, want 23", got)
	}
}

func TestNormalizeSigned(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{190, -170},
		{-190, 170},
		{45, 45},
		{180, -180},
	}
	for _, tt := range tests {
		if got := NormalizeSigned(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeSigned(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"RA 0", ValidateRA(0), false},
		{"RA 359.9", ValidateRA(359.9), false},
		{"RA 360", ValidateRA(360), true},
		{"RA 400", ValidateRA(400), true},
		{"RA negative", ValidateRA(-1), true},
		{"RA NaN", ValidateRA(math.NaN()), true},
		{"Dec 90", ValidateDec(90), false},
		{"Dec 100", ValidateDec(100), true},
		{"Dec NaN", ValidateDec(math.NaN()), true},
		{"Lat 95", ValidateLatitude(95), true},
		{"Lat -90", ValidateLatitude(-90), false},
		{"Lon 200", ValidateLongitude(200), true},
		{"Lon -180", ValidateLongitude(-180), false},
		{"Alt -91", ValidateAltitude(-91), true},
		{"Az 360", ValidateAzimuth(360), true},
		{"Az 0", ValidateAzimuth(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", tt.err, tt.wantErr)
			}
			if tt.err != nil && !errors.Is(tt.err, ErrInvalidCoordinate) {
				t.Errorf("err = %v, want ErrInvalidCoordinate", tt.err)
			}
		})
	}
}

func TestCoordinateErrorFields(t *testing.T) {
	err := ValidateDec(100)
	var ce *CoordinateError
	if !errors.As(err, &ce) {
		t.Fatalf("ValidateDec(100) = %T, want *CoordinateError", err)
	}
	if ce.Coord != Declination || ce.Value != 100 || ce.Min != -90 || ce.Max != 90 {
		t.Errorf("CoordinateError = %+v", ce)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"coordinate", ValidateRA(400), KindInvalidCoordinate},
		{"range", NewRangeError("parallax", 0, 0, math.Inf(1)), KindOutOfRange},
		{"calculation", &CalculationError{Op: "project", Reason: "behind tangent plane"}, KindCalculation},
		{"never sets", &NeverRisesOrSetsError{AlwaysAbove: true}, KindNeverRisesOrSets},
		{"input", &InputError{Reason: "length mismatch"}, KindInvalidInput},
		{"other", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJulianCenturies(t *testing.T) {
	if got := JulianCenturies(J2000 + DaysPerJulianCentury); math.Abs(got-1) > 1e-15 {
		t.Errorf("JulianCenturies() = %v, want 1", got)
	}
	if got := JulianYears(J2000 - DaysPerJulianYear); math.Abs(got+1) > 1e-15 {
		t.Errorf("JulianYears() = %v, want -1", got)
	}
}
