package parallax

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-astrometry/astro"
	"github.com/litescript/ls-astrometry/nutation"
	"github.com/litescript/ls-astrometry/timescale"
)

// palomar is the site of Meeus example 40.a.
var palomar = astro.GeoLocation{
	LatDeg:  33 + 21.0/60 + 22.0/3600,
	LonDeg:  -(7 + 47.0/60 + 27.0/3600) * 15,
	HeightM: 1706,
	Name:    "Palomar",
}

func TestObserverTerms(t *testing.T) {
	s, c := ObserverTerms(palomar)
	if math.Abs(s-0.546861) > 2e-6 {
		t.Errorf("ρ sin φ′ = %v, want 0.546861", s)
	}
	if math.Abs(c-0.836339) > 2e-6 {
		t.Errorf("ρ cos φ′ = %v, want 0.836339", c)
	}
}

func TestGeocentricDistance(t *testing.T) {
	tests := []struct {
		name     string
		loc      astro.GeoLocation
		min, max float64
	}{
		{"equator sea level", astro.GeoLocation{}, 0.99999, 1.00001},
		{"pole sea level", astro.GeoLocation{LatDeg: 90}, 1 - Flattening - 1e-6, 1 - Flattening + 1e-6},
		{"equator 10 km", astro.GeoLocation{HeightM: 10000}, 1.0015, 1.0016},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeocentricDistance(tt.loc)
			if got < tt.min || got > tt.max {
				t.Errorf("GeocentricDistance() = %v, want [%v, %v]", got, tt.min, tt.max)
			}
		})
	}
}

func TestDiurnalMeeusExample(t *testing.T) {
	// Mars, 2003 August 28 3:17 UT, distance 0.37276 AU.
	i := timescale.FromCalendar(2003, 8, 28, 3, 17, 0)
	ra0, dec0 := 339.530208, -15.771083

	ra, dec, err := Diurnal(ra0, dec0, 0.37276, i, palomar)
	if err != nil {
		t.Fatalf("Diurnal() error = %v", err)
	}
	if got := (ra - ra0) * 240; math.Abs(got-1.29) > 0.01 {
		t.Errorf("Δα = %v s, want +1.29 s", got)
	}
	want := -(15 + 46.0/60 + 30.0/3600)
	if math.Abs(dec-want)*3600 > 0.5 {
		t.Errorf("δ′ = %v, want %v", dec, want)
	}
}

func TestDiurnalRoundTrip(t *testing.T) {
	i := timescale.FromCalendar(2024, 3, 15, 22, 0, 0)
	tests := []struct {
		name     string
		ra, dec  float64
		distance float64
	}{
		{"moon", 120, 18, 0.00257},
		{"mars", 339.53, -15.77, 0.37276},
		{"near pole", 10, 88, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, dec, err := Diurnal(tt.ra, tt.dec, tt.distance, i, palomar)
			if err != nil {
				t.Fatal(err)
			}
			ra, dec, err = RemoveDiurnal(ra, dec, tt.distance, i, palomar)
			if err != nil {
				t.Fatal(err)
			}
			if sep := astro.AngularSeparation(ra, dec, tt.ra, tt.dec); sep > 1e-9 {
				t.Errorf("round trip = (%v, %v), off by %v°", ra, dec, sep)
			}
		})
	}
}

func TestDiurnalMoonMagnitude(t *testing.T) {
	// The Moon's horizontal parallax is close to 57′; no displacement can
	// exceed it.
	i := timescale.FromCalendar(2024, 3, 15, 22, 0, 0)
	ra, dec, err := Diurnal(120, 18, 0.00257, i, palomar)
	if err != nil {
		t.Fatal(err)
	}
	sep := astro.AngularSeparation(ra, dec, 120, 18)
	if sep <= 0 || sep > 0.96 {
		t.Errorf("lunar parallax displacement = %v°, want (0, 0.96]", sep)
	}
}

func TestDiurnalErrors(t *testing.T) {
	i := timescale.FromCalendar(2024, 1, 1, 0, 0, 0)
	tests := []struct {
		name     string
		ra, dec  float64
		distance float64
		loc      astro.GeoLocation
		want     error
	}{
		{"zero distance", 10, 10, 0, palomar, astro.ErrOutOfRange},
		{"negative distance", 10, 10, -1, palomar, astro.ErrOutOfRange},
		{"inside earth", 10, 10, 1e-6, palomar, astro.ErrOutOfRange},
		{"bad RA", 400, 10, 1, palomar, astro.ErrInvalidCoordinate},
		{"bad latitude", 10, 10, 1, astro.GeoLocation{LatDeg: 95}, astro.ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Diurnal(tt.ra, tt.dec, tt.distance, i, tt.loc); !errors.Is(err, tt.want) {
				t.Errorf("Diurnal() error = %v, want %v", err, tt.want)
			}
			if _, _, err := RemoveDiurnal(tt.ra, tt.dec, tt.distance, i, tt.loc); !errors.Is(err, tt.want) {
				t.Errorf("RemoveDiurnal() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAnnual(t *testing.T) {
	const jd = 2460500.5
	const plx = 768.13 // Proxima Centauri

	t.Run("bounded by parallax", func(t *testing.T) {
		for ra := 0.0; ra < 360; ra += 45 {
			for dec := -80.0; dec <= 80; dec += 40 {
				ra2, dec2, err := Annual(ra, dec, plx, jd)
				if err != nil {
					t.Fatal(err)
				}
				sep := astro.AngularSeparation(ra, dec, ra2, dec2) * 3600 * 1000
				if sep > plx*(1+1e-6) {
					t.Errorf("Annual(%v, %v) shift = %v mas, want <= %v", ra, dec, sep, plx)
				}
			}
		}
	})

	t.Run("no shift toward the sun", func(t *testing.T) {
		lon := astro.Sun(jd).ApparentDeg
		ra, dec := astro.SunDirection(lon, nutation.MeanObliquity(jd)).RADec()
		ra2, dec2, err := Annual(ra, dec, plx, jd)
		if err != nil {
			t.Fatal(err)
		}
		if sep := astro.AngularSeparation(ra, dec, ra2, dec2) * 3600 * 1000; sep > 1e-6 {
			t.Errorf("shift along sun direction = %v mas, want 0", sep)
		}
	})

	t.Run("full shift at ecliptic pole", func(t *testing.T) {
		eps := nutation.MeanObliquity(jd)
		ra2, dec2, err := Annual(270, 90-eps, plx, jd)
		if err != nil {
			t.Fatal(err)
		}
		sep := astro.AngularSeparation(270, 90-eps, ra2, dec2) * 3600 * 1000
		if math.Abs(sep-plx) > 1e-3 {
			t.Errorf("shift at ecliptic pole = %v mas, want %v", sep, plx)
		}
	})
}

func TestAnnualRoundTrip(t *testing.T) {
	ra, dec, err := Annual(217.42894222, -62.67949019, 768.13, 2460000.5)
	if err != nil {
		t.Fatal(err)
	}
	ra, dec, err = RemoveAnnual(ra, dec, 768.13, 2460000.5)
	if err != nil {
		t.Fatal(err)
	}
	if sep := astro.AngularSeparation(ra, dec, 217.42894222, -62.67949019); sep > 1e-10 {
		t.Errorf("round trip off by %v°", sep)
	}
}

func TestAnnualErrors(t *testing.T) {
	for _, plx := range []float64{0, -1} {
		if _, _, err := Annual(10, 10, plx, astro.J2000); !errors.Is(err, astro.ErrOutOfRange) {
			t.Errorf("Annual(parallax=%v) error = %v, want ErrOutOfRange", plx, err)
		}
		if _, _, err := RemoveAnnual(10, 10, plx, astro.J2000); !errors.Is(err, astro.ErrOutOfRange) {
			t.Errorf("RemoveAnnual(parallax=%v) error = %v, want ErrOutOfRange", plx, err)
		}
	}
	if _, _, err := Annual(10, 100, 10, astro.J2000); !errors.Is(err, astro.ErrInvalidCoordinate) {
		t.Errorf("Annual(dec=100) error = %v, want ErrInvalidCoordinate", err)
	}
}
