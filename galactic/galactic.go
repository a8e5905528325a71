// Package galactic converts between ICRS equatorial and galactic
// coordinates.
package galactic

import (
	"fmt"

	"github.com/litescript/ls-astrometry/astro"
)

// Hipparcos rotation from ICRS to galactic axes (ESA SP-1200, eq. 1.5.11).
var toGalactic = astro.Matrix3{
	{-0.054875539390, -0.873437104725, -0.483834991775},
	{+0.494109453633, -0.444829594298, +0.746982248696},
	{-0.867666135681, -0.198076389622, +0.455983794523},
}

// Reference directions in ICRS degrees.
const (
	NorthPoleRA  = 192.85948
	NorthPoleDec = 27.12825
	CenterRA     = 266.405
	CenterDec    = -28.936
)

// Matrix returns the ICRS to galactic rotation.
func Matrix() astro.Matrix3 { return toGalactic }

// FromEquatorial returns galactic longitude in [0, 360) and latitude for
// an ICRS position, all in degrees.
func FromEquatorial(raDeg, decDeg float64) (lDeg, bDeg float64, err error) {
	if err := astro.ValidateRADec(raDeg, decDeg); err != nil {
		return 0, 0, fmt.Errorf("galactic: %w", err)
	}
	l, b := toGalactic.RotateRADec(raDeg, decDeg)
	return l, b, nil
}

// ToEquatorial returns the ICRS position of galactic (l, b). Longitude
// may be any value; latitude must lie in [-90, 90].
func ToEquatorial(lDeg, bDeg float64) (raDeg, decDeg float64, err error) {
	if !(bDeg >= -90 && bDeg <= 90) {
		return 0, 0, fmt.Errorf("galactic: %w", &astro.CoordinateError{Coord: astro.GalacticLatitude, Value: bDeg, Min: -90, Max: 90})
	}
	ra, dec := toGalactic.Transpose().RotateRADec(astro.NormalizeDeg(lDeg), bDeg)
	return ra, dec, nil
}

// Landmark is a named position in galactic coordinates.
type Landmark struct {
	Name string
	LDeg float64
	BDeg float64
}

// Landmarks lists well known galactic reference points.
func Landmarks() []Landmark {
	return []Landmark{
		{"Galactic Center", 0, 0},
		{"Galactic North Pole", 0, 90},
		{"Galactic South Pole", 0, -90},
		{"Galactic Anticenter", 180, 0},
		{"Cygnus X-1", 71.3, 3.1},
		{"Large Magellanic Cloud", 280.5, -32.9},
		{"Small Magellanic Cloud", 302.8, -44.3},
		{"M31", 121.2, -21.6},
	}
}
