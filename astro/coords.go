package astro

import (
	"fmt"
	"math"
)

// Equatorial is a position on the celestial sphere in degrees.
type Equatorial struct {
	RAdeg  float64 // Right Ascension in degrees [0, 360)
	DecDeg float64 // Declination in degrees [-90, 90]
}

// Validate checks both angles.
func (e Equatorial) Validate() error {
	return ValidateRADec(e.RAdeg, e.DecDeg)
}

// Vector returns the unit direction vector for e.
func (e Equatorial) Vector() Vec3 {
	return FromRADec(e.RAdeg, e.DecDeg)
}

// RAHours returns the right ascension in hours.
func (e Equatorial) RAHours() float64 {
	return e.RAdeg / 15
}

func (e Equatorial) String() string {
	return fmt.Sprintf("RA %.6f° Dec %+.6f°", e.RAdeg, e.DecDeg)
}

// Horizontal is an observer-relative position in degrees.
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Altitude: 0° = horizon, 90° = zenith
type Horizontal struct {
	AltDeg float64
	AzDeg  float64
}

// Validate checks both angles.
func (h Horizontal) Validate() error {
	if err := ValidateAltitude(h.AltDeg); err != nil {
		return err
	}
	return ValidateAzimuth(h.AzDeg)
}

// ZenithDistance returns 90° minus the altitude.
func (h Horizontal) ZenithDistance() float64 {
	return 90 - h.AltDeg
}

func (h Horizontal) String() string {
	return fmt.Sprintf("Alt %+.6f° Az %.6f°", h.AltDeg, h.AzDeg)
}

// GeoLocation represents a ground-based observer location.
type GeoLocation struct {
	LatDeg  float64 // Geodetic latitude in degrees (north positive)
	LonDeg  float64 // Longitude in degrees (east positive)
	HeightM float64 // Height above the reference ellipsoid in meters
	Name    string  // Optional name for the site
}

// NewGeoLocation returns a validated location.
func NewGeoLocation(latDeg, lonDeg, heightM float64) (GeoLocation, error) {
	loc := GeoLocation{LatDeg: latDeg, LonDeg: lonDeg, HeightM: heightM}
	if err := loc.Validate(); err != nil {
		return GeoLocation{}, err
	}
	return loc, nil
}

// Validate checks latitude, longitude and height.
func (g GeoLocation) Validate() error {
	if err := ValidateLatitude(g.LatDeg); err != nil {
		return err
	}
	if err := ValidateLongitude(g.LonDeg); err != nil {
		return err
	}
	if math.IsNaN(g.HeightM) || math.IsInf(g.HeightM, 0) {
		return NewRangeError("height", g.HeightM, math.Inf(-1), math.Inf(1))
	}
	return nil
}

// CatalogStar is a catalog entry with full astrometric data.
type CatalogStar struct {
	Name              string
	RAdeg             float64 // Right Ascension at Epoch in degrees
	DecDeg            float64 // Declination at Epoch in degrees
	PMRACosDec        float64 // Proper motion in RA·cos(Dec), mas/yr
	PMDec             float64 // Proper motion in Dec, mas/yr
	ParallaxMas       float64 // Annual parallax in mas (0 if unknown)
	RadialVelocityKmS float64 // Radial velocity in km/s, positive receding
	EpochJD           float64 // Catalog epoch as a Julian Date; 0 means J2000.0
	Mag               float64 // Apparent visual magnitude
}

// Epoch returns the catalog epoch, defaulting to J2000.0.
func (s CatalogStar) Epoch() float64 {
	if s.EpochJD == 0 {
		return J2000
	}
	return s.EpochJD
}

// Position returns the catalog position.
func (s CatalogStar) Position() Equatorial {
	return Equatorial{RAdeg: s.RAdeg, DecDeg: s.DecDeg}
}

// Validate checks the catalog position.
func (s CatalogStar) Validate() error {
	return ValidateRADec(s.RAdeg, s.DecDeg)
}

// AngularSeparation calculates the angular separation between two points on the celestial sphere.
// All coordinates in degrees. Returns separation in degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	ra1Rad := DegToRad(ra1)
	dec1Rad := DegToRad(dec1)
	ra2Rad := DegToRad(ra2)
	dec2Rad := DegToRad(dec2)

	// Haversine formula for angular separation
	dRA := ra2Rad - ra1Rad
	dDec := dec2Rad - dec1Rad

	a := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1Rad)*math.Cos(dec2Rad)*math.Sin(dRA/2)*math.Sin(dRA/2)

	// Clamp to avoid numerical errors with asin
	if a > 1 {
		a = 1
	}

	return RadToDeg(2 * math.Asin(math.Sqrt(a)))
}
