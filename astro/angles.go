// Package astro provides the shared angle, vector and coordinate types used by
// the correction pipeline, along with its error kinds.
package astro

import "math"

const (
	// J2000 is the Julian Date of the J2000.0 epoch (2000-01-01 12:00 TT).
	J2000 = 2451545.0

	// DaysPerJulianCentury is the length of a Julian century in days.
	DaysPerJulianCentury = 36525.0

	// DaysPerJulianYear is the length of a Julian year in days.
	DaysPerJulianYear = 365.25

	// ArcsecPerDeg converts degrees to arcseconds.
	ArcsecPerDeg = 3600.0

	// MasPerDeg converts degrees to milliarcseconds.
	MasPerDeg = 3.6e6
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ArcsecToRad converts arcseconds to radians.
func ArcsecToRad(arcsec float64) float64 {
	return DegToRad(arcsec / ArcsecPerDeg)
}

// NormalizeDeg wraps an angle into [0, 360).
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod of a tiny negative value can land exactly on 360.
	if a >= 360 {
		a = 0
	}
	return a
}

// NormalizeHours wraps a time-angle into [0, 24).
func NormalizeHours(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	if h >= 24 {
		h = 0
	}
	return h
}

// NormalizeSigned wraps an angle into [-180, 180).
func NormalizeSigned(a float64) float64 {
	a = NormalizeDeg(a + 180)
	return a - 180
}

// JulianCenturies returns the number of Julian centuries between J2000.0 and jd.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / DaysPerJulianCentury
}

// JulianYears returns the number of Julian years between J2000.0 and jd.
func JulianYears(jd float64) float64 {
	return (jd - J2000) / DaysPerJulianYear
}

// ValidateRA checks a right ascension lies in [0, 360).
func ValidateRA(ra float64) error {
	if !(ra >= 0 && ra < 360) {
		return &CoordinateError{Coord: RightAscension, Value: ra, Min: 0, Max: 360}
	}
	return nil
}

// ValidateDec checks a declination lies in [-90, 90].
func ValidateDec(dec float64) error {
	if !(dec >= -90 && dec <= 90) {
		return &CoordinateError{Coord: Declination, Value: dec, Min: -90, Max: 90}
	}
	return nil
}

// ValidateLatitude checks a geodetic latitude lies in [-90, 90].
func ValidateLatitude(lat float64) error {
	if !(lat >= -90 && lat <= 90) {
		return &CoordinateError{Coord: Latitude, Value: lat, Min: -90, Max: 90}
	}
	return nil
}

// ValidateLongitude checks a longitude lies in [-180, 180].
func ValidateLongitude(lon float64) error {
	if !(lon >= -180 && lon <= 180) {
		return &CoordinateError{Coord: Longitude, Value: lon, Min: -180, Max: 180}
	}
	return nil
}

// ValidateAltitude checks an altitude lies in [-90, 90].
func ValidateAltitude(alt float64) error {
	if !(alt >= -90 && alt <= 90) {
		return &CoordinateError{Coord: Altitude, Value: alt, Min: -90, Max: 90}
	}
	return nil
}

// ValidateAzimuth checks an azimuth lies in [0, 360).
func ValidateAzimuth(az float64) error {
	if !(az >= 0 && az < 360) {
		return &CoordinateError{Coord: Azimuth, Value: az, Min: 0, Max: 360}
	}
	return nil
}

// ValidateRADec checks both components of an equatorial position.
func ValidateRADec(ra, dec float64) error {
	if err := ValidateRA(ra); err != nil {
		return err
	}
	return ValidateDec(dec)
}
