package astro

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the correction pipeline can report.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidCoordinate
	KindOutOfRange
	KindCalculation
	KindNeverRisesOrSets
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCoordinate:
		return "invalid coordinate"
	case KindOutOfRange:
		return "out of range"
	case KindCalculation:
		return "calculation error"
	case KindNeverRisesOrSets:
		return "never rises or sets"
	case KindInvalidInput:
		return "invalid input"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per Kind, for use with errors.Is.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrOutOfRange        = errors.New("parameter out of range")
	ErrCalculation       = errors.New("calculation error")
	ErrNeverRisesOrSets  = errors.New("object never rises or sets")
	ErrInvalidInput      = errors.New("invalid input")
)

// Coordinate names the angle rejected by a CoordinateError.
type Coordinate int

const (
	RightAscension Coordinate = iota
	Declination
	Latitude
	Longitude
	Altitude
	Azimuth
	GalacticLatitude
)

func (c Coordinate) String() string {
	switch c {
	case RightAscension:
		return "right ascension"
	case Declination:
		return "declination"
	case Latitude:
		return "latitude"
	case Longitude:
		return "longitude"
	case Altitude:
		return "altitude"
	case Azimuth:
		return "azimuth"
	case GalacticLatitude:
		return "galactic latitude"
	default:
		return "coordinate"
	}
}

// CoordinateError reports an angle outside its valid interval.
type CoordinateError struct {
	Coord    Coordinate
	Value    float64
	Min, Max float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid %s %g: must be within [%g, %g]", e.Coord, e.Value, e.Min, e.Max)
}

// Is matches ErrInvalidCoordinate.
func (e *CoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}

// RangeError reports a physical parameter outside its valid domain.
type RangeError struct {
	Param    string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %g out of range [%g, %g]", e.Param, e.Value, e.Min, e.Max)
}

// Is matches ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// CalculationError reports a numerically degenerate computation.
type CalculationError struct {
	Op     string
	Reason string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Is matches ErrCalculation.
func (e *CalculationError) Is(target error) bool {
	return target == ErrCalculation
}

// NeverRisesOrSetsError reports an object that does not cross the
// requested altitude at the observer's latitude.
type NeverRisesOrSetsError struct {
	// AlwaysAbove is true for circumpolar objects and false for objects
	// that stay below the altitude all day.
	AlwaysAbove bool
}

func (e *NeverRisesOrSetsError) Error() string {
	if e.AlwaysAbove {
		return "object never sets"
	}
	return "object never rises"
}

// Is matches ErrNeverRisesOrSets.
func (e *NeverRisesOrSetsError) Is(target error) bool {
	return target == ErrNeverRisesOrSets
}

// InputError reports malformed input that is not a single bad angle,
// such as mismatched batch lengths.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Reason
}

// Is matches ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewRangeError returns a RangeError for param.
func NewRangeError(param string, value, min, max float64) error {
	return &RangeError{Param: param, Value: value, Min: min, Max: max}
}

// KindOf returns the Kind of the first pipeline error found in err's chain.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidCoordinate):
		return KindInvalidCoordinate
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, ErrCalculation):
		return KindCalculation
	case errors.Is(err, ErrNeverRisesOrSets):
		return KindNeverRisesOrSets
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindUnknown
	}
}
