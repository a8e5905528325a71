// Package projection maps sky positions onto a flat detector with the
// gnomonic (tangent-plane) projection.
package projection

import (
	"fmt"
	"math"

	"github.com/litescript/ls-astrometry/astro"
)

// TangentPlane projects onto the plane touching the sky at (RA0, Dec0).
// Pixel x increases toward the west (decreasing RA) and y toward the north,
// before Rotation is applied.
type TangentPlane struct {
	RA0, Dec0 float64
	// Scale is the plate scale in arcseconds per pixel.
	Scale float64
	// Rotation is the position angle of the detector y axis, degrees.
	Rotation float64
	// RefX and RefY are the pixel coordinates of the tangent point.
	RefX, RefY float64
}

// Option configures a TangentPlane.
type Option func(*TangentPlane)

// WithReferencePixel places the tangent point at pixel (x, y).
func WithReferencePixel(x, y float64) Option {
	return func(tp *TangentPlane) {
		tp.RefX, tp.RefY = x, y
	}
}

// WithRotation rotates the detector axes by deg.
func WithRotation(deg float64) Option {
	return func(tp *TangentPlane) {
		tp.Rotation = deg
	}
}

// New returns a tangent plane centred on (ra0, dec0) with the given plate
// scale in arcseconds per pixel.
func New(ra0, dec0, scaleArcsecPerPx float64, opts ...Option) (*TangentPlane, error) {
	if err := astro.ValidateRADec(ra0, dec0); err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}
	if !(scaleArcsecPerPx > 0) || math.IsInf(scaleArcsecPerPx, 1) {
		return nil, fmt.Errorf("projection: %w", astro.NewRangeError("plate scale", scaleArcsecPerPx, 0, math.Inf(1)))
	}
	tp := &TangentPlane{RA0: ra0, Dec0: dec0, Scale: scaleArcsecPerPx}
	for _, opt := range opts {
		opt(tp)
	}
	return tp, nil
}

// Standard returns the standard coordinates (ξ, η) of (ra, dec) in degrees.
// Points 90° or more from the tangent point have no projection.
func (tp *TangentPlane) Standard(raDeg, decDeg float64) (xi, eta float64, err error) {
	if err := astro.ValidateRADec(raDeg, decDeg); err != nil {
		return 0, 0, fmt.Errorf("projection: %w", err)
	}
	sd, cd := math.Sincos(astro.DegToRad(decDeg))
	sd0, cd0 := math.Sincos(astro.DegToRad(tp.Dec0))
	sa, ca := math.Sincos(astro.DegToRad(raDeg - tp.RA0))

	div := sd*sd0 + cd*cd0*ca
	if div < 1e-12 {
		return 0, 0, &astro.CalculationError{Op: "projection", Reason: fmt.Sprintf("(%g, %g) is 90° or more from the tangent point", raDeg, decDeg)}
	}
	xi = astro.RadToDeg(cd * sa / div)
	eta = astro.RadToDeg((sd*cd0 - cd*sd0*ca) / div)
	return xi, eta, nil
}

// ToPixel returns the detector position of (ra, dec).
func (tp *TangentPlane) ToPixel(raDeg, decDeg float64) (x, y float64, err error) {
	xi, eta, err := tp.Standard(raDeg, decDeg)
	if err != nil {
		return 0, 0, err
	}
	sr, cr := math.Sincos(astro.DegToRad(tp.Rotation))
	xr := xi*cr + eta*sr
	yr := -xi*sr + eta*cr
	return tp.RefX - xr*3600/tp.Scale, tp.RefY + yr*3600/tp.Scale, nil
}

// FromPixel returns the sky position of detector pixel (x, y). Every pixel
// has a position, so no error is possible.
func (tp *TangentPlane) FromPixel(x, y float64) (raDeg, decDeg float64) {
	xr := -(x - tp.RefX) * tp.Scale / 3600
	yr := (y - tp.RefY) * tp.Scale / 3600

	sr, cr := math.Sincos(astro.DegToRad(tp.Rotation))
	xi := astro.DegToRad(xr*cr - yr*sr)
	eta := astro.DegToRad(xr*sr + yr*cr)

	ra0 := astro.DegToRad(tp.RA0)
	sd0, cd0 := math.Sincos(astro.DegToRad(tp.Dec0))

	rho := math.Hypot(xi, eta)
	if rho == 0 {
		return tp.RA0, tp.Dec0
	}
	sc, cc := math.Sincos(math.Atan(rho))
	dec := math.Asin(cc*sd0 + eta*sc*cd0/rho)
	ra := ra0 + math.Atan2(xi*sc, rho*cd0*cc-eta*sd0*sc)
	return astro.NormalizeDeg(astro.RadToDeg(ra)), astro.RadToDeg(dec)
}

// Separation returns the angular distance in arcseconds between two pixels.
func (tp *TangentPlane) Separation(x1, y1, x2, y2 float64) float64 {
	ra1, dec1 := tp.FromPixel(x1, y1)
	ra2, dec2 := tp.FromPixel(x2, y2)
	return astro.AngularSeparation(ra1, dec1, ra2, dec2) * 3600
}
