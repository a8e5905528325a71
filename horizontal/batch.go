package horizontal

import (
	"fmt"
	"runtime"

	"cloudeng.io/errors"
	"golang.org/x/sync/errgroup"

	"github.com/litescript/ls-astrometry/astro"
	"github.com/litescript/ls-astrometry/timescale"
)

// minChunk is the smallest number of elements handed to one worker.
const minChunk = 256

// ElementError reports the failure of one element of a batch.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// EquatorialToHorizontalBatch converts every (ra[k], dec[k]) for one instant
// and location. Any invalid element fails the whole batch with an
// *ElementError for the lowest failing index.
func (t Transformer) EquatorialToHorizontalBatch(ra, dec []float64, i timescale.Instant, loc astro.GeoLocation) (alt, az []float64, err error) {
	return t.batch(ra, dec, loc, false, t.forward(i, loc))
}

// EquatorialToHorizontalBestEffort is EquatorialToHorizontalBatch, except
// that a failed element leaves its input pair in place of the result. All
// failures are returned together as an errors.M of *ElementError.
func (t Transformer) EquatorialToHorizontalBestEffort(ra, dec []float64, i timescale.Instant, loc astro.GeoLocation) (alt, az []float64, err error) {
	return t.batch(ra, dec, loc, true, t.forward(i, loc))
}

// HorizontalToEquatorialBatch is the batch inverse of
// EquatorialToHorizontalBatch.
func (t Transformer) HorizontalToEquatorialBatch(alt, az []float64, i timescale.Instant, loc astro.GeoLocation) (ra, dec []float64, err error) {
	return t.batch(alt, az, loc, false, t.inverse(i, loc))
}

// HorizontalToEquatorialBestEffort is the best-effort form of
// HorizontalToEquatorialBatch.
func (t Transformer) HorizontalToEquatorialBestEffort(alt, az []float64, i timescale.Instant, loc astro.GeoLocation) (ra, dec []float64, err error) {
	return t.batch(alt, az, loc, true, t.inverse(i, loc))
}

type pairFunc func(a, b float64) (float64, float64, error)

// forward and inverse evaluate sidereal time once for the whole batch.
func (t Transformer) forward(i timescale.Instant, loc astro.GeoLocation) pairFunc {
	lst := t.LocalSiderealDeg(i, loc)
	return func(ra, dec float64) (float64, float64, error) {
		if err := astro.ValidateRADec(ra, dec); err != nil {
			return 0, 0, err
		}
		h := toHorizontal(ra, dec, lst, loc.LatDeg)
		return h.AltDeg, h.AzDeg, nil
	}
}

func (t Transformer) inverse(i timescale.Instant, loc astro.GeoLocation) pairFunc {
	lst := t.LocalSiderealDeg(i, loc)
	return func(alt, az float64) (float64, float64, error) {
		if err := validateAltAz(alt, az); err != nil {
			return 0, 0, err
		}
		e := toEquatorial(alt, az, lst, loc.LatDeg)
		return e.RAdeg, e.DecDeg, nil
	}
}

func (t Transformer) batch(a, b []float64, loc astro.GeoLocation, bestEffort bool, fn pairFunc) ([]float64, []float64, error) {
	if len(a) != len(b) {
		return nil, nil, &astro.InputError{Reason: fmt.Sprintf("batch lengths differ: %d and %d", len(a), len(b))}
	}
	if err := loc.Validate(); err != nil {
		return nil, nil, err
	}

	outA := make([]float64, len(a))
	outB := make([]float64, len(b))
	failed := make([]error, len(a))

	t.parallel(len(a), func(lo, hi int) {
		for k := lo; k < hi; k++ {
			x, y, err := fn(a[k], b[k])
			if err != nil {
				failed[k] = err
				x, y = a[k], b[k]
			}
			outA[k], outB[k] = x, y
		}
	})

	if !bestEffort {
		for k, err := range failed {
			if err != nil {
				return nil, nil, &ElementError{Index: k, Err: err}
			}
		}
		return outA, outB, nil
	}

	errs := &errors.M{}
	for k, err := range failed {
		if err != nil {
			errs.Append(&ElementError{Index: k, Err: err})
		}
	}
	return outA, outB, errs.Err()
}

// parallel splits [0, n) into contiguous chunks and runs fn over them on at
// most t.Workers goroutines. Chunks write disjoint index ranges.
func (t Transformer) parallel(n int, fn func(lo, hi int)) {
	workers := t.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, (n+minChunk-1)/minChunk)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

// EquatorialToHorizontalBatch converts using the default transformer.
func EquatorialToHorizontalBatch(ra, dec []float64, i timescale.Instant, loc astro.GeoLocation) ([]float64, []float64, error) {
	return defaultTransformer.EquatorialToHorizontalBatch(ra, dec, i, loc)
}

// HorizontalToEquatorialBatch converts using the default transformer.
func HorizontalToEquatorialBatch(alt, az []float64, i timescale.Instant, loc astro.GeoLocation) ([]float64, []float64, error) {
	return defaultTransformer.HorizontalToEquatorialBatch(alt, az, i, loc)
}
