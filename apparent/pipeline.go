// Package apparent chains the astrometric corrections that take a catalog
// position to the place an observer sees, and back.
//
// The forward order is fixed: proper motion, annual parallax, precession,
// nutation, aberration, horizontal transform and refraction. Solar-system
// bodies replace annual parallax with diurnal parallax after aberration.
package apparent

import (
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/litescript/ls-astrometry/aberration"
	"github.com/litescript/ls-astrometry/astro"
	"github.com/litescript/ls-astrometry/horizontal"
	"github.com/litescript/ls-astrometry/nutation"
	"github.com/litescript/ls-astrometry/parallax"
	"github.com/litescript/ls-astrometry/precession"
	"github.com/litescript/ls-astrometry/propermotion"
	"github.com/litescript/ls-astrometry/refraction"
	"github.com/litescript/ls-astrometry/sidereal"
	"github.com/litescript/ls-astrometry/timescale"
)

// Stage names recorded in Observation.Stages.
const (
	StageCatalog        = "catalog"
	StageProperMotion   = "proper motion"
	StageAnnualParallax = "annual parallax"
	StagePrecession     = "precession"
	StageNutation       = "nutation"
	StageAberration     = "aberration"
	StageDiurnal        = "diurnal parallax"
)

// Stage is the equatorial place after one correction.
type Stage struct {
	Name     string
	Position astro.Equatorial
}

// Observation is the result of one pipeline run.
type Observation struct {
	Name     string
	Instant  timescale.Instant
	JDTT     float64
	Location astro.GeoLocation

	// Stages lists the place after every stage that ran, starting with the
	// catalog position.
	Stages []Stage

	// Apparent is the final equatorial place of date.
	Apparent astro.Equatorial

	LSTHours     float64
	HourAngleDeg float64

	// Geometric is the airless horizontal position; Observed adds
	// refraction when that stage is enabled.
	Geometric     astro.Horizontal
	Observed      astro.Horizontal
	RefractionDeg float64

	// Airmass is the Kasten & Young airmass at the observed altitude, +Inf
	// below the horizon.
	Airmass float64

	// ParallaxMas is the star's parallax at the observation epoch; 0 when
	// unknown or for bodies.
	ParallaxMas float64
}

// Pipeline runs the corrections for one configuration. It holds no mutable
// state and is safe for concurrent use.
type Pipeline struct {
	cfg   Config
	scale timescale.Scale
	log   *slog.Logger
	tr    horizontal.Transformer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger logs every stage at debug level to l.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// WithScale sets the UTC/TT scale, and with it the leap-second table.
func WithScale(s timescale.Scale) Option {
	return func(p *Pipeline) {
		p.scale = s
	}
}

// New returns a Pipeline for cfg.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{cfg: cfg, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(p)
	}
	p.tr = horizontal.Transformer{
		Clock:   sidereal.Clock{Scale: p.scale, Model: cfg.Nutation},
		Workers: cfg.Workers,
	}
	return p, nil
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Transformer returns the horizontal transformer used by the pipeline.
func (p *Pipeline) Transformer() horizontal.Transformer {
	return p.tr
}

// run accumulates stages for one observation.
type run struct {
	p   *Pipeline
	obs *Observation
	ra  float64
	dec float64
}

func (r *run) record(name string) {
	pos := astro.Equatorial{RAdeg: r.ra, DecDeg: r.dec}
	r.obs.Stages = append(r.obs.Stages, Stage{Name: name, Position: pos})
	r.p.log.Debug("stage", "object", r.obs.Name, "stage", name, "ra", r.ra, "dec", r.dec)
}

// step applies fn to the current place and records it under name.
func (r *run) step(name string, fn func(ra, dec float64) (float64, float64, error)) error {
	ra, dec, err := fn(r.ra, r.dec)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	r.ra, r.dec = ra, dec
	r.record(name)
	return nil
}

func (p *Pipeline) start(name string, ra, dec float64, i timescale.Instant, loc astro.GeoLocation) *run {
	obs := &Observation{
		Name:     name,
		Instant:  i,
		JDTT:     p.scale.TTJulianDate(i),
		Location: loc,
	}
	r := &run{p: p, obs: obs, ra: ra, dec: dec}
	r.record(StageCatalog)
	return r
}

// ofDate precesses, nutates and aberrates the current place to the true
// apparent place of date.
func (r *run) ofDate() error {
	jd := r.obs.JDTT
	if err := r.step(StagePrecession, func(ra, dec float64) (float64, float64, error) {
		return precession.Apply(ra, dec, jd)
	}); err != nil {
		return err
	}
	model := r.p.cfg.Nutation
	if err := r.step(StageNutation, func(ra, dec float64) (float64, float64, error) {
		return nutation.Apply(ra, dec, jd, model)
	}); err != nil {
		return err
	}
	if r.p.cfg.Stages.Aberration {
		return r.step(StageAberration, func(ra, dec float64) (float64, float64, error) {
			return aberration.Apply(ra, dec, jd)
		})
	}
	return nil
}

// finish converts the apparent place to the horizon and refracts it.
func (r *run) finish() (Observation, error) {
	p := r.p
	obs := r.obs
	obs.Apparent = astro.Equatorial{RAdeg: r.ra, DecDeg: r.dec}
	obs.LSTHours = p.tr.LocalSiderealDeg(obs.Instant, obs.Location) / 15
	obs.HourAngleDeg = astro.NormalizeDeg(obs.LSTHours*15 - r.ra)

	h, err := p.tr.EquatorialToHorizontal(r.ra, r.dec, obs.Instant, obs.Location)
	if err != nil {
		return Observation{}, fmt.Errorf("horizontal: %w", err)
	}
	obs.Geometric = h
	obs.Observed = h

	if p.cfg.Stages.Refraction {
		rc := p.cfg.Refraction
		app, err := refraction.TrueToApparent(rc.Model, h.AltDeg, rc.Conditions)
		if err != nil {
			return Observation{}, fmt.Errorf("refraction: %w", err)
		}
		obs.Observed.AltDeg = app
		obs.RefractionDeg = app - h.AltDeg
	}
	if obs.Airmass, err = refraction.KastenYoung(obs.Observed.AltDeg); err != nil {
		return Observation{}, fmt.Errorf("airmass: %w", err)
	}

	p.log.Debug("observed", "object", obs.Name,
		"alt", obs.Observed.AltDeg, "az", obs.Observed.AzDeg,
		"refraction", obs.RefractionDeg, "airmass", obs.Airmass)
	return *obs, nil
}

// Observe takes a catalog star to its observed horizontal position at i
// from loc.
func (p *Pipeline) Observe(star astro.CatalogStar, i timescale.Instant, loc astro.GeoLocation) (Observation, error) {
	if err := star.Validate(); err != nil {
		return Observation{}, fmt.Errorf("%s: %w", star.Name, err)
	}
	if err := loc.Validate(); err != nil {
		return Observation{}, err
	}

	r := p.start(star.Name, star.RAdeg, star.DecDeg, i, loc)
	jd := r.obs.JDTT
	plx := star.ParallaxMas

	if p.cfg.Stages.ProperMotion {
		err := r.step(StageProperMotion, func(ra, dec float64) (float64, float64, error) {
			if p.cfg.RigorousProperMotion && star.ParallaxMas > 0 {
				var err error
				ra, dec, plx, err = propermotion.ApplyRigorousFrom(ra, dec, star.PMRACosDec, star.PMDec,
					star.ParallaxMas, star.RadialVelocityKmS, star.Epoch(), jd)
				return ra, dec, err
			}
			return propermotion.ApplyLinearFrom(ra, dec, star.PMRACosDec, star.PMDec, star.Epoch(), jd)
		})
		if err != nil {
			return Observation{}, err
		}
	}
	r.obs.ParallaxMas = plx

	if p.cfg.Stages.AnnualParallax && plx > 0 {
		if err := r.step(StageAnnualParallax, func(ra, dec float64) (float64, float64, error) {
			return parallax.Annual(ra, dec, plx, jd)
		}); err != nil {
			return Observation{}, err
		}
	}

	if err := r.ofDate(); err != nil {
		return Observation{}, err
	}
	return r.finish()
}

// ObserveBody takes the geocentric J2000.0 place of a solar-system body at
// distanceAU to its observed horizontal position. Diurnal parallax is
// applied to the apparent place of date.
func (p *Pipeline) ObserveBody(name string, eq astro.Equatorial, distanceAU float64, i timescale.Instant, loc astro.GeoLocation) (Observation, error) {
	if err := eq.Validate(); err != nil {
		return Observation{}, fmt.Errorf("%s: %w", name, err)
	}
	if err := loc.Validate(); err != nil {
		return Observation{}, err
	}
	if _, err := parallax.HorizontalParallax(distanceAU); err != nil {
		return Observation{}, fmt.Errorf("%s: %w", name, err)
	}

	r := p.start(name, eq.RAdeg, eq.DecDeg, i, loc)
	if err := r.ofDate(); err != nil {
		return Observation{}, err
	}
	topo := parallax.Topocentric{Clock: p.tr.Clock}
	if err := r.step(StageDiurnal, func(ra, dec float64) (float64, float64, error) {
		return topo.Diurnal(ra, dec, distanceAU, i, loc)
	}); err != nil {
		return Observation{}, err
	}
	return r.finish()
}

// Unobserve inverts refraction, the horizontal transform, aberration,
// nutation and precession, returning the geocentric J2000.0 place seen at
// (alt, az). Stages disabled in the config are skipped here too. Proper
// motion and annual parallax are not undone.
func (p *Pipeline) Unobserve(alt, az float64, i timescale.Instant, loc astro.GeoLocation) (astro.Equatorial, error) {
	if p.cfg.Stages.Refraction {
		rc := p.cfg.Refraction
		t, err := refraction.ApparentToTrue(rc.Model, alt, rc.Conditions)
		if err != nil {
			return astro.Equatorial{}, fmt.Errorf("refraction: %w", err)
		}
		alt = t
	}

	eq, err := p.tr.HorizontalToEquatorial(alt, az, i, loc)
	if err != nil {
		return astro.Equatorial{}, fmt.Errorf("horizontal: %w", err)
	}
	ra, dec := eq.RAdeg, eq.DecDeg
	jd := p.scale.TTJulianDate(i)

	if p.cfg.Stages.Aberration {
		if ra, dec, err = aberration.Remove(ra, dec, jd); err != nil {
			return astro.Equatorial{}, fmt.Errorf("aberration: %w", err)
		}
	}
	if ra, dec, err = nutation.ApplyInverse(ra, dec, jd, p.cfg.Nutation); err != nil {
		return astro.Equatorial{}, fmt.Errorf("nutation: %w", err)
	}
	if ra, dec, err = precession.ApplyInverse(ra, dec, jd); err != nil {
		return astro.Equatorial{}, fmt.Errorf("precession: %w", err)
	}
	p.log.Debug("unobserved", "alt", alt, "az", az, "ra", ra, "dec", dec)
	return astro.Equatorial{RAdeg: ra, DecDeg: dec}, nil
}

// ObserveAll observes every star concurrently, at most Config.Workers at a
// time (GOMAXPROCS when zero). Results are in input order. If any star
// fails, the first error is returned once all have finished.
func (p *Pipeline) ObserveAll(stars []astro.CatalogStar, i timescale.Instant, loc astro.GeoLocation) ([]Observation, error) {
	out := make([]Observation, len(stars))
	workers := p.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for k, s := range stars {
		g.Go(func() error {
			obs, err := p.Observe(s, i, loc)
			if err != nil {
				return err
			}
			out[k] = obs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
