// Command ls-astrometry computes apparent and observed places of stars for
// a ground-based observer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/litescript/ls-astrometry/apparent"
	"github.com/litescript/ls-astrometry/astro"
	"github.com/litescript/ls-astrometry/internal/logging"
	"github.com/litescript/ls-astrometry/nutation"
	"github.com/litescript/ls-astrometry/refraction"
	"github.com/litescript/ls-astrometry/internal/report"
	"github.com/litescript/ls-astrometry/timescale"
	"github.com/litescript/ls-astrometry/internal/version"
)

// CLI flags
var (
	starNames    string
	latDeg       float64
	lonDeg       float64
	heightM      float64
	siteName     string
	timeStr      string
	configPath   string
	leapPath     string
	nutationName string
	refrName     string
	altAzStr     string
	snapshotPath string
	traceMode    bool
	printConfig  bool
	showVersion  bool
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "Log format (text, json); default text on a terminal, json otherwise")
	flag.StringVar(&starNames, "star", "all", "Comma-separated catalog star names, or all")
	flag.Float64Var(&latDeg, "lat", 31.9583, "Observer latitude in degrees, north positive")
	flag.Float64Var(&lonDeg, "lon", -111.5967, "Observer longitude in degrees, east positive")
	flag.Float64Var(&heightM, "height", 2096, "Observer height above the ellipsoid in meters")
	flag.StringVar(&siteName, "site", "", "Observer name shown in reports")
	flag.StringVar(&timeStr, "time", "", "UTC instant (RFC 3339 or JD); default now")
	flag.StringVar(&configPath, "config", "", "YAML pipeline config file")
	flag.StringVar(&leapPath, "leap-seconds", "", "YAML leap-second table replacing the built-in one")
	flag.StringVar(&nutationName, "nutation", "", "Nutation model override (reduced, iau1980)")
	flag.StringVar(&refrName, "refraction", "", "Refraction model override (bennett, saemundsson, radio)")
	flag.StringVar(&altAzStr, "altaz", "", "Invert an observed alt,az pair to a J2000 position")
	flag.StringVar(&snapshotPath, "json", "", "Export JSON snapshot to file (use - for stdout)")
	flag.BoolVar(&traceMode, "trace", false, "Print the correction trace for every object")
	flag.BoolVar(&printConfig, "print-config", false, "Print the effective config as YAML and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("ls-astrometry", version.Version)
		return
	}

	format := logging.ParseFormat(*logFormat)
	if *logFormat == "" && !term.IsTerminal(int(os.Stderr.Fd())) {
		format = logging.FormatJSON
	}
	logger := logging.NewWithFormat(logging.ParseLevel(*logLevel), format, os.Stderr)

	if err := run(os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *logging.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	scale := timescale.Default()
	if leapPath != "" {
		data, err := os.ReadFile(leapPath)
		if err != nil {
			return fmt.Errorf("read leap seconds: %w", err)
		}
		table, err := timescale.ParseLeapSecondTable(data)
		if err != nil {
			return err
		}
		scale = timescale.Scale{Table: table}
		logger.Debug("leap-second table loaded", "version", table.Version(), "entries", len(table.Entries()))
	}

	loc, err := astro.NewGeoLocation(latDeg, lonDeg, heightM)
	if err != nil {
		return fmt.Errorf("observer: %w", err)
	}
	loc.Name = siteName

	instant, err := parseInstant(timeStr, time.Now())
	if err != nil {
		return err
	}

	p, err := apparent.New(cfg, apparent.WithLogger(logger.Slog()), apparent.WithScale(scale))
	if err != nil {
		return err
	}
	logger.Debug("pipeline ready", "nutation", cfg.Nutation, "refraction", cfg.Refraction.Model, "instant", instant)

	if altAzStr != "" {
		alt, az, err := parseAltAz(altAzStr)
		if err != nil {
			return err
		}
		eq, err := p.Unobserve(alt, az, instant, loc)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "J2000 %s %s\n", report.FormatRA(eq.RAdeg), report.FormatDec(eq.DecDeg))
		return nil
	}

	stars, err := resolveStars(astro.DefaultStarCatalog(), starNames)
	if err != nil {
		return err
	}
	obs, err := p.ObserveAll(stars, instant, loc)
	if err != nil {
		return err
	}

	if snapshotPath != "" {
		export := report.ExportSnapshot(obs, cfg, time.Now().UTC())
		if snapshotPath == "-" {
			if err := export.WriteJSON(w); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
			return nil
		}
		f, err := os.Create(snapshotPath)
		if err != nil {
			return fmt.Errorf("create snapshot file: %w", err)
		}
		defer f.Close()
		if err := export.WriteJSON(f); err != nil {
			return fmt.Errorf("write JSON to file: %w", err)
		}
	}

	report.WriteSummaryTable(w, obs)
	if traceMode {
		for _, o := range obs {
			fmt.Fprintln(w)
			report.WriteStages(w, o)
		}
	}
	return nil
}

func loadConfig() (apparent.Config, error) {
	cfg := apparent.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = apparent.LoadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	if nutationName != "" {
		m, err := nutation.ParseModel(nutationName)
		if err != nil {
			return cfg, err
		}
		cfg.Nutation = m
	}
	if refrName != "" {
		m, err := refraction.ParseModel(refrName)
		if err != nil {
			return cfg, err
		}
		cfg.Refraction.Model = m
	}
	return cfg, cfg.Validate()
}

// parseInstant accepts RFC 3339, a bare date, or a Julian date in UTC.
func parseInstant(s string, now time.Time) (timescale.Instant, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return timescale.FromTime(now.UTC()), nil
	}
	if jd, err := strconv.ParseFloat(s, 64); err == nil {
		return timescale.FromJulianDate(jd), nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return timescale.FromTime(t.UTC()), nil
		}
	}
	return timescale.Instant{}, fmt.Errorf("parse time %q: want RFC 3339, YYYY-MM-DD or a Julian date", s)
}

func parseAltAz(s string) (alt, az float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("parse altaz %q: want alt,az", s)
	}
	if alt, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("parse altitude: %w", err)
	}
	if az, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("parse azimuth: %w", err)
	}
	return alt, az, nil
}

func resolveStars(cat astro.StarCatalog, names string) ([]astro.CatalogStar, error) {
	if strings.EqualFold(strings.TrimSpace(names), "all") {
		return cat.Stars, nil
	}
	var stars []astro.CatalogStar
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, ok := cat.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown star %q (known: %s)", name, strings.Join(cat.Names(), ", "))
		}
		stars = append(stars, s)
	}
	if len(stars) == 0 {
		return nil, fmt.Errorf("no stars selected")
	}
	return stars, nil
}
