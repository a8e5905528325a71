// Package report renders pipeline observations as terminal tables and JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-astrometry/apparent"
	"github.com/litescript/ls-astrometry/astro"
	"github.com/litescript/ls-astrometry/galactic"
)

// Colors shared by every renderer.
const (
	colorAccent = "#9D4EDD"
	colorTitle  = "#7B2CBF"
	colorDim    = "60"
	colorWarn   = "#E84A27"
)

// HighAirmass marks rows whose airmass makes photometry unreliable.
const HighAirmass = 3.0

// SnapshotExport is the JSON form of a set of observations.
type SnapshotExport struct {
	Generated    time.Time           `json:"generated"`
	Instant      time.Time           `json:"instant"`
	JDTT         float64             `json:"jd_tt"`
	Location     LocationExport      `json:"location"`
	Config       apparent.Config     `json:"config"`
	Observations []ObservationExport `json:"observations"`
}

// LocationExport is a JSON-friendly observer location.
type LocationExport struct {
	Name    string  `json:"name,omitempty"`
	LatDeg  float64 `json:"lat_deg"`
	LonDeg  float64 `json:"lon_deg"`
	HeightM float64 `json:"height_m"`
}

// StageExport is one recorded correction.
type StageExport struct {
	Name   string  `json:"name"`
	RADeg  float64 `json:"ra_deg"`
	DecDeg float64 `json:"dec_deg"`
}

// ObservationExport is a JSON-friendly observation.
type ObservationExport struct {
	Name          string        `json:"name"`
	Stages        []StageExport `json:"stages"`
	RADeg         float64       `json:"ra_deg"`
	DecDeg        float64       `json:"dec_deg"`
	RA            string        `json:"ra"`
	Dec           string        `json:"dec"`
	GalacticL     float64       `json:"galactic_l"`
	GalacticB     float64       `json:"galactic_b"`
	LSTHours      float64       `json:"lst_hours"`
	HourAngleDeg  float64       `json:"hour_angle_deg"`
	AltDeg        float64       `json:"alt_deg"`
	AzDeg         float64       `json:"az_deg"`
	RefractionDeg float64       `json:"refraction_deg"`

	// Airmass is omitted below the horizon, where it is infinite.
	Airmass     *float64 `json:"airmass,omitempty"`
	ParallaxMas float64  `json:"parallax_mas,omitempty"`
}

// ExportObservation converts one observation.
func ExportObservation(obs apparent.Observation) ObservationExport {
	e := ObservationExport{
		Name:          obs.Name,
		RADeg:         obs.Apparent.RAdeg,
		DecDeg:        obs.Apparent.DecDeg,
		RA:            FormatRA(obs.Apparent.RAdeg),
		Dec:           FormatDec(obs.Apparent.DecDeg),
		LSTHours:      obs.LSTHours,
		HourAngleDeg:  obs.HourAngleDeg,
		AltDeg:        obs.Observed.AltDeg,
		AzDeg:         obs.Observed.AzDeg,
		RefractionDeg: obs.RefractionDeg,
		ParallaxMas:   obs.ParallaxMas,
	}
	for _, s := range obs.Stages {
		e.Stages = append(e.Stages, StageExport{Name: s.Name, RADeg: s.Position.RAdeg, DecDeg: s.Position.DecDeg})
	}
	if len(obs.Stages) > 0 {
		cat := obs.Stages[0].Position
		if l, b, err := galactic.FromEquatorial(cat.RAdeg, cat.DecDeg); err == nil {
			e.GalacticL, e.GalacticB = l, b
		}
	}
	if !math.IsInf(obs.Airmass, 0) && !math.IsNaN(obs.Airmass) {
		x := obs.Airmass
		e.Airmass = &x
	}
	return e
}

// ExportSnapshot converts a set of observations made at one instant and
// place. The first observation supplies the instant and location.
func ExportSnapshot(obs []apparent.Observation, cfg apparent.Config, generated time.Time) *SnapshotExport {
	export := &SnapshotExport{Generated: generated, Config: cfg}
	if len(obs) == 0 {
		return export
	}
	first := obs[0]
	export.Instant = first.Instant.Time()
	export.JDTT = first.JDTT
	export.Location = LocationExport{
		Name:    first.Location.Name,
		LatDeg:  first.Location.LatDeg,
		LonDeg:  first.Location.LonDeg,
		HeightM: first.Location.HeightM,
	}
	for _, o := range obs {
		export.Observations = append(export.Observations, ExportObservation(o))
	}
	return export
}

// WriteJSON writes the snapshot as indented JSON.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// styles holds lipgloss styles bound to one output.
type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	dim    lipgloss.Style
	warn   lipgloss.Style
	accent lipgloss.Style
}

// newStyles binds styles to w; colour is used only when w is a terminal
// that supports it.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:  r.NewStyle().Foreground(lipgloss.Color(colorTitle)).Bold(true),
		header: r.NewStyle().Foreground(lipgloss.Color(colorAccent)).Bold(true),
		dim:    r.NewStyle().Foreground(lipgloss.Color(colorDim)),
		warn:   r.NewStyle().Foreground(lipgloss.Color(colorWarn)),
		accent: r.NewStyle().Foreground(lipgloss.Color(colorAccent)),
	}
}

const tableWidth = 96

// WriteSummaryTable writes one row per observation.
func WriteSummaryTable(w io.Writer, obs []apparent.Observation) {
	st := newStyles(w)

	if len(obs) == 0 {
		fmt.Fprintln(w, st.dim.Render("No observations"))
		return
	}
	first := obs[0]
	title := fmt.Sprintf("Apparent places @ %s  (JD TT %.6f)", first.Instant.Time().Format(time.RFC3339), first.JDTT)
	fmt.Fprintln(w, st.title.Render(title))
	fmt.Fprintln(w, st.dim.Render(describeLocation(first.Location)))
	fmt.Fprintln(w, strings.Repeat("─", tableWidth))

	fmt.Fprintln(w, st.header.Render(fmt.Sprintf("%-14s %-14s %-14s %8s %8s %7s %7s",
		"Object", "RA", "Dec", "Alt", "Az", "Refr′", "Airmass")))
	fmt.Fprintln(w, strings.Repeat("─", tableWidth))

	above := 0
	for _, o := range obs {
		row := fmt.Sprintf("%-14s %-14s %-14s %+8.3f %8.3f %7.2f %7s",
			truncateStr(o.Name, 14),
			FormatRA(o.Apparent.RAdeg),
			FormatDec(o.Apparent.DecDeg),
			o.Observed.AltDeg,
			o.Observed.AzDeg,
			o.RefractionDeg*60,
			FormatAirmass(o.Airmass),
		)
		switch {
		case o.Observed.AltDeg <= 0:
			row = st.dim.Render(row)
		case o.Airmass > HighAirmass:
			above++
			row = st.warn.Render(row)
		default:
			above++
		}
		fmt.Fprintln(w, row)
	}

	fmt.Fprintf(w, "\nTotal: %d objects, %d above the horizon\n", len(obs), above)
}

// WriteStages writes the correction trace for one observation.
func WriteStages(w io.Writer, obs apparent.Observation) {
	st := newStyles(w)

	fmt.Fprintln(w, st.title.Render(obs.Name))
	fmt.Fprintln(w, strings.Repeat("─", 60))
	var prev *astro.Equatorial
	for _, s := range obs.Stages {
		shift := ""
		if prev != nil {
			sep := astro.AngularSeparation(prev.RAdeg, prev.DecDeg, s.Position.RAdeg, s.Position.DecDeg) * 3600
			shift = st.dim.Render(fmt.Sprintf("Δ %.3f″", sep))
		}
		fmt.Fprintf(w, "%-18s %s %s  %s\n", s.Name, FormatRA(s.Position.RAdeg), FormatDec(s.Position.DecDeg), shift)
		p := s.Position
		prev = &p
	}
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "%-18s %s\n", "LST", FormatRA(obs.LSTHours*15))
	fmt.Fprintf(w, "%-18s %+.4f°\n", "hour angle", obs.HourAngleDeg)
	fmt.Fprintf(w, "%-18s alt %+.4f° az %.4f°\n", "geometric", obs.Geometric.AltDeg, obs.Geometric.AzDeg)
	fmt.Fprintf(w, "%-18s %s\n", "observed", st.accent.Render(fmt.Sprintf("alt %+.4f° az %.4f°", obs.Observed.AltDeg, obs.Observed.AzDeg)))
	fmt.Fprintf(w, "%-18s %.2f′  airmass %s\n", "refraction", obs.RefractionDeg*60, FormatAirmass(obs.Airmass))
}

func describeLocation(loc astro.GeoLocation) string {
	name := loc.Name
	if name == "" {
		name = "Observer"
	}
	return fmt.Sprintf("%s  lat %+.4f° lon %+.4f° h %.0f m", name, loc.LatDeg, loc.LonDeg, loc.HeightM)
}
