package astro

import (
	"strings"
)

// StarCatalog holds a collection of stars with full astrometric data.
type StarCatalog struct {
	Stars []CatalogStar
}

// DefaultStarCatalog returns a small catalog of bright and high proper
// motion stars. Positions are ICRS at J2000.0, proper motions and parallaxes
// from Hipparcos (van Leeuwen 2007).
func DefaultStarCatalog() StarCatalog {
	return StarCatalog{
		Stars: defaultStars,
	}
}

// Lookup returns the star with the given name, ignoring case.
func (c StarCatalog) Lookup(name string) (CatalogStar, bool) {
	for _, s := range c.Stars {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return CatalogStar{}, false
}

// Names returns the star names in catalog order.
func (c StarCatalog) Names() []string {
	names := make([]string, len(c.Stars))
	for i, s := range c.Stars {
		names[i] = s.Name
	}
	return names
}

// defaultStars is ordered roughly by magnitude (brightest first).
var defaultStars = []CatalogStar{
	{Name: "Sirius", RAdeg: 101.28715533, DecDeg: -16.71611586, PMRACosDec: -546.01, PMDec: -1223.07, ParallaxMas: 379.21, RadialVelocityKmS: -5.5, Mag: -1.46},
	{Name: "Canopus", RAdeg: 95.98795783, DecDeg: -52.69566138, PMRACosDec: 19.93, PMDec: 23.24, ParallaxMas: 10.55, RadialVelocityKmS: 20.3, Mag: -0.74},
	{Name: "Arcturus", RAdeg: 213.91530029, DecDeg: 19.18240916, PMRACosDec: -1093.39, PMDec: -2000.06, ParallaxMas: 88.83, RadialVelocityKmS: -5.19, Mag: -0.05},
	{Name: "Vega", RAdeg: 279.23473479, DecDeg: 38.78368896, PMRACosDec: 200.94, PMDec: 286.23, ParallaxMas: 130.23, RadialVelocityKmS: -20.6, Mag: 0.03},
	{Name: "Capella", RAdeg: 79.17232794, DecDeg: 45.99799147, PMRACosDec: 75.25, PMDec: -426.89, ParallaxMas: 76.20, RadialVelocityKmS: 29.19, Mag: 0.08},
	{Name: "Rigel", RAdeg: 78.63446707, DecDeg: -8.20163836, PMRACosDec: 1.31, PMDec: 0.50, ParallaxMas: 3.78, RadialVelocityKmS: 17.8, Mag: 0.13},
	{Name: "Procyon", RAdeg: 114.82549791, DecDeg: 5.22498756, PMRACosDec: -714.59, PMDec: -1036.80, ParallaxMas: 284.56, RadialVelocityKmS: -3.2, Mag: 0.34},
	{Name: "Betelgeuse", RAdeg: 88.79293899, DecDeg: 7.40706399, PMRACosDec: 27.54, PMDec: 11.30, ParallaxMas: 6.55, RadialVelocityKmS: 21.91, Mag: 0.50},
	{Name: "Altair", RAdeg: 297.69582730, DecDeg: 8.86832120, PMRACosDec: 536.23, PMDec: 385.29, ParallaxMas: 194.95, RadialVelocityKmS: -26.1, Mag: 0.76},
	{Name: "Aldebaran", RAdeg: 68.98016279, DecDeg: 16.50930235, PMRACosDec: 63.45, PMDec: -188.94, ParallaxMas: 48.94, RadialVelocityKmS: 54.26, Mag: 0.85},
	{Name: "Polaris", RAdeg: 37.95456067, DecDeg: 89.26410897, PMRACosDec: 44.48, PMDec: -11.85, ParallaxMas: 7.54, RadialVelocityKmS: -16.42, Mag: 1.98},
	{Name: "Barnard's Star", RAdeg: 269.45207511, DecDeg: 4.69339088, PMRACosDec: -798.58, PMDec: 10328.12, ParallaxMas: 548.31, RadialVelocityKmS: -110.51, Mag: 9.51},
	{Name: "Proxima Centauri", RAdeg: 217.42894222, DecDeg: -62.67949019, PMRACosDec: -3775.75, PMDec: 765.54, ParallaxMas: 768.13, RadialVelocityKmS: -22.4, Mag: 11.13},
}
