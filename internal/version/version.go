// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Galactic coordinates, tangent-plane projection, JSON reports
// 0.3.0 - Diurnal and annual parallax, radio refraction, airmass and extinction
// 0.2.0 - Batch horizontal transforms, YAML config, IAU 1980 nutation option
// 0.1.0 - Initial release: time scales, precession, nutation, aberration, refraction
