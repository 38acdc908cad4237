// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Live watch mode (TUI), JSON day-report export
// 0.2.0 - Per-planet Kepler distances, apparent-altitude crossing search
// 0.1.0 - Initial release: sun times, illuminance model, summary CLI
