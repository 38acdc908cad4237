// Package planettime ties the ephemeris, orbit and illuminance models into
// the "planet time" computation: for each planet, the Earth solar altitude
// whose sunlight matches that planet's noon, and the instants during a day
// when the sky crosses it.
package planettime

import (
	"time"

	"github.com/litescript/planettime/internal/astro"
	"github.com/litescript/planettime/internal/illum"
	"github.com/litescript/planettime/internal/orbit"
	"github.com/litescript/planettime/internal/search"
)

// TargetAltitudeForPlanet returns the Earth solar altitude, in degrees, at
// which sunlight matches noon brightness at the given heliocentric distance.
func TargetAltitudeForPlanet(distanceAU float64) float64 {
	return illum.TargetAltitudeForRelativeBrightness(illum.IrradianceScale(distanceAU))
}

// TargetAltitudeForPlanetKey is the catalog-keyed convenience: it resolves
// the planet's heliocentric distance at t and maps it to a target altitude.
// If the instantaneous distance cannot be computed the planet's fixed mean
// distance is substituted. Unknown keys return orbit.ErrUnknownPlanet.
func TargetAltitudeForPlanetKey(key string, t time.Time) (float64, error) {
	p, err := orbit.ByKey(key)
	if err != nil {
		return 0, err
	}

	d, err := orbit.HeliocentricDistanceAU(key, t)
	if err != nil {
		d = p.MeanDistanceAU
	}

	return TargetAltitudeForPlanet(d), nil
}

// FindApparentAltitudeCrossings returns the instants during the civil day of
// date at which the Sun's apparent altitude crosses targetDeg, at most two,
// in chronological order. An empty result means the altitude is never
// reached that day.
func FindApparentAltitudeCrossings(date time.Time, latDeg, lonDeg, targetDeg float64) []time.Time {
	return search.FindCrossings(date, targetDeg, func(t time.Time) float64 {
		return astro.ApparentAltitude(t, latDeg, lonDeg)
	})
}

// PlanetTimes is one planet's entry in a DayReport.
type PlanetTimes struct {
	Planet            orbit.Planet
	DistanceAU        float64
	TargetAltitudeDeg float64
	Crossings         []time.Time
}

// DayReport aggregates everything the presentation layer needs for one
// (date, location) pair: the day's sun times and per-planet crossing times.
type DayReport struct {
	Date         time.Time
	LatitudeDeg  float64
	LongitudeDeg float64
	Sun          astro.DayTimes
	Planets      []PlanetTimes
	GeneratedAt  time.Time
}

// ComputeDayReport computes the full report for the civil day of date at
// latDeg/lonDeg. Pure and stateless; identical inputs give identical output.
func ComputeDayReport(date time.Time, latDeg, lonDeg float64) DayReport {
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, date.Location())

	report := DayReport{
		Date:         date,
		LatitudeDeg:  latDeg,
		LongitudeDeg: lonDeg,
		Sun:          astro.SunTimes(date, latDeg, lonDeg),
		GeneratedAt:  time.Now(),
	}

	for _, p := range orbit.Planets {
		d, err := orbit.HeliocentricDistanceAU(p.Key, noon)
		if err != nil {
			d = p.MeanDistanceAU
		}
		target := TargetAltitudeForPlanet(d)

		report.Planets = append(report.Planets, PlanetTimes{
			Planet:            p,
			DistanceAU:        d,
			TargetAltitudeDeg: target,
			Crossings:         FindApparentAltitudeCrossings(date, latDeg, lonDeg, target),
		})
	}

	return report
}

// FormatTime renders an instant as a short local time string for display.
func FormatTime(t time.Time) string {
	return t.Local().Format("15:04")
}
