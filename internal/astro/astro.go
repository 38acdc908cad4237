// Package astro provides the solar ephemeris: sun position, apparent
// altitude with refraction, and daily sunrise/noon/sunset times.
package astro

import (
	"math"
	"time"
)

// Julian day constants.
const (
	JD1970 = 2440588.0 // Julian day of the Unix epoch
	JD2000 = 2451545.0 // Julian day of J2000.0 (2000-01-01 12:00 UTC)

	msPerDay = 1000 * 60 * 60 * 24
)

// JulianDay converts a time to a Julian day number.
func JulianDay(t time.Time) float64 {
	return float64(t.UnixMilli())/msPerDay - 0.5 + JD1970
}

// TimeFromJulianDay converts a Julian day number back to a time (UTC).
func TimeFromJulianDay(jd float64) time.Time {
	ms := int64(math.Round((jd + 0.5 - JD1970) * msPerDay))
	return time.UnixMilli(ms).UTC()
}

// DaysSinceJ2000 returns the signed number of days since the J2000.0 epoch.
// Negative for instants before the epoch.
func DaysSinceJ2000(t time.Time) float64 {
	return JulianDay(t) - JD2000
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
