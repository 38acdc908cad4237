package astro

import (
	"math"
	"time"
)

// HorizonAltitudeDeg is the altitude of the Sun's center at standard
// sunrise/sunset: refraction plus the solar radius, about -0.833 degrees.
const HorizonAltitudeDeg = -0.833

// DayTimes holds sunrise, solar noon and sunset for one calendar day at one
// location. Under polar conditions all three times are nil and exactly one of
// AlwaysUp/AlwaysDown is set.
type DayTimes struct {
	Sunrise       *time.Time
	SolarNoon     *time.Time
	Sunset        *time.Time
	DaylightHours float64
	AlwaysUp      bool
	AlwaysDown    bool
}

// fraction-of-orbit constant for the transit approximation
const j0 = 0.0009

// SunTimes computes sunrise, solar noon and sunset for the calendar day of
// date at latDeg/lonDeg (east positive).
//
// The calendar day is taken in date's own time zone, i.e. the zone of
// whoever constructed the date, not the astronomical zone of the location.
// Transit, rise and set Julian days are derived in closed form from the hour
// angle at the standard -0.833° altitude; no iteration is involved. If the
// hour-angle arccosine argument leaves [-1, 1] the day is classified as
// polar (AlwaysUp or AlwaysDown) with nil times.
func SunTimes(date time.Time, latDeg, lonDeg float64) DayTimes {
	year, month, day := date.Date()
	noonLocal := time.Date(year, month, day, 12, 0, 0, 0, date.Location())

	d := DaysSinceJ2000(noonLocal)
	lat := degToRad(latDeg)
	lw := degToRad(-lonDeg)

	// Julian cycle nearest the local noon, then the approximate transit.
	n := math.Round(d - j0 - lw/(2*math.Pi))
	ds := j0 + lw/(2*math.Pi) + n

	m := solarMeanAnomaly(ds)
	l := eclipticLongitude(m)
	dec := math.Asin(math.Sin(obliquity) * math.Sin(l))

	jTransit := JD2000 + ds + 0.0053*math.Sin(m) - 0.0069*math.Sin(2*l)

	// Hour angle at the standard rise/set altitude.
	h0 := degToRad(HorizonAltitudeDeg)
	cosHA := (math.Sin(h0) - math.Sin(lat)*math.Sin(dec)) / (math.Cos(lat) * math.Cos(dec))

	if cosHA < -1 {
		// Sun stays above the rise/set altitude all day.
		return DayTimes{AlwaysUp: true}
	}
	if cosHA > 1 {
		return DayTimes{AlwaysDown: true}
	}

	ha := math.Acos(cosHA)
	jSet := jTransit + radToDeg(ha)/360
	jRise := jTransit - radToDeg(ha)/360

	rise := TimeFromJulianDay(jRise)
	noon := TimeFromJulianDay(jTransit)
	set := TimeFromJulianDay(jSet)

	return DayTimes{
		Sunrise:       &rise,
		SolarNoon:     &noon,
		Sunset:        &set,
		DaylightHours: (jSet - jRise) * 24,
	}
}
