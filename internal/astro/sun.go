package astro

import (
	"math"
	"time"
)

// SolarSnapshot holds the geometric (airless) position of the Sun for one
// observer and instant. Computed fresh per query, never cached.
type SolarSnapshot struct {
	AzimuthRad     float64 // 0 = North, π/2 = East
	AltitudeRad    float64 // 0 = horizon, π/2 = zenith
	DeclinationRad float64
}

// Mean obliquity of the ecliptic at J2000, radians.
var obliquity = degToRad(23.4397)

// SolarPosition computes the geometric solar azimuth and altitude for an
// observer at latDeg/lonDeg (east positive) at time t.
//
// Uses the standard low-precision series: solar mean anomaly, equation of
// center, ecliptic longitude, then declination/right ascension and the local
// hour angle via sidereal time. Accuracy is a few arcminutes, sufficient for
// brightness modeling; near-horizon work should use ApparentAltitude, which
// includes refraction.
func SolarPosition(t time.Time, latDeg, lonDeg float64) SolarSnapshot {
	d := DaysSinceJ2000(t)
	lat := degToRad(latDeg)
	lw := degToRad(-lonDeg) // west-positive longitude for sidereal math

	dec, ra := sunEquatorial(d)

	// Local hour angle
	st := degToRad(280.16+360.9856235*d) - lw
	h := st - ra

	sinAlt := math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(h)
	alt := math.Asin(sinAlt)

	// Azimuth measured from south, westward positive; shift to compass
	// convention (0 = North, increasing eastward).
	azSouth := math.Atan2(math.Sin(h), math.Cos(h)*math.Sin(lat)-math.Tan(dec)*math.Cos(lat))
	az := math.Mod(azSouth+math.Pi, 2*math.Pi)
	if az < 0 {
		az += 2 * math.Pi
	}

	return SolarSnapshot{
		AzimuthRad:     az,
		AltitudeRad:    alt,
		DeclinationRad: dec,
	}
}

// sunEquatorial returns the Sun's declination and right ascension (radians)
// for a days-since-J2000 value.
func sunEquatorial(d float64) (dec, ra float64) {
	m := solarMeanAnomaly(d)
	l := eclipticLongitude(m)

	dec = math.Asin(math.Sin(obliquity) * math.Sin(l))
	ra = math.Atan2(math.Sin(l)*math.Cos(obliquity), math.Cos(l))
	return dec, ra
}

// solarMeanAnomaly returns the Sun's mean anomaly in radians.
func solarMeanAnomaly(d float64) float64 {
	return degToRad(357.5291 + 0.98560028*d)
}

// eclipticLongitude returns the Sun's ecliptic longitude in radians:
// mean anomaly + equation of center + perihelion longitude + π.
func eclipticLongitude(m float64) float64 {
	c := degToRad(1.9148*math.Sin(m) + 0.02*math.Sin(2*m) + 0.0003*math.Sin(3*m))
	p := degToRad(102.9372)
	return m + c + p + math.Pi
}
