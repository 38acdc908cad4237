package astro

import (
	"math"
	"time"
)

// ApparentAltitude computes the Sun's apparent altitude in degrees for an
// observer at latDeg/lonDeg (east positive) at time t, including atmospheric
// refraction.
//
// This path uses the NOAA fractional-year series for the equation of time and
// declination rather than the ecliptic-longitude series in SolarPosition. It
// is more faithful near the horizon, where refraction dominates, and is the
// altitude function used for brightness-threshold crossing searches.
func ApparentAltitude(t time.Time, latDeg, lonDeg float64) float64 {
	u := t.UTC()

	// Fractional year angle, radians. Hours are measured from local noon.
	hours := float64(u.Hour()) + float64(u.Minute())/60 + float64(u.Second())/3600
	gamma := 2 * math.Pi / 365 * (float64(u.YearDay()) - 1 + (hours-12)/24)

	eqTimeMin := equationOfTime(gamma)
	decl := solarDeclination(gamma)

	// True solar time in minutes; 4 minutes per degree of longitude.
	trueSolarMin := hours*60 + eqTimeMin + 4*lonDeg
	haDeg := trueSolarMin/4 - 180

	lat := degToRad(latDeg)
	ha := degToRad(haDeg)

	cosZenith := math.Sin(lat)*math.Sin(decl) + math.Cos(lat)*math.Cos(decl)*math.Cos(ha)
	if cosZenith > 1 {
		cosZenith = 1
	} else if cosZenith < -1 {
		cosZenith = -1
	}

	elevDeg := 90 - radToDeg(math.Acos(cosZenith))
	return elevDeg + refractionDeg(elevDeg)
}

// equationOfTime returns the equation of time in minutes for a fractional
// year angle (radians).
func equationOfTime(gamma float64) float64 {
	return 229.18 * (0.000075 +
		0.001868*math.Cos(gamma) -
		0.032077*math.Sin(gamma) -
		0.014615*math.Cos(2*gamma) -
		0.040849*math.Sin(2*gamma))
}

// solarDeclination returns the solar declination in radians for a fractional
// year angle (radians). Three-harmonic series.
func solarDeclination(gamma float64) float64 {
	return 0.006918 -
		0.399912*math.Cos(gamma) +
		0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) +
		0.000907*math.Sin(2*gamma) -
		0.002697*math.Cos(3*gamma) +
		0.00148*math.Sin(3*gamma)
}

// refractionDeg returns the atmospheric refraction correction in degrees for
// a geometric elevation in degrees. Piecewise fit: zero near the zenith, a
// tangent polynomial for mid elevations, a quartic through the horizon band,
// and a cotangent tail well below the horizon.
func refractionDeg(elevDeg float64) float64 {
	if elevDeg > 85 {
		return 0
	}

	tanElev := math.Tan(degToRad(elevDeg))
	var corrArcsec float64
	switch {
	case elevDeg > 5:
		corrArcsec = 58.1/tanElev - 0.07/(tanElev*tanElev*tanElev) +
			0.000086/(tanElev*tanElev*tanElev*tanElev*tanElev)
	case elevDeg > -0.575:
		corrArcsec = 1735 + elevDeg*(-518.2+elevDeg*(103.4+elevDeg*(-12.79+elevDeg*0.711)))
	default:
		corrArcsec = -20.774 / tanElev
	}

	return corrArcsec / 3600
}
