// Package orbit provides the planet catalog and heliocentric distances via
// Kepler's equation.
package orbit

import (
	"errors"
	"math"
	"time"
)

// ErrUnknownPlanet is returned for keys outside the fixed nine-body catalog.
var ErrUnknownPlanet = errors.New("orbit: unknown planet")

// Planet is a static catalog entry.
type Planet struct {
	Key            string // lowercase identifier, e.g. "mars"
	Name           string // display name
	MeanDistanceAU float64
}

// Elements holds Keplerian orbital elements at the J2000.0 epoch with linear
// per-day rates. Rates are converted from the JPL per-century approximations;
// the mean anomaly is deliberately not normalized when propagated, since the
// downstream trigonometry wraps implicitly.
type Elements struct {
	SemiMajorAU              float64
	Eccentricity             float64
	EccentricityRatePerDay   float64
	MeanAnomalyDeg           float64
	MeanAnomalyRateDegPerDay float64
}

// Days per Julian century, used to scale the JPL per-century rates.
const centuryDays = 36525.0

// Planets is the fixed nine-body catalog, Mercury through Pluto.
var Planets = []Planet{
	{Key: "mercury", Name: "Mercury", MeanDistanceAU: 0.387},
	{Key: "venus", Name: "Venus", MeanDistanceAU: 0.723},
	{Key: "earth", Name: "Earth", MeanDistanceAU: 1.000},
	{Key: "mars", Name: "Mars", MeanDistanceAU: 1.524},
	{Key: "jupiter", Name: "Jupiter", MeanDistanceAU: 5.203},
	{Key: "saturn", Name: "Saturn", MeanDistanceAU: 9.537},
	{Key: "uranus", Name: "Uranus", MeanDistanceAU: 19.19},
	{Key: "neptune", Name: "Neptune", MeanDistanceAU: 30.07},
	{Key: "pluto", Name: "Pluto", MeanDistanceAU: 39.48},
}

// elements holds J2000 orbital elements per planet key. Base mean anomalies
// are mean longitude minus longitude of perihelion from the JPL 1800-2050
// approximate elements.
var elements = map[string]Elements{
	"mercury": {0.38709927, 0.20563593, 0.00001906 / centuryDays, 174.79252722, 149472.67411175 / centuryDays},
	"venus":   {0.72333566, 0.00677672, -0.00004107 / centuryDays, 50.37663232, 58517.81538729 / centuryDays},
	"earth":   {1.00000261, 0.01671123, -0.00004392 / centuryDays, -2.47311027, 35999.37244981 / centuryDays},
	"mars":    {1.52371034, 0.09339410, 0.00007882 / centuryDays, 19.39019754, 19140.30268499 / centuryDays},
	"jupiter": {5.20288700, 0.04838624, -0.00013253 / centuryDays, 19.66796068, 3034.74612775 / centuryDays},
	"saturn":  {9.53667594, 0.05386179, -0.00050991 / centuryDays, -42.64463408, 1222.49362201 / centuryDays},
	"uranus":  {19.18916464, 0.04725744, -0.00004397 / centuryDays, 142.28382821, 428.48202785 / centuryDays},
	"neptune": {30.06992276, 0.00859048, 0.00005105 / centuryDays, -100.08479196, 218.45945325 / centuryDays},
	"pluto":   {39.48211675, 0.24882730, 0.00005170 / centuryDays, 14.86012204, 145.20780515 / centuryDays},
}

// j2000 is the reference epoch for the element rates: 2000-01-01 12:00 UTC,
// approximating Terrestrial Time.
var j2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// ByKey returns the catalog entry for a planet key.
func ByKey(key string) (Planet, error) {
	for _, p := range Planets {
		if p.Key == key {
			return p, nil
		}
	}
	return Planet{}, ErrUnknownPlanet
}

// HeliocentricDistanceAU returns the Sun-planet distance in AU at time t.
// Unknown keys return ErrUnknownPlanet; callers typically fall back to the
// planet's fixed mean distance.
func HeliocentricDistanceAU(key string, t time.Time) (float64, error) {
	el, ok := elements[key]
	if !ok {
		return 0, ErrUnknownPlanet
	}

	d := t.Sub(j2000).Hours() / 24

	e := el.Eccentricity + el.EccentricityRatePerDay*d
	mDeg := el.MeanAnomalyDeg + el.MeanAnomalyRateDegPerDay*d

	ecc := SolveKepler(mDeg*math.Pi/180, e)
	return el.SemiMajorAU * (1 - e*math.Cos(ecc)), nil
}

// Kepler solver limits. Planetary eccentricities stay below 0.25, where
// Newton-Raphson from E=M is well-behaved; no divergence guard is needed.
const (
	keplerMaxIterations = 12
	keplerTolerance     = 1e-10
)

// SolveKepler solves Kepler's equation E - e·sin(E) = M for the eccentric
// anomaly E by Newton-Raphson, seeded at E = M. M and E are in radians; M
// need not be normalized.
func SolveKepler(m, e float64) float64 {
	ecc := m
	for i := 0; i < keplerMaxIterations; i++ {
		delta := (m - ecc + e*math.Sin(ecc)) / (1 - e*math.Cos(ecc))
		ecc += delta
		if math.Abs(delta) < keplerTolerance {
			break
		}
	}
	return ecc
}
