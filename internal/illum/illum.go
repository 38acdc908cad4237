// Package illum models the altitude/illuminance equivalence: how bright
// sunlight is at a given solar altitude, and which Earth altitude matches a
// given fraction of Earth-noon brightness.
package illum

import "math"

const (
	// NoonLux is the empirical clear-sky horizontal illuminance at high sun.
	NoonLux = 120000.0

	// daytimeExponent softens the sin(altitude) falloff to approximate
	// atmospheric scattering.
	daytimeExponent = 1.25

	// Twilight branch: 400 lux at the horizon, e-folding over ~1.26° so
	// that civil twilight end (-6°) yields ~3.4 lux.
	twilightHorizonLux = 400.0
	twilightEFoldDeg   = 1.257

	// Pluto-time anchor: noon at Pluto's mean distance is as bright as
	// Earth sunlight at -1.5° solar altitude.
	plutoMeanDistanceAU = 39.48
	plutoAnchorDeg      = -1.5

	// Practical clamp for the target-altitude mapping.
	minTargetDeg = -18.0
	maxTargetDeg = 30.0
)

// degPerDecade is the target-altitude shift for a decade change in relative
// brightness, tied to the twilight e-folding scale.
var degPerDecade = twilightEFoldDeg * math.Ln10

// IrradianceScale returns solar irradiance at distanceAU relative to 1 AU,
// by the inverse-square law. distanceAU of zero yields +Inf; callers guard.
func IrradianceScale(distanceAU float64) float64 {
	return 1 / (distanceAU * distanceAU)
}

// EarthIlluminanceLux estimates horizontal illuminance on Earth for a solar
// altitude in radians.
//
// Above the horizon the daytime branch NoonLux·sin(h)^1.25 applies; below,
// an exponential twilight decay. The two branches do not meet at h = 0 (the
// daytime branch tends to 0, the twilight branch to 400 lux); the seam is
// inherited from the reference model and left as is.
func EarthIlluminanceLux(altitudeRad float64) float64 {
	if altitudeRad >= 0 {
		return NoonLux * math.Pow(math.Sin(altitudeRad), daytimeExponent)
	}
	altDeg := altitudeRad * 180 / math.Pi
	return twilightHorizonLux * math.Exp(altDeg/twilightEFoldDeg)
}

// AltitudeForIlluminance inverts EarthIlluminanceLux, returning the solar
// altitude in degrees that produces targetLux. Values above the twilight
// ceiling (400 lux) resolve on the daytime branch, the rest on the twilight
// branch.
func AltitudeForIlluminance(targetLux float64) float64 {
	if targetLux > twilightHorizonLux {
		ratio := targetLux / NoonLux
		return math.Asin(math.Pow(ratio, 1/daytimeExponent)) * 180 / math.Pi
	}
	return twilightEFoldDeg * math.Log(targetLux/twilightHorizonLux)
}

// TargetAltitudeForRelativeBrightness maps a brightness relative to Earth
// noon onto the Earth solar altitude with equivalent sunlight, in degrees.
//
// Pluto's mean-distance noon is anchored at -1.5°; other brightnesses shift
// from the anchor by a fixed number of degrees per decade of brightness.
// Results are clamped to [-18°, +30°].
func TargetAltitudeForRelativeBrightness(relativeIlluminance float64) float64 {
	anchorRel := IrradianceScale(plutoMeanDistanceAU)
	deg := plutoAnchorDeg + degPerDecade*math.Log10(relativeIlluminance/anchorRel)

	if deg < minTargetDeg {
		return minTargetDeg
	}
	if deg > maxTargetDeg {
		return maxTargetDeg
	}
	return deg
}
