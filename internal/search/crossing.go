// Package search locates the instants during a civil day at which a sampled
// value crosses a target: coarse one-minute scanning followed by bisection.
package search

import "time"

// ValueFunc evaluates the quantity being searched (apparent altitude,
// illuminance, ...) at an instant.
type ValueFunc func(t time.Time) float64

const (
	// One-minute sampling across the full civil day: samples at minutes
	// 0..1440 inclusive.
	minutesPerDay = 24 * 60

	// bisectIterations narrows each one-minute bracket to well under a
	// second.
	bisectIterations = 16

	// MaxCrossings is the most crossings returned per day. A target on a
	// rise-then-fall curve is met at most twice.
	MaxCrossings = 2
)

// FindCrossings samples fn at one-minute resolution across the civil day of
// date (midnight to midnight in date's zone, endpoints included) and returns
// the instants where fn crosses target, refined by bisection, in
// chronological order. At most MaxCrossings instants are returned; an empty
// result means the target is unreachable that day.
//
// The brute-force scan trades efficiency for robustness: the altitude curve
// with refraction has no clean analytic inverse, and a full day costs well
// under a millisecond.
func FindCrossings(date time.Time, target float64, fn ValueFunc) []time.Time {
	year, month, day := date.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, date.Location())

	var crossings []time.Time

	prevAbove := fn(midnight)-target > 0
	prevT := midnight

	for minute := 1; minute <= minutesPerDay; minute++ {
		t := midnight.Add(time.Duration(minute) * time.Minute)
		above := fn(t)-target > 0

		if above != prevAbove {
			crossings = append(crossings, bisect(prevT, t, target, fn))
			if len(crossings) == MaxCrossings {
				break
			}
		}

		prevT, prevAbove = t, above
	}

	return crossings
}

// bisect narrows a bracket [lo, hi] known to contain a sign change of
// fn-target and returns the midpoint of the final bracket.
func bisect(lo, hi time.Time, target float64, fn ValueFunc) time.Time {
	loAbove := fn(lo)-target > 0

	for i := 0; i < bisectIterations; i++ {
		mid := lo.Add(hi.Sub(lo) / 2)
		if (fn(mid)-target > 0) == loAbove {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo.Add(hi.Sub(lo) / 2)
}
