package astro

import (
	"math"
	"testing"
	"time"
)

func TestRefractionDeg(t *testing.T) {
	tests := []struct {
		name    string
		elevDeg float64
		wantMin float64
		wantMax float64
	}{
		{"zenith region is uncorrected", 87, 0, 0},
		{"boundary above 85 is uncorrected", 85.01, 0, 0},
		{"mid elevation small correction", 45, 0.01, 0.02},
		{"low elevation grows", 10, 0.08, 0.10},
		{"horizon is about half a degree", 0, 0.46, 0.50},
		{"just below horizon still larger", -0.5, 0.5, 0.65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := refractionDeg(tt.elevDeg)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("refractionDeg(%.2f) = %.4f, want [%.2f, %.2f]",
					tt.elevDeg, got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestRefractionMonotoneNearHorizon(t *testing.T) {
	// Correction should grow as the sun sinks from 10° to the horizon.
	prev := refractionDeg(10)
	for elev := 9.5; elev >= 0; elev -= 0.5 {
		got := refractionDeg(elev)
		if got < prev {
			t.Fatalf("refraction shrank from %.4f to %.4f at elev %.1f", prev, got, elev)
		}
		prev = got
	}
}

func TestApparentAltitudeIncludesRefraction(t *testing.T) {
	// Near the horizon apparent altitude must sit clearly above geometric.
	// Pick a time shortly after geometric sunrise in London.
	loc := time.FixedZone("BST", 3600)
	day := time.Date(2024, 6, 21, 0, 0, 0, 0, loc)
	times := SunTimes(day, 51.4769, 0)
	if times.Sunrise == nil {
		t.Fatal("expected sunrise in London in June")
	}

	at := times.Sunrise.Add(2 * time.Minute)
	apparent := ApparentAltitude(at, 51.4769, 0)
	geometric := SolarPosition(at, 51.4769, 0).AltitudeRad * 180 / math.Pi

	if apparent <= geometric {
		t.Errorf("apparent %.3f° should exceed geometric %.3f° near the horizon", apparent, geometric)
	}
	if diff := apparent - geometric; diff < 0.3 || diff > 0.8 {
		t.Errorf("refraction near horizon = %.3f°, want roughly half a degree", diff)
	}
}

func TestApparentAltitudeAgreesWithGeometricHighSun(t *testing.T) {
	// The two ephemeris paths should agree to a fraction of a degree when
	// the sun is high and refraction is negligible.
	at := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	apparent := ApparentAltitude(at, 51.4769, 0)
	geometric := SolarPosition(at, 51.4769, 0).AltitudeRad * 180 / math.Pi

	if diff := math.Abs(apparent - geometric); diff > 0.5 {
		t.Errorf("paths diverge by %.3f° at high sun, want < 0.5°", diff)
	}
}

func TestApparentAltitudeDailyShape(t *testing.T) {
	// Altitude over a day at mid latitude rises to a single maximum near
	// solar noon and falls after.
	lat, lon := 52.23, 21.01
	day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	maxAlt := -90.0
	var maxAt time.Time
	for m := 0; m <= 24*60; m += 10 {
		at := day.Add(time.Duration(m) * time.Minute)
		if alt := ApparentAltitude(at, lat, lon); alt > maxAlt {
			maxAlt = alt
			maxAt = at
		}
	}

	if maxAlt < 35 || maxAlt > 40 {
		t.Errorf("equinox max altitude at 52.23N = %.2f°, want ~37.8°", maxAlt)
	}

	// Solar noon for lon 21.01 is about 10:43 UTC on the March equinox.
	noonGuess := day.Add(10*time.Hour + 43*time.Minute)
	if d := maxAt.Sub(noonGuess); d > 20*time.Minute || d < -20*time.Minute {
		t.Errorf("peak at %v, want within 20m of %v", maxAt, noonGuess)
	}
}
