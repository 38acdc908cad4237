package astro

import (
	"math"
	"testing"
	"time"
)

func TestSunTimesEquinoxEquator(t *testing.T) {
	date := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	times := SunTimes(date, 0, 0)

	if times.AlwaysUp || times.AlwaysDown {
		t.Fatalf("unexpected polar classification: %+v", times)
	}
	if times.Sunrise == nil || times.SolarNoon == nil || times.Sunset == nil {
		t.Fatal("expected all three times on the equator at equinox")
	}

	// About 12 hours of daylight; slightly more because the standard
	// rise/set altitude is -0.833°, not 0°.
	if math.Abs(times.DaylightHours-12.0) > 0.15 {
		t.Errorf("daylight = %.3fh, want 12.0 ± 0.15", times.DaylightHours)
	}

	// Rise and set symmetric around solar noon within a minute.
	up := times.SolarNoon.Sub(*times.Sunrise)
	down := times.Sunset.Sub(*times.SolarNoon)
	if d := (up - down).Abs(); d > time.Minute {
		t.Errorf("rise/set asymmetry around noon = %v, want < 1m", d)
	}
}

func TestSunTimesPolar(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		lat      float64
		wantUp   bool
		wantDown bool
	}{
		{
			name:   "Arctic summer is polar day",
			date:   time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
			lat:    75,
			wantUp: true,
		},
		{
			name:     "Arctic winter is polar night",
			date:     time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC),
			lat:      75,
			wantDown: true,
		},
		{
			name:     "Antarctic summer is polar day",
			date:     time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC),
			lat:      -80,
			wantUp:   true,
			wantDown: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			times := SunTimes(tt.date, tt.lat, 0)

			if times.AlwaysUp != tt.wantUp || times.AlwaysDown != tt.wantDown {
				t.Errorf("got up=%v down=%v, want up=%v down=%v",
					times.AlwaysUp, times.AlwaysDown, tt.wantUp, tt.wantDown)
			}
			if times.Sunrise != nil || times.SolarNoon != nil || times.Sunset != nil {
				t.Error("polar classification must carry nil times")
			}
			if times.DaylightHours != 0 {
				t.Errorf("daylight = %.2f, want 0 under polar conditions", times.DaylightHours)
			}
		})
	}
}

func TestSunTimesWarsawSolstice(t *testing.T) {
	warsaw := time.FixedZone("CEST", 2*3600)
	date := time.Date(2024, 6, 21, 0, 0, 0, 0, warsaw)
	times := SunTimes(date, 52.23, 21.01)

	if times.Sunrise == nil || times.Sunset == nil {
		t.Fatal("expected sunrise and sunset in Warsaw")
	}

	// Midsummer Warsaw: roughly 16.8 hours of daylight.
	if times.DaylightHours < 16.3 || times.DaylightHours > 17.3 {
		t.Errorf("daylight = %.2fh, want ~16.8", times.DaylightHours)
	}

	// Sunrise around 04:14 local, sunset around 21:01 local.
	rise := times.Sunrise.In(warsaw)
	set := times.Sunset.In(warsaw)
	if rise.Hour() < 3 || rise.Hour() > 5 {
		t.Errorf("sunrise local hour = %d, want 3-5", rise.Hour())
	}
	if set.Hour() < 20 || set.Hour() > 22 {
		t.Errorf("sunset local hour = %d, want 20-22", set.Hour())
	}

	// Sunset must fall on the same civil day as the query.
	if set.Day() != 21 {
		t.Errorf("sunset on day %d, want 21", set.Day())
	}
}

func TestSunTimesNoonNearLongitudeOffset(t *testing.T) {
	// Solar noon shifts ~4 minutes per degree of longitude west.
	date := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	greenwich := SunTimes(date, 51.4769, 0)
	west15 := SunTimes(date, 51.4769, -15)

	if greenwich.SolarNoon == nil || west15.SolarNoon == nil {
		t.Fatal("expected solar noon at both longitudes")
	}

	shift := west15.SolarNoon.Sub(*greenwich.SolarNoon)
	if d := shift - time.Hour; d > 2*time.Minute || d < -2*time.Minute {
		t.Errorf("noon shift for 15° west = %v, want ~1h", shift)
	}
}
