package state

import (
	"testing"
	"time"
)

func TestManagerRecompute(t *testing.T) {
	mgr := New(Config{LatitudeDeg: 52.23, LongitudeDeg: 21.01})

	now := time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC)
	if !mgr.NeedsRecompute(now) {
		t.Fatal("fresh manager should need a recompute")
	}

	mgr.Recompute(now)

	snap := mgr.GetSnapshot()
	if !snap.HasReport {
		t.Fatal("snapshot should carry a report after Recompute")
	}
	if len(snap.Report.Planets) != 9 {
		t.Errorf("report has %d planets, want 9", len(snap.Report.Planets))
	}
	if snap.Config.LatitudeDeg != 52.23 {
		t.Errorf("snapshot config latitude = %v, want 52.23", snap.Config.LatitudeDeg)
	}

	// Same civil day: no recompute needed.
	if mgr.NeedsRecompute(now.Add(5 * time.Hour)) {
		t.Error("same-day query should not need a recompute")
	}

	// Day rollover: recompute needed.
	if !mgr.NeedsRecompute(now.Add(24 * time.Hour)) {
		t.Error("next-day query should need a recompute")
	}
}
