package models

import "testing"

func TestQuranLogToggle(t *testing.T) {
	log := NewQuranLog("2026-03-10")

	if !log.Toggle("1") {
		t.Error("first toggle should mark complete")
	}
	if !log.Completed("1") {
		t.Error("expected task 1 complete")
	}
	if log.Toggle("1") {
		t.Error("second toggle should unmark")
	}
	if log.Completed("1") {
		t.Error("expected task 1 incomplete again")
	}
}

func TestDailyHabitsWaterFloorsAtZero(t *testing.T) {
	d := NewDailyHabits("2026-03-10")
	d.AddWater(3)
	d.AddWater(-5)
	if d.WaterCups != 0 {
		t.Errorf("expected water floored at 0, got %d", d.WaterCups)
	}
}

func TestPrayerLogToleratesPartialData(t *testing.T) {
	// Logs decoded from older data may miss prayers or the whole map.
	log := PrayerLog{Date: "2026-03-10"}
	if got := log.Entry(Fajr).Status; got != PrayerNone {
		t.Errorf("expected none for a missing entry, got %s", got)
	}

	log.SetEntry(Fajr, PrayerEntry{Status: PrayerMosque, Sunnah: true})
	if e := log.Entry(Fajr); e.Status != PrayerMosque || !e.Sunnah {
		t.Errorf("expected set entry returned, got %+v", e)
	}
}

func TestRamadanConfigNormalize(t *testing.T) {
	c := RamadanConfig{KhatmaGrid: []bool{true}}
	c.Normalize()
	if len(c.KhatmaGrid) != KhatmaParts {
		t.Fatalf("expected %d parts, got %d", KhatmaParts, len(c.KhatmaGrid))
	}
	if !c.KhatmaGrid[0] {
		t.Error("expected existing progress kept")
	}

	long := make([]bool, KhatmaParts+5)
	c = RamadanConfig{KhatmaGrid: long}
	c.Normalize()
	if len(c.KhatmaGrid) != KhatmaParts {
		t.Errorf("expected overlong grid truncated to %d, got %d", KhatmaParts, len(c.KhatmaGrid))
	}
}

func TestValidPrayerStatus(t *testing.T) {
	for _, s := range []PrayerStatus{PrayerNone, PrayerMosque, PrayerOnTime, PrayerLate, PrayerMissed} {
		if !ValidPrayerStatus(s) {
			t.Errorf("expected %s valid", s)
		}
	}
	if ValidPrayerStatus("prayed-ish") {
		t.Error("expected unknown status rejected")
	}
}
