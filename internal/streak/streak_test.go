package streak

import (
	"testing"

	"github.com/injazapp/injaz/internal/models"
)

var twoTasks = []models.QuranTask{
	{ID: "1", Label: "ورد التلاوة"},
	{ID: "2", Label: "ورد الحفظ"},
}

func fullLog(date string) models.QuranLog {
	return models.QuranLog{Date: date, CompletedTaskIDs: []string{"1", "2"}}
}

func TestFirstCompletionStartsAtOne(t *testing.T) {
	profile := models.DefaultProfile()

	if !Apply(&profile, twoTasks, fullLog("2026-03-10")) {
		t.Fatal("expected profile to change")
	}
	if profile.Streak != 1 {
		t.Errorf("expected streak 1, got %d", profile.Streak)
	}
	if profile.LastCompletedDate != "2026-03-10" {
		t.Errorf("expected last completed date 2026-03-10, got %s", profile.LastCompletedDate)
	}
}

func TestConsecutiveDayExtends(t *testing.T) {
	profile := models.UserProfile{Streak: 3, LastCompletedDate: "2026-03-10"}

	if !Apply(&profile, twoTasks, fullLog("2026-03-11")) {
		t.Fatal("expected profile to change")
	}
	if profile.Streak != 4 {
		t.Errorf("expected streak 4, got %d", profile.Streak)
	}
}

func TestGapRestartsAtOne(t *testing.T) {
	profile := models.UserProfile{Streak: 7, LastCompletedDate: "2026-03-10"}

	if !Apply(&profile, twoTasks, fullLog("2026-03-13")) {
		t.Fatal("expected profile to change")
	}
	if profile.Streak != 1 {
		t.Errorf("expected streak 1 after gap, got %d", profile.Streak)
	}
}

func TestMonthBoundaryExtends(t *testing.T) {
	profile := models.UserProfile{Streak: 5, LastCompletedDate: "2026-02-28"}

	if !Apply(&profile, twoTasks, fullLog("2026-03-01")) {
		t.Fatal("expected profile to change")
	}
	if profile.Streak != 6 {
		t.Errorf("expected streak 6 across month boundary, got %d", profile.Streak)
	}
}

func TestResaveSameDayIsNoOp(t *testing.T) {
	profile := models.UserProfile{Streak: 4, LastCompletedDate: "2026-03-11"}

	if Apply(&profile, twoTasks, fullLog("2026-03-11")) {
		t.Fatal("expected no change when re-saving an already counted day")
	}
	if profile.Streak != 4 {
		t.Errorf("expected streak to stay 4, got %d", profile.Streak)
	}
}

func TestPartialCompletionIsNoOp(t *testing.T) {
	profile := models.UserProfile{Streak: 4, LastCompletedDate: "2026-03-10"}
	log := models.QuranLog{Date: "2026-03-11", CompletedTaskIDs: []string{"1"}}

	if Apply(&profile, twoTasks, log) {
		t.Fatal("expected no change for a partially completed day")
	}
	if profile.Streak != 4 || profile.LastCompletedDate != "2026-03-10" {
		t.Errorf("expected profile untouched, got streak=%d last=%s", profile.Streak, profile.LastCompletedDate)
	}
}

func TestEmptyConfigIsNoOp(t *testing.T) {
	profile := models.UserProfile{Streak: 4, LastCompletedDate: "2026-03-10"}

	if Apply(&profile, nil, fullLog("2026-03-11")) {
		t.Fatal("expected no change with an empty task config")
	}
}

func TestBackfillRestartsRatherThanExtends(t *testing.T) {
	// Completing a day *before* the last completed date restarts, since the
	// counter is incremental and never recomputes history.
	profile := models.UserProfile{Streak: 4, LastCompletedDate: "2026-03-11"}

	if !Apply(&profile, twoTasks, fullLog("2026-03-09")) {
		t.Fatal("expected profile to change")
	}
	if profile.Streak != 1 {
		t.Errorf("expected streak 1 for a backfilled earlier day, got %d", profile.Streak)
	}
	if profile.LastCompletedDate != "2026-03-09" {
		t.Errorf("expected last completed date 2026-03-09, got %s", profile.LastCompletedDate)
	}
}

func TestExtraStaleIDsStillCount(t *testing.T) {
	// Stale ids from removed tasks don't block completion; only the current
	// config must be covered.
	profile := models.DefaultProfile()
	log := models.QuranLog{Date: "2026-03-10", CompletedTaskIDs: []string{"old", "1", "2"}}

	if !Apply(&profile, twoTasks, log) {
		t.Fatal("expected profile to change")
	}
	if profile.Streak != 1 {
		t.Errorf("expected streak 1, got %d", profile.Streak)
	}
}
