package storage

import (
	"path/filepath"
	"testing"

	"github.com/injazapp/injaz/internal/models"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()
	kv := NewJSONKV(filepath.Join(t.TempDir(), "injaz.json"))
	if err := kv.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return NewRepository(kv)
}

func TestUnwrittenLogReturnsDefaultWithoutWriting(t *testing.T) {
	repo := setupRepo(t)

	log, err := repo.PrayerLog("2026-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Date != "2026-03-10" {
		t.Errorf("expected default stamped with the date, got %q", log.Date)
	}
	for _, name := range models.PrayerNames {
		if log.Entry(name).Status != models.PrayerNone {
			t.Errorf("expected %s status none, got %s", name, log.Entry(name).Status)
		}
	}

	// Reading must not persist the default.
	list, err := repo.KV().List()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if _, ok := list[KeyPrayers]; ok {
		t.Error("read of an unwritten log must not write to the store")
	}
}

func TestSaveForDatePreservesOtherDates(t *testing.T) {
	repo := setupRepo(t)

	first := models.NewTasbeehLog("2026-03-10")
	first.Count = 33
	if err := repo.SaveTasbeehLog(first); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	second := models.NewTasbeehLog("2026-03-11")
	second.Count = 99
	if err := repo.SaveTasbeehLog(second); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := repo.TasbeehLog("2026-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Count != 33 {
		t.Errorf("saving a later date clobbered an earlier one: got count %d", got.Count)
	}
}

func TestSingletonDefaults(t *testing.T) {
	repo := setupRepo(t)

	profile, err := repo.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Streak != 0 || profile.LastCompletedDate != "" {
		t.Errorf("expected zero streak state, got %+v", profile)
	}

	settings, err := repo.Settings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !settings.DhikrEnabled {
		t.Error("expected dhikr reminders on by default")
	}

	tasks, err := repo.QuranConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected the seed recitation task, got %d entries", len(tasks))
	}
}

func TestAppendOnlyListGrows(t *testing.T) {
	repo := setupRepo(t)

	for i, subject := range []models.Subject{models.SubjectMath, models.SubjectPhysics} {
		s := models.StudySession{ID: string(rune('a' + i)), Date: "2026-03-10", Subject: subject, DurationMinutes: 30}
		if err := repo.AddStudySession(s); err != nil {
			t.Fatalf("failed to add session: %v", err)
		}
	}

	sessions, err := repo.StudySessions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Subject != models.SubjectMath || sessions[1].Subject != models.SubjectPhysics {
		t.Errorf("expected insertion order preserved, got %+v", sessions)
	}
}

func TestSaveQuranLogDrivesStreak(t *testing.T) {
	repo := setupRepo(t)

	config, err := repo.QuranConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log := models.NewQuranLog("2026-03-10")
	for _, task := range config {
		log.Toggle(task.ID)
	}
	if err := repo.SaveQuranLog(log); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	profile, err := repo.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Streak != 1 || profile.LastCompletedDate != "2026-03-10" {
		t.Errorf("expected streak started, got %+v", profile)
	}

	// The next consecutive day extends it.
	next := models.NewQuranLog("2026-03-11")
	for _, task := range config {
		next.Toggle(task.ID)
	}
	if err := repo.SaveQuranLog(next); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	profile, _ = repo.Profile()
	if profile.Streak != 2 {
		t.Errorf("expected streak 2, got %d", profile.Streak)
	}
}

func TestIncompleteQuranLogLeavesStreakAlone(t *testing.T) {
	repo := setupRepo(t)

	if err := repo.SaveQuranLog(models.NewQuranLog("2026-03-10")); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	profile, err := repo.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Streak != 0 {
		t.Errorf("expected streak untouched, got %d", profile.Streak)
	}
}

func TestTasbeehTotalSumsAllDays(t *testing.T) {
	repo := setupRepo(t)

	for date, count := range map[string]int{"2026-03-09": 10, "2026-03-10": 23} {
		log := models.NewTasbeehLog(date)
		log.Count = count
		if err := repo.SaveTasbeehLog(log); err != nil {
			t.Fatalf("failed to save: %v", err)
		}
	}

	total, err := repo.TasbeehTotal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 33 {
		t.Errorf("expected total 33, got %d", total)
	}
}

func TestBudgetUnsetReportsNotFound(t *testing.T) {
	repo := setupRepo(t)

	_, found, err := repo.Budget()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected no budget before one is set")
	}

	if err := repo.SetBudget(models.Budget{StartDate: "2026-03-10", Amount: 500}); err != nil {
		t.Fatalf("failed to set budget: %v", err)
	}

	budget, found, err := repo.Budget()
	if err != nil || !found {
		t.Fatalf("expected budget, found=%v err=%v", found, err)
	}
	if budget.Amount != 500 {
		t.Errorf("expected amount 500, got %v", budget.Amount)
	}
}

func TestRamadanConfigGridNormalized(t *testing.T) {
	repo := setupRepo(t)

	// A shorter grid from older data loads back padded to full length.
	cfg := models.RamadanConfig{KhatmaGrid: []bool{true, true}}
	if err := repo.SaveRamadanConfig(cfg); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := repo.RamadanConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.KhatmaGrid) != models.KhatmaParts {
		t.Errorf("expected %d parts, got %d", models.KhatmaParts, len(got.KhatmaGrid))
	}
	if !got.KhatmaGrid[0] || !got.KhatmaGrid[1] || got.KhatmaGrid[2] {
		t.Errorf("expected first two parts kept, rest empty: %v", got.KhatmaGrid[:3])
	}
}
