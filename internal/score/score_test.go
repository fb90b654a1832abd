package score

import (
	"testing"

	"github.com/injazapp/injaz/internal/models"
)

// fakeReader is an in-memory Reader for a single day's records.
type fakeReader struct {
	prayers     models.PrayerLog
	quran       models.QuranLog
	quranConfig []models.QuranTask
	habits      models.DailyHabits
	habitConfig []models.Habit
	sessions    []models.StudySession
}

func (f *fakeReader) PrayerLog(date string) (models.PrayerLog, error) {
	if f.prayers.Date == date {
		return f.prayers, nil
	}
	return models.NewPrayerLog(date), nil
}

func (f *fakeReader) QuranLog(date string) (models.QuranLog, error) {
	if f.quran.Date == date {
		return f.quran, nil
	}
	return models.NewQuranLog(date), nil
}

func (f *fakeReader) QuranConfig() ([]models.QuranTask, error) { return f.quranConfig, nil }

func (f *fakeReader) DailyHabits(date string) (models.DailyHabits, error) {
	if f.habits.Date == date {
		return f.habits, nil
	}
	return models.NewDailyHabits(date), nil
}

func (f *fakeReader) HabitsConfig() ([]models.Habit, error) { return f.habitConfig, nil }

func (f *fakeReader) StudySessions() ([]models.StudySession, error) { return f.sessions, nil }

const day = "2026-03-10"

func emptyReader() *fakeReader {
	return &fakeReader{
		quranConfig: []models.QuranTask{{ID: "1", Label: "ورد"}},
		habitConfig: []models.Habit{{ID: "1", Name: "أكل صحي"}},
	}
}

func TestEmptyDayScoresZero(t *testing.T) {
	b := Calculate(emptyReader(), day)
	if b.Total != 0 {
		t.Errorf("expected total 0 for an empty day, got %d", b.Total)
	}
}

func TestFullDayScoresHundred(t *testing.T) {
	r := emptyReader()
	prayers := models.NewPrayerLog(day)
	for _, name := range models.PrayerNames {
		prayers.SetEntry(name, models.PrayerEntry{Status: models.PrayerMosque, Sunnah: true, Adhkar: true})
	}
	r.prayers = prayers
	r.quran = models.QuranLog{Date: day, CompletedTaskIDs: []string{"1"}}
	r.habits = models.DailyHabits{Date: day, CompletedHabitIDs: []string{"1"}, WaterCups: 8}
	r.sessions = []models.StudySession{{ID: "s1", Date: day, DurationMinutes: 120}}

	b := Calculate(r, day)
	if b.Total != 100 {
		t.Errorf("expected total 100 for a full day, got %d (breakdown %+v)", b.Total, b)
	}
}

func TestWorkedExampleRoundsHalfUp(t *testing.T) {
	r := &fakeReader{
		quranConfig: []models.QuranTask{{ID: "1", Label: "a"}, {ID: "2", Label: "b"}},
		habitConfig: []models.Habit{
			{ID: "1", Name: "a"}, {ID: "2", Name: "b"},
			{ID: "3", Name: "c"}, {ID: "4", Name: "d"},
		},
	}

	prayers := models.NewPrayerLog(day)
	prayers.SetEntry(models.Fajr, models.PrayerEntry{Status: models.PrayerMosque})
	prayers.SetEntry(models.Dhuhr, models.PrayerEntry{Status: models.PrayerOnTime})
	prayers.SetEntry(models.Asr, models.PrayerEntry{Status: models.PrayerLate})
	prayers.SetEntry(models.Maghrib, models.PrayerEntry{Status: models.PrayerMissed})
	r.prayers = prayers

	r.quran = models.QuranLog{Date: day, CompletedTaskIDs: []string{"1", "2"}}
	r.sessions = []models.StudySession{{ID: "s1", Date: day, DurationMinutes: 90}}
	r.habits = models.DailyHabits{Date: day, CompletedHabitIDs: []string{"1", "2", "3"}, WaterCups: 8}

	b := Calculate(r, day)
	if b.Prayers != 15 {
		t.Errorf("expected prayers 15, got %v", b.Prayers)
	}
	if b.Quran != 20 {
		t.Errorf("expected quran 20, got %v", b.Quran)
	}
	if b.Study != 15 {
		t.Errorf("expected study 15, got %v", b.Study)
	}
	if b.Habits != 17.5 {
		t.Errorf("expected habits 17.5, got %v", b.Habits)
	}
	// 67.5 rounds half up to 68.
	if b.Total != 68 {
		t.Errorf("expected total 68, got %d", b.Total)
	}
}

func TestStudyCreditCapsAtTarget(t *testing.T) {
	r := emptyReader()
	r.sessions = []models.StudySession{{ID: "s1", Date: day, DurationMinutes: 600}}

	b := Calculate(r, day)
	if b.Study != MaxStudy {
		t.Errorf("expected study capped at %v, got %v", MaxStudy, b.Study)
	}
}

func TestStudyIgnoresOtherDates(t *testing.T) {
	r := emptyReader()
	r.sessions = []models.StudySession{
		{ID: "s1", Date: "2026-03-09", DurationMinutes: 120},
		{ID: "s2", Date: day, DurationMinutes: 60},
	}

	b := Calculate(r, day)
	if b.Study != 10 {
		t.Errorf("expected study 10 from the day's 60 minutes only, got %v", b.Study)
	}
}

func TestWaterAllOrNothing(t *testing.T) {
	r := emptyReader()
	r.habits = models.DailyHabits{Date: day, WaterCups: 7}
	if b := Calculate(r, day); b.Habits != 0 {
		t.Errorf("expected no water credit at 7 cups, got %v", b.Habits)
	}

	r.habits.WaterCups = 8
	if b := Calculate(r, day); b.Habits != 10 {
		t.Errorf("expected 10 water points at 8 cups, got %v", b.Habits)
	}
}

func TestEmptyQuranConfigScoresZero(t *testing.T) {
	r := emptyReader()
	r.quranConfig = []models.QuranTask{}
	r.quran = models.QuranLog{Date: day, CompletedTaskIDs: []string{"1", "ghost"}}

	b := Calculate(r, day)
	if b.Quran != 0 {
		t.Errorf("expected quran 0 with an empty config, got %v", b.Quran)
	}
}

func TestStaleIDsContributeNothing(t *testing.T) {
	r := emptyReader()
	r.quran = models.QuranLog{Date: day, CompletedTaskIDs: []string{"deleted-id"}}
	r.habits = models.DailyHabits{Date: day, CompletedHabitIDs: []string{"deleted-id"}}

	b := Calculate(r, day)
	if b.Quran != 0 {
		t.Errorf("expected quran 0 for stale ids, got %v", b.Quran)
	}
	if b.Habits != 0 {
		t.Errorf("expected habits 0 for stale ids, got %v", b.Habits)
	}
}

func TestMonotonicityOnPrayerUpgrade(t *testing.T) {
	r := emptyReader()
	prayers := models.NewPrayerLog(day)
	prayers.SetEntry(models.Fajr, models.PrayerEntry{Status: models.PrayerMissed})
	r.prayers = prayers
	before := Calculate(r, day).Total

	prayers.SetEntry(models.Fajr, models.PrayerEntry{Status: models.PrayerOnTime})
	r.prayers = prayers
	after := Calculate(r, day).Total

	if after < before {
		t.Errorf("score decreased after upgrading a prayer: %d -> %d", before, after)
	}
}

func TestTotalClampedToHundred(t *testing.T) {
	// Each fractional section can round up independently; the clamp keeps the
	// sum from exceeding 100.
	r := emptyReader()
	prayers := models.NewPrayerLog(day)
	for _, name := range models.PrayerNames {
		prayers.SetEntry(name, models.PrayerEntry{Status: models.PrayerMosque, Sunnah: true, Adhkar: true})
	}
	r.prayers = prayers
	r.quran = models.QuranLog{Date: day, CompletedTaskIDs: []string{"1"}}
	r.habits = models.DailyHabits{Date: day, CompletedHabitIDs: []string{"1"}, WaterCups: 20}
	r.sessions = []models.StudySession{{ID: "s1", Date: day, DurationMinutes: 1000}}

	b := Calculate(r, day)
	if b.Total > 100 {
		t.Errorf("total exceeded 100: %d", b.Total)
	}
}

func TestHistoryOrderAndLength(t *testing.T) {
	r := emptyReader()
	history := History(r, day, 7)
	if len(history) != 7 {
		t.Fatalf("expected 7 days, got %d", len(history))
	}
	if history[0].Date != "2026-03-04" {
		t.Errorf("expected history to start at 2026-03-04, got %s", history[0].Date)
	}
	if history[6].Date != day {
		t.Errorf("expected history to end at %s, got %s", day, history[6].Date)
	}
}

func TestStudyWeekAggregatesHours(t *testing.T) {
	r := emptyReader()
	r.sessions = []models.StudySession{
		{ID: "s1", Date: day, DurationMinutes: 90},
		{ID: "s2", Date: day, DurationMinutes: 30},
		{ID: "s3", Date: "2026-03-08", DurationMinutes: 45},
	}

	week := StudyWeek(r, day)
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	last := week[6]
	if last.Date != day || last.Hours != 2 {
		t.Errorf("expected 2 hours on %s, got %v on %s", day, last.Hours, last.Date)
	}
	if week[4].Hours != 0.8 {
		t.Errorf("expected 0.8 hours on 2026-03-08, got %v", week[4].Hours)
	}
}
