package storage

import (
	"time"

	"github.com/injazapp/injaz/internal/models"
	"github.com/injazapp/injaz/internal/streak"
)

const dateFormat = "2006-01-02"

// Today returns the current calendar date key in the local timezone.
func Today() string {
	return time.Now().Format(dateFormat)
}

// Repository exposes the application's record types over a keyed record
// store: singleton values (profile, settings, configs), date-keyed logs (one
// date -> record mapping per log type), and append-only lists (study
// sessions, expenses, weekly reviews).
//
// Absence equals default throughout: reading a record that was never written
// returns the type's zero value stamped with the requested date, and never
// persists it.
type Repository struct {
	kv KV
}

func NewRepository(kv KV) *Repository {
	return &Repository{kv: kv}
}

// KV exposes the underlying store for whole-namespace operations
// (export/import/wipe).
func (r *Repository) KV() KV {
	return r.kv
}

// singleton reads the value at key, or returns def when absent or corrupt.
func singleton[T any](kv KV, key string, def T) (T, error) {
	out := def
	found, err := kv.Read(key, &out)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	return out, nil
}

// appendOnly appends rec to the list stored at key. The current list is
// always re-read first; no caller-held copy is trusted.
func appendOnly[T any](kv KV, key string, rec T) error {
	list := []T{}
	if _, err := kv.Read(key, &list); err != nil {
		return err
	}
	return kv.Write(key, append(list, rec))
}

// logForDate returns the record stored for date under key, or def when the
// date has never been written.
func logForDate[T any](kv KV, key, date string, def T) (T, error) {
	logs := map[string]T{}
	if _, err := kv.Read(key, &logs); err != nil {
		return def, err
	}
	if rec, ok := logs[date]; ok {
		return rec, nil
	}
	return def, nil
}

// saveForDate upserts rec into the date mapping stored under key. The full
// current mapping is re-read right before the write so a stale in-memory
// copy never clobbers records for unrelated dates.
func saveForDate[T any](kv KV, key, date string, rec T) error {
	logs := map[string]T{}
	if _, err := kv.Read(key, &logs); err != nil {
		return err
	}
	logs[date] = rec
	return kv.Write(key, logs)
}

// --- Profile & settings ---

func (r *Repository) Profile() (models.UserProfile, error) {
	return singleton(r.kv, KeyProfile, models.DefaultProfile())
}

func (r *Repository) SaveProfile(p models.UserProfile) error {
	return r.kv.Write(KeyProfile, p)
}

func (r *Repository) Settings() (models.Settings, error) {
	return singleton(r.kv, KeySettings, models.DefaultSettings())
}

func (r *Repository) SaveSettings(s models.Settings) error {
	return r.kv.Write(KeySettings, s)
}

// --- Configs ---

func (r *Repository) QuranConfig() ([]models.QuranTask, error) {
	return singleton(r.kv, KeyQuranConfig, []models.QuranTask{
		{ID: "1", Label: "ورد التلاوة اليومي"},
	})
}

func (r *Repository) SaveQuranConfig(cfg []models.QuranTask) error {
	return r.kv.Write(KeyQuranConfig, cfg)
}

func (r *Repository) HabitsConfig() ([]models.Habit, error) {
	return singleton(r.kv, KeyHabitsConfig, []models.Habit{
		{ID: "1", Name: "أكل صحي", Emoji: "🥗"},
	})
}

func (r *Repository) SaveHabitsConfig(cfg []models.Habit) error {
	return r.kv.Write(KeyHabitsConfig, cfg)
}

func (r *Repository) RamadanConfig() (models.RamadanConfig, error) {
	cfg, err := singleton(r.kv, KeyRamadanConfig, models.NewRamadanConfig())
	cfg.Normalize()
	return cfg, err
}

func (r *Repository) SaveRamadanConfig(cfg models.RamadanConfig) error {
	cfg.Normalize()
	return r.kv.Write(KeyRamadanConfig, cfg)
}

// --- Per-date logs ---

func (r *Repository) PrayerLog(date string) (models.PrayerLog, error) {
	return logForDate(r.kv, KeyPrayers, date, models.NewPrayerLog(date))
}

func (r *Repository) SavePrayerLog(log models.PrayerLog) error {
	return saveForDate(r.kv, KeyPrayers, log.Date, log)
}

func (r *Repository) QuranLog(date string) (models.QuranLog, error) {
	return logForDate(r.kv, KeyQuran, date, models.NewQuranLog(date))
}

// SaveQuranLog upserts the log and then runs the streak tracker against it,
// persisting the profile when the streak state moved.
func (r *Repository) SaveQuranLog(log models.QuranLog) error {
	if err := saveForDate(r.kv, KeyQuran, log.Date, log); err != nil {
		return err
	}

	config, err := r.QuranConfig()
	if err != nil {
		return err
	}
	profile, err := r.Profile()
	if err != nil {
		return err
	}

	if streak.Apply(&profile, config, log) {
		return r.SaveProfile(profile)
	}
	return nil
}

func (r *Repository) DailyHabits(date string) (models.DailyHabits, error) {
	return logForDate(r.kv, KeyHabits, date, models.NewDailyHabits(date))
}

func (r *Repository) SaveDailyHabits(log models.DailyHabits) error {
	return saveForDate(r.kv, KeyHabits, log.Date, log)
}

func (r *Repository) ScreenTimeLog(date string) (models.ScreenTimeLog, error) {
	return logForDate(r.kv, KeyScreenTime, date, models.NewScreenTimeLog(date))
}

func (r *Repository) SaveScreenTimeLog(log models.ScreenTimeLog) error {
	return saveForDate(r.kv, KeyScreenTime, log.Date, log)
}

func (r *Repository) TasbeehLog(date string) (models.TasbeehLog, error) {
	return logForDate(r.kv, KeyTasbeeh, date, models.NewTasbeehLog(date))
}

func (r *Repository) SaveTasbeehLog(log models.TasbeehLog) error {
	return saveForDate(r.kv, KeyTasbeeh, log.Date, log)
}

// TasbeehTotal sums the dhikr counter across all recorded days.
func (r *Repository) TasbeehTotal() (int, error) {
	logs := map[string]models.TasbeehLog{}
	if _, err := r.kv.Read(KeyTasbeeh, &logs); err != nil {
		return 0, err
	}
	total := 0
	for _, log := range logs {
		total += log.Count
	}
	return total, nil
}

func (r *Repository) FocusList(date string) (models.FocusList, error) {
	return logForDate(r.kv, KeyFocus, date, models.NewFocusList(date))
}

func (r *Repository) SaveFocusList(list models.FocusList) error {
	return saveForDate(r.kv, KeyFocus, list.Date, list)
}

func (r *Repository) RamadanDay(date string) (models.RamadanDay, error) {
	return logForDate(r.kv, KeyRamadanLogs, date, models.NewRamadanDay(date))
}

func (r *Repository) SaveRamadanDay(day models.RamadanDay) error {
	return saveForDate(r.kv, KeyRamadanLogs, day.Date, day)
}

func (r *Repository) DailyReview(date string) (models.DailyReview, error) {
	return logForDate(r.kv, KeyDailyReviews, date, models.NewDailyReview(date))
}

func (r *Repository) SaveDailyReview(review models.DailyReview) error {
	return saveForDate(r.kv, KeyDailyReviews, review.Date, review)
}

// --- Append-only lists ---

func (r *Repository) StudySessions() ([]models.StudySession, error) {
	return singleton(r.kv, KeyStudy, []models.StudySession{})
}

func (r *Repository) AddStudySession(s models.StudySession) error {
	return appendOnly(r.kv, KeyStudy, s)
}

func (r *Repository) Expenses() ([]models.Expense, error) {
	return singleton(r.kv, KeyExpenses, []models.Expense{})
}

func (r *Repository) AddExpense(e models.Expense) error {
	return appendOnly(r.kv, KeyExpenses, e)
}

func (r *Repository) WeeklyReviews() ([]models.WeeklyReview, error) {
	return singleton(r.kv, KeyWeeklyReviews, []models.WeeklyReview{})
}

func (r *Repository) AddWeeklyReview(review models.WeeklyReview) error {
	return appendOnly(r.kv, KeyWeeklyReviews, review)
}

// --- Budget ---

// Budget returns the weekly budget and whether one has been set; there is no
// meaningful zero value for it.
func (r *Repository) Budget() (models.Budget, bool, error) {
	var b models.Budget
	found, err := r.kv.Read(KeyBudget, &b)
	if err != nil {
		return models.Budget{}, false, err
	}
	return b, found, nil
}

func (r *Repository) SetBudget(b models.Budget) error {
	return r.kv.Write(KeyBudget, b)
}
