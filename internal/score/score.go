// Package score derives the daily 0-100 motivation score from the day's
// prayer, Quran, study, and habit records. It is a read-only projection:
// nothing here writes to the store.
package score

import (
	"math"
	"time"

	"github.com/injazapp/injaz/internal/logger"
	"github.com/injazapp/injaz/internal/models"
)

const dateFormat = "2006-01-02"

// Sub-score caps. The four areas sum to at most 100.
const (
	MaxPrayers = 40.0
	MaxQuran   = 20.0
	MaxStudy   = 20.0
	MaxHabits  = 20.0

	// StudyTargetMinutes is the daily study goal; credit is linear below it.
	StudyTargetMinutes = 120.0
	// WaterTargetCups is the all-or-nothing water goal.
	WaterTargetCups = 8
)

var prayerPoints = map[models.PrayerStatus]float64{
	models.PrayerMosque: 6,
	models.PrayerOnTime: 6,
	models.PrayerLate:   3,
	models.PrayerMissed: 0,
	models.PrayerNone:   0,
}

// Reader is the slice of the repository the aggregator needs. Tests supply
// an in-memory implementation.
type Reader interface {
	PrayerLog(date string) (models.PrayerLog, error)
	QuranLog(date string) (models.QuranLog, error)
	QuranConfig() ([]models.QuranTask, error)
	DailyHabits(date string) (models.DailyHabits, error)
	HabitsConfig() ([]models.Habit, error)
	StudySessions() ([]models.StudySession, error)
}

// Breakdown is one day's score split by area.
type Breakdown struct {
	Date    string
	Prayers float64
	Quran   float64
	Study   float64
	Habits  float64
	Total   int
}

// Calculate computes the score for date. A section whose records cannot be
// loaded contributes 0 rather than failing the whole computation. The total
// is rounded half up and clamped to 100; the clamp is load-bearing because
// the four independently rounded fractional terms can add to just over 100.
func Calculate(r Reader, date string) Breakdown {
	b := Breakdown{Date: date}

	b.Prayers = prayerScore(r, date)
	b.Quran = quranScore(r, date)
	b.Study = studyScore(r, date)
	b.Habits = habitsScore(r, date)

	total := math.Round(b.Prayers + b.Quran + b.Study + b.Habits)
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	b.Total = int(total)

	return b
}

// prayerScore: 6 points per prayer at the mosque or on time, 3 late, plus
// one point each for sunnah and adhkar. Max 40.
func prayerScore(r Reader, date string) float64 {
	log, err := r.PrayerLog(date)
	if err != nil {
		logger.Warn("prayer log unavailable, scoring section as 0", "date", date, "error", err)
		return 0
	}

	score := 0.0
	for _, name := range models.PrayerNames {
		entry := log.Entry(name)
		score += prayerPoints[entry.Status]
		if entry.Sunnah {
			score++
		}
		if entry.Adhkar {
			score++
		}
	}
	return score
}

// quranScore: completed fraction of the current task config, scaled to 20.
// An empty config scores 0; stale ids from deleted config entries count for
// nothing.
func quranScore(r Reader, date string) float64 {
	log, err := r.QuranLog(date)
	if err != nil {
		logger.Warn("quran log unavailable, scoring section as 0", "date", date, "error", err)
		return 0
	}
	config, err := r.QuranConfig()
	if err != nil {
		logger.Warn("quran config unavailable, scoring section as 0", "error", err)
		return 0
	}
	if len(config) == 0 {
		return 0
	}

	done := 0
	for _, task := range config {
		if log.Completed(task.ID) {
			done++
		}
	}
	return float64(done) / float64(len(config)) * MaxQuran
}

// studyScore: linear credit up to the daily target, capped at 20.
func studyScore(r Reader, date string) float64 {
	sessions, err := r.StudySessions()
	if err != nil {
		logger.Warn("study sessions unavailable, scoring section as 0", "error", err)
		return 0
	}

	total := 0.0
	for _, s := range sessions {
		if s.Date == date {
			total += s.DurationMinutes
		}
	}
	if total >= StudyTargetMinutes {
		return MaxStudy
	}
	return total / StudyTargetMinutes * MaxStudy
}

// habitsScore: 10 points for reaching the water goal (no partial credit)
// plus up to 10 for the completed fraction of the current habit config.
func habitsScore(r Reader, date string) float64 {
	log, err := r.DailyHabits(date)
	if err != nil {
		logger.Warn("habits log unavailable, scoring section as 0", "date", date, "error", err)
		return 0
	}

	score := 0.0
	if log.WaterCups >= WaterTargetCups {
		score += 10
	}

	config, err := r.HabitsConfig()
	if err != nil {
		logger.Warn("habits config unavailable, scoring half section as 0", "error", err)
		return score
	}
	if len(config) == 0 {
		return score
	}

	done := 0
	for _, habit := range config {
		if log.Completed(habit.ID) {
			done++
		}
	}
	return score + float64(done)/float64(len(config))*10
}

// History returns breakdowns for the `days` calendar days ending at `end`,
// oldest first. The TUI trend view and `injaz score --week` feed from this.
func History(r Reader, end string, days int) []Breakdown {
	endDate, err := time.Parse(dateFormat, end)
	if err != nil {
		return nil
	}

	out := make([]Breakdown, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := endDate.AddDate(0, 0, -i).Format(dateFormat)
		out = append(out, Calculate(r, date))
	}
	return out
}

// StudyDay is one day of the last-N-days study chart.
type StudyDay struct {
	Date  string
	Hours float64
}

// StudyWeek returns daily study hour totals for the 7 calendar days ending
// at `end`, oldest first.
func StudyWeek(r Reader, end string) []StudyDay {
	endDate, err := time.Parse(dateFormat, end)
	if err != nil {
		return nil
	}

	sessions, err := r.StudySessions()
	if err != nil {
		logger.Warn("study sessions unavailable for weekly chart", "error", err)
		sessions = nil
	}

	minutes := make(map[string]float64)
	for _, s := range sessions {
		minutes[s.Date] += s.DurationMinutes
	}

	out := make([]StudyDay, 0, 7)
	for i := 6; i >= 0; i-- {
		date := endDate.AddDate(0, 0, -i).Format(dateFormat)
		out = append(out, StudyDay{
			Date:  date,
			Hours: math.Round(minutes[date]/60*10) / 10,
		})
	}
	return out
}
