// Package streak derives the consecutive-day Quran completion counter kept
// on the user profile. The counter is incremental: it trusts the profile's
// last completed date and never recomputes from full history, so backfilling
// past days follows the same adjacency rule as completing today.
package streak

import (
	"time"

	"github.com/injazapp/injaz/internal/models"
)

const dateFormat = "2006-01-02"

// Apply updates profile in place for a just-saved Quran log and reports
// whether the profile changed. Rules, in order:
//
//   - an empty task config leaves the streak undefined: no-op
//   - a partially completed day is a no-op (no penalty, no reset)
//   - re-saving an already-counted day is a no-op (no double increment)
//   - completing the day after the last completed date extends the streak
//   - completing any other day (gap, backfill, first ever) restarts it at 1
func Apply(profile *models.UserProfile, config []models.QuranTask, log models.QuranLog) bool {
	if len(config) == 0 {
		return false
	}

	for _, task := range config {
		if !log.Completed(task.ID) {
			return false
		}
	}

	if profile.LastCompletedDate == log.Date {
		return false
	}

	if profile.LastCompletedDate != "" && profile.LastCompletedDate == previousDay(log.Date) {
		profile.Streak++
	} else {
		profile.Streak = 1
	}
	profile.LastCompletedDate = log.Date

	return true
}

// previousDay returns the calendar day before date, or "" if date does not
// parse, which routes the caller into the restart branch.
func previousDay(date string) string {
	d, err := time.Parse(dateFormat, date)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -1).Format(dateFormat)
}
