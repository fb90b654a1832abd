package models

// QuranTask is one entry of the user-editable Quran task config. The config
// defines the denominator for the Quran completion percentage and the set of
// tasks required for streak eligibility.
type QuranTask struct {
	ID    string `json:"id" validate:"required"`
	Label string `json:"label" validate:"required"`
}

// QuranLog is the per-date Quran record: which configured tasks were
// completed that day. IDs of since-deleted config entries may linger here;
// they are tolerated and simply stop counting.
type QuranLog struct {
	Date             string   `json:"date"` // YYYY-MM-DD
	CompletedTaskIDs []string `json:"completed_task_ids"`
}

// NewQuranLog returns the zero-value log for date.
func NewQuranLog(date string) QuranLog {
	return QuranLog{Date: date, CompletedTaskIDs: []string{}}
}

// Completed reports whether task id is marked complete.
func (l QuranLog) Completed(id string) bool {
	for _, c := range l.CompletedTaskIDs {
		if c == id {
			return true
		}
	}
	return false
}

// Toggle flips completion for task id and reports the new state.
func (l *QuranLog) Toggle(id string) bool {
	for i, c := range l.CompletedTaskIDs {
		if c == id {
			l.CompletedTaskIDs = append(l.CompletedTaskIDs[:i], l.CompletedTaskIDs[i+1:]...)
			return false
		}
	}
	l.CompletedTaskIDs = append(l.CompletedTaskIDs, id)
	return true
}
