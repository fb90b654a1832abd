package models

type PrayerStatus string

const (
	PrayerNone   PrayerStatus = "none"
	PrayerMosque PrayerStatus = "mosque"
	PrayerOnTime PrayerStatus = "ontime"
	PrayerLate   PrayerStatus = "late"
	PrayerMissed PrayerStatus = "missed"
)

// ValidPrayerStatus reports whether s is one of the five recognized statuses.
func ValidPrayerStatus(s PrayerStatus) bool {
	switch s {
	case PrayerNone, PrayerMosque, PrayerOnTime, PrayerLate, PrayerMissed:
		return true
	}
	return false
}

type PrayerName string

const (
	Fajr    PrayerName = "fajr"
	Dhuhr   PrayerName = "dhuhr"
	Asr     PrayerName = "asr"
	Maghrib PrayerName = "maghrib"
	Isha    PrayerName = "isha"
)

// PrayerNames lists the five canonical prayers in day order.
var PrayerNames = []PrayerName{Fajr, Dhuhr, Asr, Maghrib, Isha}

// PrayerEntry records one prayer for one day: the fard status plus the
// independent sunnah and adhkar flags.
type PrayerEntry struct {
	Status PrayerStatus `json:"status"`
	Sunnah bool         `json:"sunnah"`
	Adhkar bool         `json:"adhkar"`
}

// PrayerLog is the per-date prayer record.
type PrayerLog struct {
	Date    string                     `json:"date"` // YYYY-MM-DD
	Prayers map[PrayerName]PrayerEntry `json:"prayers"`
}

// NewPrayerLog returns the zero-value log for date: all statuses "none",
// all flags false.
func NewPrayerLog(date string) PrayerLog {
	prayers := make(map[PrayerName]PrayerEntry, len(PrayerNames))
	for _, name := range PrayerNames {
		prayers[name] = PrayerEntry{Status: PrayerNone}
	}
	return PrayerLog{Date: date, Prayers: prayers}
}

// Entry returns the record for one prayer, defaulting to an empty entry for
// logs deserialized from older or partial data.
func (l PrayerLog) Entry(name PrayerName) PrayerEntry {
	if l.Prayers == nil {
		return PrayerEntry{Status: PrayerNone}
	}
	e, ok := l.Prayers[name]
	if !ok {
		return PrayerEntry{Status: PrayerNone}
	}
	return e
}

// SetEntry replaces the record for one prayer.
func (l *PrayerLog) SetEntry(name PrayerName, e PrayerEntry) {
	if l.Prayers == nil {
		l.Prayers = make(map[PrayerName]PrayerEntry, len(PrayerNames))
	}
	l.Prayers[name] = e
}
