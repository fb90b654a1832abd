package storage

import "encoding/json"

// Logical namespace keys. Each log type owns exactly one key; date-keyed
// types store a full date -> record mapping under their key rather than one
// key per day.
const (
	KeyProfile       = "profile"
	KeySettings      = "settings"
	KeyStudy         = "study"
	KeyQuran         = "quran"
	KeyQuranConfig   = "quran_config"
	KeyExpenses      = "expenses"
	KeyBudget        = "budget"
	KeyDailyReviews  = "daily_reviews"
	KeyWeeklyReviews = "weekly_reviews"
	KeyScreenTime    = "screen_time"
	KeyTasbeeh       = "tasbeeh"
	KeyPrayers       = "prayers"
	KeyHabits        = "habits"
	KeyHabitsConfig  = "habits_config"
	KeyFocus         = "focus"
	KeyRamadanLogs   = "ramadan_logs"
	KeyRamadanConfig = "ramadan_config"
)

// Keys enumerates the full namespace, in export order.
var Keys = []string{
	KeyProfile,
	KeySettings,
	KeyStudy,
	KeyQuran,
	KeyQuranConfig,
	KeyExpenses,
	KeyBudget,
	KeyDailyReviews,
	KeyWeeklyReviews,
	KeyScreenTime,
	KeyTasbeeh,
	KeyPrayers,
	KeyHabits,
	KeyHabitsConfig,
	KeyFocus,
	KeyRamadanLogs,
	KeyRamadanConfig,
}

// KV is the keyed record store: a string key mapped to one JSON-serializable
// value. Reads that find no stored value report found=false and leave out
// untouched, so the caller supplies the default. A stored value that fails to
// deserialize is treated the same way (logged and recovered, never
// propagated); errors are reserved for I/O failures.
//
// Writes fully replace the value at key, no partial merge.
type KV interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	Read(key string, out any) (found bool, err error)
	Write(key string, v any) error

	// Whole-namespace operations, used by export/import/wipe. List returns
	// the stored values verbatim so an export/import round trip is
	// byte-identical.
	List() (map[string]json.RawMessage, error)
	Replace(data map[string]json.RawMessage) error
	Wipe() error

	// Utils
	Path() string
}
