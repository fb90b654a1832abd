package models

// ScreenTimeLog is the per-date screen-time record.
type ScreenTimeLog struct {
	Date         string `json:"date"` // YYYY-MM-DD
	LimitMinutes int    `json:"limit_minutes"`
	UsageMinutes int    `json:"usage_minutes"`
}

// NewScreenTimeLog returns the zero-value record for date. The default daily
// limit matches the original product default of one hour.
func NewScreenTimeLog(date string) ScreenTimeLog {
	return ScreenTimeLog{Date: date, LimitMinutes: 60}
}

// TasbeehLog is the per-date dhikr counter.
type TasbeehLog struct {
	Date          string `json:"date"` // YYYY-MM-DD
	Count         int    `json:"count"`
	FavoriteDhikr string `json:"favorite_dhikr,omitempty"`
}

// NewTasbeehLog returns the zero-value record for date.
func NewTasbeehLog(date string) TasbeehLog {
	return TasbeehLog{Date: date}
}

// FocusTask is one item of a day's focus list.
type FocusTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// MaxFocusTasks caps the number of focus items per day.
const MaxFocusTasks = 3

// FocusList is the per-date focus record.
type FocusList struct {
	Date  string      `json:"date"` // YYYY-MM-DD
	Tasks []FocusTask `json:"tasks"`
}

// NewFocusList returns the zero-value record for date.
func NewFocusList(date string) FocusList {
	return FocusList{Date: date, Tasks: []FocusTask{}}
}

// RamadanDay is the per-date Ramadan record.
type RamadanDay struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Fasting     bool   `json:"fasting"`
	Tarawih     bool   `json:"tarawih"`
	Qiyam       bool   `json:"qiyam"`
	IftarInvite bool   `json:"iftar_invite"`
	GoodDeed    string `json:"good_deed"`
}

// NewRamadanDay returns the zero-value record for date.
func NewRamadanDay(date string) RamadanDay {
	return RamadanDay{Date: date}
}

// KhatmaParts is the number of recitation parts in the khatma grid.
const KhatmaParts = 30

// Dua is one entry of the user-editable Ramadan dua list.
type Dua struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// RamadanConfig holds the Ramadan-wide state that is not keyed by day.
type RamadanConfig struct {
	KhatmaGrid []bool `json:"khatma_grid"` // always KhatmaParts long
	Duas       []Dua  `json:"duas"`
}

// NewRamadanConfig returns the default config with an empty 30-part grid.
func NewRamadanConfig() RamadanConfig {
	return RamadanConfig{KhatmaGrid: make([]bool, KhatmaParts), Duas: []Dua{}}
}

// Normalize pads or truncates the khatma grid back to its fixed length after
// a tolerant decode.
func (c *RamadanConfig) Normalize() {
	if len(c.KhatmaGrid) == KhatmaParts {
		return
	}
	grid := make([]bool, KhatmaParts)
	copy(grid, c.KhatmaGrid)
	c.KhatmaGrid = grid
}
