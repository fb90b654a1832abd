package models

// Settings represents application-wide settings
type Settings struct {
	DhikrEnabled     bool `json:"dhikr_enabled"`      // whether the periodic dhikr reminder is shown in the TUI
	DarkMode         bool `json:"dark_mode"`          // whether the TUI uses the dark palette
	DhikrIntervalMin int  `json:"dhikr_interval_min"` // minutes between dhikr reminders
}

// DefaultSettings returns the settings created on first read.
func DefaultSettings() Settings {
	return Settings{DhikrEnabled: true, DhikrIntervalMin: 30}
}
