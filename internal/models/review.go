package models

// DailyReview is the per-date self-review record.
type DailyReview struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Best    string `json:"best"`
	Worst   string `json:"worst"`
	Improve string `json:"improve"`
}

// NewDailyReview returns the zero-value record for date.
func NewDailyReview(date string) DailyReview {
	return DailyReview{Date: date}
}

// WeeklyReview is an append-only weekly retrospective entry.
type WeeklyReview struct {
	WeekStartDate string `json:"week_start_date"` // YYYY-MM-DD
	Achievement   string `json:"achievement"`
	Shortcoming   string `json:"shortcoming"`
	NextGoal      string `json:"next_goal"`
}
