package models

// Habit is one entry of the user-editable habit config.
type Habit struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Emoji string `json:"emoji"`
}

// DailyHabits is the per-date habit record. Water is tracked separately as a
// counter rather than a toggle.
type DailyHabits struct {
	Date              string   `json:"date"` // YYYY-MM-DD
	CompletedHabitIDs []string `json:"completed_habit_ids"`
	WaterCups         int      `json:"water_cups"`
}

// NewDailyHabits returns the zero-value record for date.
func NewDailyHabits(date string) DailyHabits {
	return DailyHabits{Date: date, CompletedHabitIDs: []string{}}
}

// Completed reports whether habit id is marked done.
func (d DailyHabits) Completed(id string) bool {
	for _, c := range d.CompletedHabitIDs {
		if c == id {
			return true
		}
	}
	return false
}

// Toggle flips completion for habit id and reports the new state.
func (d *DailyHabits) Toggle(id string) bool {
	for i, c := range d.CompletedHabitIDs {
		if c == id {
			d.CompletedHabitIDs = append(d.CompletedHabitIDs[:i], d.CompletedHabitIDs[i+1:]...)
			return false
		}
	}
	d.CompletedHabitIDs = append(d.CompletedHabitIDs, id)
	return true
}

// AddWater adjusts the water cup counter by delta, flooring at zero.
func (d *DailyHabits) AddWater(delta int) {
	d.WaterCups += delta
	if d.WaterCups < 0 {
		d.WaterCups = 0
	}
}
