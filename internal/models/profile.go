package models

// UserProfile is the singleton user record. Streak and LastCompletedDate are
// owned by the streak tracker; only Name is edited directly.
type UserProfile struct {
	Name              string `json:"name"`
	Streak            int    `json:"streak"`
	LastCompletedDate string `json:"last_completed_date,omitempty"` // YYYY-MM-DD, empty when no day has ever been completed
}

// DefaultProfile returns the profile created on first read.
func DefaultProfile() UserProfile {
	return UserProfile{Name: "يا بطل", Streak: 0}
}
