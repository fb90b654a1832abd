package models

type Subject string

const (
	SubjectMath      Subject = "math"
	SubjectPhysics   Subject = "physics"
	SubjectChemistry Subject = "chemistry"
	SubjectArabic    Subject = "arabic"
	SubjectEnglish   Subject = "english"
)

type StudyType string

const (
	StudyUnderstand StudyType = "understand"
	StudySolve      StudyType = "solve"
	StudyReview     StudyType = "review"
)

// StudySession is an append-only record of one study sitting, created by
// manual entry or by the focus timer. Sessions are never mutated or deleted
// through normal flow.
type StudySession struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"` // YYYY-MM-DD
	Subject         Subject   `json:"subject"`
	Type            StudyType `json:"type"`
	StartTime       string    `json:"start_time"` // HH:MM
	EndTime         string    `json:"end_time"`   // HH:MM
	DurationMinutes float64   `json:"duration_minutes"`
}
