package models

type ExpenseCategory string

const (
	ExpenseFood      ExpenseCategory = "food"
	ExpenseTransport ExpenseCategory = "transport"
	ExpenseOutings   ExpenseCategory = "outings"
	ExpenseSports    ExpenseCategory = "sports"
	ExpensePersonal  ExpenseCategory = "personal"
	ExpenseLessons   ExpenseCategory = "lessons"
)

// Expense is an append-only spending record.
type Expense struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Amount   float64         `json:"amount"`
	Category ExpenseCategory `json:"category"`
	Note     string          `json:"note,omitempty"`
}

// Budget is the singleton weekly budget.
type Budget struct {
	StartDate string  `json:"start_date"` // YYYY-MM-DD of the budget week start
	Amount    float64 `json:"amount"`
}
