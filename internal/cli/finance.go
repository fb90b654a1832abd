package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/injazapp/injaz/internal/models"
	"github.com/injazapp/injaz/internal/storage"
)

var expenseCategories = []models.ExpenseCategory{
	models.ExpenseFood,
	models.ExpenseTransport,
	models.ExpenseOutings,
	models.ExpenseSports,
	models.ExpensePersonal,
	models.ExpenseLessons,
}

func parseCategory(s string) (models.ExpenseCategory, error) {
	for _, c := range expenseCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (food, transport, outings, sports, personal, lessons)", s)
}

type ExpenseAddCmd struct {
	Amount   float64 `arg:"" help:"Amount spent."`
	Category string  `arg:"" help:"Category (food, transport, outings, sports, personal, lessons)."`
	Note     string  `help:"Optional note."`
	Date     string  `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ExpenseAddCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}
	if c.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	category, err := parseCategory(c.Category)
	if err != nil {
		return err
	}
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	expense := models.Expense{
		ID:       uuid.New().String(),
		Date:     date,
		Amount:   c.Amount,
		Category: category,
		Note:     c.Note,
	}
	if err := ctx.Repo.AddExpense(expense); err != nil {
		return err
	}

	fmt.Printf("✓ Recorded %.2f (%s) on %s\n", c.Amount, category, date)
	return nil
}

type ExpenseListCmd struct {
	Category string `help:"Only show one category."`
}

func (c *ExpenseListCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	expenses, err := ctx.Repo.Expenses()
	if err != nil {
		return err
	}

	var filter models.ExpenseCategory
	if c.Category != "" {
		if filter, err = parseCategory(c.Category); err != nil {
			return err
		}
	}

	total := 0.0
	shown := 0
	for _, e := range expenses {
		if filter != "" && e.Category != filter {
			continue
		}
		shown++
		total += e.Amount
		line := fmt.Sprintf("  %s  %8.2f  %-10s", e.Date, e.Amount, e.Category)
		if e.Note != "" {
			line += "  " + e.Note
		}
		fmt.Println(line)
	}

	if shown == 0 {
		fmt.Println("No expenses recorded.")
		return nil
	}
	fmt.Printf("\n  total: %.2f\n", total)
	return nil
}

type BudgetSetCmd struct {
	Amount float64 `arg:"" help:"Weekly budget amount."`
}

func (c *BudgetSetCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}
	if c.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	budget := models.Budget{StartDate: storage.Today(), Amount: c.Amount}
	if err := ctx.Repo.SetBudget(budget); err != nil {
		return err
	}

	fmt.Printf("✓ Budget set to %.2f starting %s\n", budget.Amount, budget.StartDate)
	return nil
}

type BudgetShowCmd struct{}

func (c *BudgetShowCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	budget, found, err := ctx.Repo.Budget()
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("No budget set. Use 'injaz budget set <amount>'.")
		return nil
	}

	expenses, err := ctx.Repo.Expenses()
	if err != nil {
		return err
	}

	spent := 0.0
	for _, e := range expenses {
		if e.Date >= budget.StartDate {
			spent += e.Amount
		}
	}

	fmt.Printf("Budget since %s: %.2f spent of %.2f (%.2f remaining)\n",
		budget.StartDate, spent, budget.Amount, budget.Amount-spent)
	return nil
}
