package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/injazapp/injaz/internal/models"
)

type FocusAddCmd struct {
	Text string `arg:"" help:"Focus task text."`
	Date string `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *FocusAddCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	list, err := ctx.Repo.FocusList(date)
	if err != nil {
		return err
	}

	if len(list.Tasks) >= models.MaxFocusTasks {
		return fmt.Errorf("focus list for %s is full (%d tasks); finish one first", date, models.MaxFocusTasks)
	}

	list.Tasks = append(list.Tasks, models.FocusTask{ID: uuid.New().String(), Text: c.Text})
	if err := ctx.Repo.SaveFocusList(list); err != nil {
		return err
	}

	fmt.Printf("✓ Focus task added for %s (%d/%d)\n", date, len(list.Tasks), models.MaxFocusTasks)
	return nil
}

type FocusDoneCmd struct {
	Task string `arg:"" help:"Focus task id, text, or 1-based position."`
	Date string `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *FocusDoneCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	list, err := ctx.Repo.FocusList(date)
	if err != nil {
		return err
	}

	idx := -1
	for i, task := range list.Tasks {
		if task.ID == c.Task || task.Text == c.Task || fmt.Sprintf("%d", i+1) == c.Task {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no focus task matching %q on %s", c.Task, date)
	}

	list.Tasks[idx].Completed = !list.Tasks[idx].Completed
	if err := ctx.Repo.SaveFocusList(list); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", checkmark(list.Tasks[idx].Completed), list.Tasks[idx].Text)
	return nil
}

type FocusListCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *FocusListCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	list, err := ctx.Repo.FocusList(date)
	if err != nil {
		return err
	}

	fmt.Printf("Focus for %s (%d/%d):\n\n", date, len(list.Tasks), models.MaxFocusTasks)
	if len(list.Tasks) == 0 {
		fmt.Println("  Nothing yet. Pick up to 3 things that matter today.")
		return nil
	}
	for i, task := range list.Tasks {
		fmt.Printf("  %d. %s %s\n", i+1, checkmark(task.Completed), task.Text)
	}
	return nil
}
