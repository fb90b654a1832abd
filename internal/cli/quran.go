package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/injazapp/injaz/internal/models"
)

type QuranToggleCmd struct {
	Task string `arg:"" help:"Task id or label to toggle."`
	Date string `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *QuranToggleCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	config, err := ctx.Repo.QuranConfig()
	if err != nil {
		return err
	}

	task, err := findQuranTask(config, c.Task)
	if err != nil {
		return err
	}

	log, err := ctx.Repo.QuranLog(date)
	if err != nil {
		return err
	}

	done := log.Toggle(task.ID)
	if err := ctx.Repo.SaveQuranLog(log); err != nil {
		return err
	}

	if done {
		fmt.Printf("✓ %s done on %s\n", task.Label, date)
	} else {
		fmt.Printf("· %s cleared on %s\n", task.Label, date)
	}

	profile, err := ctx.Repo.Profile()
	if err == nil && profile.LastCompletedDate == date {
		fmt.Printf("  Streak: %d day(s)\n", profile.Streak)
	}
	return nil
}

type QuranShowCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *QuranShowCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	config, err := ctx.Repo.QuranConfig()
	if err != nil {
		return err
	}
	log, err := ctx.Repo.QuranLog(date)
	if err != nil {
		return err
	}

	fmt.Printf("Quran tasks for %s:\n\n", date)
	if len(config) == 0 {
		fmt.Println("  No tasks configured. Add one with: injaz quran task add")
		return nil
	}
	for _, task := range config {
		fmt.Printf("  %s  %s\n", checkmark(log.Completed(task.ID)), task.Label)
	}
	return nil
}

type QuranTaskAddCmd struct {
	Label string `arg:"" help:"Task label."`
}

func (c *QuranTaskAddCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	config, err := ctx.Repo.QuranConfig()
	if err != nil {
		return err
	}

	task := models.QuranTask{ID: uuid.New().String(), Label: c.Label}
	if err := ctx.Repo.SaveQuranConfig(append(config, task)); err != nil {
		return err
	}

	fmt.Printf("✓ Added Quran task: %s (%s)\n", task.Label, task.ID)
	return nil
}

type QuranTaskListCmd struct{}

func (c *QuranTaskListCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	config, err := ctx.Repo.QuranConfig()
	if err != nil {
		return err
	}

	if len(config) == 0 {
		fmt.Println("No Quran tasks configured.")
		return nil
	}
	for _, task := range config {
		fmt.Printf("  %-36s  %s\n", task.ID, task.Label)
	}
	return nil
}

type QuranTaskRemoveCmd struct {
	Task  string `arg:"" help:"Task id or label to remove."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *QuranTaskRemoveCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	config, err := ctx.Repo.QuranConfig()
	if err != nil {
		return err
	}

	task, err := findQuranTask(config, c.Task)
	if err != nil {
		return err
	}

	if !c.Force {
		ok, err := confirm(fmt.Sprintf("Remove Quran task %q? Completion marks for it stop counting.", task.Label))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	kept := make([]models.QuranTask, 0, len(config)-1)
	for _, t := range config {
		if t.ID != task.ID {
			kept = append(kept, t)
		}
	}
	if err := ctx.Repo.SaveQuranConfig(kept); err != nil {
		return err
	}

	fmt.Printf("✓ Removed Quran task: %s\n", task.Label)
	return nil
}

func findQuranTask(config []models.QuranTask, ref string) (models.QuranTask, error) {
	for _, task := range config {
		if task.ID == ref || task.Label == ref {
			return task, nil
		}
	}
	return models.QuranTask{}, fmt.Errorf("no Quran task matching %q", ref)
}
