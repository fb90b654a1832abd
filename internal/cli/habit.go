package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/injazapp/injaz/internal/models"
)

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit id or name to toggle."`
	Date  string `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	config, err := ctx.Repo.HabitsConfig()
	if err != nil {
		return err
	}
	habit, err := findHabit(config, c.Habit)
	if err != nil {
		return err
	}

	log, err := ctx.Repo.DailyHabits(date)
	if err != nil {
		return err
	}

	done := log.Toggle(habit.ID)
	if err := ctx.Repo.SaveDailyHabits(log); err != nil {
		return err
	}

	if done {
		fmt.Printf("✓ %s %s done on %s\n", habit.Emoji, habit.Name, date)
	} else {
		fmt.Printf("· %s %s cleared on %s\n", habit.Emoji, habit.Name, date)
	}
	return nil
}

type HabitWaterCmd struct {
	Delta int    `arg:"" help:"Cups to add (negative to remove)." default:"1"`
	Date  string `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *HabitWaterCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	log, err := ctx.Repo.DailyHabits(date)
	if err != nil {
		return err
	}

	log.AddWater(c.Delta)
	if err := ctx.Repo.SaveDailyHabits(log); err != nil {
		return err
	}

	fmt.Printf("✓ Water on %s: %d cup(s)\n", date, log.WaterCups)
	return nil
}

type HabitShowCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	config, err := ctx.Repo.HabitsConfig()
	if err != nil {
		return err
	}
	log, err := ctx.Repo.DailyHabits(date)
	if err != nil {
		return err
	}

	fmt.Printf("Habits for %s:\n\n", date)
	for _, habit := range config {
		fmt.Printf("  %s  %s %s\n", checkmark(log.Completed(habit.ID)), habit.Emoji, habit.Name)
	}
	fmt.Printf("\n  Water: %d cup(s)\n", log.WaterCups)
	return nil
}

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Emoji string `help:"Emoji shown next to the habit." default:"✨"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	config, err := ctx.Repo.HabitsConfig()
	if err != nil {
		return err
	}

	habit := models.Habit{ID: uuid.New().String(), Name: c.Name, Emoji: c.Emoji}
	if err := ctx.Repo.SaveHabitsConfig(append(config, habit)); err != nil {
		return err
	}

	fmt.Printf("✓ Added habit: %s %s (%s)\n", habit.Emoji, habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	config, err := ctx.Repo.HabitsConfig()
	if err != nil {
		return err
	}

	if len(config) == 0 {
		fmt.Println("No habits configured.")
		return nil
	}
	for _, habit := range config {
		fmt.Printf("  %-36s  %s %s\n", habit.ID, habit.Emoji, habit.Name)
	}
	return nil
}

type HabitRemoveCmd struct {
	Habit string `arg:"" help:"Habit id or name to remove."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *HabitRemoveCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	config, err := ctx.Repo.HabitsConfig()
	if err != nil {
		return err
	}
	habit, err := findHabit(config, c.Habit)
	if err != nil {
		return err
	}

	if !c.Force {
		ok, err := confirm(fmt.Sprintf("Remove habit %q? Completion marks for it stop counting.", habit.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	kept := make([]models.Habit, 0, len(config)-1)
	for _, h := range config {
		if h.ID != habit.ID {
			kept = append(kept, h)
		}
	}
	if err := ctx.Repo.SaveHabitsConfig(kept); err != nil {
		return err
	}

	fmt.Printf("✓ Removed habit: %s\n", habit.Name)
	return nil
}

func findHabit(config []models.Habit, ref string) (models.Habit, error) {
	for _, habit := range config {
		if habit.ID == ref || habit.Name == ref {
			return habit, nil
		}
	}
	return models.Habit{}, fmt.Errorf("no habit matching %q", ref)
}
