package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/injazapp/injaz/internal/models"
)

// weekReview stamps a weekly entry with the Saturday that opened the current
// week. The week runs Saturday through Friday.
func weekReview(now time.Time, achievement, shortcoming, nextGoal string) models.WeeklyReview {
	offset := (int(now.Weekday()) + 1) % 7
	start := now.AddDate(0, 0, -offset)
	return models.WeeklyReview{
		WeekStartDate: start.Format("2006-01-02"),
		Achievement:   achievement,
		Shortcoming:   shortcoming,
		NextGoal:      nextGoal,
	}
}

type ReviewDailyCmd struct {
	Date    string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
	Best    string `help:"Best thing about the day."`
	Worst   string `help:"Worst thing about the day."`
	Improve string `help:"One thing to improve tomorrow."`
}

func (c *ReviewDailyCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	review, err := ctx.Repo.DailyReview(date)
	if err != nil {
		return err
	}

	if c.Best == "" && c.Worst == "" && c.Improve == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Best thing today?").Value(&review.Best),
			huh.NewInput().Title("Worst thing today?").Value(&review.Worst),
			huh.NewInput().Title("One thing to improve?").Value(&review.Improve),
		))
		if err := form.Run(); err != nil {
			return err
		}
	} else {
		if c.Best != "" {
			review.Best = c.Best
		}
		if c.Worst != "" {
			review.Worst = c.Worst
		}
		if c.Improve != "" {
			review.Improve = c.Improve
		}
	}

	if err := ctx.Repo.SaveDailyReview(review); err != nil {
		return err
	}

	fmt.Printf("✓ Review saved for %s\n", date)
	return nil
}

type ReviewShowCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ReviewShowCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	review, err := ctx.Repo.DailyReview(date)
	if err != nil {
		return err
	}

	if review.Best == "" && review.Worst == "" && review.Improve == "" {
		fmt.Printf("No review recorded for %s.\n", date)
		return nil
	}

	fmt.Printf("Review for %s:\n\n", date)
	fmt.Printf("  best:    %s\n", review.Best)
	fmt.Printf("  worst:   %s\n", review.Worst)
	fmt.Printf("  improve: %s\n", review.Improve)
	return nil
}

type ReviewWeeklyCmd struct {
	Achievement string `help:"The week's biggest achievement."`
	Shortcoming string `help:"The week's biggest shortcoming."`
	NextGoal    string `help:"Goal for the coming week."`
}

func (c *ReviewWeeklyCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	achievement, shortcoming, nextGoal := c.Achievement, c.Shortcoming, c.NextGoal
	if achievement == "" && shortcoming == "" && nextGoal == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Biggest achievement this week?").Value(&achievement),
			huh.NewInput().Title("Biggest shortcoming?").Value(&shortcoming),
			huh.NewInput().Title("Goal for next week?").Value(&nextGoal),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := ctx.Repo.AddWeeklyReview(weekReview(time.Now(), achievement, shortcoming, nextGoal)); err != nil {
		return err
	}

	fmt.Println("✓ Weekly review recorded")
	return nil
}

type ReviewWeeklyListCmd struct{}

func (c *ReviewWeeklyListCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	reviews, err := ctx.Repo.WeeklyReviews()
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		fmt.Println("No weekly reviews recorded.")
		return nil
	}
	for _, r := range reviews {
		fmt.Printf("Week of %s:\n", r.WeekStartDate)
		fmt.Printf("  achievement: %s\n", r.Achievement)
		fmt.Printf("  shortcoming: %s\n", r.Shortcoming)
		fmt.Printf("  next goal:   %s\n\n", r.NextGoal)
	}
	return nil
}
