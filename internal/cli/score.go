package cli

import (
	"fmt"
	"strings"

	"github.com/injazapp/injaz/internal/score"
)

type ScoreCmd struct {
	Date string `arg:"" help:"Date to score (YYYY-MM-DD or 'today')." default:"today"`
	Week bool   `help:"Show the score trend for the last 7 days."`
}

func (c *ScoreCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	if c.Week {
		return c.printWeek(ctx, date)
	}

	b := score.Calculate(ctx.Repo, date)

	fmt.Printf("Daily score for %s\n\n", date)
	fmt.Printf("  Prayers  %5.1f / %.0f\n", b.Prayers, score.MaxPrayers)
	fmt.Printf("  Quran    %5.1f / %.0f\n", b.Quran, score.MaxQuran)
	fmt.Printf("  Study    %5.1f / %.0f\n", b.Study, score.MaxStudy)
	fmt.Printf("  Habits   %5.1f / %.0f\n", b.Habits, score.MaxHabits)
	fmt.Printf("\n  Total    %d / 100\n", b.Total)

	profile, err := ctx.Repo.Profile()
	if err == nil && profile.Streak > 0 {
		fmt.Printf("  Streak   %d day(s), last completed %s\n", profile.Streak, profile.LastCompletedDate)
	}

	return nil
}

func (c *ScoreCmd) printWeek(ctx *Context, end string) error {
	history := score.History(ctx.Repo, end, 7)
	if history == nil {
		return fmt.Errorf("invalid date: %s", end)
	}

	fmt.Printf("Score trend, 7 days ending %s:\n\n", end)
	for _, b := range history {
		bar := strings.Repeat("█", b.Total/4)
		fmt.Printf("  %s  %3d  %s\n", b.Date, b.Total, bar)
	}
	return nil
}
