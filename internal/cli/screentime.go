package cli

import (
	"fmt"

	"github.com/injazapp/injaz/internal/models"
)

type ScreenTimeLogCmd struct {
	Minutes int    `arg:"" help:"Minutes spent on screens to add."`
	Date    string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ScreenTimeLogCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}
	if c.Minutes <= 0 {
		return fmt.Errorf("minutes must be positive")
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	log, err := ctx.Repo.ScreenTimeLog(date)
	if err != nil {
		return err
	}
	log.UsageMinutes += c.Minutes
	if err := ctx.Repo.SaveScreenTimeLog(log); err != nil {
		return err
	}

	printScreenTime(log)
	return nil
}

type ScreenTimeLimitCmd struct {
	Minutes int    `arg:"" help:"New daily limit in minutes."`
	Date    string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ScreenTimeLimitCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}
	if c.Minutes <= 0 {
		return fmt.Errorf("limit must be positive")
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	log, err := ctx.Repo.ScreenTimeLog(date)
	if err != nil {
		return err
	}
	log.LimitMinutes = c.Minutes
	if err := ctx.Repo.SaveScreenTimeLog(log); err != nil {
		return err
	}

	fmt.Printf("✓ Daily limit set to %d min for %s\n", c.Minutes, date)
	return nil
}

type ScreenTimeShowCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ScreenTimeShowCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	log, err := ctx.Repo.ScreenTimeLog(date)
	if err != nil {
		return err
	}

	printScreenTime(log)
	return nil
}

func printScreenTime(log models.ScreenTimeLog) {
	fmt.Printf("Screen time %s: %d/%d min", log.Date, log.UsageMinutes, log.LimitMinutes)
	if log.UsageMinutes > log.LimitMinutes {
		fmt.Printf("  (over by %d min)", log.UsageMinutes-log.LimitMinutes)
	}
	fmt.Println()
}
