package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/injazapp/injaz/internal/models"
	"github.com/injazapp/injaz/internal/score"
)

type StudyAddCmd struct {
	Minutes float64 `arg:"" help:"Session length in minutes."`
	Subject string  `help:"Subject (math, physics, chemistry, arabic, english)." default:"math"`
	Type    string  `help:"Session type (understand, solve, review)." default:"understand"`
	Date    string  `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *StudyAddCmd) Run(ctx *Context) error {
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

	end := time.Now()
	start := end.Add(-time.Duration(c.Minutes * float64(time.Minute)))
	session := models.StudySession{
		ID:              uuid.New().String(),
		Date:            date,
		Subject:         models.Subject(c.Subject),
		Type:            models.StudyType(c.Type),
		StartTime:       start.Format("15:04"),
		EndTime:         end.Format("15:04"),
		DurationMinutes: c.Minutes,
	}

	if err := ctx.Repo.AddStudySession(session); err != nil {
		return err
	}

	fmt.Printf("✓ Logged %.0f minute(s) of %s on %s\n", c.Minutes, c.Subject, date)
	return nil
}

type StudyListCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *StudyListCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	sessions, err := ctx.Repo.StudySessions()
	if err != nil {
		return err
	}

	total := 0.0
	fmt.Printf("Study sessions for %s:\n\n", date)
	for _, s := range sessions {
		if s.Date != date {
			continue
		}
		fmt.Printf("  %s–%s  %-10s  %-10s  %.0f min\n", s.StartTime, s.EndTime, s.Subject, s.Type, s.DurationMinutes)
		total += s.DurationMinutes
	}

	if total == 0 {
		fmt.Println("  No sessions logged")
		return nil
	}
	fmt.Printf("\n  Total: %.0f minute(s)\n", total)
	return nil
}

type StudyWeekCmd struct{}

func (c *StudyWeekCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	week := score.StudyWeek(ctx.Repo, time.Now().Format("2006-01-02"))
	fmt.Println("Study hours, last 7 days:")
	fmt.Println()
	for _, day := range week {
		bar := strings.Repeat("█", int(day.Hours*2))
		fmt.Printf("  %s  %4.1fh  %s\n", day.Date, day.Hours, bar)
	}
	return nil
}

type StudyTimerCmd struct {
	Minutes float64 `arg:"" help:"Timer length in minutes."`
	Subject string  `help:"Subject (math, physics, chemistry, arabic, english)." default:"math"`
	Type    string  `help:"Session type (understand, solve, review)." default:"understand"`
}

// Run counts down and records a study session when the timer finishes.
// Ctrl+C cancels the timer and records the elapsed time instead, so an
// interrupted sitting still counts.
func (c *StudyTimerCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	if c.Minutes <= 0 {
		return fmt.Errorf("minutes must be positive")
	}

	start := time.Now()
	duration := time.Duration(c.Minutes * float64(time.Minute))
	deadline := start.Add(duration)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	fmt.Printf("Focus timer: %.0f minute(s) of %s. Ctrl+C to stop early.\n", c.Minutes, c.Subject)

	running := true
	for running {
		select {
		case <-ticker.C:
			remaining := time.Until(deadline)
			if remaining <= 0 {
				running = false
				break
			}
			fmt.Printf("\r  %02d:%02d remaining ", int(remaining.Minutes()), int(remaining.Seconds())%60)
		case <-interrupt:
			fmt.Println("\nTimer stopped early.")
			running = false
		}
	}

	elapsed := time.Since(start)
	if elapsed > duration {
		elapsed = duration
	}
	minutes := elapsed.Minutes()
	if minutes < 1 {
		fmt.Println("Less than a minute elapsed, nothing recorded.")
		return nil
	}

	end := time.Now()
	session := models.StudySession{
		ID:              uuid.New().String(),
		Date:            end.Format("2006-01-02"),
		Subject:         models.Subject(c.Subject),
		Type:            models.StudyType(c.Type),
		StartTime:       start.Format("15:04"),
		EndTime:         end.Format("15:04"),
		DurationMinutes: minutes,
	}

	if err := ctx.Repo.AddStudySession(session); err != nil {
		return err
	}

	fmt.Printf("\n✓ Logged %.0f minute(s) of %s\n", minutes, c.Subject)
	return nil
}
