package cli

import (
	"fmt"

	"github.com/injazapp/injaz/internal/models"
)

type PrayerSetCmd struct {
	Prayer string `arg:"" help:"Prayer name (fajr, dhuhr, asr, maghrib, isha)."`
	Status string `arg:"" help:"Status (mosque, ontime, late, missed, none)."`
	Date   string `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *PrayerSetCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	name, err := parsePrayerName(c.Prayer)
	if err != nil {
		return err
	}
	status := models.PrayerStatus(c.Status)
	if !models.ValidPrayerStatus(status) {
		return fmt.Errorf("invalid status %q, use mosque, ontime, late, missed or none", c.Status)
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	log, err := ctx.Repo.PrayerLog(date)
	if err != nil {
		return err
	}

	entry := log.Entry(name)
	entry.Status = status
	log.SetEntry(name, entry)

	if err := ctx.Repo.SavePrayerLog(log); err != nil {
		return err
	}

	fmt.Printf("✓ %s on %s: %s\n", name, date, status)
	return nil
}

type PrayerSunnahCmd struct {
	Prayer string `arg:"" help:"Prayer name (fajr, dhuhr, asr, maghrib, isha)."`
	Date   string `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *PrayerSunnahCmd) Run(ctx *Context) error {
	return toggleFlag(ctx, c.Prayer, c.Date, "sunnah")
}

type PrayerAdhkarCmd struct {
	Prayer string `arg:"" help:"Prayer name (fajr, dhuhr, asr, maghrib, isha)."`
	Date   string `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *PrayerAdhkarCmd) Run(ctx *Context) error {
	return toggleFlag(ctx, c.Prayer, c.Date, "adhkar")
}

func toggleFlag(ctx *Context, prayer, dateArg, flag string) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	name, err := parsePrayerName(prayer)
	if err != nil {
		return err
	}
	date, err := resolveDate(dateArg)
	if err != nil {
		return err
	}

	log, err := ctx.Repo.PrayerLog(date)
	if err != nil {
		return err
	}

	entry := log.Entry(name)
	var state bool
	if flag == "sunnah" {
		entry.Sunnah = !entry.Sunnah
		state = entry.Sunnah
	} else {
		entry.Adhkar = !entry.Adhkar
		state = entry.Adhkar
	}
	log.SetEntry(name, entry)

	if err := ctx.Repo.SavePrayerLog(log); err != nil {
		return err
	}

	fmt.Printf("✓ %s %s on %s: %v\n", name, flag, date, state)
	return nil
}

type PrayerShowCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *PrayerShowCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	log, err := ctx.Repo.PrayerLog(date)
	if err != nil {
		return err
	}

	fmt.Printf("Prayers for %s:\n\n", date)
	for _, name := range models.PrayerNames {
		entry := log.Entry(name)
		fmt.Printf("  %-8s  %-7s  sunnah %s  adhkar %s\n",
			name, entry.Status, checkmark(entry.Sunnah), checkmark(entry.Adhkar))
	}
	return nil
}

func parsePrayerName(s string) (models.PrayerName, error) {
	name := models.PrayerName(s)
	for _, p := range models.PrayerNames {
		if p == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("invalid prayer %q, use fajr, dhuhr, asr, maghrib or isha", s)
}
