package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/injazapp/injaz/internal/models"
)

type RamadanDayCmd struct {
	Date        string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
	Fasting     *bool  `help:"Set fasting."`
	Tarawih     *bool  `help:"Set tarawih."`
	Qiyam       *bool  `help:"Set qiyam."`
	IftarInvite *bool  `help:"Set iftar invite."`
	GoodDeed    string `help:"Record the day's good deed."`
}

func (c *RamadanDayCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	day, err := ctx.Repo.RamadanDay(date)
	if err != nil {
		return err
	}

	changed := false
	if c.Fasting != nil {
		day.Fasting = *c.Fasting
		changed = true
	}
	if c.Tarawih != nil {
		day.Tarawih = *c.Tarawih
		changed = true
	}
	if c.Qiyam != nil {
		day.Qiyam = *c.Qiyam
		changed = true
	}
	if c.IftarInvite != nil {
		day.IftarInvite = *c.IftarInvite
		changed = true
	}
	if c.GoodDeed != "" {
		day.GoodDeed = c.GoodDeed
		changed = true
	}

	if changed {
		if err := ctx.Repo.SaveRamadanDay(day); err != nil {
			return err
		}
	}

	fmt.Printf("Ramadan day %s:\n\n", date)
	fmt.Printf("  fasting %s  tarawih %s  qiyam %s  iftar invite %s\n",
		checkmark(day.Fasting), checkmark(day.Tarawih), checkmark(day.Qiyam), checkmark(day.IftarInvite))
	if day.GoodDeed != "" {
		fmt.Printf("  good deed: %s\n", day.GoodDeed)
	}
	return nil
}

type RamadanKhatmaCmd struct {
	Part int `arg:"" help:"Recitation part to toggle (1-30)." optional:""`
}

func (c *RamadanKhatmaCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	config, err := ctx.Repo.RamadanConfig()
	if err != nil {
		return err
	}

	if c.Part != 0 {
		if c.Part < 1 || c.Part > models.KhatmaParts {
			return fmt.Errorf("part must be between 1 and %d", models.KhatmaParts)
		}
		config.KhatmaGrid[c.Part-1] = !config.KhatmaGrid[c.Part-1]
		if err := ctx.Repo.SaveRamadanConfig(config); err != nil {
			return err
		}
	}

	done := 0
	var grid strings.Builder
	for i, read := range config.KhatmaGrid {
		if read {
			done++
			grid.WriteString("█")
		} else {
			grid.WriteString("·")
		}
		if (i+1)%10 == 0 {
			grid.WriteString("\n  ")
		}
	}

	fmt.Printf("Khatma progress: %d/%d parts\n\n  %s\n", done, models.KhatmaParts, grid.String())
	return nil
}

type RamadanDuaAddCmd struct {
	Text string `arg:"" help:"Dua text."`
}

func (c *RamadanDuaAddCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	config, err := ctx.Repo.RamadanConfig()
	if err != nil {
		return err
	}

	config.Duas = append(config.Duas, models.Dua{ID: uuid.New().String(), Text: c.Text})
	if err := ctx.Repo.SaveRamadanConfig(config); err != nil {
		return err
	}

	fmt.Printf("✓ Dua added (%d total)\n", len(config.Duas))
	return nil
}

type RamadanDuaListCmd struct{}

func (c *RamadanDuaListCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	config, err := ctx.Repo.RamadanConfig()
	if err != nil {
		return err
	}

	if len(config.Duas) == 0 {
		fmt.Println("No duas recorded.")
		return nil
	}
	for i, dua := range config.Duas {
		fmt.Printf("  %d. %s\n", i+1, dua.Text)
	}
	return nil
}
