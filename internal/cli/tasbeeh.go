package cli

import "fmt"

type TasbeehCountCmd struct {
	Count int    `arg:"" help:"Dhikr repetitions to add." default:"1"`
	Dhikr string `help:"Set the favorite dhikr for the day."`
	Date  string `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TasbeehCountCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	if c.Count <= 0 {
		return fmt.Errorf("count must be positive")
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	log, err := ctx.Repo.TasbeehLog(date)
	if err != nil {
		return err
	}

	log.Count += c.Count
	if c.Dhikr != "" {
		log.FavoriteDhikr = c.Dhikr
	}

	if err := ctx.Repo.SaveTasbeehLog(log); err != nil {
		return err
	}

	fmt.Printf("✓ Tasbeeh on %s: %d\n", date, log.Count)
	return nil
}

type TasbeehShowCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TasbeehShowCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	log, err := ctx.Repo.TasbeehLog(date)
	if err != nil {
		return err
	}

	fmt.Printf("Tasbeeh for %s: %d\n", date, log.Count)
	if log.FavoriteDhikr != "" {
		fmt.Printf("Favorite dhikr: %s\n", log.FavoriteDhikr)
	}
	return nil
}

type TasbeehTotalCmd struct{}

func (c *TasbeehTotalCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	total, err := ctx.Repo.TasbeehTotal()
	if err != nil {
		return err
	}

	fmt.Printf("All-time tasbeeh total: %d\n", total)
	return nil
}
