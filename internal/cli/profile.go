package cli

import "fmt"

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	profile, err := ctx.Repo.Profile()
	if err != nil {
		return err
	}
	settings, err := ctx.Repo.Settings()
	if err != nil {
		return err
	}

	fmt.Printf("Name:   %s\n", profile.Name)
	fmt.Printf("Streak: %d day(s)", profile.Streak)
	if profile.LastCompletedDate != "" {
		fmt.Printf("  (last counted %s)", profile.LastCompletedDate)
	}
	fmt.Println()
	fmt.Printf("Dhikr reminders: %s", checkmark(settings.DhikrEnabled))
	if settings.DhikrEnabled {
		fmt.Printf(" every %d min", settings.DhikrIntervalMin)
	}
	fmt.Println()
	return nil
}

type ProfileNameCmd struct {
	Name string `arg:"" help:"Display name."`
}

func (c *ProfileNameCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}
	if c.Name == "" {
		return fmt.Errorf("name must not be empty")
	}

	profile, err := ctx.Repo.Profile()
	if err != nil {
		return err
	}
	profile.Name = c.Name
	if err := ctx.Repo.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("✓ Name set to %s\n", c.Name)
	return nil
}

type ProfileDhikrCmd struct {
	Off      bool `help:"Disable dhikr reminders."`
	Interval int  `help:"Reminder interval in minutes."`
}

func (c *ProfileDhikrCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	settings, err := ctx.Repo.Settings()
	if err != nil {
		return err
	}

	settings.DhikrEnabled = !c.Off
	if c.Interval > 0 {
		settings.DhikrIntervalMin = c.Interval
	}
	if err := ctx.Repo.SaveSettings(settings); err != nil {
		return err
	}

	if settings.DhikrEnabled {
		fmt.Printf("✓ Dhikr reminders on, every %d min\n", settings.DhikrIntervalMin)
	} else {
		fmt.Println("✓ Dhikr reminders off")
	}
	return nil
}
