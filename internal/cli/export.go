package cli

import (
	"fmt"
	"time"

	"github.com/injazapp/injaz/internal/export"
)

type ExportCmd struct {
	Path string `arg:"" help:"Destination file. Defaults to injaz-export-<date>.json." optional:""`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	path := c.Path
	if path == "" {
		path = fmt.Sprintf("injaz-export-%s.json", time.Now().Format("2006-01-02"))
	}

	if err := export.Export(ctx.KV, path); err != nil {
		return err
	}
	fmt.Printf("✓ Exported to %s\n", path)
	return nil
}

type ImportCmd struct {
	Path  string `arg:"" help:"Backup file to import."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	if !c.Force {
		ok, err := confirm("Importing replaces ALL current data. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	if err := export.Import(ctx.KV, c.Path); err != nil {
		return err
	}
	fmt.Printf("✓ Imported %s\n", c.Path)
	return nil
}

type WipeCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *WipeCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	if !c.Force {
		ok, err := confirm("Delete ALL data? This cannot be undone.")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Wipe cancelled.")
			return nil
		}
	}

	if err := ctx.KV.Wipe(); err != nil {
		return err
	}
	fmt.Println("✓ All data deleted")
	return nil
}
