package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/injazapp/injaz/internal/backup"
)

// backupManager builds a snapshot manager for the current store, refusing
// when the store is not a local file (remote Postgres).
func backupManager(ctx *Context) (*backup.Manager, error) {
	path := ctx.KV.Path()
	if path == "" || strings.HasPrefix(path, "postgres") {
		return nil, fmt.Errorf("snapshots need a local store; use 'injaz export' for remote storage")
	}
	return backup.NewManager(path), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Printf("Backups in %s:\n\n", mgr.BackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %.1f KB\n",
			b.Timestamp.Format("2006-01-02 15:04"), filepath.Base(b.Path), float64(b.Size)/1024)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path  string `arg:"" help:"Backup file to restore. Bare filenames resolve against the backup directory."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path := c.Path
	if !filepath.IsAbs(path) && filepath.Dir(path) == "." {
		path = filepath.Join(mgr.BackupDir(), path)
	}

	if !c.Force {
		ok, err := confirm("Restoring replaces the current store. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	// Close the live handle before swapping the file underneath it.
	if err := ctx.KV.Close(); err != nil {
		return err
	}
	if err := mgr.Restore(path); err != nil {
		return err
	}
	fmt.Println("✓ Store restored")
	return nil
}
