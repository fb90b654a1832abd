package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/injazapp/injaz/internal/keyring"
	"github.com/injazapp/injaz/internal/storage"
)

type RemoteConnectCmd struct {
	ConnStr string `arg:"" help:"Postgres connection string. Prompted for when omitted." optional:""`
}

func (c *RemoteConnectCmd) Run(ctx *Context) error {
	connStr := c.ConnStr
	if connStr == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Postgres connection string").
				EchoMode(huh.EchoModePassword).
				Value(&connStr),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}
	if connStr == "" {
		return fmt.Errorf("no connection string provided")
	}

	// Verify the credentials before storing them.
	kv := storage.NewPostgresKV(connStr)
	if err := kv.Init(); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer kv.Close()

	if err := keyring.SetConnectionString(connStr); err != nil {
		return err
	}
	fmt.Println("✓ Remote storage connected; run commands with --remote to use it")
	return nil
}

type RemoteDisconnectCmd struct{}

func (c *RemoteDisconnectCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("✓ Remote storage credentials removed")
	return nil
}
