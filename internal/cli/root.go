package cli

import (
	"fmt"
	"time"

	"github.com/injazapp/injaz/internal/storage"
)

// Context is shared by every command: the open record store plus the
// repository built over it.
type Context struct {
	KV    storage.KV
	Repo  *storage.Repository
	Debug bool
}

// resolveDate turns a command-line date argument into a YYYY-MM-DD key.
// "today" and "yesterday" are accepted as shorthands.
func resolveDate(s string) (string, error) {
	switch s {
	case "", "today":
		return time.Now().Format("2006-01-02"), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1).Format("2006-01-02"), nil
	}

	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD, 'today' or 'yesterday': %w", err)
	}
	return d.Format("2006-01-02"), nil
}

func checkmark(b bool) string {
	if b {
		return "✓"
	}
	return "·"
}
