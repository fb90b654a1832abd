package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/injazapp/injaz/internal/cli"
	errs "github.com/injazapp/injaz/internal/errors"
	"github.com/injazapp/injaz/internal/keyring"
	"github.com/injazapp/injaz/internal/logger"
	"github.com/injazapp/injaz/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .json extension selects the JSON store." type:"path" default:"~/.config/injaz/injaz.db"`
	RemoteFlag bool `name:"remote" help:"Use the remote Postgres store configured via 'injaz remote connect'."`
	Debug   bool   `help:"Enable debug logging."`

	Init cli.InitCmd `cmd:"" help:"Initialize injaz storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive dashboard." default:"1"`

	Score cli.ScoreCmd `cmd:"" help:"Show the daily score."`

	Prayer struct {
		Set    cli.PrayerSetCmd    `cmd:"" help:"Set a prayer's status."`
		Sunnah cli.PrayerSunnahCmd `cmd:"" help:"Toggle a prayer's sunnah flag."`
		Adhkar cli.PrayerAdhkarCmd `cmd:"" help:"Toggle a prayer's adhkar flag."`
		Show   cli.PrayerShowCmd   `cmd:"" help:"Show the day's prayers." default:"1"`
	} `cmd:"" help:"Track the five daily prayers."`

	Quran struct {
		Toggle cli.QuranToggleCmd `cmd:"" help:"Toggle a recitation task."`
		Show   cli.QuranShowCmd   `cmd:"" help:"Show the day's recitation." default:"1"`
		Task   struct {
			Add    cli.QuranTaskAddCmd    `cmd:"" help:"Add a recitation task."`
			List   cli.QuranTaskListCmd   `cmd:"" help:"List recitation tasks."`
			Remove cli.QuranTaskRemoveCmd `cmd:"" help:"Remove a recitation task."`
		} `cmd:"" help:"Manage the recitation task list."`
	} `cmd:"" help:"Track Quran recitation."`

	Habit struct {
		Toggle cli.HabitToggleCmd `cmd:"" help:"Toggle a habit."`
		Water  cli.HabitWaterCmd  `cmd:"" help:"Adjust the water counter."`
		Show   cli.HabitShowCmd   `cmd:"" help:"Show the day's habits." default:"1"`
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List configured habits."`
		Remove cli.HabitRemoveCmd `cmd:"" help:"Remove a habit."`
	} `cmd:"" help:"Track daily habits and water."`

	Study struct {
		Add   cli.StudyAddCmd   `cmd:"" help:"Record a study session."`
		List  cli.StudyListCmd  `cmd:"" help:"List study sessions."`
		Week  cli.StudyWeekCmd  `cmd:"" help:"Show the weekly study chart."`
		Timer cli.StudyTimerCmd `cmd:"" help:"Run a study timer."`
	} `cmd:"" help:"Track study sessions."`

	Tasbeeh struct {
		Count cli.TasbeehCountCmd `cmd:"" help:"Increment the dhikr counter." default:"1"`
		Show  cli.TasbeehShowCmd  `cmd:"" help:"Show the day's count."`
		Total cli.TasbeehTotalCmd `cmd:"" help:"Show the all-time total."`
	} `cmd:"" help:"Dhikr counter."`

	Focus struct {
		Add  cli.FocusAddCmd  `cmd:"" help:"Add a focus task (max 3 per day)."`
		Done cli.FocusDoneCmd `cmd:"" help:"Mark a focus task done."`
		List cli.FocusListCmd `cmd:"" help:"List the day's focus tasks." default:"1"`
	} `cmd:"" help:"The day's short focus list."`

	Ramadan struct {
		Day    cli.RamadanDayCmd    `cmd:"" help:"Record the day's Ramadan observances." default:"1"`
		Khatma cli.RamadanKhatmaCmd `cmd:"" help:"Show or toggle khatma parts."`
		Dua    struct {
			Add  cli.RamadanDuaAddCmd  `cmd:"" help:"Add a dua."`
			List cli.RamadanDuaListCmd `cmd:"" help:"List duas."`
		} `cmd:"" help:"Manage the dua list."`
	} `cmd:"" help:"Ramadan tracking."`

	Screentime struct {
		Log   cli.ScreenTimeLogCmd   `cmd:"" help:"Add screen-time minutes."`
		Limit cli.ScreenTimeLimitCmd `cmd:"" help:"Set the daily limit."`
		Show  cli.ScreenTimeShowCmd  `cmd:"" help:"Show the day's usage." default:"1"`
	} `cmd:"" help:"Track screen time against a daily limit."`

	Review struct {
		Daily  cli.ReviewDailyCmd  `cmd:"" help:"Record the daily review." default:"1"`
		Show   cli.ReviewShowCmd   `cmd:"" help:"Show a day's review."`
		Weekly struct {
			Add  cli.ReviewWeeklyCmd     `cmd:"" help:"Record a weekly review." default:"1"`
			List cli.ReviewWeeklyListCmd `cmd:"" help:"List weekly reviews."`
		} `cmd:"" help:"Weekly retrospectives."`
	} `cmd:"" help:"Daily and weekly self-reviews."`

	Expense struct {
		Add  cli.ExpenseAddCmd  `cmd:"" help:"Record an expense."`
		List cli.ExpenseListCmd `cmd:"" help:"List expenses." default:"1"`
	} `cmd:"" help:"Track spending."`

	Budget struct {
		Set  cli.BudgetSetCmd  `cmd:"" help:"Set the weekly budget."`
		Show cli.BudgetShowCmd `cmd:"" help:"Show budget status." default:"1"`
	} `cmd:"" help:"Weekly budget."`

	Profile struct {
		Show  cli.ProfileShowCmd  `cmd:"" help:"Show profile and streak." default:"1"`
		Name  cli.ProfileNameCmd  `cmd:"" help:"Set the display name."`
		Dhikr cli.ProfileDhikrCmd `cmd:"" help:"Configure dhikr reminders."`
	} `cmd:"" help:"Profile and settings."`

	Chat struct {
		Send   cli.ChatCmd       `cmd:"" help:"Talk to the assistant." default:"1"`
		Login  cli.ChatLoginCmd  `cmd:"" help:"Store the assistant API key."`
		Logout cli.ChatLogoutCmd `cmd:"" help:"Remove the assistant API key."`
	} `cmd:"" help:"Conversational assistant."`

	Export cli.ExportCmd `cmd:"" help:"Export all data to a JSON file."`
	Import cli.ImportCmd `cmd:"" help:"Replace all data from a JSON export."`
	Wipe   cli.WipeCmd   `cmd:"" help:"Delete all data."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Snapshot the store." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List snapshots."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a snapshot."`
	} `cmd:"" help:"Local store snapshots."`

	Remote struct {
		Connect    cli.RemoteConnectCmd    `cmd:"" help:"Store Postgres credentials for remote storage."`
		Disconnect cli.RemoteDisconnectCmd `cmd:"" help:"Remove stored Postgres credentials."`
	} `cmd:"" help:"Remote Postgres storage."`

	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	// Optional .env next to the binary or in the working directory, mainly
	// for GEMINI_API_KEY during development. A missing file is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("injaz"),
		kong.Description("Personal daily tracker: prayers, Quran, habits, study, and more"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	kv, err := openStore()
	if err != nil {
		errs.Fatal(err)
	}
	defer kv.Close()

	appCtx := &cli.Context{
		KV:    kv,
		Repo:  storage.NewRepository(kv),
		Debug: CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		kv.Close()
		errs.Fatal(err)
	}
}

// openStore picks the backend: remote Postgres when --remote is given, the
// JSON store for .json paths, SQLite otherwise.
func openStore() (storage.KV, error) {
	if CLI.RemoteFlag {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return nil, fmt.Errorf("no remote storage configured, run 'injaz remote connect' first: %w", err)
		}
		return storage.NewPostgresKV(connStr), nil
	}

	if strings.HasSuffix(CLI.Config, ".json") {
		return storage.NewJSONKV(CLI.Config), nil
	}
	return storage.NewSQLiteKV(CLI.Config), nil
}
