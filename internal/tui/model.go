package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/injazapp/injaz/internal/models"
	"github.com/injazapp/injaz/internal/score"
	"github.com/injazapp/injaz/internal/storage"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StatePrayers
	StateHabits
	StateTasbeeh

	stateCount
)

// dhikrMsg fires the periodic dhikr reminder.
type dhikrMsg time.Time

// reminderClearMsg hides a shown reminder again.
type reminderClearMsg struct{}

// Model is the dashboard program: a read-mostly view over today's records
// with quick toggles for prayers, habits, and the tasbeeh counter.
type Model struct {
	repo *storage.Repository
	date string

	state    SessionState
	keys     KeyMap
	help     help.Model
	cursor   int
	quitting bool
	width    int
	height   int

	profile   models.UserProfile
	settings  models.Settings
	breakdown score.Breakdown
	prayers   models.PrayerLog
	habits    []models.Habit
	daily     models.DailyHabits
	tasbeeh   models.TasbeehLog
	focus     models.FocusList

	loadErr  error
	reminder string
}

func NewModel(repo *storage.Repository) Model {
	m := Model{
		repo:  repo,
		date:  storage.Today(),
		state: StateDashboard,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.refresh()
	return m
}

// refresh reloads every record the dashboard shows. The store is small, so a
// full reload after each mutation is simpler than tracking deltas.
func (m *Model) refresh() {
	m.loadErr = nil

	load := func(err error) {
		if err != nil && m.loadErr == nil {
			m.loadErr = err
		}
	}

	var err error
	m.profile, err = m.repo.Profile()
	load(err)
	m.settings, err = m.repo.Settings()
	load(err)
	m.prayers, err = m.repo.PrayerLog(m.date)
	load(err)
	m.habits, err = m.repo.HabitsConfig()
	load(err)
	m.daily, err = m.repo.DailyHabits(m.date)
	load(err)
	m.tasbeeh, err = m.repo.TasbeehLog(m.date)
	load(err)
	m.focus, err = m.repo.FocusList(m.date)
	load(err)

	m.breakdown = score.Calculate(m.repo, m.date)
}

func (m Model) Init() tea.Cmd {
	return m.dhikrTick()
}

// dhikrTick schedules the next dhikr reminder per the user's settings.
func (m Model) dhikrTick() tea.Cmd {
	if !m.settings.DhikrEnabled || m.settings.DhikrIntervalMin <= 0 {
		return nil
	}
	interval := time.Duration(m.settings.DhikrIntervalMin) * time.Minute
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return dhikrMsg(t)
	})
}

// cursorMax returns the last selectable row index for the active tab.
func (m Model) cursorMax() int {
	switch m.state {
	case StatePrayers:
		return len(models.PrayerNames) - 1
	case StateHabits:
		return len(m.habits) - 1
	}
	return 0
}

// nextStatus cycles a prayer through none -> mosque -> ontime -> late ->
// missed -> none.
func nextStatus(s models.PrayerStatus) models.PrayerStatus {
	switch s {
	case models.PrayerNone:
		return models.PrayerMosque
	case models.PrayerMosque:
		return models.PrayerOnTime
	case models.PrayerOnTime:
		return models.PrayerLate
	case models.PrayerLate:
		return models.PrayerMissed
	default:
		return models.PrayerNone
	}
}
