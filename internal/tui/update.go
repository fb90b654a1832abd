package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/injazapp/injaz/internal/logger"
	"github.com/injazapp/injaz/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case dhikrMsg:
		m.reminder = "🕊 سبحان الله وبحمده"
		return m, tea.Batch(
			m.dhikrTick(),
			tea.Tick(10*time.Second, func(time.Time) tea.Msg { return reminderClearMsg{} }),
		)

	case reminderClearMsg:
		m.reminder = ""

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % stateCount
			m.cursor = 0

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + stateCount) % stateCount
			m.cursor = 0

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.cursorMax() {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Enter):
			m.toggleSelected()

		case key.Matches(msg, m.keys.Water):
			if m.state == StateHabits || m.state == StateDashboard {
				m.daily.AddWater(1)
				m.save(m.repo.SaveDailyHabits(m.daily))
			}

		case key.Matches(msg, m.keys.Count):
			if m.state == StateTasbeeh {
				m.tasbeeh.Count++
				m.save(m.repo.SaveTasbeehLog(m.tasbeeh))
			}
		}
	}

	return m, nil
}

// toggleSelected applies enter on the row under the cursor.
func (m *Model) toggleSelected() {
	switch m.state {
	case StatePrayers:
		name := models.PrayerNames[m.cursor]
		entry := m.prayers.Entry(name)
		entry.Status = nextStatus(entry.Status)
		m.prayers.SetEntry(name, entry)
		m.save(m.repo.SavePrayerLog(m.prayers))

	case StateHabits:
		if m.cursor < len(m.habits) {
			m.daily.Toggle(m.habits[m.cursor].ID)
			m.save(m.repo.SaveDailyHabits(m.daily))
		}

	case StateTasbeeh:
		m.tasbeeh.Count++
		m.save(m.repo.SaveTasbeehLog(m.tasbeeh))
	}
}

// save persists a mutation and reloads the view; write failures are logged
// and the view falls back to the stored state.
func (m *Model) save(err error) {
	if err != nil {
		logger.Error("failed to save record", "error", err)
	}
	m.refresh()
}
