package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/injazapp/injaz/internal/models"
	"github.com/injazapp/injaz/internal/score"
)

var tabTitles = []string{"Dashboard", "Prayers", "Habits", "Tasbeeh"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StatePrayers:
		content = m.viewPrayers()
	case StateHabits:
		content = m.viewHabits()
	case StateTasbeeh:
		content = m.viewTasbeeh()
	}

	sections := []string{m.viewTabs(), docStyle.Render(content)}
	if m.reminder != "" {
		sections = append(sections, reminderStyle.Render("  "+m.reminder))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("أهلاً %s", m.profile.Name)))
	b.WriteString("\n\n")
	if m.loadErr != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("some records failed to load: %v", m.loadErr)))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("Today's score: %s\n", scoreStyle.Render(fmt.Sprintf("%d/100", m.breakdown.Total))))
	b.WriteString(scoreBar(m.breakdown.Total, 40))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  prayers %.0f/%.0f   quran %.0f/%.0f   study %.0f/%.0f   habits %.0f/%.0f\n",
		m.breakdown.Prayers, score.MaxPrayers,
		m.breakdown.Quran, score.MaxQuran,
		m.breakdown.Study, score.MaxStudy,
		m.breakdown.Habits, score.MaxHabits))

	b.WriteString(fmt.Sprintf("\n🔥 Streak: %d day(s)\n", m.profile.Streak))
	b.WriteString(fmt.Sprintf("💧 Water: %d cup(s)\n", m.daily.WaterCups))

	if len(m.focus.Tasks) > 0 {
		b.WriteString("\nFocus:\n")
		for _, t := range m.focus.Tasks {
			mark := "·"
			if t.Completed {
				mark = "✓"
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", mark, t.Text))
		}
	}

	return b.String()
}

func (m Model) viewPrayers() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Prayers " + m.date))
	b.WriteString("\n\n")

	for i, name := range models.PrayerNames {
		entry := m.prayers.Entry(name)
		line := fmt.Sprintf("%-8s %-7s", name, entry.Status)
		if entry.Sunnah {
			line += "  sunnah"
		}
		if entry.Adhkar {
			line += "  adhkar"
		}

		prefix := "  "
		if i == m.cursor {
			prefix = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("enter cycles: none → mosque → ontime → late → missed"))
	return b.String()
}

func (m Model) viewHabits() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Habits " + m.date))
	b.WriteString("\n\n")

	if len(m.habits) == 0 {
		b.WriteString(dimStyle.Render("no habits configured; add one with 'injaz habit add'"))
		return b.String()
	}

	for i, h := range m.habits {
		mark := "·"
		if m.daily.Completed(h.ID) {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %s %s", mark, h.Emoji, h.Name)

		prefix := "  "
		if i == m.cursor {
			prefix = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}

	b.WriteString(fmt.Sprintf("\n💧 Water: %d/%d cups", m.daily.WaterCups, score.WaterTargetCups))
	b.WriteString("  " + dimStyle.Render("(w adds a cup)"))
	return b.String()
}

func (m Model) viewTasbeeh() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasbeeh " + m.date))
	b.WriteString("\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("      %d", m.tasbeeh.Count)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("space or enter to count"))
	return b.String()
}

// scoreBar renders a fixed-width progress bar for a 0-100 value.
func scoreBar(total, width int) string {
	filled := total * width / 100
	return "  [" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
