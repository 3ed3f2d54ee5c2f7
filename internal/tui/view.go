package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ritmo/internal/cli"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.viewHabits())
	case StateTasks:
		content = docStyle.Render(m.viewTasks())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateAddHabit, StateAddTask, StateProgress:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	if m.errMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, errStyle.Render("  "+m.errMsg))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Tasks", "Today"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHabits() string {
	habits := m.habits.Habits()
	if len(habits) == 0 {
		return mutedStyle.Render("No habits yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, h := range habits {
		cursor := "  "
		if i == m.habitCursor {
			cursor = cursorStyle.Render("> ")
		}

		status := "[ ]"
		if h.CompletedToday {
			status = doneStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %s (streak: %d)", cursor, status, h.Name, h.Streak)
		if progress := cli.FormatProgress(h); progress != "" {
			line += " " + mutedStyle.Render(progress)
		}
		b.WriteString(line + "\n")
	}

	if stale := m.habits.StaleCompletions(); len(stale) > 0 {
		b.WriteString("\n" + mutedStyle.Render(
			fmt.Sprintf("%d habit(s) still marked from a previous day — run 'ritmo habit reset-day'", len(stale))))
	}

	return b.String()
}

func (m Model) viewTasks() string {
	tasks := m.tasks.Tasks()
	if len(tasks) == 0 {
		return mutedStyle.Render("No tasks yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, t := range tasks {
		cursor := "  "
		if i == m.taskCursor {
			cursor = cursorStyle.Render("> ")
		}

		status := "[ ]"
		if t.Completed {
			status = doneStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %s %s", cursor, status, t.Date, t.Name)
		if t.Time != "" {
			line += " @ " + t.Time
		}
		if t.Priority != "" {
			line += mutedStyle.Render(fmt.Sprintf(" (%s)", t.Priority))
		}
		if t.Category != "" {
			line += mutedStyle.Render(" #" + t.Category)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

func (m Model) viewStats() string {
	stats := m.stats.Today()
	if stats == nil {
		return mutedStyle.Render("No statistics recorded for today yet.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Stats for %s\n\n", stats.Date))
	b.WriteString(fmt.Sprintf("  Completed habits: %d\n", stats.CompletedHabits))
	b.WriteString(fmt.Sprintf("  Completed tasks:  %d\n", stats.CompletedTasks))
	b.WriteString(fmt.Sprintf("  Streak days:      %d\n", stats.StreakDays))

	done, total := 0, 0
	for _, h := range m.habits.Habits() {
		total++
		if h.CompletedToday {
			done++
		}
	}
	for _, t := range m.tasks.Tasks() {
		if t.Date == stats.Date {
			total++
			if t.Completed {
				done++
			}
		}
	}
	if total > 0 {
		b.WriteString(fmt.Sprintf("\n  Daily progress: %d/%d (%.0f%%)\n",
			done, total, float64(done)/float64(total)*100))
	}

	return b.String()
}

func (m Model) viewConfirmDelete() string {
	label := "this record"
	switch m.previousState {
	case StateHabits:
		if h, ok := m.selectedHabit(); ok {
			label = "habit " + h.Name
		}
	case StateTasks:
		if t, ok := m.selectedTask(); ok {
			label = "task " + t.Name
		}
	}

	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %s?", label)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
