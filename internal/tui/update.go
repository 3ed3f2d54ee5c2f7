package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ritmo/internal/cli"
	"github.com/julianstephens/ritmo/internal/constants"
	"github.com/julianstephens/ritmo/internal/models"
	"github.com/julianstephens/ritmo/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Add Habit State
	if m.state == StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateHabits
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if err := m.submitHabitForm(); err != nil {
				m.errMsg = err.Error()
			}
			m.refreshHabits()
			m.state = StateHabits
		case huh.StateAborted:
			m.state = StateHabits
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Add Task State
	if m.state == StateAddTask {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateTasks
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if err := m.submitTaskForm(); err != nil {
				m.errMsg = err.Error()
			}
			m.refreshTasks()
			m.state = StateTasks
		case huh.StateAborted:
			m.state = StateTasks
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Progress State
	if m.state == StateProgress {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateHabits
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if err := m.submitProgressForm(); err != nil {
				m.errMsg = err.Error()
			}
			m.state = StateHabits
		case huh.StateAborted:
			m.state = StateHabits
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.confirmDelete()
				m.state = m.previousState
			case "n", "N", "esc", "q":
				m.state = m.previousState
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % 3
			m.refresh()

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state + 2) % 3
			m.refresh()

		case key.Matches(msg, m.keys.Up):
			switch m.state {
			case StateHabits:
				if m.habitCursor > 0 {
					m.habitCursor--
				}
			case StateTasks:
				if m.taskCursor > 0 {
					m.taskCursor--
				}
			}

		case key.Matches(msg, m.keys.Down):
			switch m.state {
			case StateHabits:
				if m.habitCursor < len(m.habits.Habits())-1 {
					m.habitCursor++
				}
			case StateTasks:
				if m.taskCursor < len(m.tasks.Tasks())-1 {
					m.taskCursor++
				}
			}

		case key.Matches(msg, m.keys.Enter):
			switch m.state {
			case StateHabits:
				m.toggleHabit()
			case StateTasks:
				m.toggleTask()
			}

		case key.Matches(msg, m.keys.Add):
			switch m.state {
			case StateHabits:
				m.habitForm = &HabitFormModel{Frequency: "daily"}
				m.form = newHabitForm(m.habitForm)
				m.state = StateAddHabit
				cmds = append(cmds, m.form.Init())
			case StateTasks:
				m.taskForm = &TaskFormModel{}
				m.form = newTaskForm(m.taskForm)
				m.state = StateAddTask
				cmds = append(cmds, m.form.Init())
			}

		case key.Matches(msg, m.keys.Progress):
			if m.state == StateHabits {
				if h, ok := m.selectedHabit(); ok && h.HasTarget() {
					m.targetID = h.ID
					m.progressForm = &ProgressFormModel{}
					m.form = newProgressForm(m.progressForm)
					m.state = StateProgress
					cmds = append(cmds, m.form.Init())
				}
			}

		case key.Matches(msg, m.keys.Reset):
			if m.state == StateHabits {
				if h, ok := m.selectedHabit(); ok {
					if err := m.habits.ResetProgress(h.ID); err != nil {
						m.errMsg = err.Error()
					}
				}
			}

		case key.Matches(msg, m.keys.Delete):
			switch m.state {
			case StateHabits:
				if h, ok := m.selectedHabit(); ok {
					m.targetID = h.ID
					m.previousState = StateHabits
					m.state = StateConfirmDelete
				}
			case StateTasks:
				if t, ok := m.selectedTask(); ok {
					m.targetID = t.ID
					m.previousState = StateTasks
					m.state = StateConfirmDelete
				}
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) selectedHabit() (models.Habit, bool) {
	habits := m.habits.Habits()
	if m.habitCursor < 0 || m.habitCursor >= len(habits) {
		return models.Habit{}, false
	}
	return habits[m.habitCursor], true
}

func (m Model) selectedTask() (models.Task, bool) {
	tasks := m.tasks.Tasks()
	if m.taskCursor < 0 || m.taskCursor >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.taskCursor], true
}

func (m *Model) refreshHabits() {
	if err := m.habits.FetchAll(); err != nil && m.errMsg == "" {
		m.errMsg = err.Error()
	}
	m.clampCursors()
}

func (m *Model) refreshTasks() {
	if err := m.tasks.FetchAll(); err != nil && m.errMsg == "" {
		m.errMsg = err.Error()
	}
	m.clampCursors()
}

func (m *Model) toggleHabit() {
	h, ok := m.selectedHabit()
	if !ok {
		return
	}
	m.errMsg = ""
	if err := m.habits.ToggleCompletion(h.ID); err != nil {
		m.errMsg = err.Error()
		return
	}
	if !h.CompletedToday {
		if err := m.stats.IncrementCompletedHabits(); err != nil {
			m.errMsg = err.Error()
		}
	}
}

func (m *Model) toggleTask() {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	m.errMsg = ""
	if err := m.tasks.ToggleCompletion(t.ID); err != nil {
		m.errMsg = err.Error()
		return
	}
	if !t.Completed {
		if err := m.stats.IncrementCompletedTasks(); err != nil {
			m.errMsg = err.Error()
		}
	}
}

func (m *Model) confirmDelete() {
	m.errMsg = ""
	var err error
	switch m.previousState {
	case StateHabits:
		err = m.habits.Delete(m.targetID)
	case StateTasks:
		err = m.tasks.Delete(m.targetID)
	}
	if err != nil {
		m.errMsg = err.Error()
	}
	m.clampCursors()
}

func (m *Model) submitHabitForm() error {
	draft := models.HabitDraft{
		Name:      strings.TrimSpace(m.habitForm.Name),
		Unit:      strings.TrimSpace(m.habitForm.Unit),
		Frequency: constants.Frequency(m.habitForm.Frequency),
	}
	if s := strings.TrimSpace(m.habitForm.Target); s != "" {
		target, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		current := 0.0
		draft.Target = &target
		draft.Current = &current
	}
	if s := strings.TrimSpace(m.habitForm.Weekdays); s != "" {
		weekdays, err := cli.ParseWeekdays(s)
		if err != nil {
			return err
		}
		draft.Weekdays = weekdays
	}

	_, err := m.habits.Add(draft)
	return err
}

func (m *Model) submitTaskForm() error {
	date := strings.TrimSpace(m.taskForm.Date)
	if date == "" {
		date = utils.Today()
	}

	_, err := m.tasks.Add(models.TaskDraft{
		Name:     strings.TrimSpace(m.taskForm.Name),
		Date:     date,
		Time:     strings.TrimSpace(m.taskForm.Time),
		Priority: constants.Priority(m.taskForm.Priority),
		Category: strings.TrimSpace(m.taskForm.Category),
	})
	return err
}

func (m *Model) submitProgressForm() error {
	h, ok := m.selectedHabit()
	if !ok || h.ID != m.targetID {
		return nil
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(m.progressForm.Amount), 64)
	if err != nil {
		return err
	}
	if err := m.habits.IncrementProgress(m.targetID, amount); err != nil {
		return err
	}

	// Threshold crossing feeds the daily aggregate
	if updated, ok := m.selectedHabit(); ok && updated.CompletedToday && !h.CompletedToday {
		return m.stats.IncrementCompletedHabits()
	}
	return nil
}
