package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ritmo/internal/store"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateTasks
	StateStats
	StateAddHabit
	StateAddTask
	StateProgress
	StateConfirmDelete
)

type HabitFormModel struct {
	Name      string
	Target    string
	Unit      string
	Frequency string
	Weekdays  string
}

type TaskFormModel struct {
	Name     string
	Date     string
	Time     string
	Priority string
	Category string
}

type ProgressFormModel struct {
	Amount string
}

type Model struct {
	habits *store.HabitStore
	tasks  *store.TaskStore
	stats  *store.StatsStore

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	habitCursor int
	taskCursor  int

	form         *huh.Form
	habitForm    *HabitFormModel
	taskForm     *TaskFormModel
	progressForm *ProgressFormModel

	// id of the record targeted by a progress or delete prompt
	targetID string

	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(habits *store.HabitStore, tasks *store.TaskStore, stats *store.StatsStore) Model {
	m := Model{
		habits: habits,
		tasks:  tasks,
		stats:  stats,
		state:  StateHabits,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.refresh()
	return m
}

// refresh reloads every tab's data and surfaces the first store error.
func (m *Model) refresh() {
	m.errMsg = ""
	if err := m.habits.FetchAll(); err != nil {
		m.errMsg = err.Error()
	}
	if err := m.tasks.FetchAll(); err != nil && m.errMsg == "" {
		m.errMsg = err.Error()
	}
	if _, err := m.stats.FetchToday(); err != nil && m.errMsg == "" {
		m.errMsg = err.Error()
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	if n := len(m.habits.Habits()); m.habitCursor >= n {
		m.habitCursor = n - 1
	}
	if m.habitCursor < 0 {
		m.habitCursor = 0
	}
	if n := len(m.tasks.Tasks()); m.taskCursor >= n {
		m.taskCursor = n - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits:
		keys = append(keys, m.keys.Enter, m.keys.Add, m.keys.Progress, m.keys.Delete)
	case StateTasks:
		keys = append(keys, m.keys.Enter, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateHabits:
		actions = []key.Binding{m.keys.Add, m.keys.Progress, m.keys.Reset, m.keys.Delete}
	case StateTasks:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.Name),
			huh.NewInput().Title("Target (blank for none)").Value(&f.Target),
			huh.NewInput().Title("Unit").Value(&f.Unit),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Custom", "custom"),
				).
				Value(&f.Frequency),
			huh.NewInput().Title("Weekdays (e.g. mon,wed,fri)").Value(&f.Weekdays),
		),
	)
}

func newTaskForm(f *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.Name),
			huh.NewInput().Title("Date (YYYY-MM-DD, blank for today)").Value(&f.Date),
			huh.NewInput().Title("Time (HH:MM)").Value(&f.Time),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("None", ""),
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(&f.Priority),
			huh.NewInput().Title("Category").Value(&f.Category),
		),
	)
}

func newProgressForm(f *ProgressFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Amount to add").Value(&f.Amount),
		),
	)
}
