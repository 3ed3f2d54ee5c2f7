package habits

import (
	"fmt"

	"github.com/julianstephens/ritmo/internal/cli"
	"github.com/julianstephens/ritmo/internal/constants"
	"github.com/julianstephens/ritmo/internal/models"
)

type HabitCmd struct {
	Add      HabitAddCmd      `cmd:"" help:"Add a new habit."`
	List     HabitListCmd     `cmd:"" help:"List habits."`
	Done     HabitDoneCmd     `cmd:"" help:"Toggle a habit's completion for today."`
	Progress HabitProgressCmd `cmd:"" help:"Add progress toward a habit's target."`
	Reset    HabitResetCmd    `cmd:"" help:"Reset a habit's progress for today."`
	ResetDay HabitResetDayCmd `cmd:"" name:"reset-day" help:"Clear all completion flags for a new day."`
	Delete   HabitDeleteCmd   `cmd:"" help:"Delete a habit."`
}

// resolveHabit fetches the collection and finds a habit by name.
func resolveHabit(ctx *cli.Context, name string) (models.Habit, error) {
	if err := ctx.Habits.FetchAll(); err != nil {
		return models.Habit{}, err
	}
	for _, h := range ctx.Habits.Habits() {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", name)
}

type HabitAddCmd struct {
	Name      string  `arg:"" help:"Habit name."`
	Target    float64 `help:"Numeric goal for quantity-based habits (e.g. 8)."`
	Unit      string  `help:"Unit for the target (e.g. glasses)."`
	Frequency string  `help:"Frequency: daily, weekly, or custom." default:"daily"`
	Weekdays  string  `help:"Comma-separated weekdays (weekly habits only), e.g. mon,wed,fri."`
	Color     string  `help:"Display accent color." default:"#4F8EF7"`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	draft := models.HabitDraft{
		Name:      c.Name,
		Unit:      c.Unit,
		Frequency: constants.Frequency(c.Frequency),
		Color:     c.Color,
	}
	if c.Target > 0 {
		target := c.Target
		current := 0.0
		draft.Target = &target
		draft.Current = &current
	}
	if c.Weekdays != "" {
		weekdays, err := cli.ParseWeekdays(c.Weekdays)
		if err != nil {
			return err
		}
		draft.Weekdays = weekdays
	}

	if err := ctx.Habits.FetchAll(); err != nil {
		return err
	}
	for _, h := range ctx.Habits.Habits() {
		if h.Name == c.Name {
			return fmt.Errorf("habit with name %q already exists", c.Name)
		}
	}

	habit, err := ctx.Habits.Add(draft)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Habits.FetchAll(); err != nil {
		return err
	}

	habits := ctx.Habits.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range habits {
		status := "[ ]"
		if h.CompletedToday {
			status = "[x]"
		}
		line := fmt.Sprintf("%s %s (streak: %d)", status, h.Name, h.Streak)
		if progress := cli.FormatProgress(h); progress != "" {
			line += " " + progress
		}
		fmt.Println(line)
	}

	if stale := ctx.Habits.StaleCompletions(); len(stale) > 0 {
		fmt.Printf("\n%d habit(s) still marked complete from a previous day. Run 'ritmo habit reset-day' to start fresh.\n", len(stale))
	}

	return nil
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	habit, err := resolveHabit(ctx, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Habits.ToggleCompletion(habit.ID); err != nil {
		return err
	}

	if !habit.CompletedToday {
		// Became complete: reflect it in today's aggregate
		if err := ctx.Stats.IncrementCompletedHabits(); err != nil {
			return err
		}
		fmt.Printf("Completed habit: %s\n", c.Name)
	} else {
		fmt.Printf("Unmarked habit: %s\n", c.Name)
	}
	return nil
}

type HabitProgressCmd struct {
	Name   string  `arg:"" help:"Habit name."`
	Amount float64 `arg:"" help:"Amount to add to the habit's current value."`
}

func (c *HabitProgressCmd) Run(ctx *cli.Context) error {
	habit, err := resolveHabit(ctx, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Habits.IncrementProgress(habit.ID, c.Amount); err != nil {
		return err
	}

	var updated models.Habit
	for _, h := range ctx.Habits.Habits() {
		if h.ID == habit.ID {
			updated = h
			break
		}
	}

	if updated.CompletedToday && !habit.CompletedToday {
		if err := ctx.Stats.IncrementCompletedHabits(); err != nil {
			return err
		}
		fmt.Printf("Completed habit %s (%s)\n", updated.Name, cli.FormatProgress(updated))
	} else {
		fmt.Printf("Progress on %s: %s\n", updated.Name, cli.FormatProgress(updated))
	}
	return nil
}

type HabitResetCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitResetCmd) Run(ctx *cli.Context) error {
	habit, err := resolveHabit(ctx, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Habits.ResetProgress(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Reset progress for habit: %s\n", c.Name)
	return nil
}

type HabitResetDayCmd struct{}

func (c *HabitResetDayCmd) Run(ctx *cli.Context) error {
	if err := ctx.Habits.FetchAll(); err != nil {
		return err
	}

	if err := ctx.Habits.ResetDay(); err != nil {
		return err
	}

	fmt.Println("Cleared completion flags for all habits.")
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := resolveHabit(ctx, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Habits.Delete(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	return nil
}
