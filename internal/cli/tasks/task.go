package tasks

import (
	"fmt"

	"github.com/julianstephens/ritmo/internal/cli"
	"github.com/julianstephens/ritmo/internal/constants"
	"github.com/julianstephens/ritmo/internal/models"
	"github.com/julianstephens/ritmo/internal/utils"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Done   TaskDoneCmd   `cmd:"" help:"Toggle a task's completion."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

func resolveTask(ctx *cli.Context, name string) (models.Task, error) {
	if err := ctx.Tasks.FetchAll(); err != nil {
		return models.Task{}, err
	}
	for _, t := range ctx.Tasks.Tasks() {
		if t.Name == name {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task %q not found", name)
}

type TaskAddCmd struct {
	Name     string `arg:"" help:"Task name."`
	Date     string `help:"Scheduled date in YYYY-MM-DD format (default: today)." default:""`
	Time     string `help:"Time of day in HH:MM format."`
	Priority string `help:"Priority: low, medium, or high."`
	Category string `help:"Free-form category."`
	Note     string `help:"Optional note."`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	task, err := ctx.Tasks.Add(models.TaskDraft{
		Name:     c.Name,
		Date:     date,
		Time:     c.Time,
		Priority: constants.Priority(c.Priority),
		Category: c.Category,
		Note:     c.Note,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (%s)\n", task.Name, task.Date)
	return nil
}

type TaskListCmd struct {
	Date     string `help:"Only tasks scheduled for this date (YYYY-MM-DD)."`
	Today    bool   `help:"Only tasks scheduled for today."`
	Category string `help:"Only tasks in this category."`
	Priority string `help:"Only tasks at this priority."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	filters := 0
	for _, set := range []bool{c.Date != "", c.Today, c.Category != "", c.Priority != ""} {
		if set {
			filters++
		}
	}
	if filters > 1 {
		return fmt.Errorf("--date, --today, --category, and --priority are mutually exclusive")
	}

	var err error
	switch {
	case c.Today:
		err = ctx.Tasks.FetchByDate(utils.Today())
	case c.Date != "":
		if !utils.ValidateDateFormat(c.Date) {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.Date)
		}
		err = ctx.Tasks.FetchByDate(c.Date)
	case c.Category != "":
		err = ctx.Tasks.FetchByCategory(c.Category)
	case c.Priority != "":
		priority := constants.Priority(c.Priority)
		if !constants.ValidPriority(priority) || priority == "" {
			return fmt.Errorf("invalid priority: %s (expected low, medium, or high)", c.Priority)
		}
		err = ctx.Tasks.FetchByPriority(priority)
	default:
		err = ctx.Tasks.FetchAll()
	}
	if err != nil {
		return err
	}

	tasks := ctx.Tasks.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	for _, t := range tasks {
		status := "[ ]"
		if t.Completed {
			status = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", status, t.Date, t.Name)
		if t.Time != "" {
			line += " @ " + t.Time
		}
		if t.Priority != "" {
			line += fmt.Sprintf(" (%s)", t.Priority)
		}
		if t.Category != "" {
			line += fmt.Sprintf(" #%s", t.Category)
		}
		fmt.Println(line)
	}

	return nil
}

type TaskDoneCmd struct {
	Name string `arg:"" help:"Task name."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	task, err := resolveTask(ctx, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Tasks.ToggleCompletion(task.ID); err != nil {
		return err
	}

	if !task.Completed {
		// Became complete: reflect it in today's aggregate
		if err := ctx.Stats.IncrementCompletedTasks(); err != nil {
			return err
		}
		fmt.Printf("Completed task: %s\n", c.Name)
	} else {
		fmt.Printf("Unmarked task: %s\n", c.Name)
	}
	return nil
}

type TaskDeleteCmd struct {
	Name string `arg:"" help:"Task name to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := resolveTask(ctx, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Tasks.Delete(task.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted task: %s\n", c.Name)
	return nil
}
