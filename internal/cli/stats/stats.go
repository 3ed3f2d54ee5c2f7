package stats

import (
	"fmt"

	"github.com/julianstephens/ritmo/internal/cli"
	"github.com/julianstephens/ritmo/internal/models"
	"github.com/julianstephens/ritmo/internal/utils"
)

type StatsCmd struct {
	Today StatsTodayCmd `cmd:"" help:"Show today's statistics." default:"1"`
	Week  StatsWeekCmd  `cmd:"" help:"Show this week's statistics."`
	Month StatsMonthCmd `cmd:"" help:"Show this month's statistics."`
}

type StatsTodayCmd struct{}

func (c *StatsTodayCmd) Run(ctx *cli.Context) error {
	stats, err := ctx.Stats.FetchToday()
	if err != nil {
		return err
	}

	fmt.Printf("Stats for %s:\n\n", stats.Date)
	fmt.Printf("  Completed habits: %d\n", stats.CompletedHabits)
	fmt.Printf("  Completed tasks:  %d\n", stats.CompletedTasks)
	fmt.Printf("  Streak days:      %d\n", stats.StreakDays)

	// Compose today's completion percentage from the other stores
	if err := ctx.Habits.FetchAll(); err != nil {
		return err
	}
	if err := ctx.Tasks.FetchByDate(utils.Today()); err != nil {
		return err
	}

	done, total := 0, 0
	for _, h := range ctx.Habits.Habits() {
		total++
		if h.CompletedToday {
			done++
		}
	}
	for _, t := range ctx.Tasks.Tasks() {
		total++
		if t.Completed {
			done++
		}
	}
	if total > 0 {
		fmt.Printf("\n  Daily progress: %d/%d (%.0f%%)\n", done, total, float64(done)/float64(total)*100)
	}

	return nil
}

type StatsWeekCmd struct{}

func (c *StatsWeekCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Stats.FetchWeekly()
	if err != nil {
		return err
	}
	printRange("This week", records)
	return nil
}

type StatsMonthCmd struct{}

func (c *StatsMonthCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Stats.FetchMonthly()
	if err != nil {
		return err
	}
	printRange("This month", records)
	return nil
}

func printRange(label string, records []models.DailyStats) {
	if len(records) == 0 {
		fmt.Printf("%s: no recorded days yet.\n", label)
		return
	}

	habits, tasks := models.SumStats(records)
	fmt.Printf("%s (%d day(s) recorded):\n\n", label, len(records))
	for _, r := range records {
		fmt.Printf("  %s  habits: %d  tasks: %d  streak days: %d\n",
			r.Date, r.CompletedHabits, r.CompletedTasks, r.StreakDays)
	}
	fmt.Printf("\n  Total: %d habits, %d tasks\n", habits, tasks)
}
