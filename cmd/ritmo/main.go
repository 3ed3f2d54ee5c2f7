package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/ritmo/internal/cli"
	"github.com/julianstephens/ritmo/internal/cli/backups"
	"github.com/julianstephens/ritmo/internal/cli/habits"
	"github.com/julianstephens/ritmo/internal/cli/stats"
	"github.com/julianstephens/ritmo/internal/cli/system"
	"github.com/julianstephens/ritmo/internal/cli/tasks"
	"github.com/julianstephens/ritmo/internal/config"
	"github.com/julianstephens/ritmo/internal/constants"
	"github.com/julianstephens/ritmo/internal/logger"
	"github.com/julianstephens/ritmo/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"string" default:"~/.config/ritmo/ritmo.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize ritmo storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Debugdb system.DebugCmd   `cmd:"" name:"debug-db" help:"Show database diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit   habits.HabitCmd   `cmd:"" help:"Manage habits and habit tracking."`
	Task    tasks.TaskCmd     `cmd:"" help:"Manage tasks."`
	Stats   stats.StatsCmd    `cmd:"" help:"Show daily, weekly, and monthly statistics."`
	Backup  struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit and task tracker with daily statistics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	// Environment values layer under the flag defaults
	envCfg := config.Load()
	dbPath := config.ExpandPath(CLI.Config)
	if CLI.Config == constants.DefaultConfigPath && envCfg.DBPath != "" {
		dbPath = config.ExpandPath(envCfg.DBPath)
	}

	if configDir, err := config.ConfigDir(); err == nil {
		if err := logger.Init(logger.Config{
			Debug:     CLI.Debug || envCfg.Debug,
			ConfigDir: configDir,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
		}
	}

	store := sqlite.NewStore(dbPath)
	appCtx := cli.NewContext(store)

	// Load the store before running the command. Init creates the database
	// itself, and migrate must be able to open a schema that Load would
	// reject as outdated.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" && ctx.Selected().Name != "migrate" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
