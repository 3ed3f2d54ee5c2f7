package system

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/julianstephens/ritmo/internal/cli"
	"github.com/julianstephens/ritmo/internal/migration"
	"github.com/julianstephens/ritmo/internal/storage/sqlite"
	"github.com/julianstephens/ritmo/migrations"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing database before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized ritmo storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	// Init applies any pending migrations and is a no-op on an up-to-date schema
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Println("Database schema is up to date.")
	return nil
}

type DebugCmd struct{}

func (c *DebugCmd) Run(ctx *cli.Context) error {
	fmt.Printf("Database path: %s\n", ctx.Store.GetConfigPath())

	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("debug is only supported for SQLite storage")
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database not loaded")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}
	runner := migration.NewRunner(db, subFS)
	version, err := runner.GetCurrentVersion()
	if err != nil {
		return err
	}
	latest, err := runner.GetLatestVersion()
	if err != nil {
		return err
	}
	fmt.Printf("Schema version: %d (latest: %d)\n", version, latest)

	for _, table := range []string{"habits", "tasks", "user_stats"} {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			return fmt.Errorf("failed to count %s: %w", table, err)
		}
		fmt.Printf("%-12s %d row(s)\n", table, count)
	}

	return nil
}
