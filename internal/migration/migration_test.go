package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestGetCurrentVersion(t *testing.T) {
	t.Run("fresh database is version zero", func(t *testing.T) {
		runner := NewRunner(openTestDB(t), fstest.MapFS{})

		version, err := runner.GetCurrentVersion()
		if err != nil {
			t.Fatalf("GetCurrentVersion() failed: %v", err)
		}
		if version != 0 {
			t.Errorf("version = %d, want 0", version)
		}
	})

	t.Run("reads the recorded version", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, fstest.MapFS{})

		if err := runner.EnsureSchemaVersionTable(); err != nil {
			t.Fatalf("EnsureSchemaVersionTable() failed: %v", err)
		}
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (3)"); err != nil {
			t.Fatalf("failed to seed version: %v", err)
		}

		version, err := runner.GetCurrentVersion()
		if err != nil {
			t.Fatalf("GetCurrentVersion() failed: %v", err)
		}
		if version != 3 {
			t.Errorf("version = %d, want 3", version)
		}
	})
}

func TestReadMigrationFiles(t *testing.T) {
	t.Run("parses and sorts by version", func(t *testing.T) {
		fsys := fstest.MapFS{
			"002_add_index.sql": {Data: []byte("CREATE INDEX idx ON t(a);")},
			"001_init.sql":      {Data: []byte("CREATE TABLE t (a INTEGER);")},
			"010_later.sql":     {Data: []byte("ALTER TABLE t ADD COLUMN b;")},
			"README.md":         {Data: []byte("not a migration")},
		}
		runner := NewRunner(openTestDB(t), fsys)

		migrations, err := runner.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() failed: %v", err)
		}
		if len(migrations) != 3 {
			t.Fatalf("got %d migrations, want 3", len(migrations))
		}

		wantVersions := []int{1, 2, 10}
		wantNames := []string{"init", "add_index", "later"}
		for i := range migrations {
			if migrations[i].Version != wantVersions[i] {
				t.Errorf("migration %d version = %d, want %d", i, migrations[i].Version, wantVersions[i])
			}
			if migrations[i].Name != wantNames[i] {
				t.Errorf("migration %d name = %q, want %q", i, migrations[i].Name, wantNames[i])
			}
		}
	})

	t.Run("rejects malformed filenames", func(t *testing.T) {
		fsys := fstest.MapFS{
			"init.sql": {Data: []byte("CREATE TABLE t (a INTEGER);")},
		}
		runner := NewRunner(openTestDB(t), fsys)

		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() accepted a filename without a version prefix")
		}
	})

	t.Run("rejects duplicate versions", func(t *testing.T) {
		fsys := fstest.MapFS{
			"001_a.sql": {Data: []byte("CREATE TABLE a (x INTEGER);")},
			"001_b.sql": {Data: []byte("CREATE TABLE b (x INTEGER);")},
		}
		runner := NewRunner(openTestDB(t), fsys)

		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() accepted duplicate versions")
		}
	})

	t.Run("rejects version zero", func(t *testing.T) {
		fsys := fstest.MapFS{
			"000_zero.sql": {Data: []byte("CREATE TABLE t (a INTEGER);")},
		}
		runner := NewRunner(openTestDB(t), fsys)

		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() accepted version 0")
		}
	})
}

func TestApplyMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT);")},
		"002_tag.sql":  {Data: []byte("ALTER TABLE notes ADD COLUMN tag TEXT;")},
	}

	t.Run("applies all pending in order", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, fsys)

		applied, err := runner.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("ApplyMigrations() failed: %v", err)
		}
		if applied != 2 {
			t.Errorf("applied = %d, want 2", applied)
		}

		version, err := runner.GetCurrentVersion()
		if err != nil {
			t.Fatalf("GetCurrentVersion() failed: %v", err)
		}
		if version != 2 {
			t.Errorf("version = %d, want 2", version)
		}

		if _, err := db.Exec("INSERT INTO notes (body, tag) VALUES ('x', 'y')"); err != nil {
			t.Errorf("migrated schema not usable: %v", err)
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, fsys)

		if _, err := runner.ApplyMigrations(nil); err != nil {
			t.Fatalf("first ApplyMigrations() failed: %v", err)
		}
		applied, err := runner.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("second ApplyMigrations() failed: %v", err)
		}
		if applied != 0 {
			t.Errorf("applied = %d on up-to-date schema, want 0", applied)
		}
	})

	t.Run("failed migration rolls back", func(t *testing.T) {
		db := openTestDB(t)
		bad := fstest.MapFS{
			"001_init.sql": {Data: []byte("CREATE TABLE notes (id INTEGER PRIMARY KEY);")},
			"002_bad.sql":  {Data: []byte("THIS IS NOT SQL;")},
		}
		runner := NewRunner(db, bad)

		applied, err := runner.ApplyMigrations(nil)
		if err == nil {
			t.Fatal("ApplyMigrations() succeeded with invalid SQL")
		}
		if applied != 1 {
			t.Errorf("applied = %d, want 1 (only the valid migration)", applied)
		}

		version, vErr := runner.GetCurrentVersion()
		if vErr != nil {
			t.Fatalf("GetCurrentVersion() failed: %v", vErr)
		}
		if version != 1 {
			t.Errorf("version = %d after failure, want 1", version)
		}
	})

	t.Run("rejects a database from the future", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, fsys)

		if err := runner.EnsureSchemaVersionTable(); err != nil {
			t.Fatalf("EnsureSchemaVersionTable() failed: %v", err)
		}
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (99)"); err != nil {
			t.Fatalf("failed to seed version: %v", err)
		}

		if _, err := runner.ApplyMigrations(nil); err == nil {
			t.Error("ApplyMigrations() accepted a newer-than-supported schema")
		}
		if err := runner.ValidateVersion(); err == nil {
			t.Error("ValidateVersion() accepted a newer-than-supported schema")
		}
	})
}
