package store

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/ritmo/internal/storage/sqlite"
)

// newTestProvider creates an initialized SQLite store in a temp directory.
func newTestProvider(t *testing.T) *sqlite.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	provider := sqlite.NewStore(dbPath)
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() {
		provider.Close()
	})
	return provider
}
