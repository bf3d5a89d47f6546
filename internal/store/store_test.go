package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sprouts.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"busy_timeout", "5000"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWithPragmas(t *testing.T) {
	dsn := withPragmas("/tmp/a.db")
	assert.Contains(t, dsn, "/tmp/a.db?")
	assert.Contains(t, dsn, "_pragma=busy_timeout%285000%29")

	dsn = withPragmas("file:/tmp/a.db?mode=rwc")
	assert.Contains(t, dsn, "mode=rwc&")
}

func TestMigrationKeepsExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")

	// A database from a release that only knew about words.
	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = raw.Exec(`CREATE TABLE words (word text NOT NULL PRIMARY KEY, image text NOT NULL, created_at datetime NOT NULL)`)
	require.NoError(t, err)
	_, err = raw.Exec(`INSERT INTO words (word, image, created_at) VALUES ('sun', 'data:image/png;base64,AA==', '2024-01-01 00:00:00')`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	n, err := s.CatalogRepo().Count(ctx, "words")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.CatalogRepo().Count(ctx, "colors")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("SPROUTS_DB", filepath.Join(dir, "custom", "game.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom", "game.db"), p)
	assert.DirExists(t, filepath.Join(dir, "custom"))

	t.Setenv("SPROUTS_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sprouts", "sprouts.db"), p)
}
