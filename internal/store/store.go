package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/sprouts/internal/content"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the SQLite database and hands out repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver

	// One writer lock per catalog collection.
	locks map[content.Kind]*sync.Mutex
}

// Open creates a new Store connected to the SQLite database at dsn.
// Every pooled connection gets the recommended pragmas, then the schema
// is migrated. Migration is additive: existing tables and rows are kept.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	locks := make(map[content.Kind]*sync.Mutex, len(content.Kinds))
	for _, k := range content.Kinds {
		locks[k] = &sync.Mutex{}
	}

	return &Store{db: db, drv: drv, locks: locks}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// CatalogRepo returns the repository for the three content collections.
func (s *Store) CatalogRepo() CatalogRepo {
	return &catalogRepo{db: s.db, locks: s.locks}
}

// SettingsRepo returns the key/value settings repository.
func (s *Store) SettingsRepo() SettingsRepo {
	return &settingsRepo{db: s.db}
}

// EventRepo returns the LLM request event repository.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// pragmas configure SQLite for single-user use. They go into the DSN so
// the driver applies them on every new connection in the pool.
var pragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

func withPragmas(dsn string) string {
	q := url.Values{}
	for _, p := range pragmas {
		q.Add("_pragma", p)
	}
	q.Set("_time_format", "sqlite")

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + q.Encode()
}

// DefaultDBPath resolves the database file path in priority order:
// 1. SPROUTS_DB environment variable
// 2. $XDG_DATA_HOME/sprouts/sprouts.db
// 3. ~/.local/share/sprouts/sprouts.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SPROUTS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "sprouts", "sprouts.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

// builder returns an SQL builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}
