package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// MemoryDSN is the default database: it lives only as long as the process.
const MemoryDSN = "file:aula?mode=memory&cache=shared"

// Store owns the SQLite connection and provides access to repositories.
type Store struct {
	db      *sql.DB
	builder *entsql.DialectBuilder
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, builder: entsql.Dialect(dialect.SQLite)}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	// A shared in-memory database disappears when its last connection
	// closes; a single connection also serializes writers.
	db.SetMaxOpenConns(1)
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, b: s.builder}
}

// withPragmas adds the connection pragmas to dsn so that every pooled
// connection gets them. WAL needs a file.
func withPragmas(dsn string) string {
	pragmas := []string{"busy_timeout(5000)", "foreign_keys(1)", "synchronous(1)"}
	if !isMemory(dsn) {
		pragmas = append(pragmas, "journal_mode(WAL)")
	}
	q := make(url.Values)
	q["_pragma"] = pragmas
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + q.Encode()
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// ResolveDSN maps the --db flag to a DSN. An empty path selects the
// in-memory database; a file path gets its parent directory created.
func ResolveDSN(path string) (string, error) {
	if path == "" {
		return MemoryDSN, nil
	}
	if err := EnsureDir(path); err != nil {
		return "", fmt.Errorf("create database directory: %w", err)
	}
	return path, nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
