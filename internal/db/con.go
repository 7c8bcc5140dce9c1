package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	// PostgreSQL driver.
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	// SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/fr0stylo/tflwatch/internal/db/queries"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects the backing store. DSN is a file path for SQLite and a
// connection URL for PostgreSQL.
type Options struct {
	Driver     string
	DSN        string
	OpenParams []string
}

// Database wraps the query layer with the shared connection pool.
type Database struct {
	*queries.Queries
	db      *sql.DB
	dialect queries.Dialect
	tracker *queryLatencyTracker
}

// New opens the configured store and creates the attempt tables when absent.
func New(opts Options) (*Database, error) {
	driver := strings.ToLower(strings.TrimSpace(opts.Driver))
	if driver == "" {
		driver = DriverSQLite
	}

	var (
		dsn     string
		dialect queries.Dialect
	)
	switch driver {
	case DriverSQLite:
		path := opts.DSN
		if path == "" {
			path = "data/tflwatch"
		}
		dsn = sqliteDSN(path, opts.OpenParams...)
		dialect = queries.DialectSQLite
	case DriverPostgres:
		if strings.TrimSpace(opts.DSN) == "" {
			return nil, errors.New("postgres dsn is required")
		}
		dsn = opts.DSN
		dialect = queries.DialectPostgres
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == DriverPostgres {
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := migrate(db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	tracker := newQueryLatencyTracker()
	wrapped := newInstrumentedDBTX(db, string(dialect), tracker)

	return &Database{
		Queries: queries.New(wrapped, dialect),
		db:      db,
		dialect: dialect,
		tracker: tracker,
	}, nil
}

func migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations/"+driver); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func sqliteDSN(path string, openParams ...string) string {
	values := url.Values{}
	values.Set("_fk", "1")

	values.Add("_pragma", "foreign_keys(ON)")
	values.Add("_pragma", "journal_mode(WAL)")
	values.Add("_pragma", "synchronous(NORMAL)")
	values.Add("_pragma", "busy_timeout(5000)")
	values.Add("_pragma", "temp_store(MEMORY)")

	for _, param := range openParams {
		part := strings.TrimSpace(strings.TrimPrefix(param, "&"))
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		values.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return fmt.Sprintf("file:%s.sqlite?%s", path, values.Encode())
}

// Dialect reports which statement dialect the store uses.
func (c *Database) Dialect() queries.Dialect {
	return c.dialect
}

// Ping verifies the store is reachable.
func (c *Database) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the underlying database connection.
func (c *Database) Close() error {
	return c.db.Close()
}
