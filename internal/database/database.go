package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq" // Postgres driver
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// New creates a new database connection pool for the given driver.
func New(driver, dataSourceName string) (*sql.DB, error) {
	if strings.TrimSpace(dataSourceName) == "" {
		return nil, errors.New("database url is required")
	}

	dsn := dataSourceName
	if driver == "sqlite" {
		dsn = sqliteDSN(dataSourceName)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if driver == "sqlite" {
		// SQLite allows one writer at a time.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	return db, nil
}

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// sqliteDSN appends the connection pragmas to a file path or a file: URI.
// Plain paths are cleaned; URIs and query strings are kept as given.
func sqliteDSN(dataSourceName string) string {
	if strings.HasPrefix(dataSourceName, "file:") || strings.Contains(dataSourceName, "?") {
		sep := "?"
		if strings.Contains(dataSourceName, "?") {
			sep = "&"
		}
		return dataSourceName + sep + sqlitePragmas
	}
	return filepath.Clean(dataSourceName) + "?" + sqlitePragmas
}

// Migrate applies the embedded schema migrations for the given driver.
// db stays open; for postgres the connection used for migrating is
// returned to the pool when Migrate returns.
func Migrate(db *sql.DB, driver string) error {
	var (
		target migratedb.Driver
		err    error
	)
	switch driver {
	case "sqlite":
		target, err = sqlite.WithInstance(db, &sqlite.Config{})
	case "postgres":
		target, err = postgresTarget(db)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return fmt.Errorf("init migration driver: %w", err)
	}
	if driver == "postgres" {
		// Closes only the dedicated connection, not db.
		defer target.Close()
	}

	source, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, target)
	if err != nil {
		return fmt.Errorf("start migrations: %w", err)
	}

	// m.Close is not called: the sqlite driver would close db.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func postgresTarget(db *sql.DB) (migratedb.Driver, error) {
	ctx := context.Background()
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	target, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return target, nil
}
