package database

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRequiresURL(t *testing.T) {
	t.Parallel()

	if _, err := New("sqlite", "  "); err == nil {
		t.Fatal("expected empty url error")
	}
}

func TestMigrateCreatesTablesAndIsRepeatable(t *testing.T) {
	t.Parallel()

	db, err := New("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, "sqlite"); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := Migrate(db, "sqlite"); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	for _, table := range []string{"accounts", "templates", "consultants"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestMigrateRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	db, err := New("sqlite", filepath.Join(t.TempDir(), "unknown.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, "mysql"); err == nil {
		t.Fatal("expected unsupported driver error")
	}
}

func TestSQLiteDSN(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{in: "./data/../app.db", want: "app.db?" + sqlitePragmas},
		{in: "/var/lib/app.db", want: "/var/lib/app.db?" + sqlitePragmas},
		{in: "file:app.db", want: "file:app.db?" + sqlitePragmas},
		{in: "file:app.db?cache=shared", want: "file:app.db?cache=shared&" + sqlitePragmas},
		{in: "app.db?mode=rwc", want: "app.db?mode=rwc&" + sqlitePragmas},
	}
	for _, tc := range cases {
		if got := sqliteDSN(tc.in); got != tc.want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewAcceptsFileURI(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "uri.db")
	db, err := New("sqlite", "file:"+path+"?mode=rwc")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("read pragma: %v", err)
	}
	if fk != 1 {
		t.Fatalf("foreign_keys = %d, want 1", fk)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file not created: %v", err)
	}
}

// Runs only when TEST_POSTGRES_URL points at a scratch database.
func TestMigratePostgresReleasesConnection(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_URL")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_URL not set")
	}

	db, err := New("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := Migrate(db, "postgres"); err != nil {
			t.Fatalf("migrate #%d: %v", i+1, err)
		}
	}
	if inUse := db.Stats().InUse; inUse != 0 {
		t.Fatalf("connections in use after migrate = %d, want 0", inUse)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("db closed by migrate: %v", err)
	}
}
