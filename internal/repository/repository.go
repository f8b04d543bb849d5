// Package repository holds the SQL-backed record stores for accounts, templates and consultants.
// The same queries run against SQLite and Postgres; sqlx rebinds placeholders per driver.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/isdelr/showcase-be/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")
)

// AccountRepository defines the storage capabilities the signup workflow needs.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	Create(ctx context.Context, account models.Account) (models.Account, error)
}

// TemplateRepository defines storage for showcased templates.
type TemplateRepository interface {
	ListAll(ctx context.Context) ([]models.Template, error)
	GetByID(ctx context.Context, id int64) (models.Template, error)
	Create(ctx context.Context, template models.Template) (models.Template, error)
}

// ConsultantRepository defines storage for consultant directory entries.
type ConsultantRepository interface {
	ListAll(ctx context.Context) ([]models.Consultant, error)
	GetByID(ctx context.Context, id int64) (models.Consultant, error)
	Create(ctx context.Context, consultant models.Consultant) (models.Consultant, error)
}

func init() {
	// modernc registers as "sqlite", which sqlx does not map by default.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
