package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isdelr/showcase-be/internal/models"
	"github.com/jmoiron/sqlx"
)

// SQLAccountRepo stores accounts in the accounts table.
type SQLAccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepo creates a new SQLAccountRepo.
func NewAccountRepo(db *sql.DB, driver string) *SQLAccountRepo {
	return &SQLAccountRepo{db: sqlx.NewDb(db, driver)}
}

// FindByEmail retrieves a single account by its email, including the password hash.
func (r *SQLAccountRepo) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	var (
		account   models.Account
		createdAt int64
	)
	row := r.db.QueryRowContext(ctx,
		r.db.Rebind("SELECT id, username, email, password_hash, created_at FROM accounts WHERE email = ?"),
		email,
	)
	err := row.Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNotFound
		}
		return models.Account{}, fmt.Errorf("find account by email: %w", err)
	}
	account.CreatedAt = fromMillis(createdAt)
	return account, nil
}

// Create inserts an account. A second account with the same email yields ErrDuplicate.
func (r *SQLAccountRepo) Create(ctx context.Context, account models.Account) (models.Account, error) {
	if account.ID == "" {
		return models.Account{}, errors.New("account id is required")
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	// Millisecond precision is what the store keeps.
	account.CreatedAt = fromMillis(toMillis(account.CreatedAt))

	_, err := r.db.ExecContext(ctx,
		r.db.Rebind("INSERT INTO accounts (id, username, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)"),
		account.ID, account.Username, account.Email, account.PasswordHash, toMillis(account.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Account{}, ErrDuplicate
		}
		return models.Account{}, fmt.Errorf("insert account: %w", err)
	}
	return account, nil
}

var _ AccountRepository = (*SQLAccountRepo)(nil)
