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

const consultantColumns = "id, username, contact_email, experience_title, description, image_ref, created_at"

// SQLConsultantRepo stores consultants in the consultants table.
type SQLConsultantRepo struct {
	db *sqlx.DB
}

// NewConsultantRepo creates a new SQLConsultantRepo.
func NewConsultantRepo(db *sql.DB, driver string) *SQLConsultantRepo {
	return &SQLConsultantRepo{db: sqlx.NewDb(db, driver)}
}

func scanConsultant(scanner interface{ Scan(...any) error }) (models.Consultant, error) {
	var (
		c         models.Consultant
		imageRef  sql.NullString
		createdAt int64
	)
	err := scanner.Scan(&c.ID, &c.Username, &c.ContactEmail, &c.ExperienceTitle, &c.Description, &imageRef, &createdAt)
	if err != nil {
		return models.Consultant{}, err
	}
	c.ImageRef = imageRef.String
	c.CreatedAt = fromMillis(createdAt)
	return c, nil
}

// ListAll returns every consultant in insertion order.
func (r *SQLConsultantRepo) ListAll(ctx context.Context) ([]models.Consultant, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+consultantColumns+" FROM consultants ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list consultants: %w", err)
	}
	defer rows.Close()

	consultants := make([]models.Consultant, 0)
	for rows.Next() {
		c, err := scanConsultant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consultant: %w", err)
		}
		consultants = append(consultants, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate consultants: %w", err)
	}
	return consultants, nil
}

// GetByID retrieves a single consultant by its ID.
func (r *SQLConsultantRepo) GetByID(ctx context.Context, id int64) (models.Consultant, error) {
	row := r.db.QueryRowContext(ctx, r.db.Rebind("SELECT "+consultantColumns+" FROM consultants WHERE id = ?"), id)
	c, err := scanConsultant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Consultant{}, ErrNotFound
		}
		return models.Consultant{}, fmt.Errorf("get consultant %d: %w", id, err)
	}
	return c, nil
}

// Create adds a new consultant. The ID and creation time are assigned here.
func (r *SQLConsultantRepo) Create(ctx context.Context, consultant models.Consultant) (models.Consultant, error) {
	consultant.CreatedAt = fromMillis(toMillis(time.Now()))

	const query = `
		INSERT INTO consultants (username, contact_email, experience_title, description, image_ref, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query),
		consultant.Username, consultant.ContactEmail, consultant.ExperienceTitle,
		consultant.Description, nullString(consultant.ImageRef), toMillis(consultant.CreatedAt),
	).Scan(&consultant.ID)
	if err != nil {
		return models.Consultant{}, fmt.Errorf("insert consultant: %w", err)
	}
	return consultant, nil
}

var _ ConsultantRepository = (*SQLConsultantRepo)(nil)
