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

const templateColumns = "id, title, owner_username, contact_email, source_link, image_ref, description, created_at"

// SQLTemplateRepo stores templates in the templates table.
type SQLTemplateRepo struct {
	db *sqlx.DB
}

// NewTemplateRepo creates a new SQLTemplateRepo.
func NewTemplateRepo(db *sql.DB, driver string) *SQLTemplateRepo {
	return &SQLTemplateRepo{db: sqlx.NewDb(db, driver)}
}

// scanTemplate is a helper to scan a template from a row or rows object.
func scanTemplate(scanner interface{ Scan(...any) error }) (models.Template, error) {
	var (
		tmpl      models.Template
		imageRef  sql.NullString
		createdAt int64
	)
	err := scanner.Scan(
		&tmpl.ID, &tmpl.Title, &tmpl.OwnerUsername, &tmpl.ContactEmail,
		&tmpl.SourceLink, &imageRef, &tmpl.Description, &createdAt,
	)
	if err != nil {
		return models.Template{}, err
	}
	tmpl.ImageRef = imageRef.String
	tmpl.CreatedAt = fromMillis(createdAt)
	return tmpl, nil
}

// ListAll returns every template in insertion order.
func (r *SQLTemplateRepo) ListAll(ctx context.Context) ([]models.Template, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+templateColumns+" FROM templates ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	templates := make([]models.Template, 0)
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, tmpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return templates, nil
}

// GetByID retrieves a single template by its ID.
func (r *SQLTemplateRepo) GetByID(ctx context.Context, id int64) (models.Template, error) {
	row := r.db.QueryRowContext(ctx, r.db.Rebind("SELECT "+templateColumns+" FROM templates WHERE id = ?"), id)
	tmpl, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Template{}, ErrNotFound
		}
		return models.Template{}, fmt.Errorf("get template %d: %w", id, err)
	}
	return tmpl, nil
}

// Create adds a new template. The ID and creation time are assigned here.
func (r *SQLTemplateRepo) Create(ctx context.Context, template models.Template) (models.Template, error) {
	template.CreatedAt = fromMillis(toMillis(time.Now()))

	const query = `
		INSERT INTO templates (title, owner_username, contact_email, source_link, image_ref, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query),
		template.Title, template.OwnerUsername, template.ContactEmail, template.SourceLink,
		nullString(template.ImageRef), template.Description, toMillis(template.CreatedAt),
	).Scan(&template.ID)
	if err != nil {
		return models.Template{}, fmt.Errorf("insert template: %w", err)
	}
	return template, nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

var _ TemplateRepository = (*SQLTemplateRepo)(nil)
