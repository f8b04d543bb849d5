package services

import (
	"context"
	"errors"
	"testing"

	"github.com/isdelr/showcase-be/internal/models"
	"github.com/isdelr/showcase-be/internal/repository"
)

type memTemplateRepo struct {
	items []models.Template
}

func (r *memTemplateRepo) ListAll(context.Context) ([]models.Template, error) {
	return append([]models.Template{}, r.items...), nil
}

func (r *memTemplateRepo) GetByID(_ context.Context, id int64) (models.Template, error) {
	for _, t := range r.items {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Template{}, repository.ErrNotFound
}

func (r *memTemplateRepo) Create(_ context.Context, t models.Template) (models.Template, error) {
	t.ID = int64(len(r.items) + 1)
	r.items = append(r.items, t)
	return t, nil
}

type memConsultantRepo struct {
	items []models.Consultant
}

func (r *memConsultantRepo) ListAll(context.Context) ([]models.Consultant, error) {
	return append([]models.Consultant{}, r.items...), nil
}

func (r *memConsultantRepo) GetByID(_ context.Context, id int64) (models.Consultant, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Consultant{}, repository.ErrNotFound
}

func (r *memConsultantRepo) Create(_ context.Context, c models.Consultant) (models.Consultant, error) {
	c.ID = int64(len(r.items) + 1)
	r.items = append(r.items, c)
	return c, nil
}

func TestListingsReturnStoredRecordsInOrder(t *testing.T) {
	t.Parallel()

	svc := NewListingService(&memTemplateRepo{}, &memConsultantRepo{})
	ctx := context.Background()
	for _, title := range []string{"First", "Second"} {
		_, err := svc.CreateTemplate(ctx, models.Template{
			Title: title, OwnerUsername: "owner", ContactEmail: "o@x.com", SourceLink: "https://example.com",
		})
		if err != nil {
			t.Fatalf("create template %q: %v", title, err)
		}
	}

	templates, err := svc.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("list templates: %v", err)
	}
	if len(templates) != 2 || templates[0].Title != "First" || templates[1].Title != "Second" {
		t.Fatalf("templates = %+v", templates)
	}

	consultants, err := svc.ListConsultants(ctx)
	if err != nil {
		t.Fatalf("list consultants: %v", err)
	}
	if len(consultants) != 0 {
		t.Fatalf("consultants = %d, want 0", len(consultants))
	}
}

func TestGetListingNotFound(t *testing.T) {
	t.Parallel()

	svc := NewListingService(&memTemplateRepo{}, &memConsultantRepo{})
	if _, err := svc.GetTemplate(context.Background(), 7); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("get template error = %v, want %v", err, repository.ErrNotFound)
	}
	if _, err := svc.GetConsultant(context.Background(), 7); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("get consultant error = %v, want %v", err, repository.ErrNotFound)
	}
}

func TestCreateListingRequiresFields(t *testing.T) {
	t.Parallel()

	templates := &memTemplateRepo{}
	consultants := &memConsultantRepo{}
	svc := NewListingService(templates, consultants)

	if _, err := svc.CreateTemplate(context.Background(), models.Template{Title: "No owner"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("create template error = %v, want %v", err, ErrInvalidInput)
	}
	if _, err := svc.CreateConsultant(context.Background(), models.Consultant{Username: "c"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("create consultant error = %v, want %v", err, ErrInvalidInput)
	}
	if len(templates.items) != 0 || len(consultants.items) != 0 {
		t.Fatal("invalid records were stored")
	}

	c, err := svc.CreateConsultant(context.Background(), models.Consultant{
		Username: "c", ContactEmail: "c@x.com", ExperienceTitle: "Go backend",
	})
	if err != nil {
		t.Fatalf("create consultant: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("consultant id = %d, want 1", c.ID)
	}
}
