package services

import (
	"context"
	"strings"

	"github.com/isdelr/showcase-be/internal/models"
	"github.com/isdelr/showcase-be/internal/repository"
)

// ListingServiceProvider defines the interface for the template and consultant listings.
type ListingServiceProvider interface {
	ListTemplates(ctx context.Context) ([]models.Template, error)
	GetTemplate(ctx context.Context, id int64) (models.Template, error)
	ListConsultants(ctx context.Context) ([]models.Consultant, error)
	GetConsultant(ctx context.Context, id int64) (models.Consultant, error)
}

// ListingService serves read-only listings and the out-of-band creation used for seeding.
type ListingService struct {
	templates   repository.TemplateRepository
	consultants repository.ConsultantRepository
}

// NewListingService creates a new ListingService.
func NewListingService(templates repository.TemplateRepository, consultants repository.ConsultantRepository) *ListingService {
	return &ListingService{templates: templates, consultants: consultants}
}

// ListTemplates returns every stored template in insertion order.
func (s *ListingService) ListTemplates(ctx context.Context) ([]models.Template, error) {
	return s.templates.ListAll(ctx)
}

// GetTemplate returns one template or repository.ErrNotFound.
func (s *ListingService) GetTemplate(ctx context.Context, id int64) (models.Template, error) {
	return s.templates.GetByID(ctx, id)
}

// ListConsultants returns every stored consultant in insertion order.
func (s *ListingService) ListConsultants(ctx context.Context) ([]models.Consultant, error) {
	return s.consultants.ListAll(ctx)
}

// GetConsultant returns one consultant or repository.ErrNotFound.
func (s *ListingService) GetConsultant(ctx context.Context, id int64) (models.Consultant, error) {
	return s.consultants.GetByID(ctx, id)
}

// CreateTemplate stores a template supplied by an operator.
func (s *ListingService) CreateTemplate(ctx context.Context, tmpl models.Template) (models.Template, error) {
	switch {
	case strings.TrimSpace(tmpl.Title) == "":
		return models.Template{}, invalidInput("title is required")
	case strings.TrimSpace(tmpl.OwnerUsername) == "":
		return models.Template{}, invalidInput("owner username is required")
	case strings.TrimSpace(tmpl.ContactEmail) == "":
		return models.Template{}, invalidInput("contact email is required")
	case strings.TrimSpace(tmpl.SourceLink) == "":
		return models.Template{}, invalidInput("source link is required")
	}
	return s.templates.Create(ctx, tmpl)
}

// CreateConsultant stores a consultant supplied by an operator.
func (s *ListingService) CreateConsultant(ctx context.Context, c models.Consultant) (models.Consultant, error) {
	switch {
	case strings.TrimSpace(c.Username) == "":
		return models.Consultant{}, invalidInput("username is required")
	case strings.TrimSpace(c.ContactEmail) == "":
		return models.Consultant{}, invalidInput("contact email is required")
	case strings.TrimSpace(c.ExperienceTitle) == "":
		return models.Consultant{}, invalidInput("experience title is required")
	}
	return s.consultants.Create(ctx, c)
}

var _ ListingServiceProvider = (*ListingService)(nil)
