package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/isdelr/showcase-be/internal/database"
	"github.com/isdelr/showcase-be/internal/repository"
	"github.com/isdelr/showcase-be/internal/services"
)

const fixtureJSON = `{
  "templates": [
    {"title": "Blog starter", "ownerUsername": "ann", "contactEmail": "ann@x.com", "sourceLink": "https://github.com/ann/blog", "description": "A blog"},
    {"title": "Shop", "ownerUsername": "bob", "contactEmail": "bob@x.com", "sourceLink": "https://github.com/bob/shop", "imageRef": "shop.png"}
  ],
  "consultants": [
    {"username": "cara", "contactEmail": "cara@x.com", "experienceTitle": "Staff engineer"}
  ]
}`

func TestSeedFromFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures.json")
	if err := os.WriteFile(path, []byte(fixtureJSON), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fx, err := readFixture(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	db, err := database.New("sqlite", filepath.Join(dir, "seed.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db, "sqlite"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	listings := services.NewListingService(repository.NewTemplateRepo(db, "sqlite"), repository.NewConsultantRepo(db, "sqlite"))
	templates, consultants, err := seed(context.Background(), listings, fx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if templates != 2 || consultants != 1 {
		t.Fatalf("seeded %d templates and %d consultants", templates, consultants)
	}

	list, err := listings.ListTemplates(context.Background())
	if err != nil {
		t.Fatalf("list templates: %v", err)
	}
	if len(list) != 2 || list[0].Title != "Blog starter" || list[1].ImageRef != "shop.png" {
		t.Fatalf("templates = %+v", list)
	}
}

func TestReadFixtureRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := readFixture(path); err == nil {
		t.Fatal("expected decode error")
	}
}
