// Command seed loads templates and consultants from a JSON fixture file.
// Records in this system are created out of band; this is that path.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/isdelr/showcase-be/internal/config"
	"github.com/isdelr/showcase-be/internal/database"
	"github.com/isdelr/showcase-be/internal/logger"
	"github.com/isdelr/showcase-be/internal/models"
	"github.com/isdelr/showcase-be/internal/repository"
	"github.com/isdelr/showcase-be/internal/services"
	"github.com/rs/zerolog/log"
)

type fixture struct {
	Templates   []models.Template   `json:"templates"`
	Consultants []models.Consultant `json:"consultants"`
}

func main() {
	file := flag.String("file", "fixtures.json", "Path to the JSON fixture file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel, !cfg.IsProduction())

	fx, err := readFixture(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Failed to read fixture")
	}

	db, err := database.New(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.DatabaseDriver); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	listings := services.NewListingService(
		repository.NewTemplateRepo(db, cfg.DatabaseDriver),
		repository.NewConsultantRepo(db, cfg.DatabaseDriver),
	)
	templates, consultants, err := seed(context.Background(), listings, fx)
	if err != nil {
		log.Error().Err(err).Msg("Seeding stopped")
		os.Exit(1)
	}
	log.Info().Int("templates", templates).Int("consultants", consultants).Msg("Seeding complete")
}

func readFixture(path string) (fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixture{}, err
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	return fx, nil
}

func seed(ctx context.Context, listings *services.ListingService, fx fixture) (int, int, error) {
	var templates, consultants int
	for _, tmpl := range fx.Templates {
		if _, err := listings.CreateTemplate(ctx, tmpl); err != nil {
			return templates, consultants, fmt.Errorf("template %q: %w", tmpl.Title, err)
		}
		templates++
	}
	for _, c := range fx.Consultants {
		if _, err := listings.CreateConsultant(ctx, c); err != nil {
			return templates, consultants, fmt.Errorf("consultant %q: %w", c.Username, err)
		}
		consultants++
	}
	return templates, consultants, nil
}
