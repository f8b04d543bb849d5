package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isdelr/showcase-be/internal/api"
	"github.com/isdelr/showcase-be/internal/config"
	"github.com/isdelr/showcase-be/internal/database"
	"github.com/isdelr/showcase-be/internal/flash"
	"github.com/isdelr/showcase-be/internal/logger"
	"github.com/isdelr/showcase-be/internal/render"
	"github.com/isdelr/showcase-be/internal/repository"
	"github.com/isdelr/showcase-be/internal/services"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel, !cfg.IsProduction())

	// Set up database
	db, err := database.New(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.DatabaseDriver); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up services
	accountService := services.NewAccountService(
		repository.NewAccountRepo(db, cfg.DatabaseDriver),
		services.BcryptHasher{Cost: cfg.BcryptCost},
	)
	listingService := services.NewListingService(
		repository.NewTemplateRepo(db, cfg.DatabaseDriver),
		repository.NewConsultantRepo(db, cfg.DatabaseDriver),
	)

	renderer, err := render.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse page templates")
	}
	flashes := flash.NewStore(cfg.FlashSecret, cfg.IsProduction())

	// Set up router
	router := api.NewRouter(listingService, accountService, renderer, flashes, api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		MediaDir:       cfg.MediaDir,
	})

	// Set up server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
