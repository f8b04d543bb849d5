package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/showcase-be/internal/api/handlers"
	"github.com/isdelr/showcase-be/internal/flash"
	"github.com/isdelr/showcase-be/internal/render"
	"github.com/isdelr/showcase-be/internal/services"
)

// Options carries the router settings that come from configuration.
type Options struct {
	AllowedOrigins []string
	MediaDir       string // Served under /media/ when non-empty
}

// NewRouter creates and configures a new Chi router.
func NewRouter(
	listingService services.ListingServiceProvider,
	accountService services.AccountServiceProvider,
	renderer *render.Renderer,
	flashes *flash.Store,
	opts Options,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes) // "/consulting/" and "/consulting" route the same

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(listingService, renderer, flashes)
	accountHandler := handlers.NewAccountHandler(accountService, flashes)

	r.NotFound(pageHandler.NotFound)

	r.Get("/", pageHandler.Home)
	r.Route("/consulting", func(r chi.Router) {
		r.Get("/", pageHandler.Consulting)
		r.Get("/{id}", pageHandler.ConsultantDetail)
	})
	r.Get("/templates/{id}", pageHandler.TemplateDetail)
	r.Get("/signup", pageHandler.Signup)
	r.Post("/signupsubmit", accountHandler.SignupSubmit)
	r.Get("/login", pageHandler.Login)

	if opts.MediaDir != "" {
		r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(opts.MediaDir))))
	}

	return r
}
