package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/showcase-be/internal/flash"
	"github.com/isdelr/showcase-be/internal/render"
	"github.com/isdelr/showcase-be/internal/repository"
	"github.com/isdelr/showcase-be/internal/services"
	"github.com/rs/zerolog/log"
)

// PageHandler serves the server-rendered pages.
type PageHandler struct {
	service  services.ListingServiceProvider
	renderer *render.Renderer
	flashes  *flash.Store
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(service services.ListingServiceProvider, renderer *render.Renderer, flashes *flash.Store) *PageHandler {
	return &PageHandler{service: service, renderer: renderer, flashes: flashes}
}

// Home renders every template.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.ListTemplates(r.Context())
	if err != nil {
		h.serverError(w, err, "Failed to retrieve templates")
		return
	}
	h.render(w, r, http.StatusOK, render.PageHome, &render.PageData{Title: "Templates", Templates: templates})
}

// Consulting renders every consultant.
func (h *PageHandler) Consulting(w http.ResponseWriter, r *http.Request) {
	consultants, err := h.service.ListConsultants(r.Context())
	if err != nil {
		h.serverError(w, err, "Failed to retrieve consultants")
		return
	}
	h.render(w, r, http.StatusOK, render.PageConsulting, &render.PageData{Title: "Consulting", Consultants: consultants})
}

// TemplateDetail renders one template.
func (h *PageHandler) TemplateDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	tmpl, err := h.service.GetTemplate(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, err, "Failed to retrieve template")
		return
	}
	h.render(w, r, http.StatusOK, render.PageTemplateDetail, &render.PageData{Title: tmpl.Title, Template: &tmpl})
}

// ConsultantDetail renders one consultant.
func (h *PageHandler) ConsultantDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	c, err := h.service.GetConsultant(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, err, "Failed to retrieve consultant")
		return
	}
	h.render(w, r, http.StatusOK, render.PageConsultantDetail, &render.PageData{Title: c.Username, Consultant: &c})
}

// Signup renders the empty signup form.
func (h *PageHandler) Signup(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, render.PageSignup, &render.PageData{Title: "Sign up"})
}

// Login renders the login form. There is no authentication behind it.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, render.PageLogin, &render.PageData{Title: "Log in"})
}

// NotFound renders the 404 page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, render.PageNotFound, &render.PageData{Title: "Not found"})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data *render.PageData) {
	data.Path = navPath(r.URL.Path)
	if msg, ok := h.flashes.Pop(w, r); ok {
		data.Flash = &msg
	}
	if err := h.renderer.Render(w, status, page, data); err != nil {
		h.serverError(w, err, "Failed to render page")
	}
}

func (h *PageHandler) serverError(w http.ResponseWriter, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// navPath gives the trailing-slash form of path, which the nav links use.
func navPath(path string) string {
	if !strings.HasSuffix(path, "/") {
		return path + "/"
	}
	return path
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
