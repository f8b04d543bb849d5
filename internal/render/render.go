// Package render turns page data into HTML using the embedded templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/isdelr/showcase-be/internal/flash"
	"github.com/isdelr/showcase-be/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layoutFile = "templates/base.layout.html"

// Page names.
const (
	PageHome             = "home"
	PageConsulting       = "consulting"
	PageSignup           = "signup"
	PageLogin            = "login"
	PageTemplateDetail   = "template_detail"
	PageConsultantDetail = "consultant_detail"
	PageNotFound         = "not_found"
)

// PageData is the context handed to every page.
type PageData struct {
	Title       string
	Path        string
	Flash       *flash.Message
	Templates   []models.Template
	Consultants []models.Consultant
	Template    *models.Template
	Consultant  *models.Consultant
}

var functions = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006")
	},
	// imageURL maps a stored reference to something a browser can load.
	"imageURL": func(ref string) string {
		if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "/") {
			return ref
		}
		return "/media/" + ref
	},
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the layout together with every page template.
func New() (*Renderer, error) {
	pageFiles, err := fs.Glob(templatesFS, "templates/*.page.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageFiles))}
	for _, file := range pageFiles {
		name := strings.TrimSuffix(path.Base(file), ".page.html")
		ts, err := template.New(name).Funcs(functions).ParseFS(templatesFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = ts
	}
	return r, nil
}

// Render executes page into a buffer and writes it with status only if execution succeeded.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *PageData) error {
	ts, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("page %q does not exist", page)
	}
	if data == nil {
		data = &PageData{}
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		return fmt.Errorf("execute page %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
	return nil
}
