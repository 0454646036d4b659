package adaptor

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageFiles are the templates rendered inside the base layout.
var pageFiles = []string{
	"index.html",
	"register.html",
	"login.html",
	"new_movie.html",
	"movie_form.html",
	"movie_details.html",
	"error.html",
}

type Flash struct {
	Category string
	Message  string
}

// Page is the data every template receives.
type Page struct {
	Title       string
	Theme       string
	Email       string
	Flash       *Flash
	Errors      map[string]string
	Form        any
	Data        any
	CurrentPath string
}

type Renderer struct {
	pages map[string]*template.Template
	log   *zap.Logger
}

func NewRenderer(log *zap.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageFiles))

	for _, name := range pageFiles {
		tmpl, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{
		pages: pages,
		log:   log.With(zap.String("component", "renderer")),
	}, nil
}

// Render executes the page inside the base layout. The template runs into a
// buffer first so a render failure can still answer with a 500.
func (rn *Renderer) Render(w http.ResponseWriter, status int, name string, page *Page) {
	tmpl, ok := rn.pages[name]
	if !ok {
		rn.log.Error("Unknown template", zap.String("template", name))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", page); err != nil {
		rn.log.Error("Failed to render template",
			zap.Error(err),
			zap.String("template", name))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// RenderError renders the shared error page with the given status.
func (rn *Renderer) RenderError(w http.ResponseWriter, status int, page *Page, message string) {
	page.Title = fmt.Sprintf("%d - %s", status, http.StatusText(status))
	page.Data = message
	rn.Render(w, status, "error.html", page)
}
