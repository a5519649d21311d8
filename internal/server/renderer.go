package server

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// TemplateRenderer implements echo.Renderer over templates embedded in the binary.
type TemplateRenderer struct {
	Templates map[string]*template.Template
}

// NewTemplateRenderer creates a renderer with pre-parsed page templates.
func NewTemplateRenderer() *TemplateRenderer {
	r := &TemplateRenderer{
		Templates: make(map[string]*template.Template),
	}
	r.parseTemplates()

	return r
}

func (t *TemplateRenderer) parseTemplates() {
	// Every page is layered on top of the base layout.
	parse := func(name, pageFile string) {
		t.Templates[name] = template.Must(template.ParseFS(
			templatesFS,
			"templates/base.html",
			"templates/"+pageFile,
		))
	}

	parse("index", "index.html")
	parse("files", "files.html")
}

// Render renders a template document through the "base" layout.
func (t *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := t.Templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}

	return tmpl.ExecuteTemplate(w, "base", data)
}
