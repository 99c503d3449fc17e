package api

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pallium-care/console/auth"
	"github.com/pallium-care/console/donations"
	"github.com/pallium-care/console/location"
	"github.com/pallium-care/console/notes"
	"github.com/pallium-care/console/patients"
)

//go:embed templates
var templateFS embed.FS

type Renderer struct {
	templates map[string]*template.Template
}

var _ echo.Renderer = &Renderer{}

func NewRenderer() (*Renderer, error) {
	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		name := strings.TrimSuffix(path.Base(page), ".html")
		t, err := template.New(name).Funcs(templateFuncs()).ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html", page)
		if err != nil {
			return nil, fmt.Errorf("unable to parse template %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s does not exist", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

func templateFuncs() template.FuncMap {
	title := cases.Title(language.English)
	return template.FuncMap{
		"title": func(s string) string {
			return title.String(strings.ReplaceAll(s, "-", " "))
		},
		"rupees": donations.FormatRupees,
		"place":  location.ParsePlace,
		"lines":  notes.ParseLines,
		"visible": func(supportType, field string) bool {
			return patients.IsVisible(supportType, field)
		},
		"visibleFor": visibleFor,
		"add": func(a, b int) int {
			return a + b
		},
		// Payment links are built by the donations package, never from input.
		"upiLink": func(uri string) template.URL {
			return template.URL(uri)
		},
		"deleteForm": func(action, csrf string) map[string]string {
			return map[string]string{"Action": action, "CSRF": csrf}
		},
	}
}

// visibleFor lists the support types that show field, for the form script.
func visibleFor(field string) string {
	types := make([]string, 0, len(patients.SupportTypes))
	for _, t := range patients.SupportTypes {
		if patients.IsVisible(string(t), field) {
			types = append(types, string(t))
		}
	}
	return strings.Join(types, " ")
}

// page is the data passed to every template.
type page struct {
	Title   string
	Path    string
	Session *auth.Session
	Flash   *Flash
	CSRF    string
	Data    any
}

func (h *Handler) page(c echo.Context, title string, data any) *page {
	p := &page{
		Title:   title,
		Path:    c.Request().URL.Path,
		Session: auth.GetSession(c.Request().Context()),
		Flash:   popFlash(c),
		Data:    data,
	}
	if token, ok := c.Get("csrf").(string); ok {
		p.CSRF = token
	}
	return p
}

func (h *Handler) render(c echo.Context, code int, name, title string, data any) error {
	return c.Render(code, name, h.page(c, title, data))
}
