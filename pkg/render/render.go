// Package render executes the embedded page templates for echo.
//
// Every page template is parsed together with the shared layout and partials.
// Rendering "home" executes the layout; rendering "client-success:testimonials"
// executes only the named block of that page, for fragment responses.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html templates/partials/*.html
var templatesFS embed.FS

const (
	layoutTemplate = "layout"
	fragmentSep    = ":"
)

// Renderer implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page under templates/ with the shared layout.
func New() (*Renderer, error) {
	base, err := template.New(layoutTemplate).Funcs(funcs()).ParseFS(templatesFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	entries, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(path.Base(entry), ".html")
		if name == layoutTemplate {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		tmpl, err := clone.ParseFS(templatesFS, entry)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// MustNew is New that panics, for wiring at startup.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Has reports whether name resolves to a page or fragment.
func (r *Renderer) Has(name string) bool {
	tmpl, block, err := r.lookup(name)
	return err == nil && tmpl.Lookup(block) != nil
}

// Render executes name into w. Output is buffered so a failing template never
// leaves a half-written page behind.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, block, err := r.lookup(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, block, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func (r *Renderer) lookup(name string) (*template.Template, string, error) {
	page, block, fragment := strings.Cut(name, fragmentSep)
	tmpl, ok := r.pages[page]
	if !ok {
		return nil, "", fmt.Errorf("render: unknown page %q", page)
	}
	if !fragment {
		block = layoutTemplate
	}
	return tmpl, block, nil
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"href": href,
	}
}

// href admits relative, http(s), mailto, and tel links. Anything else
// becomes "#".
func href(s string) template.URL {
	u, err := url.Parse(s)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return template.URL(s)
	default:
		return "#"
	}
}
