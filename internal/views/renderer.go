package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates
var templatesFS embed.FS

var funcs = template.FuncMap{
	"hasString": func(list []string, s string) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	},
	"cards": func(heading, base string, cards []ShowCard) map[string]any {
		return map[string]any{"Heading": heading, "Base": base, "Cards": cards}
	},
}

// Renderer holds one parsed template set per page, each combined with the
// shared layout and partials.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	return newRenderer(templatesFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	shared := []string{"templates/layouts/*.html", "templates/partials/*.html"}

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, dir := range []string{"pages", "forms", "errors"} {
		files, err := fs.Glob(fsys, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			patterns := append([]string{file}, shared...)
			tmpl, err := template.New("layout").Funcs(funcs).ParseFS(fsys, patterns...)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
			r.pages[name] = tmpl
		}
	}
	return r, nil
}

// Render executes the named page ("pages/home", "errors/404", ...) into a
// buffer and only then writes the status and body, so a template failure
// never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
