package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
)

// Renderer executes the page templates. In dev mode templates are
// reparsed on each request.
type Renderer struct {
	dir   string
	dev   bool
	cache *template.Template
}

// NewRenderer parses the template set under dir. In dev mode parsing is
// deferred to render time.
func NewRenderer(dir string, dev bool) (*Renderer, error) {
	r := &Renderer{dir: dir, dev: dev}
	if !dev {
		t, err := parseTemplates(dir)
		if err != nil {
			return nil, err
		}
		r.cache = t
	}
	return r, nil
}

// Render executes the named page template with data.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t := r.cache
	if r.dev {
		tc, err := parseTemplates(r.dir)
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

func parseTemplates(dir string) (*template.Template, error) {
	// Recursively discover and parse all .tmpl files. ParseGlob doesn't
	// support **.
	var files []string
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}
	return template.New("_root").ParseFiles(files...)
}
