package handlers

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/go-faster/errors"
)

// ViewHandler serves the home page's partial view. The home page fetches it
// after load, as the live site fetches views/main.html.
type ViewHandler struct {
	template *template.Template
}

// NewViewHandler creates a handler for a partial view template
func NewViewHandler(templatesDir, name string) (*ViewHandler, error) {
	tmpl, err := template.ParseFiles(filepath.Join(templatesDir, name))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", name)
	}
	return &ViewHandler{template: tmpl}, nil
}

// ServeHTTP handles GET /views/main.html
func (h *ViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, nil); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
