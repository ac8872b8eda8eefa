package controllers

import (
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"yatube/app/middleware"
	"yatube/app/models"
)

// loadTemplates loads and parses the named page templates, each combined
// with the shared layout. Keys are paths relative to app/views without the
// .html suffix, e.g. "posts/index".
func loadTemplates(basePath string, pages ...string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	for _, page := range pages {
		templates[page] = template.Must(template.ParseFiles(
			filepath.Join(basePath, "app/views/layout.html"),
			filepath.Join(basePath, "app/views/"+page+".html"),
		))
	}
	return templates
}

// render executes a page template against the layout
func render(w http.ResponseWriter, templates map[string]*template.Template, page string, data interface{}) {
	tmpl, ok := templates[page]
	if !ok {
		log.Printf("unknown template %q", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("template %q: %v", page, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// currentUser returns the signed-in account, or nil for guests
func currentUser(r *http.Request) *models.User {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		return nil
	}
	return user
}
