package main

import (
	"embed"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
)

//go:embed all:static
var staticFS embed.FS

// mountStatic serves the embedded single-page client.
func mountStatic(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		serveStaticFile(w, r, "index.html")
	})
	r.Get("/static/*", func(w http.ResponseWriter, r *http.Request) {
		serveStaticFile(w, r, strings.TrimPrefix(r.URL.Path, "/static/"))
	})
}

func serveStaticFile(w http.ResponseWriter, r *http.Request, name string) {
	b, err := staticFS.ReadFile(path.Join("static", name))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch {
	case strings.HasSuffix(name, ".html"):
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	case strings.HasSuffix(name, ".js"):
		w.Header().Set("Content-Type", "application/javascript")
	case strings.HasSuffix(name, ".css"):
		w.Header().Set("Content-Type", "text/css")
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.Write(b)
}
