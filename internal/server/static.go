package server

import (
	"net/http"
	"os"
	"strings"
)

// StaticMiddleware wraps an http.Handler to serve the landing page and static
// assets. API endpoints, healthz and metrics pass through; "/" serves the
// landing page; files under the static directory are served verbatim at
// /static/*. Everything else 404s.
func StaticMiddleware(next http.Handler, staticPath, indexPath string) http.Handler {
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(staticPath)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Let API endpoints, healthz and metrics pass through
		if r.URL.Path == "/allocate-investment" ||
			r.URL.Path == "/healthz" ||
			r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		// Serve the landing page for the root path
		if r.URL.Path == "/" {
			http.ServeFile(w, r, indexPath)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/static/") {
			// Reject traversal before touching the filesystem
			if strings.Contains(r.URL.Path, "..") {
				http.Error(w, "Invalid path", http.StatusBadRequest)
				return
			}

			path := staticPath + strings.TrimPrefix(r.URL.Path, "/static")
			if _, err := os.Stat(path); os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}

			fileServer.ServeHTTP(w, r)
			return
		}

		http.NotFound(w, r)
	})
}
