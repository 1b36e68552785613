package server

import (
	"net/http"

	staticfiles "github.com/fletchernt/extinction-escape/static"
)

// RegisterStatic serves the embedded installable shell: the index page, the
// web app manifest and the service worker script at stable paths. What the
// worker caches is its own business; the server only guarantees the assets
// exist offline-cacheable here.
func RegisterStatic(mux *http.ServeMux) {
	fsHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))

	mux.Handle("GET /index.html", fsHandler)
	mux.Handle("GET /manifest.webmanifest", fsHandler)

	mux.HandleFunc("GET /sw.js", func(w http.ResponseWriter, r *http.Request) {
		// Service workers must not be cached aggressively or updates stall.
		w.Header().Set("Cache-Control", "no-cache")
		fsHandler.ServeHTTP(w, r)
	})

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, staticfiles.EmbeddedFS(), "index.html")
	})
}
