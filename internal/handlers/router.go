package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Harris-PS/Post-Sharing-Fast-Api/internal/config"
	"github.com/Harris-PS/Post-Sharing-Fast-Api/internal/imagekit"
)

// NewRouter assembles the full HTTP surface: the posts API, the upload-auth
// endpoint, and the static single-page-app host with its API-aware fallback.
func NewRouter(cfg config.Config, store PostStore, authorizer *imagekit.Authorizer) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CorsAllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)

	r.Get("/health", Health)

	postsHandler := NewPostsHandler(store)
	r.Get("/posts", postsHandler.List)
	r.Post("/posts", postsHandler.Create)
	r.Get("/posts/{id}", postsHandler.Get)
	r.Delete("/posts/{id}", postsHandler.Delete)

	uploadAuth := NewUploadAuthHandler(authorizer)
	r.Get("/api/auth/imagekit", uploadAuth.Authenticate)

	spa := NewSPAHandler(cfg.StaticDir)
	r.Handle("/assets/*", spa.Assets())
	r.Get("/", spa.ServeIndex)
	r.NotFound(spa.Fallback)

	return r
}

func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SPAHandler serves the built front end. Unmatched non-API paths get the
// app shell so client-side routing works; unmatched API paths stay JSON.
type SPAHandler struct {
	staticDir string
}

func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{staticDir: staticDir}
}

func (s *SPAHandler) Assets() http.Handler {
	dir := http.Dir(filepath.Join(s.staticDir, "assets"))
	return http.StripPrefix("/assets/", http.FileServer(dir))
}

func (s *SPAHandler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		respondError(w, http.StatusNotFound, "Not Found")
		return
	}
	http.ServeFile(w, r, index)
}

func (s *SPAHandler) Fallback(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api") {
		respondError(w, http.StatusNotFound, "Not Found")
		return
	}
	s.ServeIndex(w, r)
}
