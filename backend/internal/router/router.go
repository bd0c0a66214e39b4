package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nadeuri-dev/nadeuri/backend/internal/setup"
	mw "github.com/nadeuri-dev/nadeuri/shared/middleware"
	"github.com/nadeuri-dev/nadeuri/shared/middleware/metrics"
)

// Backend CSP: strict policy (JSON API only, no scripts/styles needed)
const backendCSP = "default-src 'none'; frame-ancestors 'none'"

// New creates the chi router with every route of the API.
func New(deps *setup.Dependencies) http.Handler {
	cfg := deps.Config
	h := deps.Handler

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// setup CORS for frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Public.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(mw.HeaderOptions{
		HTTPS:                cfg.Public.Http.HTTPS,
		CSP:                  backendCSP,
		CrossOriginResources: len(cfg.Public.CorsOrigins) > 0,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1/boards", func(r chi.Router) {
		r.With(middleware.Compress(5)).Get("/", h.GetBoards)
		r.Post("/", h.RegisterBoard)
		r.Route("/{id}", func(r chi.Router) {
			r.With(middleware.Compress(5)).Get("/", h.GetBoard)
			r.Put("/", h.UpdateBoard)
			r.Delete("/", h.DeleteBoard)
		})
	})

	// Locally stored images are served back under the upload path.
	if deps.MediaRoot != "" {
		prefix := "/" + strings.Trim(cfg.Public.Media.UploadPath, "/")
		fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(deps.MediaRoot)))
		r.Handle(prefix+"/*", fileServer)
	}

	return r
}
