package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"courselens/internal/handlers"
	"courselens/internal/rag"
	"courselens/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Engine      rag.Engine
	StudentRepo storage.StudentStore
	Index       handlers.IndexStats
	Collection  string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	askHandler := handlers.NewAskHandler(deps.Engine)
	qualityHandler := handlers.NewQualityHandler(deps.Engine)
	topicsHandler := handlers.NewTopicsHandler(deps.Engine)
	datasetHandler := handlers.NewDatasetHandler(deps.StudentRepo, deps.Index, deps.Collection)
	studentsHandler := handlers.NewStudentsHandler(deps.StudentRepo)
	healthHandler := handlers.NewHealthHandler()

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/ask", askHandler)
		r.Method(http.MethodGet, "/quality", qualityHandler)
		r.Method(http.MethodGet, "/topics", topicsHandler)
		r.Method(http.MethodGet, "/dataset", datasetHandler)
		r.Get("/students", studentsHandler.List)
		r.Get("/students/{studentID}", studentsHandler.Get)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
