// Package rest wires the chi router for the HTTP API.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"hmaas-backend/application/services"
	"hmaas-backend/interfaces/http/rest/handlers"
	"hmaas-backend/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	itemService     *services.ItemService
	categoryService *services.CategoryService
	logger          *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	itemService *services.ItemService,
	categoryService *services.CategoryService,
	logger *zap.Logger,
) *Router {
	return &Router{
		itemService:     itemService,
		categoryService: categoryService,
		logger:          logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)

	router.Route("/items", func(r chi.Router) {
		itemHandler := handlers.NewItemHandler(rt.itemService, rt.logger)
		r.Post("/", itemHandler.CreateItem)
		r.Get("/", itemHandler.ListItems)
		r.Get("/{itemID}", itemHandler.GetItem)
		r.Delete("/{itemID}", itemHandler.DeleteItem)
	})

	router.Route("/categories", func(r chi.Router) {
		categoryHandler := handlers.NewCategoryHandler(rt.categoryService, rt.logger)
		r.Post("/", categoryHandler.CreateCategory)
		r.Get("/", categoryHandler.ListCategories)
		r.Get("/{categoryID}", categoryHandler.GetCategory)
		r.Delete("/{categoryID}", categoryHandler.DeleteCategory)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
