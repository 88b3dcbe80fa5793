package api

import (
	"net/http"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/aitoolhub/aitoolhub/docs/swagger"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	AuthHandlers   *auth.Handlers
	AuthMiddleware *auth.Middleware
	Stores         store.Stores
	Logger         *zap.Logger
}

// NewRouter assembles the full chi router with all middleware and routes.
// Read routes are public; review submission requires any authenticated
// identity; tool mutation and user management sit behind the admin gate.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// The public site and admin dashboard are served from other origins
	// and talk to this API with fetch.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	tools := &toolsHandler{tools: deps.Stores.Tools, logger: deps.Logger}
	reviews := &reviewsHandler{
		reviews: deps.Stores.Reviews,
		tools:   deps.Stores.Tools,
		users:   deps.Stores.Users,
		logger:  deps.Logger,
	}
	newsFeed := &newsHandler{news: deps.Stores.News, logger: deps.Logger}
	admin := &adminHandler{users: deps.Stores.Users, logger: deps.Logger}

	r.Route("/api", func(r chi.Router) {
		r.Use(jsonContentType)

		// Public routes
		r.Post("/register", deps.AuthHandlers.Register)
		r.Post("/login", deps.AuthHandlers.Login)
		r.Get("/tools", tools.List)
		r.Get("/reviews/{toolId}", reviews.ListByTool)
		r.Get("/news", newsFeed.List)

		// Any authenticated identity
		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Post("/reviews", reviews.Submit)
		})

		// Admin gate
		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMiddleware.RequireAuth)
			r.Use(deps.AuthMiddleware.RequireAdmin)

			r.Post("/tools", tools.Create)
			r.Put("/tools/{id}", tools.Update)
			r.Delete("/tools/{id}", tools.Delete)

			r.Get("/admin/users", admin.ListUsers)
			r.Put("/admin/users/{id}/role", admin.UpdateRole)
		})
	})

	return r
}

// jsonContentType sets Content-Type: application/json on all API responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
