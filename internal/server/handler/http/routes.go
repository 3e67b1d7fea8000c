// Package http provides HTTP routing and middleware configuration
// for the back-office API.
package http

import (
	"net/http"

	"github.com/oshaad/backoffice/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// back-office API. It applies panic recovery and request logging, and
// mounts the login and menu endpoints under /api. Reading the menu is
// public; every mutating menu endpoint requires a bearer token.
//
// Routes:
//
//	POST   /api/auth/login  → authHandler.Login
//	GET    /api/menu        → menuHandler.List
//	POST   /api/menu        → menuHandler.Create  (protected by BearerAuth)
//	PUT    /api/menu/{id}   → menuHandler.Update  (protected by BearerAuth)
//	DELETE /api/menu/{id}   → menuHandler.Delete  (protected by BearerAuth)
//	GET    /uploads/*       → stored menu images
func NewRouter(
	authHandler *AuthHandler,
	menuHandler *MenuHandler,
	jwtSecret string,
	uploadsDir string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Recover from handler panics instead of dropping the connection
	r.Use(chiMiddleware.Recoverer)
	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Login is JSON-only; menu mutations are multipart
		r.With(chiMiddleware.AllowContentType("application/json")).
			Post("/auth/login", authHandler.Login)

		// Public endpoint: the admin view and the marketing site both read it
		r.Get("/menu", menuHandler.List)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(jwtSecret))
			r.Post("/menu", menuHandler.Create)
			r.Put("/menu/{id}", menuHandler.Update)
			r.Delete("/menu/{id}", menuHandler.Delete)
		})
	})

	// Serve stored menu images
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	return r
}
