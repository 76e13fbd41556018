// Package http provides HTTP routing and middleware configuration
// for the notelink service.
package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/apetrenko/notelink/internal/metrics"
	"github.com/apetrenko/notelink/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves
// the notelink API.
//
// Routes:
//
//	POST   /register              → authHandler.Register
//	POST   /login                 → authHandler.Login
//	POST   /notes                 → noteHandler.Create
//	GET    /notes/{user_id}       → noteHandler.List
//	PUT    /notes/{note_id}       → noteHandler.Update
//	DELETE /notes/{note_id}       → noteHandler.Delete
//	GET    /share/{share_token}   → shareHandler.GetShared
//	GET    /metrics               → Prometheus metrics
//
// Middleware chain (applied in order):
//  1. WithCORS                              — allows cross-origin requests
//  2. WithRequestLogging(logger)            — logs incoming requests
//  3. WithRequestMetrics                    — counts requests per route/status
//  4. AllowContentType("application/json")  — rejects non-JSON request bodies
func NewRouter(
	authHandler *AuthHandler,
	noteHandler *NoteHandler,
	shareHandler *ShareHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithCORS)

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithRequestMetrics)

	// Only allow bodies with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Account endpoints
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Note lifecycle; authorization is trust-the-client by design
	r.Route("/notes", func(r chi.Router) {
		r.Post("/", noteHandler.Create)
		r.Get("/{user_id}", noteHandler.List)
		r.Put("/{note_id}", noteHandler.Update)
		r.Delete("/{note_id}", noteHandler.Delete)
	})

	// Public sharing: the token is the only authorization artifact
	r.Get("/share/{share_token}", shareHandler.GetShared)

	r.Handle("/metrics", metrics.Handler())

	return r
}
