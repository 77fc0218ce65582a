// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"finance-tracker/internal/api/handler"
	"finance-tracker/internal/api/middleware"
)

// NewRouter sets up and returns a new HTTP router.
// Auth endpoints are public; the transactions subtree sits behind the
// access-token authentication gate.
func NewRouter(
	authHandler *handler.AuthHandler,
	transactionHandler *handler.TransactionHandler,
	verifier middleware.TokenVerifier,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.Auth(verifier))
			r.Post("/", transactionHandler.Create)
			r.Get("/", transactionHandler.List)
			r.Delete("/{transactionID}", transactionHandler.Delete)
		})
	})

	return r
}
