// Package server wires the handlers, middleware, and routes into an
// http.Handler.
package server

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roomiesplit/roomiesplit/internal/auth"
	"github.com/roomiesplit/roomiesplit/internal/handler"
	"github.com/roomiesplit/roomiesplit/internal/middleware"
	"github.com/roomiesplit/roomiesplit/internal/storage"
)

type Server struct {
	store      storage.Store
	jwtManager *auth.JWTManager
	authH      *handler.AuthHandler
	householdH *handler.HouseholdHandler
	purchaseH  *handler.PurchaseHandler
	prefH      *handler.PreferenceHandler
	logger     *slog.Logger
}

func New(store storage.Store, jwtManager *auth.JWTManager, logger *slog.Logger) *Server {
	authenticator := auth.NewPasswordAuthenticator(store)

	return &Server{
		store:      store,
		jwtManager: jwtManager,
		authH:      handler.NewAuthHandler(authenticator, jwtManager, logger.With("component", "auth")),
		householdH: handler.NewHouseholdHandler(store, logger.With("component", "household")),
		purchaseH:  handler.NewPurchaseHandler(store, logger.With("component", "purchase")),
		prefH:      handler.NewPreferenceHandler(store, logger.With("component", "preference")),
		logger:     logger,
	}
}

// Router builds the full route table. Public routes are registered directly;
// everything else under /api/ passes through the bearer-auth middleware
// before reaching a handler.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Public routes (no auth required)
	mux.HandleFunc("POST /api/auth/register", s.authH.Register)
	mux.HandleFunc("POST /api/auth/login", s.authH.Login)
	mux.HandleFunc("GET /api/health", s.healthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.jwtManager, handler.WriteError)
	mux.Handle("/api/", authMiddleware(protectedMux))

	h := middleware.Metrics()(mux)
	h = middleware.Recover(s.logger.With("component", "recover"), handler.WriteError)(h)
	return middleware.RequestLogger(s.logger.With("component", "http"))(h)
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	// Household routes
	mux.HandleFunc("POST /api/household", s.householdH.Create)
	mux.HandleFunc("GET /api/household", s.householdH.Get)
	mux.HandleFunc("PUT /api/household/{id}", s.householdH.ReplaceRoommates)
	mux.HandleFunc("DELETE /api/household/{id}", s.householdH.Delete)

	// Purchase routes
	mux.HandleFunc("POST /api/purchases", s.purchaseH.Create)
	mux.HandleFunc("GET /api/purchases", s.purchaseH.List)
	mux.HandleFunc("PUT /api/purchases/{id}", s.purchaseH.Update)
	mux.HandleFunc("PATCH /api/purchases/{id}", s.purchaseH.Update)
	mux.HandleFunc("DELETE /api/purchases/{id}", s.purchaseH.Delete)

	// Preference routes
	mux.HandleFunc("PUT /api/preferences", s.prefH.UpdateDarkMode)
	mux.HandleFunc("PATCH /api/preferences", s.prefH.UpdateDarkMode)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
