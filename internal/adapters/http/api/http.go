// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/sampleapp/internal/domain/model"
	"github.com/okian/sampleapp/internal/domain/types"
	"github.com/okian/sampleapp/pkg/logger"
)

// UserDependencies is what the users handlers need from the service layer.
type UserDependencies interface {
	Info() types.AppInfo
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	CreateUser(ctx context.Context, u model.NewUser) (model.User, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	homeHandler   *HomeHandler
	healthHandler *HealthHandler
	usersHandler  *UsersHandler
}

// NewServer creates a new API server with all handlers. The build identity
// is read from users once and reported as-is for the lifetime of the server.
func NewServer(users UserDependencies, log logger.Logger) *Server {
	info := users.Info()
	return &Server{
		homeHandler:   NewHomeHandler(info),
		healthHandler: NewHealthHandler(info),
		usersHandler:  NewUsersHandler(users, log),
	}
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(_ context.Context, r chi.Router) {
	r.Get("/", MetricsMiddleware(s.homeHandler.HandleHome, "home"))
	r.Get("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
	r.Method(http.MethodGet, "/metrics", s.healthHandler.MetricsHandler())
	s.usersHandler.Routes(r)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
