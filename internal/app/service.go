// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"

	repository "github.com/okian/sampleapp/internal/adapters/repository"
	"github.com/okian/sampleapp/internal/config"
	"github.com/okian/sampleapp/internal/domain/model"
	"github.com/okian/sampleapp/internal/domain/types"
	"github.com/okian/sampleapp/pkg/logger"
	"github.com/okian/sampleapp/pkg/metrics"
)

// Service implements the API dependencies for the users resource.
// All fields are set in New and never written afterwards.
type Service struct {
	store  repository.Store
	info   types.AppInfo
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the user store. Defaults to a FixedStore over the sample users.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithInfo sets the build identity reported by the API.
func WithInfo(info types.AppInfo) Option {
	return func(s *Service) {
		s.info = info
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service. Without WithLogger the global logger is
// used, so logger.Init must have been called.
func New(opts ...Option) *Service {
	s := &Service{
		info: types.AppInfo{
			Version:     config.DefaultVersion,
			Environment: config.DefaultEnvironment,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = repository.NewFixedStore()
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}

	return s
}

// Info returns the build identity.
func (s *Service) Info() types.AppInfo {
	return s.info
}

// ListUsers returns every user.
func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "list users failed", logger.Error(err))
		return nil, err
	}
	s.logger.Debug(ctx, "listed users", logger.Int("count", len(users)))
	return users, nil
}

// GetUser returns the user with the given id, or an error wrapping
// repository.ErrNotFound.
func (s *Service) GetUser(ctx context.Context, id int64) (model.User, error) {
	u, err := s.store.Get(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		_ = metrics.RecordUserLookup(metrics.LookupNotFound)
		s.logger.Debug(ctx, "user not found", logger.Int64("id", id))
		return model.User{}, err
	case err != nil:
		s.logger.Error(ctx, "get user failed", logger.Int64("id", id), logger.Error(err))
		return model.User{}, err
	}
	_ = metrics.RecordUserLookup(metrics.LookupFound)
	return u, nil
}

// CreateUser hands u to the store and returns the created user.
func (s *Service) CreateUser(ctx context.Context, u model.NewUser) (model.User, error) {
	created, err := s.store.Create(ctx, u)
	if err != nil {
		s.logger.Error(ctx, "create user failed", logger.Error(err))
		return model.User{}, err
	}
	metrics.RecordUserCreated()
	s.logger.Info(ctx, "user created", logger.Int64("id", created.ID))
	return created, nil
}
