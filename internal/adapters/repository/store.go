// Package repository defines the user store interface and errors.
package repository

import (
	"context"

	"github.com/okian/sampleapp/internal/domain/model"
)

// Store provides access to user records.
type Store interface {
	// Get returns the user with the given id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id int64) (model.User, error)

	// List returns all users ordered by id.
	List(ctx context.Context) ([]model.User, error)

	// Create assigns an id to u and returns the resulting user.
	Create(ctx context.Context, u model.NewUser) (model.User, error)
}
