package repository

import (
	"context"
	"fmt"

	"github.com/okian/sampleapp/internal/domain/model"
)

// SampleUsers returns the dataset every FixedStore starts with.
func SampleUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
	}
}

// FixedStore serves a dataset fixed at construction time.
//
// Known limitation: Create does not store anything. It always answers with
// the id following the initial dataset (3 for the sample users), so List and
// Get never change no matter how many users are created. The store holds no
// mutable state and is safe for concurrent use.
type FixedStore struct {
	users     []model.User
	createdID int64
}

var _ Store = (*FixedStore)(nil)

// NewFixedStore creates a store over SampleUsers unless WithUsers is given.
func NewFixedStore(opts ...Option) *FixedStore {
	s := &FixedStore{users: SampleUsers()}
	for _, opt := range opts {
		opt(s)
	}
	s.createdID = int64(len(s.users)) + 1
	return s
}

// Get returns the user with the given id.
func (s *FixedStore) Get(ctx context.Context, id int64) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// List returns a copy of the dataset; callers may modify it freely.
func (s *FixedStore) List(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// Create returns u with the next id. See the FixedStore limitation note.
func (s *FixedStore) Create(ctx context.Context, u model.NewUser) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	return u.WithID(s.createdID), nil
}
