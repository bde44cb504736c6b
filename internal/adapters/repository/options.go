package repository

import "github.com/okian/sampleapp/internal/domain/model"

// Option applies a configuration option to the FixedStore.
type Option func(*FixedStore)

// WithUsers replaces the sample dataset. Users are kept in the given order.
func WithUsers(users ...model.User) Option {
	return func(s *FixedStore) {
		s.users = append([]model.User(nil), users...)
	}
}
