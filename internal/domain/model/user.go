// Package model contains domain models passed between layers.
package model

// User is a user record as exposed by the API. Name and Email hold whatever
// JSON value the client supplied; the sample dataset uses strings.
type User struct {
	ID    int64 `json:"id"`
	Name  any   `json:"name"`
	Email any   `json:"email"`
}

// NewUser carries the client-supplied fields of a user to be created.
// Only presence is checked upstream; the values are taken as given.
type NewUser struct {
	Name  any
	Email any
}

// WithID builds the User that results from assigning id to n.
func (n NewUser) WithID(id int64) User {
	return User{ID: id, Name: n.Name, Email: n.Email}
}
