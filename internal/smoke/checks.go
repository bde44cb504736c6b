package smoke

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/okian/sampleapp/internal/domain/model"
)

// check is one functional assertion against the service.
type check struct {
	name string
	run  func(ctx context.Context, c *httpClient) error
}

// checks mirrors the service contract: one entry per observable property.
var checks = []check{
	{"home", checkHome},
	{"health", checkHealth},
	{"list_users", checkListUsers},
	{"create_user", checkCreateUser},
	{"create_user_missing_field", checkCreateUserMissingField},
	{"get_user", checkGetUser},
	{"get_user_not_found", checkGetUserNotFound},
}

func expectStatus(r response, want int) error {
	if r.Status != want {
		return fmt.Errorf("status %d, want %d (body %q)", r.Status, want, r.Body)
	}
	return nil
}

func checkHome(ctx context.Context, c *httpClient) error {
	r, err := c.get(ctx, "/")
	if err != nil {
		return err
	}
	if err := expectStatus(r, http.StatusOK); err != nil {
		return err
	}
	var body map[string]string
	if err := r.decode(&body); err != nil {
		return err
	}
	for _, key := range []string{"message", "version", "environment"} {
		if body[key] == "" {
			return fmt.Errorf("%s missing or empty", key)
		}
	}
	return nil
}

func checkHealth(ctx context.Context, c *httpClient) error {
	r, err := c.get(ctx, "/health")
	if err != nil {
		return err
	}
	if err := expectStatus(r, http.StatusOK); err != nil {
		return err
	}
	var body map[string]string
	if err := r.decode(&body); err != nil {
		return err
	}
	if body["status"] != "healthy" {
		return fmt.Errorf("status %q, want healthy", body["status"])
	}
	return nil
}

func listUsers(ctx context.Context, c *httpClient) ([]model.User, error) {
	r, err := c.get(ctx, "/api/users")
	if err != nil {
		return nil, err
	}
	if err := expectStatus(r, http.StatusOK); err != nil {
		return nil, err
	}
	var users []model.User
	if err := r.decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}

func checkListUsers(ctx context.Context, c *httpClient) error {
	users, err := listUsers(ctx, c)
	if err != nil {
		return err
	}
	if len(users) != 2 {
		return fmt.Errorf("got %d users, want 2", len(users))
	}
	for _, u := range users {
		if u.ID == 0 || u.Name == nil || u.Name == "" || u.Email == nil || u.Email == "" {
			return fmt.Errorf("incomplete user %+v", u)
		}
	}
	return nil
}

func checkCreateUser(ctx context.Context, c *httpClient) error {
	r, err := c.post(ctx, "/api/users", `{"name":"Test User","email":"test@example.com"}`)
	if err != nil {
		return err
	}
	if err := expectStatus(r, http.StatusCreated); err != nil {
		return err
	}
	var u model.User
	if err := r.decode(&u); err != nil {
		return err
	}
	if u.Name != "Test User" || u.Email != "test@example.com" {
		return fmt.Errorf("created user %+v does not echo the input", u)
	}
	return nil
}

func checkCreateUserMissingField(ctx context.Context, c *httpClient) error {
	r, err := c.post(ctx, "/api/users", `{"name":"Test"}`)
	if err != nil {
		return err
	}
	return expectStatus(r, http.StatusBadRequest)
}

func checkGetUser(ctx context.Context, c *httpClient) error {
	r, err := c.get(ctx, "/api/users/1")
	if err != nil {
		return err
	}
	if err := expectStatus(r, http.StatusOK); err != nil {
		return err
	}
	var u model.User
	if err := r.decode(&u); err != nil {
		return err
	}
	if u.ID != 1 {
		return fmt.Errorf("id %d, want 1", u.ID)
	}
	return nil
}

func checkGetUserNotFound(ctx context.Context, c *httpClient) error {
	r, err := c.get(ctx, "/api/users/999")
	if err != nil {
		return err
	}
	return expectStatus(r, http.StatusNotFound)
}

// errDrift is returned when the user list changes across the concurrent phase.
var errDrift = errors.New("user list changed")

func compareLists(before, after []model.User) error {
	if !reflect.DeepEqual(before, after) {
		return fmt.Errorf("%w: before %+v, after %+v", errDrift, before, after)
	}
	return nil
}
