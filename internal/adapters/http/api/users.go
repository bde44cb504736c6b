package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	repository "github.com/okian/sampleapp/internal/adapters/repository"
	"github.com/okian/sampleapp/internal/domain/model"
	"github.com/okian/sampleapp/pkg/logger"
	"github.com/okian/sampleapp/pkg/metrics"
)

// maxBodyBytes caps the create-user request body.
const maxBodyBytes = 1 << 20

// UsersHandler handles the /api/users resource.
type UsersHandler struct {
	deps UserDependencies
	log  logger.Logger
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(deps UserDependencies, log logger.Logger) *UsersHandler {
	return &UsersHandler{deps: deps, log: log}
}

// Routes registers the users routes on r. The id pattern only admits digits,
// so any other id is answered by the router's not-found handler.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/api/users", MetricsMiddleware(h.HandleListUsers, "users_list"))
	r.Post("/api/users", MetricsMiddleware(h.HandleCreateUser, "users_create"))
	r.Get("/api/users/{id:[0-9]+}", MetricsMiddleware(h.HandleGetUser, "users_get"))
}

// HandleListUsers handles GET /api/users requests.
func (h *UsersHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.deps.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// HandleGetUser handles GET /api/users/{id} requests.
func (h *UsersHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_user"
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// Only overflowing digit strings get here; the route pattern rejects the rest.
		h.fail(w, r, WrapKind(op, ErrNotFound, err))
		return
	}
	u, err := h.deps.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = WrapKind(op, ErrNotFound, err)
		}
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// HandleCreateUser handles POST /api/users requests.
func (h *UsersHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	in, err := decodeNewUser(r)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			metrics.RecordValidationError("create_user")
		}
		h.fail(w, r, err)
		return
	}
	u, err := h.deps.CreateUser(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// fail answers err with the status and message of its kind.
func (h *UsersHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusAndMessage(err)
	if status >= http.StatusInternalServerError {
		h.log.Error(r.Context(), "request failed", logger.String("request_id", RequestIDFromContext(r.Context())), logger.Error(err))
	} else {
		h.log.Debug(r.Context(), "request rejected", logger.Int("status", status), logger.Error(err))
	}
	writeError(w, status, msg)
}

// decodeNewUser reads a create-user body. A field is present when its key
// exists, whatever its value; values are passed on as decoded, with numbers
// kept in their literal form. Broken JSON is ErrBadRequest. An empty body, a
// JSON value that is not an object, or a missing key is ErrValidation.
func decodeNewUser(r *http.Request) (model.NewUser, error) {
	const op = "api.create_user"
	if r.Body == nil {
		return model.NewUser{}, NewKind(op, ErrValidation)
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return model.NewUser{}, WrapKind(op, ErrBadRequest, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return model.NewUser{}, NewKind(op, ErrValidation)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return model.NewUser{}, WrapKind(op, ErrValidation, err)
		}
		return model.NewUser{}, WrapKind(op, ErrBadRequest, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return model.NewUser{}, NewKind(op, ErrBadRequest)
	}

	name, okName := fields["name"]
	email, okEmail := fields["email"]
	if !okName || !okEmail {
		return model.NewUser{}, NewKind(op, ErrValidation)
	}
	return model.NewUser{Name: name, Email: email}, nil
}
