package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/backoffice/internal/identity/usecase/command"
	"github.com/tair/backoffice/internal/identity/usecase/query"
	"github.com/tair/backoffice/internal/respond"
)

// UserHandler handles HTTP requests for user profiles and roles
type UserHandler struct {
	create     *command.CreateUserHandler
	changeRole *command.ChangeRoleHandler
	users      *query.UserQueryHandler
}

// NewUserHandler creates a new user handler
func NewUserHandler(create *command.CreateUserHandler, changeRole *command.ChangeRoleHandler, users *query.UserQueryHandler) *UserHandler {
	return &UserHandler{create: create, changeRole: changeRole, users: users}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateUserCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}

	result, err := h.create.Handle(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// Me handles GET /users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Me(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset := respond.Page(r)
	users, err := h.users.List(r.Context(), query.ListUsersQuery{Limit: limit, Offset: offset})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, users)
}

// ChangeRole handles PUT /users/{id}/role
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var cmd command.ChangeRoleCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	cmd.UserID = id

	result, err := h.changeRole.Handle(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// RegisterRoutes registers user routes on the authenticated api router
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	router.HandleFunc("/users/me", h.Me).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}/role", h.ChangeRole).Methods(http.MethodPut)
}
