package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/backoffice/internal/fleet/usecase/command"
	"github.com/tair/backoffice/internal/fleet/usecase/query"
	"github.com/tair/backoffice/internal/respond"
)

// CarHandler handles HTTP requests for cars
type CarHandler struct {
	commands *command.CarCommandHandler
	list     *query.ListCarsHandler
}

// NewCarHandler creates a new car handler
func NewCarHandler(commands *command.CarCommandHandler, list *query.ListCarsHandler) *CarHandler {
	return &CarHandler{commands: commands, list: list}
}

// CreateCar handles POST /cars
func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateCarCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}

	result, err := h.commands.Create(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// ListCars handles GET /cars
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	limit, offset := respond.Page(r)
	cars, err := h.list.Handle(r.Context(), query.ListCarsQuery{Limit: limit, Offset: offset})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, cars)
}

// UpdateCar handles PUT /cars/{id}
func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var cmd command.UpdateCarCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	cmd.ID = id

	result, err := h.commands.Update(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// DeleteCar handles DELETE /cars/{id}
func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	result, err := h.commands.Delete(r.Context(), command.DeleteCarCommand{ID: id})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// RegisterRoutes registers car routes on the authenticated api router
func (h *CarHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/cars", h.CreateCar).Methods(http.MethodPost)
	router.HandleFunc("/cars", h.ListCars).Methods(http.MethodGet)
	router.HandleFunc("/cars/{id:[0-9]+}", h.UpdateCar).Methods(http.MethodPut)
	router.HandleFunc("/cars/{id:[0-9]+}", h.DeleteCar).Methods(http.MethodDelete)
}
