package command

import (
	"context"

	"github.com/tair/backoffice/internal/fleet/domain"
	identity "github.com/tair/backoffice/internal/identity/domain"
	notification "github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// CreateCarCommand represents the command to register a car
type CreateCarCommand struct {
	Name        string           `json:"name" validate:"required,max=120"`
	Model       string           `json:"model" validate:"max=120"`
	PlateNumber string           `json:"plateNumber" validate:"required,max=32"`
	Status      domain.CarStatus `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
}

// UpdateCarCommand represents the command to update a car
type UpdateCarCommand struct {
	ID          uint             `json:"-" validate:"required"`
	Name        string           `json:"name" validate:"required,max=120"`
	Model       string           `json:"model" validate:"max=120"`
	PlateNumber string           `json:"plateNumber" validate:"required,max=32"`
	Status      domain.CarStatus `json:"status" validate:"required,oneof=active inactive maintenance"`
}

// DeleteCarCommand represents the command to delete a car
type DeleteCarCommand struct {
	ID uint `json:"-" validate:"required"`
}

// CarCommandHandler handles car mutations through the pipeline
type CarCommandHandler struct {
	exec *pipeline.Executor
	repo domain.CarRepository
}

// NewCarCommandHandler creates a new car command handler
func NewCarCommandHandler(exec *pipeline.Executor, repo domain.CarRepository) *CarCommandHandler {
	return &CarCommandHandler{exec: exec, repo: repo}
}

// Create registers a car owned by the caller
func (h *CarCommandHandler) Create(ctx context.Context, cmd CreateCarCommand) (pipeline.Result[*domain.Car], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CreateCarCommand, *domain.Car]{
		Name:     "CreateCar",
		Action:   identity.ActionCreate,
		Resource: identity.ResourceCar,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd CreateCarCommand) (*domain.Car, error) {
			status := cmd.Status
			if status == "" {
				status = domain.CarStatusActive
			}
			car := &domain.Car{
				OwnerRef:    actor.Ref,
				Name:        cmd.Name,
				Model:       cmd.Model,
				PlateNumber: cmd.PlateNumber,
				Status:      status,
			}
			if err := h.repo.Create(ctx, car); err != nil {
				return nil, err
			}
			return car, nil
		},
		Notices:  carNotice(notification.TypeCarCreated),
		EntityID: carID,
		Message:  "Car created successfully",
	}, cmd)
}

// Update changes a car's details
func (h *CarCommandHandler) Update(ctx context.Context, cmd UpdateCarCommand) (pipeline.Result[*domain.Car], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[UpdateCarCommand, *domain.Car]{
		Name:     "UpdateCar",
		Action:   identity.ActionUpdate,
		Resource: identity.ResourceCar,
		Mutate: func(ctx context.Context, _ pipeline.Actor, cmd UpdateCarCommand) (*domain.Car, error) {
			car, err := h.repo.FindByID(ctx, cmd.ID)
			if err != nil {
				return nil, err
			}
			car.Name = cmd.Name
			car.Model = cmd.Model
			car.PlateNumber = cmd.PlateNumber
			car.Status = cmd.Status
			if err := h.repo.Update(ctx, car); err != nil {
				return nil, err
			}
			return car, nil
		},
		Notices:  carNotice(notification.TypeCarUpdated),
		EntityID: carID,
		Message:  "Car updated successfully",
	}, cmd)
}

// Delete removes a car
func (h *CarCommandHandler) Delete(ctx context.Context, cmd DeleteCarCommand) (pipeline.Result[*domain.Car], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[DeleteCarCommand, *domain.Car]{
		Name:     "DeleteCar",
		Action:   identity.ActionDelete,
		Resource: identity.ResourceCar,
		Mutate: func(ctx context.Context, _ pipeline.Actor, cmd DeleteCarCommand) (*domain.Car, error) {
			return h.repo.Delete(ctx, cmd.ID)
		},
		Notices:  carNotice(notification.TypeCarDeleted),
		EntityID: carID,
		Message:  "Car deleted successfully",
	}, cmd)
}

func carNotice(t notification.Type) func(pipeline.Actor, *domain.Car) []notification.Notice {
	return func(actor pipeline.Actor, car *domain.Car) []notification.Notice {
		return []notification.Notice{
			notification.NewNotice(notification.Direct(actor.Ref), t, car.Name),
		}
	}
}

func carID(car *domain.Car) uint { return car.ID }
