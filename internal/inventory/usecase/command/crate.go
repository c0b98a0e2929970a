package command

import (
	"context"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/inventory/domain"
	notification "github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// CrateCommand carries the editable crate fields
type CrateCommand struct {
	ID       uint   `json:"-"`
	CrateID  string `json:"crateId" validate:"required,max=64"`
	Name     string `json:"crateName" validate:"required,max=120"`
	Quantity int    `json:"crateQuantity" validate:"gt=0"`
}

// DeleteCrateCommand represents the command to delete a crate
type DeleteCrateCommand struct {
	ID uint `json:"-" validate:"required"`
}

// CrateCommandHandler handles crate mutations
type CrateCommandHandler struct {
	exec *pipeline.Executor
	repo domain.CrateRepository
}

// NewCrateCommandHandler creates a new crate command handler
func NewCrateCommandHandler(exec *pipeline.Executor, repo domain.CrateRepository) *CrateCommandHandler {
	return &CrateCommandHandler{exec: exec, repo: repo}
}

// Create stores a crate for the caller. No notification is sent for new crates.
func (h *CrateCommandHandler) Create(ctx context.Context, cmd CrateCommand) (pipeline.Result[*domain.Crate], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CrateCommand, *domain.Crate]{
		Name:     "CreateCrate",
		Action:   identity.ActionCreate,
		Resource: identity.ResourceCrate,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd CrateCommand) (*domain.Crate, error) {
			crate := &domain.Crate{
				OwnerRef: actor.Ref,
				CrateID:  cmd.CrateID,
				Name:     cmd.Name,
				Quantity: cmd.Quantity,
			}
			if err := h.repo.Create(ctx, crate); err != nil {
				return nil, err
			}
			return crate, nil
		},
		EntityID: crateID,
		Message:  "Crate created successfully",
	}, cmd)
}

func (h *CrateCommandHandler) Update(ctx context.Context, cmd CrateCommand) (pipeline.Result[*domain.Crate], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CrateCommand, *domain.Crate]{
		Name:     "UpdateCrate",
		Action:   identity.ActionUpdate,
		Resource: identity.ResourceCrate,
		Mutate: func(ctx context.Context, _ pipeline.Actor, cmd CrateCommand) (*domain.Crate, error) {
			crate, err := h.repo.FindByID(ctx, cmd.ID)
			if err != nil {
				return nil, err
			}
			crate.CrateID = cmd.CrateID
			crate.Name = cmd.Name
			crate.Quantity = cmd.Quantity
			if err := h.repo.Update(ctx, crate); err != nil {
				return nil, err
			}
			return crate, nil
		},
		Notices:  crateNotice(notification.TypeCrateUpdated),
		EntityID: crateID,
		Message:  "Crate updated successfully",
	}, cmd)
}

func (h *CrateCommandHandler) Delete(ctx context.Context, cmd DeleteCrateCommand) (pipeline.Result[*domain.Crate], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[DeleteCrateCommand, *domain.Crate]{
		Name:     "DeleteCrate",
		Action:   identity.ActionDelete,
		Resource: identity.ResourceCrate,
		Mutate: func(ctx context.Context, _ pipeline.Actor, cmd DeleteCrateCommand) (*domain.Crate, error) {
			return h.repo.Delete(ctx, cmd.ID)
		},
		Notices:  crateNotice(notification.TypeCrateDeleted),
		EntityID: crateID,
		Message:  "Crate deleted successfully",
	}, cmd)
}

func crateNotice(t notification.Type) func(pipeline.Actor, *domain.Crate) []notification.Notice {
	return func(actor pipeline.Actor, crate *domain.Crate) []notification.Notice {
		return []notification.Notice{
			notification.NewNotice(notification.Direct(actor.Ref), t, crate.Name),
		}
	}
}

func crateID(c *domain.Crate) uint { return c.ID }
