package command

import (
	"context"

	identity "github.com/tair/backoffice/internal/identity/domain"
	notification "github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// CustomerCommand carries the editable customer fields
type CustomerCommand struct {
	ID      uint   `json:"-"`
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"max=20"`
	Address string `json:"address" validate:"max=500"`
}

// DeleteCustomerCommand represents the command to delete a customer
type DeleteCustomerCommand struct {
	ID uint `json:"-" validate:"required"`
}

// CustomerCommandHandler handles customer mutations
type CustomerCommandHandler struct {
	exec *pipeline.Executor
	repo domain.CustomerRepository
}

// NewCustomerCommandHandler creates a new customer command handler
func NewCustomerCommandHandler(exec *pipeline.Executor, repo domain.CustomerRepository) *CustomerCommandHandler {
	return &CustomerCommandHandler{exec: exec, repo: repo}
}

func (h *CustomerCommandHandler) Create(ctx context.Context, cmd CustomerCommand) (pipeline.Result[*domain.Customer], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CustomerCommand, *domain.Customer]{
		Name:     "CreateCustomer",
		Action:   identity.ActionCreate,
		Resource: identity.ResourceCustomer,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd CustomerCommand) (*domain.Customer, error) {
			customer := &domain.Customer{
				OwnerRef: actor.Ref,
				Name:     cmd.Name,
				Email:    cmd.Email,
				Phone:    cmd.Phone,
				Address:  cmd.Address,
			}
			if err := h.repo.Create(ctx, customer); err != nil {
				return nil, err
			}
			return customer, nil
		},
		Notices:  customerNotice(notification.TypeCustomerCreated),
		EntityID: customerID,
		Message:  "Customer created successfully",
	}, cmd)
}

func (h *CustomerCommandHandler) Update(ctx context.Context, cmd CustomerCommand) (pipeline.Result[*domain.Customer], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CustomerCommand, *domain.Customer]{
		Name:     "UpdateCustomer",
		Action:   identity.ActionUpdate,
		Resource: identity.ResourceCustomer,
		Mutate: func(ctx context.Context, _ pipeline.Actor, cmd CustomerCommand) (*domain.Customer, error) {
			customer, err := h.repo.FindByID(ctx, cmd.ID)
			if err != nil {
				return nil, err
			}
			customer.Name = cmd.Name
			customer.Email = cmd.Email
			customer.Phone = cmd.Phone
			customer.Address = cmd.Address
			if err := h.repo.Update(ctx, customer); err != nil {
				return nil, err
			}
			return customer, nil
		},
		Notices:  customerNotice(notification.TypeCustomerUpdated),
		EntityID: customerID,
		Message:  "Customer updated successfully",
	}, cmd)
}

func (h *CustomerCommandHandler) Delete(ctx context.Context, cmd DeleteCustomerCommand) (pipeline.Result[*domain.Customer], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[DeleteCustomerCommand, *domain.Customer]{
		Name:     "DeleteCustomer",
		Action:   identity.ActionDelete,
		Resource: identity.ResourceCustomer,
		Mutate: func(ctx context.Context, _ pipeline.Actor, cmd DeleteCustomerCommand) (*domain.Customer, error) {
			return h.repo.Delete(ctx, cmd.ID)
		},
		Notices:  customerNotice(notification.TypeCustomerDeleted),
		EntityID: customerID,
		Message:  "Customer deleted successfully",
	}, cmd)
}

func customerNotice(t notification.Type) func(pipeline.Actor, *domain.Customer) []notification.Notice {
	return func(actor pipeline.Actor, customer *domain.Customer) []notification.Notice {
		return []notification.Notice{
			notification.NewNotice(notification.Direct(actor.Ref), t, customer.Name),
		}
	}
}

func customerID(c *domain.Customer) uint { return c.ID }
