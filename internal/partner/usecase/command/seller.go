package command

import (
	"context"

	identity "github.com/tair/backoffice/internal/identity/domain"
	notification "github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// CreateSellerCommand represents the command to register a seller
type CreateSellerCommand struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=20"`
	Address string `json:"address" validate:"max=500"`
	GSTIN   string `json:"gstin" validate:"omitempty,len=15"`
}

// CreateSellerHandler handles seller registration
type CreateSellerHandler struct {
	exec *pipeline.Executor
	repo domain.SellerRepository
}

// NewCreateSellerHandler creates a new create seller handler
func NewCreateSellerHandler(exec *pipeline.Executor, repo domain.SellerRepository) *CreateSellerHandler {
	return &CreateSellerHandler{exec: exec, repo: repo}
}

// Handle executes the create seller command
func (h *CreateSellerHandler) Handle(ctx context.Context, cmd CreateSellerCommand) (pipeline.Result[*domain.Seller], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CreateSellerCommand, *domain.Seller]{
		Name:     "CreateSeller",
		Action:   identity.ActionCreate,
		Resource: identity.ResourceSeller,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd CreateSellerCommand) (*domain.Seller, error) {
			seller := &domain.Seller{
				OwnerRef: actor.Ref,
				Name:     cmd.Name,
				Email:    cmd.Email,
				Phone:    cmd.Phone,
				Address:  cmd.Address,
				GSTIN:    cmd.GSTIN,
			}
			if err := h.repo.Create(ctx, seller); err != nil {
				return nil, err
			}
			return seller, nil
		},
		Notices: func(_ pipeline.Actor, seller *domain.Seller) []notification.Notice {
			return []notification.Notice{
				notification.NewNotice(notification.Broadcast(), notification.TypeSellerCreated, seller.Name),
			}
		},
		EntityID: func(s *domain.Seller) uint { return s.ID },
		Message:  "Seller created successfully",
	}, cmd)
}
