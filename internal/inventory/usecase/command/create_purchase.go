package command

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/inventory/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// CreatePurchaseCommand represents the command to record a product purchase
type CreatePurchaseCommand struct {
	SellerID       uint            `json:"sellerId" validate:"required"`
	ProductName    string          `json:"productName" validate:"required,max=200"`
	Quantity       int             `json:"quantity" validate:"gt=0"`
	PurchaseAmount decimal.Decimal `json:"purchaseAmount" validate:"gt=0"`
	PurchaseDate   time.Time       `json:"purchaseDate"`
}

// CreatePurchaseHandler handles create product purchase command
type CreatePurchaseHandler struct {
	exec *pipeline.Executor
	repo domain.PurchaseRepository
}

// NewCreatePurchaseHandler creates a new create purchase handler
func NewCreatePurchaseHandler(exec *pipeline.Executor, repo domain.PurchaseRepository) *CreatePurchaseHandler {
	return &CreatePurchaseHandler{exec: exec, repo: repo}
}

// Handle executes the create purchase command. Purchases start pending.
func (h *CreatePurchaseHandler) Handle(ctx context.Context, cmd CreatePurchaseCommand) (pipeline.Result[*domain.ProductPurchase], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CreatePurchaseCommand, *domain.ProductPurchase]{
		Name:     "CreateProductPurchase",
		Action:   identity.ActionCreate,
		Resource: identity.ResourceProductPurchase,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd CreatePurchaseCommand) (*domain.ProductPurchase, error) {
			date := cmd.PurchaseDate
			if date.IsZero() {
				date = time.Now().UTC()
			}
			purchase := &domain.ProductPurchase{
				OwnerRef:       actor.Ref,
				SellerID:       cmd.SellerID,
				ProductName:    cmd.ProductName,
				Quantity:       cmd.Quantity,
				PurchaseAmount: cmd.PurchaseAmount,
				PurchaseDate:   date,
				Status:         domain.PurchaseStatusPending,
			}
			if err := h.repo.Create(ctx, purchase); err != nil {
				return nil, err
			}
			return purchase, nil
		},
		EntityID: func(p *domain.ProductPurchase) uint { return p.ID },
		Message:  "Product purchase created successfully",
	}, cmd)
}
