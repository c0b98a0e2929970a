package command

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/inventory/domain"
	notification "github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// SellProductCommand represents the command to sell a pending purchase
type SellProductCommand struct {
	ProductPurchaseID uint            `json:"productPurchaseId" validate:"required"`
	SellingAmount     decimal.Decimal `json:"sellingAmount" validate:"gt=0"`
	SoldAt            time.Time       `json:"soldAt"`
}

// SellProductHandler handles the deduction of a purchase into a selling
type SellProductHandler struct {
	exec *pipeline.Executor
	repo domain.SellingRepository
}

// NewSellProductHandler creates a new sell product handler
func NewSellProductHandler(exec *pipeline.Executor, repo domain.SellingRepository) *SellProductHandler {
	return &SellProductHandler{exec: exec, repo: repo}
}

// Handle deducts the purchase. Selling an already deducted purchase is a conflict.
func (h *SellProductHandler) Handle(ctx context.Context, cmd SellProductCommand) (pipeline.Result[*domain.ProductSelling], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[SellProductCommand, *domain.ProductSelling]{
		Name:     "SellProduct",
		Action:   identity.ActionCreate,
		Resource: identity.ResourceProductSelling,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd SellProductCommand) (*domain.ProductSelling, error) {
			soldAt := cmd.SoldAt
			if soldAt.IsZero() {
				soldAt = time.Now().UTC()
			}
			selling := &domain.ProductSelling{
				OwnerRef:          actor.Ref,
				ProductPurchaseID: cmd.ProductPurchaseID,
				SellingAmount:     cmd.SellingAmount,
				SoldAt:            soldAt,
			}
			if err := h.repo.Deduct(ctx, selling); err != nil {
				return nil, err
			}
			return selling, nil
		},
		Notices: func(actor pipeline.Actor, selling *domain.ProductSelling) []notification.Notice {
			return []notification.Notice{
				notification.NewNotice(notification.Direct(actor.Ref), notification.TypeProductSold, selling.ProductName),
				notification.NewNotice(notification.Broadcast(), notification.TypeProductSoldAlert, selling.ProductName),
			}
		},
		EntityID: func(s *domain.ProductSelling) uint { return s.ID },
		Message:  "Product sold successfully",
	}, cmd)
}
