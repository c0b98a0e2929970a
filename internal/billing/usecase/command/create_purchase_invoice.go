package command

import (
	"context"
	"fmt"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/billing/domain"
	identity "github.com/tair/backoffice/internal/identity/domain"
	inventory "github.com/tair/backoffice/internal/inventory/domain"
	partner "github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// CreatePurchaseInvoiceCommand represents the command to group purchases into an invoice
type CreatePurchaseInvoiceCommand struct {
	CompanyID          uint   `json:"companyId" validate:"required"`
	SellerID           uint   `json:"sellerId" validate:"required"`
	InvoiceNumber      string `json:"invoiceNumber" validate:"max=64"`
	ProductPurchaseIDs []uint `json:"productPurchaseIds" validate:"required,min=1,dive,required"`
}

// CreatePurchaseInvoiceHandler handles create purchase invoice command
type CreatePurchaseInvoiceHandler struct {
	exec      *pipeline.Executor
	repo      domain.PurchaseInvoiceRepository
	companies partner.CompanyRepository
	sellers   partner.SellerRepository
	purchases inventory.PurchaseRepository
}

// NewCreatePurchaseInvoiceHandler creates a new create purchase invoice handler
func NewCreatePurchaseInvoiceHandler(
	exec *pipeline.Executor,
	repo domain.PurchaseInvoiceRepository,
	companies partner.CompanyRepository,
	sellers partner.SellerRepository,
	purchases inventory.PurchaseRepository,
) *CreatePurchaseInvoiceHandler {
	return &CreatePurchaseInvoiceHandler{
		exec:      exec,
		repo:      repo,
		companies: companies,
		sellers:   sellers,
		purchases: purchases,
	}
}

// Handle snapshots the company and seller as they are now and links the purchases
func (h *CreatePurchaseInvoiceHandler) Handle(ctx context.Context, cmd CreatePurchaseInvoiceCommand) (pipeline.Result[*domain.PurchaseInvoice], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CreatePurchaseInvoiceCommand, *domain.PurchaseInvoice]{
		Name:     "CreatePurchaseInvoice",
		Action:   identity.ActionCreate,
		Resource: identity.ResourcePurchaseInvoice,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd CreatePurchaseInvoiceCommand) (*domain.PurchaseInvoice, error) {
			company, err := h.companies.FindByID(ctx, cmd.CompanyID)
			if err != nil {
				return nil, err
			}
			seller, err := h.sellers.FindByID(ctx, cmd.SellerID)
			if err != nil {
				return nil, err
			}

			ids := unique(cmd.ProductPurchaseIDs)
			purchases, err := h.purchases.FindByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			if len(purchases) != len(ids) {
				return nil, apperr.NotFound("Product purchase not found")
			}
			for _, p := range purchases {
				if p.SellerID != seller.ID {
					return nil, apperr.InvalidInput(fmt.Sprintf("product purchase %d belongs to another seller", p.ID))
				}
			}

			invoice := &domain.PurchaseInvoice{
				OwnerRef:      actor.Ref,
				CompanyID:     company.ID,
				SellerID:      seller.ID,
				InvoiceNumber: invoiceNumber(cmd.InvoiceNumber),
				CompanyInfo:   domain.SnapshotCompany(company),
				SellerInfo:    domain.SnapshotSeller(seller),
				Purchases:     purchases,
			}
			if err := h.repo.Create(ctx, invoice); err != nil {
				return nil, err
			}
			return invoice, nil
		},
		EntityID: func(i *domain.PurchaseInvoice) uint { return i.ID },
		Message:  "Purchase invoice created successfully",
	}, cmd)
}

func unique(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
