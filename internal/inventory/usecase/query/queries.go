package query

import (
	"context"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/inventory/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// PageQuery is a limit/offset window
type PageQuery struct {
	Limit  int
	Offset int
}

// ListCratesHandler handles list crates query
type ListCratesHandler struct {
	exec *pipeline.Executor
	repo domain.CrateRepository
}

// NewListCratesHandler creates a new list crates handler
func NewListCratesHandler(exec *pipeline.Executor, repo domain.CrateRepository) *ListCratesHandler {
	return &ListCratesHandler{exec: exec, repo: repo}
}

// Handle lists crates in the caller's scope
func (h *ListCratesHandler) Handle(ctx context.Context, q PageQuery) ([]domain.Crate, error) {
	actor, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceCrate)
	if err != nil {
		return nil, err
	}
	return h.repo.FindAll(ctx, actor.Scope(), q.Limit, q.Offset)
}

// ListPurchasesQuery represents the query to list product purchases
type ListPurchasesQuery struct {
	Status domain.PurchaseStatus
	Limit  int
	Offset int
}

// ListPurchasesHandler handles list product purchases query
type ListPurchasesHandler struct {
	exec *pipeline.Executor
	repo domain.PurchaseRepository
}

// NewListPurchasesHandler creates a new list purchases handler
func NewListPurchasesHandler(exec *pipeline.Executor, repo domain.PurchaseRepository) *ListPurchasesHandler {
	return &ListPurchasesHandler{exec: exec, repo: repo}
}

func (h *ListPurchasesHandler) Handle(ctx context.Context, q ListPurchasesQuery) ([]domain.ProductPurchase, error) {
	if _, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceProductPurchase); err != nil {
		return nil, err
	}
	return h.repo.FindAll(ctx, q.Status, q.Limit, q.Offset)
}

// ListSellingsHandler handles list product sellings query
type ListSellingsHandler struct {
	exec *pipeline.Executor
	repo domain.SellingRepository
}

// NewListSellingsHandler creates a new list sellings handler
func NewListSellingsHandler(exec *pipeline.Executor, repo domain.SellingRepository) *ListSellingsHandler {
	return &ListSellingsHandler{exec: exec, repo: repo}
}

func (h *ListSellingsHandler) Handle(ctx context.Context, q PageQuery) ([]domain.ProductSelling, error) {
	if _, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceProductSelling); err != nil {
		return nil, err
	}
	return h.repo.FindAll(ctx, q.Limit, q.Offset)
}
