package query

import (
	"context"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// PageQuery is a limit/offset window
type PageQuery struct {
	Limit  int
	Offset int
}

// CompanyQueryHandler serves company reads
type CompanyQueryHandler struct {
	exec *pipeline.Executor
	repo domain.CompanyRepository
}

// NewCompanyQueryHandler creates a new company query handler
func NewCompanyQueryHandler(exec *pipeline.Executor, repo domain.CompanyRepository) *CompanyQueryHandler {
	return &CompanyQueryHandler{exec: exec, repo: repo}
}

func (h *CompanyQueryHandler) List(ctx context.Context, q PageQuery) ([]domain.Company, error) {
	if _, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceCompany); err != nil {
		return nil, err
	}
	return h.repo.FindAll(ctx, q.Limit, q.Offset)
}

func (h *CompanyQueryHandler) Get(ctx context.Context, id uint) (*domain.Company, error) {
	if _, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceCompany); err != nil {
		return nil, err
	}
	return h.repo.FindByID(ctx, id)
}

// ListSellersHandler handles list sellers query
type ListSellersHandler struct {
	exec *pipeline.Executor
	repo domain.SellerRepository
}

// NewListSellersHandler creates a new list sellers handler
func NewListSellersHandler(exec *pipeline.Executor, repo domain.SellerRepository) *ListSellersHandler {
	return &ListSellersHandler{exec: exec, repo: repo}
}

func (h *ListSellersHandler) Handle(ctx context.Context, q PageQuery) ([]domain.Seller, error) {
	if _, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceSeller); err != nil {
		return nil, err
	}
	return h.repo.FindAll(ctx, q.Limit, q.Offset)
}

// ListCustomersHandler handles list customers query
type ListCustomersHandler struct {
	exec *pipeline.Executor
	repo domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(exec *pipeline.Executor, repo domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{exec: exec, repo: repo}
}

// Handle lists customers in the caller's scope
func (h *ListCustomersHandler) Handle(ctx context.Context, q PageQuery) ([]domain.Customer, error) {
	actor, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceCustomer)
	if err != nil {
		return nil, err
	}
	return h.repo.FindAll(ctx, actor.Scope(), q.Limit, q.Offset)
}
