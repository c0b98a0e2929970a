package query

import (
	"context"

	"github.com/tair/backoffice/internal/billing/domain"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// ListInvoicesQuery represents the query to list invoices
type ListInvoicesQuery struct {
	Filter domain.InvoiceFilter
	Limit  int
	Offset int
}

// InvoiceQueryHandler serves invoice and payment reads
type InvoiceQueryHandler struct {
	exec     *pipeline.Executor
	invoices domain.InvoiceRepository
	payments domain.PaymentRepository
}

// NewInvoiceQueryHandler creates a new invoice query handler
func NewInvoiceQueryHandler(exec *pipeline.Executor, invoices domain.InvoiceRepository, payments domain.PaymentRepository) *InvoiceQueryHandler {
	return &InvoiceQueryHandler{exec: exec, invoices: invoices, payments: payments}
}

// List returns invoices in the caller's scope
func (h *InvoiceQueryHandler) List(ctx context.Context, q ListInvoicesQuery) ([]domain.Invoice, error) {
	actor, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceInvoice)
	if err != nil {
		return nil, err
	}
	return h.invoices.FindAll(ctx, actor.Scope(), q.Filter, q.Limit, q.Offset)
}

// Get returns one invoice. Invoices outside the caller's scope are not found.
func (h *InvoiceQueryHandler) Get(ctx context.Context, id uint) (*domain.Invoice, error) {
	actor, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceInvoice)
	if err != nil {
		return nil, err
	}
	return h.invoices.FindByID(ctx, actor.Scope(), id)
}

// Payments lists the payments of an invoice visible to the caller
func (h *InvoiceQueryHandler) Payments(ctx context.Context, invoiceID uint) ([]domain.Payment, error) {
	actor, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourcePayment)
	if err != nil {
		return nil, err
	}
	if _, err := h.invoices.FindByID(ctx, actor.Scope(), invoiceID); err != nil {
		return nil, err
	}
	return h.payments.FindByInvoice(ctx, invoiceID)
}

// PurchaseInvoiceQueryHandler serves purchase invoice reads
type PurchaseInvoiceQueryHandler struct {
	exec *pipeline.Executor
	repo domain.PurchaseInvoiceRepository
}

// NewPurchaseInvoiceQueryHandler creates a new purchase invoice query handler
func NewPurchaseInvoiceQueryHandler(exec *pipeline.Executor, repo domain.PurchaseInvoiceRepository) *PurchaseInvoiceQueryHandler {
	return &PurchaseInvoiceQueryHandler{exec: exec, repo: repo}
}

func (h *PurchaseInvoiceQueryHandler) List(ctx context.Context, limit, offset int) ([]domain.PurchaseInvoice, error) {
	if _, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourcePurchaseInvoice); err != nil {
		return nil, err
	}
	return h.repo.FindAll(ctx, limit, offset)
}

func (h *PurchaseInvoiceQueryHandler) Get(ctx context.Context, id uint) (*domain.PurchaseInvoice, error) {
	if _, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourcePurchaseInvoice); err != nil {
		return nil, err
	}
	return h.repo.FindByID(ctx, id)
}
