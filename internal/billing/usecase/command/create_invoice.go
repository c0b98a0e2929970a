package command

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tair/backoffice/internal/billing/domain"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// CreateInvoiceCommand represents the command to issue a sales invoice
type CreateInvoiceCommand struct {
	CompanyID     uint                 `json:"companyId" validate:"required"`
	CustomerID    uint                 `json:"clientId" validate:"required"`
	InvoiceNumber string               `json:"invoiceNumber" validate:"max=64"`
	IGST          decimal.Decimal      `json:"igst" validate:"gte=0"`
	CGST          decimal.Decimal      `json:"cgst" validate:"gte=0"`
	SGST          decimal.Decimal      `json:"sgst" validate:"gte=0"`
	TotalAmount   decimal.Decimal      `json:"totalAmount" validate:"gt=0"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus" validate:"omitempty,oneof=PAID PENDING UNPAID"`
	DueDate       *time.Time           `json:"dueDate"`
}

// CreateInvoiceHandler handles create invoice command
type CreateInvoiceHandler struct {
	exec *pipeline.Executor
	repo domain.InvoiceRepository
}

// NewCreateInvoiceHandler creates a new create invoice handler
func NewCreateInvoiceHandler(exec *pipeline.Executor, repo domain.InvoiceRepository) *CreateInvoiceHandler {
	return &CreateInvoiceHandler{exec: exec, repo: repo}
}

// Handle issues the invoice. Net amount is always total plus taxes.
func (h *CreateInvoiceHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) (pipeline.Result[*domain.Invoice], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CreateInvoiceCommand, *domain.Invoice]{
		Name:     "CreateInvoice",
		Action:   identity.ActionCreate,
		Resource: identity.ResourceInvoice,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd CreateInvoiceCommand) (*domain.Invoice, error) {
			net := domain.NetOf(cmd.TotalAmount, cmd.IGST, cmd.CGST, cmd.SGST)

			status := cmd.PaymentStatus
			if status == "" {
				status = domain.PaymentStatusUnpaid
			}
			paid := decimal.Zero
			if status == domain.PaymentStatusPaid {
				paid = net
			}

			invoice := &domain.Invoice{
				OwnerRef:      actor.Ref,
				CompanyID:     cmd.CompanyID,
				CustomerID:    cmd.CustomerID,
				InvoiceNumber: invoiceNumber(cmd.InvoiceNumber),
				IGST:          cmd.IGST,
				CGST:          cmd.CGST,
				SGST:          cmd.SGST,
				TotalAmount:   cmd.TotalAmount,
				NetAmount:     net,
				PaymentStatus: status,
				AmountPaid:    paid,
				DueDate:       cmd.DueDate,
			}
			if err := h.repo.Create(ctx, invoice); err != nil {
				return nil, err
			}
			return invoice, nil
		},
		EntityID: func(i *domain.Invoice) uint { return i.ID },
		Message:  "Invoice created successfully",
	}, cmd)
}

func invoiceNumber(requested string) string {
	if requested = strings.TrimSpace(requested); requested != "" {
		return requested
	}
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}
