package command

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/backoffice/internal/billing/domain"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// RecordPaymentCommand represents the command to record a payment against an invoice
type RecordPaymentCommand struct {
	InvoiceID   uint            `json:"-" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"method" validate:"required,oneof=cash card upi bank_transfer cheque"`
}

// PaymentRecorded is the stored payment with the invoice totals after it
type PaymentRecorded struct {
	Payment *domain.Payment `json:"payment"`
	Invoice *domain.Invoice `json:"invoice"`
}

// RecordPaymentHandler handles record payment command
type RecordPaymentHandler struct {
	exec *pipeline.Executor
	repo domain.PaymentRepository
}

// NewRecordPaymentHandler creates a new record payment handler
func NewRecordPaymentHandler(exec *pipeline.Executor, repo domain.PaymentRepository) *RecordPaymentHandler {
	return &RecordPaymentHandler{exec: exec, repo: repo}
}

// Handle stores the payment and moves the invoice along UNPAID, PENDING, PAID
func (h *RecordPaymentHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (pipeline.Result[PaymentRecorded], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[RecordPaymentCommand, PaymentRecorded]{
		Name:     "RecordPayment",
		Action:   identity.ActionCreate,
		Resource: identity.ResourcePayment,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd RecordPaymentCommand) (PaymentRecorded, error) {
			date := cmd.PaymentDate
			if date.IsZero() {
				date = time.Now().UTC()
			}
			payment := &domain.Payment{
				InvoiceID:   cmd.InvoiceID,
				RecordedBy:  actor.Ref,
				Amount:      cmd.Amount,
				PaymentDate: date,
				Method:      cmd.Method,
			}
			invoice, err := h.repo.Record(ctx, payment)
			if err != nil {
				return PaymentRecorded{}, err
			}
			return PaymentRecorded{Payment: payment, Invoice: invoice}, nil
		},
		EntityID: func(r PaymentRecorded) uint { return r.Invoice.ID },
		Message:  "Payment recorded successfully",
	}, cmd)
}
