package command

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/billing/domain"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/pipeline"
	"github.com/tair/backoffice/kafka"
	"github.com/tair/backoffice/pkg/config"
	"github.com/tair/backoffice/pkg/logger"
)

// ReminderSender hands one reminder to the mail transport
type ReminderSender interface {
	PublishReminder(ctx context.Context, msg kafka.ReminderMessage) error
}

// SendRemindersCommand represents the command to remind customers of unpaid invoices
type SendRemindersCommand struct {
	InvoiceIDs []uint `json:"invoiceIds" validate:"required,min=1,dive,required"`
}

// ReminderOutcome partitions the reminders by delivery result
type ReminderOutcome struct {
	Sent         []string `json:"sent"`
	FailedEmails []string `json:"failedEmails"`
	// Skipped lists invoices that are paid or whose customer has no email
	Skipped []uint `json:"skipped,omitempty"`
}

// Partial reports whether any delivery failed
func (o ReminderOutcome) Partial() bool {
	return len(o.FailedEmails) > 0
}

// SendRemindersHandler dispatches reminders with bounded concurrency
type SendRemindersHandler struct {
	exec        *pipeline.Executor
	invoices    domain.InvoiceRepository
	sender      ReminderSender
	concurrency int
	limiter     *rate.Limiter
}

// NewSendRemindersHandler creates a new send reminders handler
func NewSendRemindersHandler(exec *pipeline.Executor, invoices domain.InvoiceRepository, sender ReminderSender, cfg config.ReminderConfig) *SendRemindersHandler {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	limit := rate.Inf
	if cfg.PerSecond > 0 {
		limit = rate.Limit(cfg.PerSecond)
	}
	burst := int(math.Max(1, math.Ceil(cfg.PerSecond)))

	return &SendRemindersHandler{
		exec:        exec,
		invoices:    invoices,
		sender:      sender,
		concurrency: concurrency,
		limiter:     rate.NewLimiter(limit, burst),
	}
}

type reminderTarget struct {
	invoice domain.Invoice
	email   string
}

// Handle sends every reminder and waits for all of them. Failed deliveries are
// reported in the outcome, not as an error.
func (h *SendRemindersHandler) Handle(ctx context.Context, cmd SendRemindersCommand) (ReminderOutcome, error) {
	actor, err := h.exec.Authorize(ctx, identity.ActionCreate, identity.ResourceReminder)
	if err != nil {
		return ReminderOutcome{}, err
	}
	if err := h.exec.Validate(cmd); err != nil {
		return ReminderOutcome{}, err
	}

	ids := unique(cmd.InvoiceIDs)
	invoices, err := h.invoices.FindByIDs(ctx, ids)
	if err != nil {
		return ReminderOutcome{}, apperr.As(err)
	}
	if len(invoices) != len(ids) {
		return ReminderOutcome{}, apperr.NotFound("Invoice not found")
	}

	outcome := ReminderOutcome{Sent: []string{}, FailedEmails: []string{}}
	targets := make([]reminderTarget, 0, len(invoices))
	for _, inv := range invoices {
		if inv.PaymentStatus == domain.PaymentStatusPaid || inv.Customer == nil || inv.Customer.Email == "" {
			outcome.Skipped = append(outcome.Skipped, inv.ID)
			continue
		}
		targets = append(targets, reminderTarget{invoice: inv, email: inv.Customer.Email})
	}

	results := make([]error, len(targets))
	var g errgroup.Group
	g.SetLimit(h.concurrency)
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if err := h.limiter.Wait(ctx); err != nil {
				results[i] = err
				return nil
			}
			results[i] = h.sender.PublishReminder(ctx, reminderMessage(target, actor.Ref))
			return nil
		})
	}
	// Delivery errors are kept in results; the closures never fail the group.
	g.Wait()

	for i, target := range targets {
		if results[i] != nil {
			logger.Warn(ctx).
				Err(results[i]).
				Uint("invoice_id", target.invoice.ID).
				Str("email", target.email).
				Msg("Failed to send payment reminder")
			outcome.FailedEmails = append(outcome.FailedEmails, target.email)
			continue
		}
		outcome.Sent = append(outcome.Sent, target.email)
	}

	logger.Info(ctx).
		Int("sent", len(outcome.Sent)).
		Int("failed", len(outcome.FailedEmails)).
		Int("skipped", len(outcome.Skipped)).
		Msg("Payment reminders dispatched")

	return outcome, nil
}

func reminderMessage(t reminderTarget, requestedBy string) kafka.ReminderMessage {
	msg := kafka.ReminderMessage{
		InvoiceID:     t.invoice.ID,
		InvoiceNumber: t.invoice.InvoiceNumber,
		Email:         t.email,
		CustomerName:  t.invoice.Customer.Name,
		AmountDue:     t.invoice.Outstanding().StringFixed(2),
		RequestedBy:   requestedBy,
	}
	if t.invoice.DueDate != nil {
		msg.DueDate = *t.invoice.DueDate
	}
	return msg
}
