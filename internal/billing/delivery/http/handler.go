package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/billing/domain"
	"github.com/tair/backoffice/internal/billing/usecase/command"
	"github.com/tair/backoffice/internal/billing/usecase/query"
	"github.com/tair/backoffice/internal/respond"
)

// BillingHandler handles HTTP requests for invoices, payments and purchase invoices
type BillingHandler struct {
	createInvoice         *command.CreateInvoiceHandler
	recordPayment         *command.RecordPaymentHandler
	createPurchaseInvoice *command.CreatePurchaseInvoiceHandler
	sendReminders         *command.SendRemindersHandler
	invoices              *query.InvoiceQueryHandler
	purchaseInvoices      *query.PurchaseInvoiceQueryHandler
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(
	createInvoice *command.CreateInvoiceHandler,
	recordPayment *command.RecordPaymentHandler,
	createPurchaseInvoice *command.CreatePurchaseInvoiceHandler,
	sendReminders *command.SendRemindersHandler,
	invoices *query.InvoiceQueryHandler,
	purchaseInvoices *query.PurchaseInvoiceQueryHandler,
) *BillingHandler {
	return &BillingHandler{
		createInvoice:         createInvoice,
		recordPayment:         recordPayment,
		createPurchaseInvoice: createPurchaseInvoice,
		sendReminders:         sendReminders,
		invoices:              invoices,
		purchaseInvoices:      purchaseInvoices,
	}
}

// CreateInvoice handles POST /invoices
func (h *BillingHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateInvoiceCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.createInvoice.Handle(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// ListInvoices handles GET /invoices?paymentStatus=
func (h *BillingHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	filter, err := invoiceFilter(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	limit, offset := respond.Page(r)
	invoices, err := h.invoices.List(r.Context(), query.ListInvoicesQuery{Filter: filter, Limit: limit, Offset: offset})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, invoices)
}

// GetInvoice handles GET /invoices/{id}
func (h *BillingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	invoice, err := h.invoices.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, invoice)
}

// RecordPayment handles POST /invoices/{id}/payments
func (h *BillingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var cmd command.RecordPaymentCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	cmd.InvoiceID = id

	result, err := h.recordPayment.Handle(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// ListPayments handles GET /invoices/{id}/payments
func (h *BillingHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	payments, err := h.invoices.Payments(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, payments)
}

// SendReminders handles POST /invoices/reminders
func (h *BillingHandler) SendReminders(w http.ResponseWriter, r *http.Request) {
	var cmd command.SendRemindersCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}

	outcome, err := h.sendReminders.Handle(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if outcome.Partial() {
		respond.JSON(w, http.StatusMultiStatus, map[string]any{
			"error":        "Some reminders could not be sent",
			"failedEmails": outcome.FailedEmails,
			"sent":         outcome.Sent,
		})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "Reminders sent successfully",
		"data":    outcome,
	})
}

// CreatePurchaseInvoice handles POST /purchase-invoices
func (h *BillingHandler) CreatePurchaseInvoice(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreatePurchaseInvoiceCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.createPurchaseInvoice.Handle(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// ListPurchaseInvoices handles GET /purchase-invoices
func (h *BillingHandler) ListPurchaseInvoices(w http.ResponseWriter, r *http.Request) {
	limit, offset := respond.Page(r)
	invoices, err := h.purchaseInvoices.List(r.Context(), limit, offset)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, invoices)
}

// GetPurchaseInvoice handles GET /purchase-invoices/{id}
func (h *BillingHandler) GetPurchaseInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	invoice, err := h.purchaseInvoices.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, invoice)
}

// RegisterRoutes registers billing routes on the authenticated api router
func (h *BillingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/invoices", h.CreateInvoice).Methods(http.MethodPost)
	router.HandleFunc("/invoices", h.ListInvoices).Methods(http.MethodGet)
	router.HandleFunc("/invoices/reminders", h.SendReminders).Methods(http.MethodPost)
	router.HandleFunc("/invoices/{id:[0-9]+}", h.GetInvoice).Methods(http.MethodGet)
	router.HandleFunc("/invoices/{id:[0-9]+}/payments", h.RecordPayment).Methods(http.MethodPost)
	router.HandleFunc("/invoices/{id:[0-9]+}/payments", h.ListPayments).Methods(http.MethodGet)

	router.HandleFunc("/purchase-invoices", h.CreatePurchaseInvoice).Methods(http.MethodPost)
	router.HandleFunc("/purchase-invoices", h.ListPurchaseInvoices).Methods(http.MethodGet)
	router.HandleFunc("/purchase-invoices/{id:[0-9]+}", h.GetPurchaseInvoice).Methods(http.MethodGet)
}

func invoiceFilter(r *http.Request) (domain.InvoiceFilter, error) {
	var filter domain.InvoiceFilter

	if raw := r.URL.Query().Get("paymentStatus"); raw != "" {
		status := domain.PaymentStatus(raw)
		if !status.Valid() {
			return filter, apperr.InvalidInput("paymentStatus must be one of [PAID PENDING UNPAID]")
		}
		filter.PaymentStatus = status
	}

	if raw := r.URL.Query().Get("companyId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, apperr.InvalidInput("Invalid companyId")
		}
		filter.CompanyID = uint(id)
	}
	return filter, nil
}
