package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	identity "github.com/tair/backoffice/internal/identity/domain"
	partner "github.com/tair/backoffice/internal/partner/domain"
)

// PaymentStatus is the settlement state of a sales invoice
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
)

// Valid reports whether s is a known status
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusUnpaid:
		return true
	}
	return false
}

// Invoice is a sales invoice issued by a company to a customer
type Invoice struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	OwnerRef      string            `json:"ownerRef" gorm:"not null;index"`
	CompanyID     uint              `json:"companyId" gorm:"not null;index"`
	Company       *partner.Company  `json:"company,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CustomerID    uint              `json:"clientId" gorm:"not null;index"`
	Customer      *partner.Customer `json:"client,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	InvoiceNumber string            `json:"invoiceNumber" gorm:"not null;uniqueIndex:uq_invoices_number"`
	IGST          decimal.Decimal   `json:"igst" gorm:"column:igst;type:numeric(14,2);not null;default:0"`
	CGST          decimal.Decimal   `json:"cgst" gorm:"column:cgst;type:numeric(14,2);not null;default:0"`
	SGST          decimal.Decimal   `json:"sgst" gorm:"column:sgst;type:numeric(14,2);not null;default:0"`
	TotalAmount   decimal.Decimal   `json:"totalAmount" gorm:"type:numeric(14,2);not null"`
	NetAmount     decimal.Decimal   `json:"netAmount" gorm:"type:numeric(14,2);not null"`
	PaymentStatus PaymentStatus     `json:"paymentStatus" gorm:"type:varchar(16);not null;default:'UNPAID';index"`
	AmountPaid    decimal.Decimal   `json:"amountPaid" gorm:"type:numeric(14,2);not null;default:0"`
	DueDate       *time.Time        `json:"dueDate,omitempty"`
	CreatedAt     time.Time         `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// TableName specifies the table name
func (Invoice) TableName() string {
	return "invoices"
}

// NetOf is total plus every tax component
func NetOf(total, igst, cgst, sgst decimal.Decimal) decimal.Decimal {
	return total.Add(igst).Add(cgst).Add(sgst)
}

// Outstanding is what remains to be paid
func (i Invoice) Outstanding() decimal.Decimal {
	return i.NetAmount.Sub(i.AmountPaid)
}

// StatusFor derives the payment status from the amount paid against net
func StatusFor(paid, net decimal.Decimal) PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(net):
		return PaymentStatusPaid
	case paid.IsPositive():
		return PaymentStatusPending
	default:
		return PaymentStatusUnpaid
	}
}

// Payment settles part or all of an invoice
type Payment struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	InvoiceID   uint            `json:"invoiceId" gorm:"not null;index"`
	Invoice     *Invoice        `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	RecordedBy  string          `json:"recordedBy" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(14,2);not null"`
	PaymentDate time.Time       `json:"paymentDate" gorm:"not null"`
	Method      string          `json:"method" gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TableName specifies the table name
func (Payment) TableName() string {
	return "payments"
}

// InvoiceFilter narrows invoice listings
type InvoiceFilter struct {
	PaymentStatus PaymentStatus
	CompanyID     uint
}

// InvoiceRepository defines the contract for invoice data access
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *Invoice) error
	// FindByID returns the invoice only if it is visible in scope
	FindByID(ctx context.Context, scope identity.Scope, id uint) (*Invoice, error)
	FindByIDs(ctx context.Context, ids []uint) ([]Invoice, error)
	FindAll(ctx context.Context, scope identity.Scope, filter InvoiceFilter, limit, offset int) ([]Invoice, error)
	// FindSince returns every invoice in scope created at or after since, for reporting
	FindSince(ctx context.Context, scope identity.Scope, companyID uint, since time.Time) ([]Invoice, error)
}

// PaymentRepository defines the contract for payment data access
type PaymentRepository interface {
	// Record locks the invoice, rejects overpayment, stores the payment and updates the invoice totals
	Record(ctx context.Context, payment *Payment) (*Invoice, error)
	FindByInvoice(ctx context.Context, invoiceID uint) ([]Payment, error)
}
