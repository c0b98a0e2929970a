package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/billing/domain"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/pkg/database"
)

type GormInvoiceRepository struct {
	db *gorm.DB
}

func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Create stores an invoice. A missing company or customer is reported as not found.
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(invoice).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperr.NotFound("Company or customer not found")
		}
		if _, ok := database.UniqueViolation(err); ok {
			return apperr.Conflict("Invoice number already exists")
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

func (r *GormInvoiceRepository) FindByID(ctx context.Context, scope identity.Scope, id uint) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.WithContext(ctx).
		Scopes(scope.Apply("owner_ref")).
		Preload("Customer").Preload("Company").
		First(&invoice, id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("Invoice not found")
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	return &invoice, nil
}

func (r *GormInvoiceRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.WithContext(ctx).Preload("Customer").Where("id IN ?", ids).Order("id ASC").Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	return invoices, nil
}

func (r *GormInvoiceRepository) FindAll(ctx context.Context, scope identity.Scope, filter domain.InvoiceFilter, limit, offset int) ([]domain.Invoice, error) {
	query := r.db.WithContext(ctx).Scopes(scope.Apply("owner_ref"), filterScope(filter))

	var invoices []domain.Invoice
	err := query.Preload("Customer").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func filterScope(filter domain.InvoiceFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.PaymentStatus != "" {
			db = db.Where("payment_status = ?", filter.PaymentStatus)
		}
		if filter.CompanyID != 0 {
			db = db.Where("company_id = ?", filter.CompanyID)
		}
		return db
	}
}

func (r *GormInvoiceRepository) FindSince(ctx context.Context, scope identity.Scope, companyID uint, since time.Time) ([]domain.Invoice, error) {
	query := r.db.WithContext(ctx).Scopes(scope.Apply("owner_ref"))
	if companyID != 0 {
		query = query.Where("company_id = ?", companyID)
	}
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}

	var invoices []domain.Invoice
	if err := query.Order("created_at ASC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to load invoices for report: %w", err)
	}
	return invoices, nil
}

type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Record serializes concurrent payments on the same invoice with a row lock
func (r *GormPaymentRepository) Record(ctx context.Context, payment *domain.Payment) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&invoice, payment.InvoiceID).Error
		if err != nil {
			if database.IsNotFound(err) {
				return apperr.NotFound("Invoice not found")
			}
			return fmt.Errorf("failed to lock invoice: %w", err)
		}

		if payment.Amount.GreaterThan(invoice.Outstanding()) {
			return apperr.InvalidInputf("amount exceeds outstanding balance of %s", invoice.Outstanding().StringFixed(2))
		}

		if err := tx.Omit(clause.Associations).Create(payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		invoice.AmountPaid = invoice.AmountPaid.Add(payment.Amount)
		invoice.PaymentStatus = domain.StatusFor(invoice.AmountPaid, invoice.NetAmount)
		err = tx.Model(&invoice).Select("amount_paid", "payment_status").Updates(&invoice).Error
		if err != nil {
			return fmt.Errorf("failed to update invoice totals: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *GormPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uint) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date DESC").Order("id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
