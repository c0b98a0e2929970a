package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/billing/domain"
	"github.com/tair/backoffice/pkg/database"
)

type GormPurchaseInvoiceRepository struct {
	db *gorm.DB
}

func NewGormPurchaseInvoiceRepository(db *gorm.DB) *GormPurchaseInvoiceRepository {
	return &GormPurchaseInvoiceRepository{db: db}
}

// Create stores the invoice and its purchase links. The purchases themselves are not written.
func (r *GormPurchaseInvoiceRepository) Create(ctx context.Context, invoice *domain.PurchaseInvoice) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Company", "Seller", "Purchases.*").Create(invoice).Error
	})
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperr.NotFound("Company or seller not found")
		}
		if _, ok := database.UniqueViolation(err); ok {
			return apperr.Conflict("Invoice number already exists")
		}
		return fmt.Errorf("failed to create purchase invoice: %w", err)
	}
	invoice.ComputeTotal()
	return nil
}

func (r *GormPurchaseInvoiceRepository) FindByID(ctx context.Context, id uint) (*domain.PurchaseInvoice, error) {
	var invoice domain.PurchaseInvoice
	if err := r.db.WithContext(ctx).Preload("Purchases").First(&invoice, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("Purchase invoice not found")
		}
		return nil, fmt.Errorf("failed to find purchase invoice: %w", err)
	}
	invoice.ComputeTotal()
	return &invoice, nil
}

func (r *GormPurchaseInvoiceRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.PurchaseInvoice, error) {
	var invoices []domain.PurchaseInvoice
	err := r.db.WithContext(ctx).
		Preload("Purchases").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase invoices: %w", err)
	}
	for i := range invoices {
		invoices[i].ComputeTotal()
	}
	return invoices, nil
}
