package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/backoffice/internal/apperr"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/inventory/domain"
	"github.com/tair/backoffice/pkg/database"
)

type GormCrateRepository struct {
	db *gorm.DB
}

func NewGormCrateRepository(db *gorm.DB) *GormCrateRepository {
	return &GormCrateRepository{db: db}
}

func (r *GormCrateRepository) Create(ctx context.Context, crate *domain.Crate) error {
	if err := r.db.WithContext(ctx).Create(crate).Error; err != nil {
		if _, ok := database.UniqueViolation(err); ok {
			return apperr.Conflict("Crate ID already exists")
		}
		return fmt.Errorf("failed to create crate: %w", err)
	}
	return nil
}

func (r *GormCrateRepository) FindByID(ctx context.Context, id uint) (*domain.Crate, error) {
	var crate domain.Crate
	if err := r.db.WithContext(ctx).First(&crate, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("Crate not found")
		}
		return nil, fmt.Errorf("failed to find crate: %w", err)
	}
	return &crate, nil
}

func (r *GormCrateRepository) FindAll(ctx context.Context, scope identity.Scope, limit, offset int) ([]domain.Crate, error) {
	var crates []domain.Crate
	err := r.db.WithContext(ctx).
		Scopes(scope.Apply("owner_ref")).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&crates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list crates: %w", err)
	}
	return crates, nil
}

func (r *GormCrateRepository) Update(ctx context.Context, crate *domain.Crate) error {
	result := r.db.WithContext(ctx).Model(crate).Select("crate_id", "name", "quantity").Updates(crate)
	if result.Error != nil {
		if _, ok := database.UniqueViolation(result.Error); ok {
			return apperr.Conflict("Crate ID already exists")
		}
		return fmt.Errorf("failed to update crate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Crate not found")
	}
	return nil
}

func (r *GormCrateRepository) Delete(ctx context.Context, id uint) (*domain.Crate, error) {
	var crate domain.Crate
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&crate, id).Error; err != nil {
			if database.IsNotFound(err) {
				return apperr.NotFound("Crate not found")
			}
			return err
		}
		return tx.Delete(&crate).Error
	})
	if err != nil {
		return nil, err
	}
	return &crate, nil
}

type GormPurchaseRepository struct {
	db *gorm.DB
}

func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// Create stores a purchase. An unknown seller is reported as not found.
func (r *GormPurchaseRepository) Create(ctx context.Context, purchase *domain.ProductPurchase) error {
	if err := r.db.WithContext(ctx).Omit("Seller").Create(purchase).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperr.NotFound("Seller not found")
		}
		return fmt.Errorf("failed to create product purchase: %w", err)
	}
	return nil
}

func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uint) (*domain.ProductPurchase, error) {
	var purchase domain.ProductPurchase
	if err := r.db.WithContext(ctx).Preload("Seller").First(&purchase, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("Product purchase not found")
		}
		return nil, fmt.Errorf("failed to find product purchase: %w", err)
	}
	return &purchase, nil
}

func (r *GormPurchaseRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.ProductPurchase, error) {
	var purchases []domain.ProductPurchase
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to load product purchases: %w", err)
	}
	return purchases, nil
}

// FindAll lists purchases newest first, optionally filtered by status
func (r *GormPurchaseRepository) FindAll(ctx context.Context, status domain.PurchaseStatus, limit, offset int) ([]domain.ProductPurchase, error) {
	query := r.db.WithContext(ctx).Preload("Seller")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var purchases []domain.ProductPurchase
	err := query.Order("purchase_date DESC").Order("id DESC").Limit(limit).Offset(offset).Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list product purchases: %w", err)
	}
	return purchases, nil
}

type GormSellingRepository struct {
	db *gorm.DB
}

func NewGormSellingRepository(db *gorm.DB) *GormSellingRepository {
	return &GormSellingRepository{db: db}
}

// Deduct claims the purchase with a conditional update so that concurrent sales of the
// same purchase cannot both succeed, then inserts the selling in the same transaction.
func (r *GormSellingRepository) Deduct(ctx context.Context, selling *domain.ProductSelling) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.ProductPurchase{}).
			Where("id = ? AND status = ?", selling.ProductPurchaseID, domain.PurchaseStatusPending).
			Update("status", domain.PurchaseStatusDeducted)
		if result.Error != nil {
			return fmt.Errorf("failed to deduct product purchase: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			var purchase domain.ProductPurchase
			if err := tx.Select("id").First(&purchase, selling.ProductPurchaseID).Error; err != nil {
				if database.IsNotFound(err) {
					return apperr.NotFound("Product purchase not found")
				}
				return fmt.Errorf("failed to load product purchase: %w", err)
			}
			return apperr.Conflict("product purchase already deducted")
		}

		if err := tx.Omit("ProductPurchase").Create(selling).Error; err != nil {
			if _, ok := database.UniqueViolation(err); ok {
				return apperr.Conflict("product purchase already deducted")
			}
			return fmt.Errorf("failed to create product selling: %w", err)
		}

		var name string
		err := tx.Model(&domain.ProductPurchase{}).
			Where("id = ?", selling.ProductPurchaseID).
			Pluck("product_name", &name).Error
		if err != nil {
			return fmt.Errorf("failed to read product name: %w", err)
		}
		selling.ProductName = name
		return nil
	})
}

// FindAll lists sellings newest first with the product name taken from the purchase
func (r *GormSellingRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.ProductSelling, error) {
	var sellings []domain.ProductSelling
	err := r.db.WithContext(ctx).
		Preload("ProductPurchase").
		Order("sold_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&sellings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list product sellings: %w", err)
	}

	for i := range sellings {
		if p := sellings[i].ProductPurchase; p != nil {
			sellings[i].ProductName = p.ProductName
		}
	}
	return sellings, nil
}
