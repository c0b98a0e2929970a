package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tair/backoffice/internal/apperr"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/pkg/database"
)

type GormCompanyRepository struct {
	db *gorm.DB
}

func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

func (r *GormCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		if _, ok := database.UniqueViolation(err); ok {
			return apperr.Conflict("Company already exists for this user")
		}
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *GormCompanyRepository) FindByID(ctx context.Context, id uint) (*domain.Company, error) {
	var company domain.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("Company not found")
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return &company, nil
}

func (r *GormCompanyRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	var companies []domain.Company
	err := r.db.WithContext(ctx).Order("name ASC").Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (r *GormCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	result := r.db.WithContext(ctx).Model(company).
		Select("name", "gstin", "address", "email", "phone", "bank_name", "account_number", "ifsc").
		Updates(company)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Company not found")
	}
	return nil
}

// Delete removes the company. Invoices still referencing it block the delete.
func (r *GormCompanyRepository) Delete(ctx context.Context, id uint) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&company, id).Error; err != nil {
			if database.IsNotFound(err) {
				return apperr.NotFound("Company not found")
			}
			return err
		}
		if err := tx.Delete(&company).Error; err != nil {
			if database.IsForeignKeyViolation(err) {
				return apperr.Conflict("Company is referenced by invoices")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &company, nil
}

type GormSellerRepository struct {
	db *gorm.DB
}

func NewGormSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

func (r *GormSellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	if err := r.db.WithContext(ctx).Create(seller).Error; err != nil {
		if constraint, ok := database.UniqueViolation(err); ok {
			return sellerConflict(constraint)
		}
		return fmt.Errorf("failed to create seller: %w", err)
	}
	return nil
}

func (r *GormSellerRepository) FindByID(ctx context.Context, id uint) (*domain.Seller, error) {
	var seller domain.Seller
	if err := r.db.WithContext(ctx).First(&seller, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("Seller not found")
		}
		return nil, fmt.Errorf("failed to find seller: %w", err)
	}
	return &seller, nil
}

func (r *GormSellerRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Seller, error) {
	var sellers []domain.Seller
	err := r.db.WithContext(ctx).Order("name ASC").Limit(limit).Offset(offset).Find(&sellers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}
	return sellers, nil
}

// sellerConflict names the field behind a unique violation. Postgres reports the
// constraint name, sqlite reports table.column.
func sellerConflict(constraint string) error {
	switch {
	case strings.Contains(constraint, "email"):
		return apperr.Conflict("A seller with this email already exists")
	case strings.Contains(constraint, "owner_ref"):
		return apperr.Conflict("A seller is already registered for this user")
	default:
		return apperr.Conflict("Seller already exists")
	}
}

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("Customer not found")
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindAll(ctx context.Context, scope identity.Scope, limit, offset int) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.WithContext(ctx).
		Scopes(scope.Apply("owner_ref")).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	result := r.db.WithContext(ctx).Model(customer).
		Select("name", "email", "phone", "address").
		Updates(customer)
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Customer not found")
	}
	return nil
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, id).Error; err != nil {
			if database.IsNotFound(err) {
				return apperr.NotFound("Customer not found")
			}
			return err
		}
		if err := tx.Delete(&customer).Error; err != nil {
			if database.IsForeignKeyViolation(err) {
				return apperr.Conflict("Customer is referenced by invoices")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
