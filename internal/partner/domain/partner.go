package domain

import (
	"context"
	"time"

	identity "github.com/tair/backoffice/internal/identity/domain"
)

// Company is the business profile of a principal. One per owner.
type Company struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OwnerRef      string    `json:"ownerRef" gorm:"not null;uniqueIndex:uq_companies_owner_ref"`
	Name          string    `json:"name" gorm:"not null"`
	GSTIN         string    `json:"gstin" gorm:"column:gstin"`
	Address       string    `json:"address"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	BankName      string    `json:"bankName"`
	AccountNumber string    `json:"accountNumber"`
	IFSC          string    `json:"ifsc" gorm:"column:ifsc"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Company) TableName() string {
	return "companies"
}

// Seller supplies product purchases
type Seller struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OwnerRef  string    `json:"ownerRef" gorm:"not null;uniqueIndex:uq_sellers_owner_ref"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex:uq_sellers_email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	GSTIN     string    `json:"gstin" gorm:"column:gstin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Seller) TableName() string {
	return "sellers"
}

// Customer is an invoice recipient
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OwnerRef  string    `json:"ownerRef" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// CompanyRepository defines the contract for company data access
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	FindByID(ctx context.Context, id uint) (*Company, error)
	FindAll(ctx context.Context, limit, offset int) ([]Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id uint) (*Company, error)
}

// SellerRepository defines the contract for seller data access
type SellerRepository interface {
	Create(ctx context.Context, seller *Seller) error
	FindByID(ctx context.Context, id uint) (*Seller, error)
	FindAll(ctx context.Context, limit, offset int) ([]Seller, error)
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	FindAll(ctx context.Context, scope identity.Scope, limit, offset int) ([]Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) (*Customer, error)
}
