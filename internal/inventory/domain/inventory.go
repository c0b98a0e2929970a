package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	identity "github.com/tair/backoffice/internal/identity/domain"
	partner "github.com/tair/backoffice/internal/partner/domain"
)

// Crate is a returnable container tracked per owner
type Crate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OwnerRef  string    `json:"ownerRef" gorm:"not null;uniqueIndex:uq_crates_owner_crate,priority:1"`
	CrateID   string    `json:"crateId" gorm:"not null;uniqueIndex:uq_crates_owner_crate,priority:2"`
	Name      string    `json:"crateName" gorm:"not null"`
	Quantity  int       `json:"crateQuantity" gorm:"not null;check:quantity > 0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Crate) TableName() string {
	return "crates"
}

// PurchaseStatus tracks whether a purchase has been sold off
type PurchaseStatus string

const (
	PurchaseStatusPending  PurchaseStatus = "pending"
	PurchaseStatusDeducted PurchaseStatus = "deducted"
)

// ProductPurchase is stock bought from a seller
type ProductPurchase struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	OwnerRef       string          `json:"ownerRef" gorm:"not null;index"`
	SellerID       uint            `json:"sellerId" gorm:"not null;index"`
	Seller         *partner.Seller `json:"seller,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductName    string          `json:"productName" gorm:"not null"`
	Quantity       int             `json:"quantity" gorm:"not null"`
	PurchaseAmount decimal.Decimal `json:"purchaseAmount" gorm:"type:numeric(14,2);not null"`
	PurchaseDate   time.Time       `json:"purchaseDate" gorm:"not null"`
	Status         PurchaseStatus  `json:"status" gorm:"type:varchar(16);not null;default:'pending';index"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// TableName specifies the table name
func (ProductPurchase) TableName() string {
	return "product_purchases"
}

// Total is quantity times unit purchase amount
func (p ProductPurchase) Total() decimal.Decimal {
	return p.PurchaseAmount.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// ProductSelling records the sale of one purchase. A purchase is sold at most once.
type ProductSelling struct {
	ID                uint             `json:"id" gorm:"primaryKey"`
	OwnerRef          string           `json:"ownerRef" gorm:"not null;index"`
	ProductPurchaseID uint             `json:"productPurchaseId" gorm:"not null;uniqueIndex:uq_product_sellings_purchase"`
	ProductPurchase   *ProductPurchase `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	SellingAmount     decimal.Decimal  `json:"sellingAmount" gorm:"type:numeric(14,2);not null"`
	SoldAt            time.Time        `json:"soldAt" gorm:"not null"`
	// ProductName is read from the purchase, never stored
	ProductName string    `json:"productName" gorm:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (ProductSelling) TableName() string {
	return "product_sellings"
}

// CrateRepository defines the contract for crate data access
type CrateRepository interface {
	Create(ctx context.Context, crate *Crate) error
	FindByID(ctx context.Context, id uint) (*Crate, error)
	FindAll(ctx context.Context, scope identity.Scope, limit, offset int) ([]Crate, error)
	Update(ctx context.Context, crate *Crate) error
	Delete(ctx context.Context, id uint) (*Crate, error)
}

// PurchaseRepository defines the contract for product purchase data access
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *ProductPurchase) error
	FindByID(ctx context.Context, id uint) (*ProductPurchase, error)
	FindByIDs(ctx context.Context, ids []uint) ([]ProductPurchase, error)
	FindAll(ctx context.Context, status PurchaseStatus, limit, offset int) ([]ProductPurchase, error)
}

// SellingRepository defines the contract for product selling data access
type SellingRepository interface {
	// Deduct flips the purchase from pending to deducted and inserts the selling in one transaction
	Deduct(ctx context.Context, selling *ProductSelling) error
	FindAll(ctx context.Context, limit, offset int) ([]ProductSelling, error)
}
