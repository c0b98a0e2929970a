package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	inventory "github.com/tair/backoffice/internal/inventory/domain"
	partner "github.com/tair/backoffice/internal/partner/domain"
)

// CompanySnapshot is the company's details as printed on a purchase invoice
type CompanySnapshot struct {
	Name          string `json:"name"`
	GSTIN         string `json:"gstin" gorm:"column:gstin"`
	Address       string `json:"address"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc" gorm:"column:ifsc"`
}

// SnapshotCompany copies the printable company fields
func SnapshotCompany(c *partner.Company) CompanySnapshot {
	return CompanySnapshot{
		Name:          c.Name,
		GSTIN:         c.GSTIN,
		Address:       c.Address,
		Email:         c.Email,
		Phone:         c.Phone,
		BankName:      c.BankName,
		AccountNumber: c.AccountNumber,
		IFSC:          c.IFSC,
	}
}

// SellerSnapshot is the seller's details as printed on a purchase invoice
type SellerSnapshot struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin" gorm:"column:gstin"`
}

// SnapshotSeller copies the printable seller fields
func SnapshotSeller(s *partner.Seller) SellerSnapshot {
	return SellerSnapshot{
		Name:    s.Name,
		Email:   s.Email,
		Phone:   s.Phone,
		Address: s.Address,
		GSTIN:   s.GSTIN,
	}
}

// PurchaseInvoice groups product purchases from one seller. Snapshots never change after creation.
type PurchaseInvoice struct {
	ID            uint                        `json:"id" gorm:"primaryKey"`
	OwnerRef      string                      `json:"ownerRef" gorm:"not null;index"`
	CompanyID     uint                        `json:"companyId" gorm:"not null;index"`
	Company       *partner.Company            `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	SellerID      uint                        `json:"sellerId" gorm:"not null;index"`
	Seller        *partner.Seller             `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	InvoiceNumber string                      `json:"invoiceNumber" gorm:"not null;uniqueIndex:uq_purchase_invoices_number"`
	CompanyInfo   CompanySnapshot             `json:"company" gorm:"embedded;embeddedPrefix:company_"`
	SellerInfo    SellerSnapshot              `json:"seller" gorm:"embedded;embeddedPrefix:seller_"`
	Purchases     []inventory.ProductPurchase `json:"purchases" gorm:"many2many:purchase_invoice_items"`
	// TotalAmount is derived from the purchases on read
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"-"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TableName specifies the table name
func (PurchaseInvoice) TableName() string {
	return "purchase_invoices"
}

// ComputeTotal sets TotalAmount to the sum of quantity times purchase amount
func (p *PurchaseInvoice) ComputeTotal() {
	total := decimal.Zero
	for _, item := range p.Purchases {
		total = total.Add(item.Total())
	}
	p.TotalAmount = total
}

// PurchaseInvoiceRepository defines the contract for purchase invoice data access
type PurchaseInvoiceRepository interface {
	Create(ctx context.Context, invoice *PurchaseInvoice) error
	FindByID(ctx context.Context, id uint) (*PurchaseInvoice, error)
	FindAll(ctx context.Context, limit, offset int) ([]PurchaseInvoice, error)
}
