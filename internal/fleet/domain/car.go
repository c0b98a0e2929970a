package domain

import (
	"context"
	"time"

	identity "github.com/tair/backoffice/internal/identity/domain"
)

// CarStatus is the operational state of a car
type CarStatus string

const (
	CarStatusActive      CarStatus = "active"
	CarStatusInactive    CarStatus = "inactive"
	CarStatusMaintenance CarStatus = "maintenance"
)

// Car is a fleet record owned by the principal that created it
type Car struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerRef    string    `json:"ownerRef" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Model       string    `json:"model"`
	PlateNumber string    `json:"plateNumber" gorm:"not null"`
	Status      CarStatus `json:"status" gorm:"type:varchar(16);not null;default:'active'"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Car) TableName() string {
	return "cars"
}

// CarRepository defines the contract for car data access
type CarRepository interface {
	Create(ctx context.Context, car *Car) error
	FindByID(ctx context.Context, id uint) (*Car, error)
	FindAll(ctx context.Context, scope identity.Scope, limit, offset int) ([]Car, error)
	Update(ctx context.Context, car *Car) error
	Delete(ctx context.Context, id uint) (*Car, error)
}
