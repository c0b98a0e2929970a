package domain

import (
	"context"
	"fmt"
	"time"

	identity "github.com/tair/backoffice/internal/identity/domain"
)

// Type tags what happened
type Type string

const (
	TypeCarCreated       Type = "CAR_CREATED"
	TypeCarUpdated       Type = "CAR_UPDATED"
	TypeCarDeleted       Type = "CAR_DELETED"
	TypeCrateUpdated     Type = "CRATE_UPDATED"
	TypeCrateDeleted     Type = "CRATE_DELETED"
	TypeCompanyCreated   Type = "COMPANY_CREATED"
	TypeCompanyUpdated   Type = "COMPANY_UPDATED"
	TypeCompanyDeleted   Type = "COMPANY_DELETED"
	TypeSellerCreated    Type = "SELLER_CREATED"
	TypeCustomerCreated  Type = "CUSTOMER_CREATED"
	TypeCustomerUpdated  Type = "CUSTOMER_UPDATED"
	TypeCustomerDeleted  Type = "CUSTOMER_DELETED"
	TypeUserCreated      Type = "USER_CREATED"
	TypeRoleUpdated      Type = "ROLE_UPDATED"
	TypeProductSold      Type = "PRODUCT_SOLD"
	TypeProductSoldAlert Type = "PRODUCT_SOLD_ALERT"
)

var templates = map[Type]string{
	TypeCarCreated:       "Car %s has been created.",
	TypeCarUpdated:       "Car %s has been updated.",
	TypeCarDeleted:       "Car %s has been deleted.",
	TypeCrateUpdated:     "Crate %s has been updated.",
	TypeCrateDeleted:     "Crate %s has been deleted.",
	TypeCompanyCreated:   "Company %s has been created.",
	TypeCompanyUpdated:   "Company %s has been updated.",
	TypeCompanyDeleted:   "Company %s has been deleted.",
	TypeSellerCreated:    "Seller %s has been added.",
	TypeCustomerCreated:  "Customer %s has been created.",
	TypeCustomerUpdated:  "Customer %s has been updated.",
	TypeCustomerDeleted:  "Customer %s has been deleted.",
	TypeUserCreated:      "Welcome %s, your profile has been created.",
	TypeRoleUpdated:      "Your role has been updated to %s.",
	TypeProductSold:      "Product %s has been sold.",
	TypeProductSoldAlert: "Product %s has been sold and deducted from stock.",
}

// Message renders the fixed template for t
func Message(t Type, subject string) string {
	tpl, ok := templates[t]
	if !ok {
		return subject
	}
	return fmt.Sprintf(tpl, subject)
}

// Notification is one feed entry for one principal
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserRef   string    `json:"userId" gorm:"column:user_ref;not null;index"`
	Type      Type      `json:"type" gorm:"type:varchar(32);not null"`
	Message   string    `json:"message" gorm:"not null"`
	Read      bool      `json:"read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// TableName specifies the table name
func (Notification) TableName() string {
	return "notifications"
}

// Audience selects who receives a notice
type Audience struct {
	TargetRef string
	Roles     []identity.Role
}

// Direct targets a single principal
func Direct(ref string) Audience {
	return Audience{TargetRef: ref}
}

// Broadcast targets every user holding one of roles at send time. Defaults to ADMIN and MODERATOR.
func Broadcast(roles ...identity.Role) Audience {
	if len(roles) == 0 {
		roles = []identity.Role{identity.RoleAdmin, identity.RoleModerator}
	}
	return Audience{Roles: roles}
}

// Notice is a request to notify an audience
type Notice struct {
	Audience Audience
	Type     Type
	Message  string
}

// NewNotice builds a notice with the templated message for subject
func NewNotice(audience Audience, t Type, subject string) Notice {
	return Notice{Audience: audience, Type: t, Message: Message(t, subject)}
}

// NotificationRepository defines the contract for notification data access
type NotificationRepository interface {
	CreateBatch(ctx context.Context, notifications []Notification) error
	FindByUser(ctx context.Context, ref string, unreadOnly bool, limit, offset int) ([]Notification, error)
	MarkRead(ctx context.Context, id uint, ref string) (*Notification, error)
	MarkAllRead(ctx context.Context, ref string) (int64, error)
	Delete(ctx context.Context, id uint) error
}
