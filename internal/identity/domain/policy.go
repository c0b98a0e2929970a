package domain

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/backoffice/internal/apperr"
)

// Action is what a principal attempts on a resource
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource is an entity kind guarded by the policy
type Resource string

const (
	ResourceCar             Resource = "car"
	ResourceCompany         Resource = "company"
	ResourceCrate           Resource = "crate"
	ResourceCustomer        Resource = "customer"
	ResourceSeller          Resource = "seller"
	ResourceProductPurchase Resource = "product_purchase"
	ResourceProductSelling  Resource = "product_selling"
	ResourcePurchaseInvoice Resource = "purchase_invoice"
	ResourceInvoice         Resource = "invoice"
	ResourcePayment         Resource = "payment"
	ResourceNotification    Resource = "notification"
	ResourceUser            Resource = "user"
	ResourceUserDirectory   Resource = "user_directory"
	ResourceReminder        Resource = "reminder"
	ResourceDashboard       Resource = "dashboard"
)

var (
	anyRole  = AllRoles
	staff    = []Role{RoleAdmin, RoleModerator}
	team     = []Role{RoleAdmin, RoleModerator, RoleMember}
	admins   = []Role{RoleAdmin}
	noAccess = []Role{}
)

// policy is the single role table. A missing entry denies.
var policy = map[Resource]map[Action][]Role{
	ResourceCar: {
		ActionCreate: anyRole, ActionRead: anyRole, ActionUpdate: staff, ActionDelete: staff,
	},
	ResourceCompany: {
		ActionCreate: admins, ActionRead: team, ActionUpdate: staff, ActionDelete: staff,
	},
	ResourceCrate: {
		ActionCreate: staff, ActionRead: anyRole, ActionUpdate: staff, ActionDelete: staff,
	},
	ResourceCustomer: {
		ActionCreate: anyRole, ActionRead: anyRole, ActionUpdate: staff, ActionDelete: staff,
	},
	ResourceSeller: {
		ActionCreate: staff, ActionRead: staff, ActionUpdate: staff, ActionDelete: staff,
	},
	ResourceProductPurchase: {
		ActionCreate: staff, ActionRead: team, ActionUpdate: staff, ActionDelete: staff,
	},
	ResourceProductSelling: {
		ActionCreate: staff, ActionRead: team,
	},
	ResourcePurchaseInvoice: {
		ActionCreate: staff, ActionRead: team,
	},
	ResourceInvoice: {
		ActionCreate: team, ActionRead: anyRole, ActionUpdate: staff, ActionDelete: staff,
	},
	ResourcePayment: {
		ActionCreate: team, ActionRead: anyRole,
	},
	// Notifications are only created by the fan-out, never through the policy
	ResourceNotification: {
		ActionCreate: noAccess, ActionRead: anyRole, ActionUpdate: anyRole, ActionDelete: staff,
	},
	ResourceUser: {
		ActionRead: anyRole, ActionUpdate: admins,
	},
	ResourceUserDirectory: {
		ActionRead: admins,
	},
	ResourceReminder: {
		ActionCreate: team,
	},
	ResourceDashboard: {
		ActionRead: anyRole,
	},
}

// Allowed reports whether role may perform action on resource
func Allowed(role Role, action Action, resource Resource) bool {
	for _, r := range policy[resource][action] {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize decides whether the principal identified by ref, with stored record user,
// may perform action on resource.
func Authorize(ref string, user *User, action Action, resource Resource) error {
	if ref == "" {
		return apperr.Unauthenticated("Unauthorized")
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}
	if !Allowed(user.Role, action, resource) {
		return apperr.Forbidden(fmt.Sprintf("Forbidden: %s cannot %s %s", user.Role, action, resource))
	}
	return nil
}

// Scope restricts reads to rows owned by a principal. The zero value is global.
type Scope struct {
	Owned    bool
	OwnerRef string
}

// ScopeFor returns the read scope for role. Elevated roles see everything; USER sees own rows.
func ScopeFor(role Role, ref string) Scope {
	switch role {
	case RoleAdmin, RoleModerator, RoleMember:
		return Scope{}
	default:
		return Scope{Owned: true, OwnerRef: ref}
	}
}

// Global reports whether the scope is unfiltered
func (s Scope) Global() bool {
	return !s.Owned
}

// Apply returns a GORM scope filtering column by owner when the scope is not global.
func (s Scope) Apply(column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s.Global() {
			return db
		}
		return db.Where(column+" = ?", s.OwnerRef)
	}
}
