package domain

import (
	"context"
	"time"
)

// Role is the closed set of roles attached to a stored user record
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RoleMember    Role = "MEMBER"
	RoleUser      Role = "USER"
)

// AllRoles lists every role
var AllRoles = []Role{RoleAdmin, RoleModerator, RoleMember, RoleUser}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleMember, RoleUser:
		return true
	}
	return false
}

// User is the stored profile of a principal. Users are never hard-deleted.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ExternalRef string    `json:"externalIdentityRef" gorm:"uniqueIndex:uq_users_external_ref;not null"`
	Username    string    `json:"username" gorm:"uniqueIndex:uq_users_username;not null"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        Role      `json:"role" gorm:"type:varchar(16);not null;default:'USER';index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsElevated reports whether the user sees unscoped data
func (u *User) IsElevated() bool {
	return ScopeFor(u.Role, u.ExternalRef).Global()
}

// RoleChangeHook runs inside the role update transaction; returning an error rolls it back.
type RoleChangeHook func(ctx context.Context, user *User) error

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByExternalRef(ctx context.Context, ref string) (*User, error)
	FindByRoles(ctx context.Context, roles ...Role) ([]User, error)
	FindAll(ctx context.Context, limit, offset int) ([]User, error)
	UpdateRole(ctx context.Context, id uint, role Role, hook RoleChangeHook) (*User, error)
}
