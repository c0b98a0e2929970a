package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/pkg/database"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user. Duplicate external refs or usernames are conflicts.
func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if constraint, ok := database.UniqueViolation(err); ok {
			return userConflict(constraint)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByExternalRef retrieves the user linked to an identity provider subject
func (r *GormUserRepository) FindByExternalRef(ctx context.Context, ref string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("external_ref = ?", ref).First(&user).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByRoles retrieves every user holding one of roles
func (r *GormUserRepository) FindByRoles(ctx context.Context, roles ...domain.Role) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Where("role IN ?", roles).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users by role: %w", err)
	}
	return users, nil
}

// FindAll retrieves all users with pagination
func (r *GormUserRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var users []domain.User
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

// UpdateRole changes the role and runs hook in the same transaction so a failed
// propagation leaves the stored role untouched.
func (r *GormUserRepository) UpdateRole(ctx context.Context, id uint, role domain.Role, hook domain.RoleChangeHook) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if database.IsNotFound(err) {
				return apperr.NotFound("User not found")
			}
			return err
		}

		if err := tx.Model(&user).Update("role", role).Error; err != nil {
			return err
		}
		user.Role = role

		if hook != nil {
			return hook(ctx, &user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func userConflict(constraint string) error {
	switch {
	case strings.Contains(constraint, "username"):
		return apperr.Conflict("Username is already taken")
	default:
		return apperr.Conflict("User already exists")
	}
}
