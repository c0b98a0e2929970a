package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/fleet/domain"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/pkg/database"
)

type GormCarRepository struct {
	db *gorm.DB
}

func NewGormCarRepository(db *gorm.DB) *GormCarRepository {
	return &GormCarRepository{db: db}
}

func (r *GormCarRepository) Create(ctx context.Context, car *domain.Car) error {
	if err := r.db.WithContext(ctx).Create(car).Error; err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}
	return nil
}

func (r *GormCarRepository) FindByID(ctx context.Context, id uint) (*domain.Car, error) {
	var car domain.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("Car not found")
		}
		return nil, fmt.Errorf("failed to find car: %w", err)
	}
	return &car, nil
}

// FindAll lists cars visible in scope, newest first
func (r *GormCarRepository) FindAll(ctx context.Context, scope identity.Scope, limit, offset int) ([]domain.Car, error) {
	var cars []domain.Car
	err := r.db.WithContext(ctx).
		Scopes(scope.Apply("owner_ref")).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&cars).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

func (r *GormCarRepository) Update(ctx context.Context, car *domain.Car) error {
	result := r.db.WithContext(ctx).Model(car).Select("name", "model", "plate_number", "status").Updates(car)
	if result.Error != nil {
		return fmt.Errorf("failed to update car: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Car not found")
	}
	return nil
}

// Delete removes the car and returns the removed row
func (r *GormCarRepository) Delete(ctx context.Context, id uint) (*domain.Car, error) {
	var car domain.Car
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&car, id).Error; err != nil {
			if database.IsNotFound(err) {
				return apperr.NotFound("Car not found")
			}
			return err
		}
		return tx.Delete(&car).Error
	})
	if err != nil {
		return nil, err
	}
	return &car, nil
}
