package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/pkg/database"
)

// GormNotificationRepository implements NotificationRepository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new notification repository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) CreateBatch(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&notifications).Error; err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}
	return nil
}

// FindByUser lists a principal's notifications, newest first
func (r *GormNotificationRepository) FindByUser(ctx context.Context, ref string, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	query := r.db.WithContext(ctx).Where("user_ref = ?", ref)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var notifications []domain.Notification
	if err := query.Order("created_at DESC").Order("id DESC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips one notification owned by ref to read
func (r *GormNotificationRepository) MarkRead(ctx context.Context, id uint, ref string) (*domain.Notification, error) {
	var n domain.Notification
	if err := r.db.WithContext(ctx).Where("id = ? AND user_ref = ?", id, ref).First(&n).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFound("Notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	if !n.Read {
		if err := r.db.WithContext(ctx).Model(&n).Update("read", true).Error; err != nil {
			return nil, fmt.Errorf("failed to mark notification read: %w", err)
		}
		n.Read = true
	}
	return &n, nil
}

// MarkAllRead marks every unread notification of ref as read and returns how many changed
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, ref string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_ref = ? AND read = ?", ref, false).
		Update("read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormNotificationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Notification{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Notification not found")
	}
	return nil
}
