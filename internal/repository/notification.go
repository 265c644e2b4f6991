package repository

import (
	"context"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, data *entity.Notification) error
	GetByUserID(ctx context.Context, userID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id int64, userID string) error
}

type notificationRepository struct{}

func NewNotificationRepository() *notificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(ctx context.Context, data *entity.Notification) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *notificationRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Notification, error) {
	var records []entity.Notification
	err := xcontext.DB(ctx).
		Order("id DESC").
		Find(&records, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64, userID string) error {
	tx := xcontext.DB(ctx).Model(&entity.Notification{}).
		Where("id=? AND user_id=?", id, userID).
		Update("is_read", true)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
