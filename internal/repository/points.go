package repository

import (
	"context"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/pkg/xcontext"
)

type PointsRepository interface {
	Create(ctx context.Context, entry *entity.PointsEntry) error
	GetByUserID(ctx context.Context, userID string) ([]entity.PointsEntry, error)
	Balance(ctx context.Context, userID string) (int64, error)
}

type pointsRepository struct{}

func NewPointsRepository() *pointsRepository {
	return &pointsRepository{}
}

func (r *pointsRepository) Create(ctx context.Context, entry *entity.PointsEntry) error {
	return xcontext.DB(ctx).Create(entry).Error
}

func (r *pointsRepository) GetByUserID(ctx context.Context, userID string) ([]entity.PointsEntry, error) {
	var records []entity.PointsEntry
	err := xcontext.DB(ctx).
		Order("created_at DESC").
		Find(&records, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *pointsRepository) Balance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := xcontext.DB(ctx).Model(&entity.PointsEntry{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id=?", userID).
		Scan(&balance).Error
	if err != nil {
		return 0, err
	}

	return balance, nil
}
