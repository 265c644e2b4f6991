package repository

import (
	"context"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/pkg/xcontext"
)

type TreeRepository interface {
	Create(ctx context.Context, data *entity.Tree) error
	GetActive(ctx context.Context, userID string) (*entity.Tree, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Tree, error)
	GetAllWithReminder(ctx context.Context) ([]entity.Tree, error)
	Update(ctx context.Context, data *entity.Tree) error
	SetReminder(ctx context.Context, id string, hour, minute int) error
}

type treeRepository struct{}

func NewTreeRepository() *treeRepository {
	return &treeRepository{}
}

func (r *treeRepository) Create(ctx context.Context, data *entity.Tree) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *treeRepository) GetActive(ctx context.Context, userID string) (*entity.Tree, error) {
	var record entity.Tree
	err := xcontext.DB(ctx).Take(&record, "user_id=? AND retired=?", userID, false).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *treeRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Tree, error) {
	var records []entity.Tree
	err := xcontext.DB(ctx).
		Order("created_at ASC").
		Find(&records, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *treeRepository) GetAllWithReminder(ctx context.Context) ([]entity.Tree, error) {
	var records []entity.Tree
	err := xcontext.DB(ctx).
		Find(&records, "reminder_set=? AND retired=?", true, false).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *treeRepository) Update(ctx context.Context, data *entity.Tree) error {
	return xcontext.DB(ctx).Model(&entity.Tree{}).
		Where("id=?", data.ID).
		Updates(map[string]any{
			"stage":         data.Stage,
			"water_history": data.WaterHistory,
			"retired":       data.Retired,
		}).Error
}

func (r *treeRepository) SetReminder(ctx context.Context, id string, hour, minute int) error {
	return xcontext.DB(ctx).Model(&entity.Tree{}).
		Where("id=?", id).
		Updates(map[string]any{
			"reminder_set":    true,
			"reminder_hour":   hour,
			"reminder_minute": minute,
		}).Error
}
