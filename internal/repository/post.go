package repository

import (
	"context"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(ctx context.Context, data *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Post, error)
	Update(ctx context.Context, id, caption, imageURL string) error
	Delete(ctx context.Context, id string) error

	CreateComment(ctx context.Context, data *entity.PostComment) error
	GetComments(ctx context.Context, postID string) ([]entity.PostComment, error)
	CountComments(ctx context.Context, postIDs []string) (map[string]int64, error)

	UpsertReaction(ctx context.Context, reaction *entity.PostReaction) error
	DeleteReaction(ctx context.Context, postID, userID string) error
	GetReactions(ctx context.Context, postIDs []string) ([]entity.PostReaction, error)
}

type postRepository struct{}

func NewPostRepository() *postRepository {
	return &postRepository{}
}

func (r *postRepository) Create(ctx context.Context, data *entity.Post) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var record entity.Post
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *postRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Post, error) {
	var records []entity.Post
	err := xcontext.DB(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *postRepository) Update(ctx context.Context, id, caption, imageURL string) error {
	return xcontext.DB(ctx).Model(&entity.Post{}).
		Where("id=?", id).
		Updates(map[string]any{
			"caption":   caption,
			"image_url": imageURL,
		}).Error
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Post{}, "id=?", id).Error
}

func (r *postRepository) CreateComment(ctx context.Context, data *entity.PostComment) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *postRepository) GetComments(ctx context.Context, postID string) ([]entity.PostComment, error) {
	var records []entity.PostComment
	err := xcontext.DB(ctx).
		Order("created_at ASC").
		Find(&records, "post_id=?", postID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *postRepository) CountComments(ctx context.Context, postIDs []string) (map[string]int64, error) {
	if len(postIDs) == 0 {
		return map[string]int64{}, nil
	}

	var rows []struct {
		PostID string
		Total  int64
	}
	err := xcontext.DB(ctx).Model(&entity.PostComment{}).
		Select("post_id, COUNT(*) as total").
		Where("post_id IN (?)", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := map[string]int64{}
	for _, row := range rows {
		result[row.PostID] = row.Total
	}

	return result, nil
}

func (r *postRepository) UpsertReaction(ctx context.Context, reaction *entity.PostReaction) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"type"}),
	}).Create(reaction).Error
}

func (r *postRepository) DeleteReaction(ctx context.Context, postID, userID string) error {
	return xcontext.DB(ctx).
		Where("post_id=? AND user_id=?", postID, userID).
		Delete(&entity.PostReaction{}).Error
}

func (r *postRepository) GetReactions(ctx context.Context, postIDs []string) ([]entity.PostReaction, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	var records []entity.PostReaction
	err := xcontext.DB(ctx).Find(&records, "post_id IN (?)", postIDs).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
