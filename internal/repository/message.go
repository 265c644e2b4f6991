package repository

import (
	"context"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type MessageRepository interface {
	Create(ctx context.Context, data *entity.Message) error
	GetByID(ctx context.Context, id int64) (*entity.Message, error)
	GetConversation(ctx context.Context, a, b string) ([]entity.Message, error)
	MarkRead(ctx context.Context, id int64) error
	CountUnread(ctx context.Context, receiverID, senderID string) (int64, error)
	UpsertReaction(ctx context.Context, reaction *entity.MessageReaction) error
	DeleteReaction(ctx context.Context, messageID int64, userID string) error
	GetReactions(ctx context.Context, messageIDs []int64) ([]entity.MessageReaction, error)
}

type messageRepository struct{}

func NewMessageRepository() *messageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(ctx context.Context, data *entity.Message) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *messageRepository) GetByID(ctx context.Context, id int64) (*entity.Message, error) {
	var record entity.Message
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *messageRepository) GetConversation(ctx context.Context, a, b string) ([]entity.Message, error) {
	var records []entity.Message
	err := xcontext.DB(ctx).
		Where("(sender_id=? AND receiver_id=?) OR (sender_id=? AND receiver_id=?)", a, b, b, a).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, id int64) error {
	return xcontext.DB(ctx).Model(&entity.Message{}).
		Where("id=?", id).
		Update("is_read", true).Error
}

func (r *messageRepository) CountUnread(ctx context.Context, receiverID, senderID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Message{}).
		Where("receiver_id=? AND sender_id=? AND is_read=?", receiverID, senderID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// UpsertReaction keeps one reaction per (message, user), last write wins.
func (r *messageRepository) UpsertReaction(ctx context.Context, reaction *entity.MessageReaction) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "message_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"emoji"}),
	}).Create(reaction).Error
}

func (r *messageRepository) DeleteReaction(ctx context.Context, messageID int64, userID string) error {
	return xcontext.DB(ctx).
		Where("message_id=? AND user_id=?", messageID, userID).
		Delete(&entity.MessageReaction{}).Error
}

func (r *messageRepository) GetReactions(ctx context.Context, messageIDs []int64) ([]entity.MessageReaction, error) {
	if len(messageIDs) == 0 {
		return nil, nil
	}

	var records []entity.MessageReaction
	err := xcontext.DB(ctx).Find(&records, "message_id IN (?)", messageIDs).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
