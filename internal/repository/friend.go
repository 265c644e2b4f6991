package repository

import (
	"context"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/pkg/xcontext"
)

type FriendRequestRepository interface {
	Create(ctx context.Context, request *entity.FriendRequest) error
	Get(ctx context.Context, userID, senderID string) (*entity.FriendRequest, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.FriendRequest, error)
	DeleteBetween(ctx context.Context, a, b string) error
}

type friendRequestRepository struct{}

func NewFriendRequestRepository() *friendRequestRepository {
	return &friendRequestRepository{}
}

func (r *friendRequestRepository) Create(ctx context.Context, request *entity.FriendRequest) error {
	return xcontext.DB(ctx).Create(request).Error
}

func (r *friendRequestRepository) Get(ctx context.Context, userID, senderID string) (*entity.FriendRequest, error) {
	var record entity.FriendRequest
	err := xcontext.DB(ctx).Take(&record, "user_id=? AND sender_id=?", userID, senderID).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *friendRequestRepository) GetByUserID(ctx context.Context, userID string) ([]entity.FriendRequest, error) {
	var records []entity.FriendRequest
	err := xcontext.DB(ctx).
		Order("created_at DESC").
		Find(&records, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteBetween removes request rows in both directions of the pair.
func (r *friendRequestRepository) DeleteBetween(ctx context.Context, a, b string) error {
	return xcontext.DB(ctx).
		Where("(user_id=? AND sender_id=?) OR (user_id=? AND sender_id=?)", a, b, b, a).
		Delete(&entity.FriendRequest{}).Error
}

type FriendshipRepository interface {
	Create(ctx context.Context, friendships ...*entity.Friendship) error
	Get(ctx context.Context, userID, friendID string) (*entity.Friendship, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Friendship, error)
	DeleteBetween(ctx context.Context, a, b string) error
}

type friendshipRepository struct{}

func NewFriendshipRepository() *friendshipRepository {
	return &friendshipRepository{}
}

func (r *friendshipRepository) Create(ctx context.Context, friendships ...*entity.Friendship) error {
	return xcontext.DB(ctx).Create(friendships).Error
}

func (r *friendshipRepository) Get(ctx context.Context, userID, friendID string) (*entity.Friendship, error) {
	var record entity.Friendship
	err := xcontext.DB(ctx).Take(&record, "user_id=? AND friend_id=?", userID, friendID).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *friendshipRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Friendship, error) {
	var records []entity.Friendship
	err := xcontext.DB(ctx).
		Order("created_at ASC").
		Find(&records, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *friendshipRepository) DeleteBetween(ctx context.Context, a, b string) error {
	return xcontext.DB(ctx).
		Where("(user_id=? AND friend_id=?) OR (user_id=? AND friend_id=?)", a, b, b, a).
		Delete(&entity.Friendship{}).Error
}
