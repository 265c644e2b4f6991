package domain

import (
	"context"
	"errors"

	"github.com/bigex/backend/internal/client"
	"github.com/bigex/backend/internal/domain/notification/event"
	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FriendDomain interface {
	SendRequest(context.Context, *model.SendFriendRequestRequest) (*model.SendFriendRequestResponse, error)
	AcceptRequest(context.Context, *model.AcceptFriendRequestRequest) (*model.AcceptFriendRequestResponse, error)
	RejectRequest(context.Context, *model.RejectFriendRequestRequest) (*model.RejectFriendRequestResponse, error)
	GetPendingRequests(context.Context, *model.GetPendingRequestsRequest) (*model.GetPendingRequestsResponse, error)
	GetFriends(context.Context, *model.GetFriendsRequest) (*model.GetFriendsResponse, error)
}

type friendDomain struct {
	userRepo          repository.UserRepository
	friendRequestRepo repository.FriendRequestRepository
	friendshipRepo    repository.FriendshipRepository
	notificationRepo  repository.NotificationRepository
	emitter           client.EventEmitter
	pusher            client.Pusher
}

func NewFriendDomain(
	userRepo repository.UserRepository,
	friendRequestRepo repository.FriendRequestRepository,
	friendshipRepo repository.FriendshipRepository,
	notificationRepo repository.NotificationRepository,
	emitter client.EventEmitter,
	pusher client.Pusher,
) *friendDomain {
	return &friendDomain{
		userRepo:          userRepo,
		friendRequestRepo: friendRequestRepo,
		friendshipRepo:    friendshipRepo,
		notificationRepo:  notificationRepo,
		emitter:           emitter,
		pusher:            pusher,
	}
}

func (d *friendDomain) SendRequest(
	ctx context.Context, req *model.SendFriendRequestRequest,
) (*model.SendFriendRequestResponse, error) {
	senderID := xcontext.RequestUserID(ctx)
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	if req.UserID == senderID {
		return nil, errorx.New(errorx.BadRequest, "Cannot send a friend request to yourself")
	}

	recipient, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.friendshipRepo.Get(ctx, senderID, recipient.ID); err == nil {
		return nil, errorx.New(errorx.AlreadyFriends, "You are already friends with this user")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get friendship: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.friendRequestRepo.Get(ctx, recipient.ID, senderID); err == nil {
		return nil, errorx.New(errorx.AlreadyRequested, "You already sent a request to this user")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get friend request: %v", err)
		return nil, errorx.Unknown
	}

	err = d.friendRequestRepo.Create(ctx, &entity.FriendRequest{
		UserID:   recipient.ID,
		SenderID: senderID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create friend request: %v", err)
		return nil, errorx.Unknown
	}

	sender, err := d.userRepo.GetByID(ctx, senderID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get sender: %v", err)
		return nil, errorx.Unknown
	}

	err = d.notificationRepo.Create(ctx, &entity.Notification{
		SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
		UserID:        recipient.ID,
		Type:          entity.NotificationTypeFriendRequest,
		Data:          entity.Map{"sender_id": sender.ID, "sender_name": sender.Name},
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create notification: %v", err)
	}

	ev := event.New(
		&event.FriendRequestEvent{Sender: model.ConvertUser(sender, false)},
		event.Metadata{To: recipient.ID},
	)
	if err := d.emitter.Emit(ctx, ev); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot emit friend request event: %v", err)
	}

	if recipient.FCMToken != "" {
		err := d.pusher.Push(ctx, recipient.FCMToken,
			"New friend request",
			sender.Name+" sent you a friend request",
			map[string]string{"type": entity.NotificationTypeFriendRequest, "sender_id": sender.ID})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot push friend request: %v", err)
		}
	}

	return &model.SendFriendRequestResponse{}, nil
}

// AcceptRequest removes the pending request rows and inserts the two
// mirrored friendship edges in a single transaction.
func (d *friendDomain) AcceptRequest(
	ctx context.Context, req *model.AcceptFriendRequestRequest,
) (*model.AcceptFriendRequestResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	if _, err := d.friendRequestRepo.Get(ctx, userID, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found friend request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get friend request: %v", err)
		return nil, errorx.Unknown
	}

	// Loaded before the transaction so a lookup failure cannot fail an
	// already committed accept.
	me, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.friendRequestRepo.DeleteBetween(ctx, userID, req.UserID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete friend requests: %v", err)
		return nil, errorx.Unknown
	}

	err = d.friendshipRepo.Create(ctx,
		&entity.Friendship{UserID: userID, FriendID: req.UserID},
		&entity.Friendship{UserID: req.UserID, FriendID: userID},
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create friendships: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	ev := event.New(
		&event.FriendAcceptedEvent{Friend: model.ConvertUser(me, false)},
		event.Metadata{To: req.UserID},
	)
	if err := d.emitter.Emit(ctx, ev); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot emit friend accepted event: %v", err)
	}

	return &model.AcceptFriendRequestResponse{}, nil
}

func (d *friendDomain) RejectRequest(
	ctx context.Context, req *model.RejectFriendRequestRequest,
) (*model.RejectFriendRequestResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	if err := d.friendRequestRepo.DeleteBetween(ctx, userID, req.UserID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete friend requests: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RejectFriendRequestResponse{}, nil
}

func (d *friendDomain) GetPendingRequests(
	ctx context.Context, req *model.GetPendingRequestsRequest,
) (*model.GetPendingRequestsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	requests, err := d.friendRequestRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get friend requests: %v", err)
		return nil, errorx.Unknown
	}

	senderIDs := []string{}
	for _, request := range requests {
		senderIDs = append(senderIDs, request.SenderID)
	}

	senders, err := d.userRepo.GetByIDs(ctx, senderIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get senders: %v", err)
		return nil, errorx.Unknown
	}

	senderMap := map[string]*entity.User{}
	for i := range senders {
		senderMap[senders[i].ID] = &senders[i]
	}

	clientRequests := []model.FriendRequest{}
	for i := range requests {
		sender, ok := senderMap[requests[i].SenderID]
		if !ok {
			xcontext.Logger(ctx).Warnf("Not found sender %s of friend request", requests[i].SenderID)
			continue
		}

		clientRequests = append(clientRequests, model.ConvertFriendRequest(&requests[i], sender))
	}

	return &model.GetPendingRequestsResponse{Requests: clientRequests}, nil
}

func (d *friendDomain) GetFriends(
	ctx context.Context, req *model.GetFriendsRequest,
) (*model.GetFriendsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	friendships, err := d.friendshipRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get friendships: %v", err)
		return nil, errorx.Unknown
	}

	friendIDs := []string{}
	for _, friendship := range friendships {
		friendIDs = append(friendIDs, friendship.FriendID)
	}

	friends, err := d.userRepo.GetByIDs(ctx, friendIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get friends: %v", err)
		return nil, errorx.Unknown
	}

	clientFriends := []model.User{}
	for i := range friends {
		clientFriends = append(clientFriends, model.ConvertUser(&friends[i], false))
	}

	return &model.GetFriendsResponse{Friends: clientFriends}, nil
}
