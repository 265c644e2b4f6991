package domain

import (
	"context"
	"errors"
	"strconv"

	"github.com/bigex/backend/internal/client"
	"github.com/bigex/backend/internal/domain/notification/event"
	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ChatDomain interface {
	CreateMessage(context.Context, *model.CreateMessageRequest) (*model.CreateMessageResponse, error)
	MarkRead(context.Context, *model.MarkReadRequest) (*model.MarkReadResponse, error)
	GetConversation(context.Context, *model.GetConversationRequest) (*model.GetConversationResponse, error)
	GetUnreadCount(context.Context, *model.GetUnreadCountRequest) (*model.GetUnreadCountResponse, error)
	AddReaction(context.Context, *model.AddReactionRequest) (*model.AddReactionResponse, error)
	RemoveReaction(context.Context, *model.RemoveReactionRequest) (*model.RemoveReactionResponse, error)
}

type chatDomain struct {
	messageRepo      repository.MessageRepository
	userRepo         repository.UserRepository
	friendshipRepo   repository.FriendshipRepository
	notificationRepo repository.NotificationRepository
	emitter          client.EventEmitter
	pusher           client.Pusher
}

func NewChatDomain(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	friendshipRepo repository.FriendshipRepository,
	notificationRepo repository.NotificationRepository,
	emitter client.EventEmitter,
	pusher client.Pusher,
) *chatDomain {
	return &chatDomain{
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		friendshipRepo:   friendshipRepo,
		notificationRepo: notificationRepo,
		emitter:          emitter,
		pusher:           pusher,
	}
}

func (d *chatDomain) CreateMessage(
	ctx context.Context, req *model.CreateMessageRequest,
) (*model.CreateMessageResponse, error) {
	senderID := xcontext.RequestUserID(ctx)
	if req.ReceiverID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty receiver id")
	}

	if req.Content == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty content")
	}

	receiver, err := d.userRepo.GetByID(ctx, req.ReceiverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get receiver: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.friendshipRepo.Get(ctx, senderID, receiver.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.PermissionDenied, "You can only message your friends")
		}

		xcontext.Logger(ctx).Errorf("Cannot get friendship: %v", err)
		return nil, errorx.Unknown
	}

	message := &entity.Message{
		SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
		SenderID:      senderID,
		ReceiverID:    receiver.ID,
		Content:       req.Content,
		IsImage:       req.IsImage,
	}

	if err := d.messageRepo.Create(ctx, message); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create message: %v", err)
		return nil, errorx.Unknown
	}

	sender, err := d.userRepo.GetByID(ctx, senderID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get sender: %v", err)
		return nil, errorx.Unknown
	}

	err = d.notificationRepo.Create(ctx, &entity.Notification{
		SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
		UserID:        receiver.ID,
		Type:          entity.NotificationTypeNewMessage,
		Data: entity.Map{
			"message_id":  strconv.FormatInt(message.ID, 10),
			"sender_id":   sender.ID,
			"sender_name": sender.Name,
		},
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create notification: %v", err)
	}

	createdEvent := event.MessageCreatedEvent(model.ConvertMessage(message, nil))
	err = d.emitter.Emit(ctx, event.New(&createdEvent, event.Metadata{To: receiver.ID}))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot emit message created event: %v", err)
	}

	if receiver.FCMToken != "" && !receiver.IsOnline {
		body := req.Content
		if req.IsImage {
			body = "Sent you a photo"
		}

		err := d.pusher.Push(ctx, receiver.FCMToken, sender.Name, body, map[string]string{
			"type":      entity.NotificationTypeNewMessage,
			"sender_id": sender.ID,
		})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot push message: %v", err)
		}
	}

	return &model.CreateMessageResponse{ID: message.ID}, nil
}

// MarkRead is idempotent, marking an already-read message succeeds
// without another event.
func (d *chatDomain) MarkRead(
	ctx context.Context, req *model.MarkReadRequest,
) (*model.MarkReadResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	message, err := d.messageRepo.GetByID(ctx, req.MessageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found message")
		}

		xcontext.Logger(ctx).Errorf("Cannot get message: %v", err)
		return nil, errorx.Unknown
	}

	if message.ReceiverID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Only the receiver can mark a message as read")
	}

	if message.IsRead {
		return &model.MarkReadResponse{}, nil
	}

	if err := d.messageRepo.MarkRead(ctx, message.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark message as read: %v", err)
		return nil, errorx.Unknown
	}

	ev := event.New(
		&event.MessageReadEvent{MessageID: message.ID},
		event.Metadata{To: message.SenderID},
	)
	if err := d.emitter.Emit(ctx, ev); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot emit message read event: %v", err)
	}

	return &model.MarkReadResponse{}, nil
}

func (d *chatDomain) GetConversation(
	ctx context.Context, req *model.GetConversationRequest,
) (*model.GetConversationResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if req.FriendID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty friend id")
	}

	messages, err := d.messageRepo.GetConversation(ctx, userID, req.FriendID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get conversation: %v", err)
		return nil, errorx.Unknown
	}

	messageIDs := []int64{}
	for _, message := range messages {
		messageIDs = append(messageIDs, message.ID)
	}

	reactions, err := d.messageRepo.GetReactions(ctx, messageIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reactions: %v", err)
		return nil, errorx.Unknown
	}

	reactionMap := map[int64][]entity.MessageReaction{}
	for _, reaction := range reactions {
		reactionMap[reaction.MessageID] = append(reactionMap[reaction.MessageID], reaction)
	}

	clientMessages := []model.Message{}
	for i := range messages {
		clientMessages = append(clientMessages,
			model.ConvertMessage(&messages[i], reactionMap[messages[i].ID]))
	}

	return &model.GetConversationResponse{Messages: clientMessages}, nil
}

func (d *chatDomain) GetUnreadCount(
	ctx context.Context, req *model.GetUnreadCountRequest,
) (*model.GetUnreadCountResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if req.FriendID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty friend id")
	}

	count, err := d.messageRepo.CountUnread(ctx, userID, req.FriendID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count unread messages: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUnreadCountResponse{Count: count}, nil
}

func (d *chatDomain) AddReaction(
	ctx context.Context, req *model.AddReactionRequest,
) (*model.AddReactionResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if req.Emoji == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty emoji")
	}

	message, err := d.messageRepo.GetByID(ctx, req.MessageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found message")
		}

		xcontext.Logger(ctx).Errorf("Cannot get message: %v", err)
		return nil, errorx.Unknown
	}

	if message.SenderID != userID && message.ReceiverID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "You are not in this conversation")
	}

	err = d.messageRepo.UpsertReaction(ctx, &entity.MessageReaction{
		MessageID: message.ID,
		UserID:    userID,
		Emoji:     req.Emoji,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert reaction: %v", err)
		return nil, errorx.Unknown
	}

	d.emitReactionChanged(ctx, message, userID, req.Emoji)
	return &model.AddReactionResponse{}, nil
}

func (d *chatDomain) RemoveReaction(
	ctx context.Context, req *model.RemoveReactionRequest,
) (*model.RemoveReactionResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	message, err := d.messageRepo.GetByID(ctx, req.MessageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found message")
		}

		xcontext.Logger(ctx).Errorf("Cannot get message: %v", err)
		return nil, errorx.Unknown
	}

	if message.SenderID != userID && message.ReceiverID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "You are not in this conversation")
	}

	if err := d.messageRepo.DeleteReaction(ctx, message.ID, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete reaction: %v", err)
		return nil, errorx.Unknown
	}

	d.emitReactionChanged(ctx, message, userID, "")
	return &model.RemoveReactionResponse{}, nil
}

// emitReactionChanged notifies the other side of the conversation. An
// empty emoji means the reaction was removed.
func (d *chatDomain) emitReactionChanged(
	ctx context.Context, message *entity.Message, userID, emoji string,
) {
	other := message.SenderID
	if other == userID {
		other = message.ReceiverID
	}

	ev := event.New(
		&event.ReactionChangedEvent{MessageID: message.ID, UserID: userID, Emoji: emoji},
		event.Metadata{To: other},
	)
	if err := d.emitter.Emit(ctx, ev); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot emit reaction changed event: %v", err)
	}
}
