package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/bigex/backend/internal/client"
	"github.com/bigex/backend/internal/common"
	"github.com/bigex/backend/internal/domain/notification/event"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/bigex/backend/pkg/xredis"
)

type PresenceDomain interface {
	Online(context.Context, *model.OnlineRequest) (*model.OnlineResponse, error)
	Offline(context.Context, *model.OfflineRequest) (*model.OfflineResponse, error)
	Heartbeat(context.Context, *model.HeartbeatRequest) (*model.HeartbeatResponse, error)
}

type presenceDomain struct {
	userRepo       repository.UserRepository
	friendshipRepo repository.FriendshipRepository
	redisClient    xredis.Client
	emitter        client.EventEmitter
}

func NewPresenceDomain(
	userRepo repository.UserRepository,
	friendshipRepo repository.FriendshipRepository,
	redisClient xredis.Client,
	emitter client.EventEmitter,
) *presenceDomain {
	return &presenceDomain{
		userRepo:       userRepo,
		friendshipRepo: friendshipRepo,
		redisClient:    redisClient,
		emitter:        emitter,
	}
}

// Online marks the user as online. Presence writes are best-effort,
// failures are logged and the request still succeeds.
func (d *presenceDomain) Online(
	ctx context.Context, req *model.OnlineRequest,
) (*model.OnlineResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	now := time.Now()

	if err := d.userRepo.UpdateOnlineStatus(ctx, userID, true, now); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update online status: %v", err)
	}

	key := common.RedisKeyUserStatus(userID)
	if err := d.redisClient.Set(ctx, key, fmt.Sprintf("%d", now.Unix())); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set user status key: %v", err)
	}

	d.broadcastStatus(ctx, userID)
	return &model.OnlineResponse{}, nil
}

func (d *presenceDomain) Offline(
	ctx context.Context, req *model.OfflineRequest,
) (*model.OfflineResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	lastOnline := time.Now()
	if req.LastOnline > 0 {
		lastOnline = time.Unix(req.LastOnline, 0)
	}

	if err := d.userRepo.UpdateOnlineStatus(ctx, userID, false, lastOnline); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update online status: %v", err)
	}

	if err := d.redisClient.Del(ctx, common.RedisKeyUserStatus(userID)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete user status key: %v", err)
	}

	d.broadcastStatus(ctx, userID)
	return &model.OfflineResponse{}, nil
}

// Heartbeat refreshes the ping key of long-lived connections so the
// cron sweep does not mark the user offline.
func (d *presenceDomain) Heartbeat(
	ctx context.Context, req *model.HeartbeatRequest,
) (*model.HeartbeatResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	key := common.RedisKeyUserStatus(userID)
	if err := d.redisClient.Set(ctx, key, fmt.Sprintf("%d", time.Now().Unix())); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot refresh user status key: %v", err)
	}

	return &model.HeartbeatResponse{}, nil
}

// broadcastStatus emits a status change event to every friend of the
// user.
func (d *presenceDomain) broadcastStatus(ctx context.Context, userID string) {
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return
	}

	friendships, err := d.friendshipRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get friendships: %v", err)
		return
	}

	ev := &event.ChangeUserStatusEvent{User: model.ConvertUser(user, false)}
	for _, friendship := range friendships {
		err := d.emitter.Emit(ctx, event.New(ev, event.Metadata{To: friendship.FriendID}))
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot emit status event: %v", err)
		}
	}
}
