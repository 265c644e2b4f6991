package cron

import (
	"context"
	"strconv"
	"time"

	"github.com/bigex/backend/internal/client"
	"github.com/bigex/backend/internal/common"
	"github.com/bigex/backend/internal/domain/notification/event"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/bigex/backend/pkg/xredis"
)

// CleanupUserStatusCronJob marks users offline when their ping key has
// not been refreshed within the configured timeout. This catches
// clients that dropped without closing the websocket.
type CleanupUserStatusCronJob struct {
	userRepo       repository.UserRepository
	friendshipRepo repository.FriendshipRepository
	redisClient    xredis.Client
	emitter        client.EventEmitter
	sweepInterval  time.Duration
}

func NewCleanupUserStatusCronJob(
	userRepo repository.UserRepository,
	friendshipRepo repository.FriendshipRepository,
	redisClient xredis.Client,
	emitter client.EventEmitter,
	sweepInterval time.Duration,
) *CleanupUserStatusCronJob {
	return &CleanupUserStatusCronJob{
		userRepo:       userRepo,
		friendshipRepo: friendshipRepo,
		redisClient:    redisClient,
		emitter:        emitter,
		sweepInterval:  sweepInterval,
	}
}

func (job *CleanupUserStatusCronJob) Do(ctx context.Context) {
	userStatusKeys, err := job.redisClient.Keys(ctx, common.RedisKeyUserStatus("*"))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get all user status keys: %v", err)
		return
	}

	if len(userStatusKeys) == 0 {
		return
	}

	pingTimes, err := job.redisClient.MGet(ctx, userStatusKeys...)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get all ping time of user status: %v", err)
		return
	}

	now := time.Now().Unix()
	pingTimeout := int64(xcontext.Configs(ctx).Presence.PingTimeout.Seconds())
	offlineUserStatusKeys := []string{}
	for i := range userStatusKeys {
		if pingTimes[i] == nil {
			xcontext.Logger(ctx).Warnf("No value at key %s", userStatusKeys[i])
			continue
		}

		lastPingString, ok := pingTimes[i].(string)
		if !ok {
			xcontext.Logger(ctx).Errorf("Invalid type of ping time: %T", pingTimes[i])
			continue
		}

		lastPing, err := strconv.ParseInt(lastPingString, 10, 64)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot parse ping value: %v", err)
			continue
		}

		if now-lastPing <= pingTimeout {
			continue
		}

		userID := common.FromRedisKeyUserStatus(userStatusKeys[i])
		err = job.userRepo.UpdateOnlineStatus(ctx, userID, false, time.Unix(lastPing, 0))
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update online status: %v", err)
			continue
		}

		user, err := job.userRepo.GetByID(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			continue
		}

		friendships, err := job.friendshipRepo.GetByUserID(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get friendships: %v", err)
			continue
		}

		ev := &event.ChangeUserStatusEvent{User: model.ConvertUser(user, false)}
		for _, friendship := range friendships {
			err := job.emitter.Emit(ctx, event.New(ev, event.Metadata{To: friendship.FriendID}))
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot emit offline event: %v", err)
			}
		}

		offlineUserStatusKeys = append(offlineUserStatusKeys, userStatusKeys[i])
	}

	if len(offlineUserStatusKeys) == 0 {
		return
	}

	if err := job.redisClient.Del(ctx, offlineUserStatusKeys...); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete offline user keys: %v", err)
	}
}

func (job *CleanupUserStatusCronJob) RunNow() bool {
	return true
}

func (job *CleanupUserStatusCronJob) Next() time.Time {
	return time.Now().Add(job.sweepInterval)
}
