package cron

import (
	"fmt"
	"testing"
	"time"

	"github.com/bigex/backend/internal/common"
	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_CleanupUserStatusCronJob(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	require.NoError(t, userRepo.UpdateOnlineStatus(ctx, "user1", true, time.Now()))
	require.NoError(t, userRepo.UpdateOnlineStatus(ctx, "user2", true, time.Now()))

	redisClient := testutil.NewMockRedisClient()
	now := time.Now().Unix()

	// user1 pinged a minute ago, user2 just now.
	stale := fmt.Sprintf("%d", now-60)
	require.NoError(t, redisClient.Set(ctx, common.RedisKeyUserStatus("user1"), stale))
	require.NoError(t, redisClient.Set(ctx, common.RedisKeyUserStatus("user2"), fmt.Sprintf("%d", now)))

	emitter := &testutil.MockEventEmitter{}
	job := NewCleanupUserStatusCronJob(
		userRepo, repository.NewFriendshipRepository(), redisClient, emitter, time.Minute)
	job.Do(ctx)

	user1, err := userRepo.GetByID(ctx, "user1")
	require.NoError(t, err)
	require.False(t, user1.IsOnline)

	user2, err := userRepo.GetByID(ctx, "user2")
	require.NoError(t, err)
	require.True(t, user2.IsOnline)

	// The stale key is gone, the fresh one stays.
	exist, err := redisClient.Exist(ctx, common.RedisKeyUserStatus("user1"))
	require.NoError(t, err)
	require.False(t, exist)

	exist, err = redisClient.Exist(ctx, common.RedisKeyUserStatus("user2"))
	require.NoError(t, err)
	require.True(t, exist)

	// user2 was told their friend went offline.
	require.Len(t, emitter.Events, 1)
	require.Equal(t, "change_status", emitter.Events[0].Op)
	require.Equal(t, "user2", emitter.Events[0].Metadata.To)
}

func Test_WateringReminderCronJob(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	require.NoError(t, userRepo.UpdateFCMToken(ctx, "user1", "fcm-token"))

	treeRepo := repository.NewTreeRepository()
	now := time.Now()
	require.NoError(t, treeRepo.Create(ctx, &entity.Tree{
		Base:   entity.Base{ID: "tree1"},
		UserID: "user1",
		Stage:  entity.TreeStageSeed,
	}))
	require.NoError(t, treeRepo.SetReminder(ctx, "tree1", now.Hour(), now.Minute()))

	pusher := &testutil.MockPusher{}
	job := NewWateringReminderCronJob(
		treeRepo, userRepo, repository.NewNotificationRepository(), pusher)
	job.Do(ctx)

	require.Len(t, pusher.Pushed, 1)
	require.Equal(t, "fcm-token", pusher.Pushed[0].Token)

	notificationRepo := repository.NewNotificationRepository()
	notifications, err := notificationRepo.GetByUserID(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.NotificationTypeTreeReminder, notifications[0].Type)
}
