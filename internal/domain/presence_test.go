package domain

import (
	"strconv"
	"testing"
	"time"

	"github.com/bigex/backend/internal/common"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/testutil"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_presenceDomain_OnlineOffline(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	redisClient := testutil.NewMockRedisClient()
	emitter := &testutil.MockEventEmitter{}
	userRepo := repository.NewUserRepository()
	domain := NewPresenceDomain(userRepo, repository.NewFriendshipRepository(), redisClient, emitter)

	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	_, err := domain.Online(ctxUser1, &model.OnlineRequest{})
	require.NoError(t, err)

	// The ping key is set and the status change reached the friend.
	exist, err := redisClient.Exist(ctx, common.RedisKeyUserStatus("user1"))
	require.NoError(t, err)
	require.True(t, exist)

	require.Len(t, emitter.Events, 1)
	require.Equal(t, "change_status", emitter.Events[0].Op)
	require.Equal(t, "user2", emitter.Events[0].Metadata.To)

	user, err := userRepo.GetByID(ctx, "user1")
	require.NoError(t, err)
	require.True(t, user.IsOnline)

	_, err = domain.Offline(ctxUser1, &model.OfflineRequest{})
	require.NoError(t, err)

	exist, err = redisClient.Exist(ctx, common.RedisKeyUserStatus("user1"))
	require.NoError(t, err)
	require.False(t, exist)

	user, err = userRepo.GetByID(ctx, "user1")
	require.NoError(t, err)
	require.False(t, user.IsOnline)
	require.False(t, user.LastOnline.IsZero())
}

func Test_presenceDomain_Heartbeat(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	redisClient := testutil.NewMockRedisClient()
	domain := NewPresenceDomain(
		repository.NewUserRepository(),
		repository.NewFriendshipRepository(),
		redisClient,
		&testutil.MockEventEmitter{},
	)

	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	before := time.Now().Unix()
	_, err := domain.Heartbeat(ctxUser1, &model.HeartbeatRequest{})
	require.NoError(t, err)

	value, err := redisClient.Get(ctx, common.RedisKeyUserStatus("user1"))
	require.NoError(t, err)

	lastPing, err := strconv.ParseInt(value, 10, 64)
	require.NoError(t, err)
	require.GreaterOrEqual(t, lastPing, before)
}
