package domain

import (
	"testing"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/testutil"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFriendDomainForTest(emitter *testutil.MockEventEmitter, pusher *testutil.MockPusher) *friendDomain {
	return NewFriendDomain(
		repository.NewUserRepository(),
		repository.NewFriendRequestRepository(),
		repository.NewFriendshipRepository(),
		repository.NewNotificationRepository(),
		emitter,
		pusher,
	)
}

func Test_friendDomain_SendAndAcceptRequest(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	emitter := &testutil.MockEventEmitter{}
	domain := newFriendDomainForTest(emitter, &testutil.MockPusher{})

	// user1 sends a request to user3.
	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	_, err := domain.SendRequest(ctxUser1, &model.SendFriendRequestRequest{UserID: "user3"})
	require.NoError(t, err)

	require.Len(t, emitter.Events, 1)
	require.Equal(t, "friend_request", emitter.Events[0].Op)
	require.Equal(t, "user3", emitter.Events[0].Metadata.To)

	// user3 sees the pending request.
	ctxUser3 := xcontext.WithRequestUserID(ctx, "user3")
	pending, err := domain.GetPendingRequests(ctxUser3, &model.GetPendingRequestsRequest{})
	require.NoError(t, err)
	require.Len(t, pending.Requests, 1)
	require.Equal(t, "user1", pending.Requests[0].Sender.ID)

	// user3 accepts, both sides become friends.
	_, err = domain.AcceptRequest(ctxUser3, &model.AcceptFriendRequestRequest{UserID: "user1"})
	require.NoError(t, err)

	friends, err := domain.GetFriends(ctxUser3, &model.GetFriendsRequest{})
	require.NoError(t, err)
	require.Len(t, friends.Friends, 1)
	require.Equal(t, "user1", friends.Friends[0].ID)

	friends, err = domain.GetFriends(ctxUser1, &model.GetFriendsRequest{})
	require.NoError(t, err)
	require.Len(t, friends.Friends, 2)

	// The pending request is gone.
	pending, err = domain.GetPendingRequests(ctxUser3, &model.GetPendingRequestsRequest{})
	require.NoError(t, err)
	require.Empty(t, pending.Requests)

	// The acceptance was announced to the sender.
	lastEvent := emitter.Events[len(emitter.Events)-1]
	require.Equal(t, "friend_accepted", lastEvent.Op)
	require.Equal(t, "user1", lastEvent.Metadata.To)
}

func Test_friendDomain_SendRequest_Invalid(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := newFriendDomainForTest(&testutil.MockEventEmitter{}, &testutil.MockPusher{})
	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")

	var errx errorx.Error

	// Cannot befriend yourself.
	_, err := domain.SendRequest(ctxUser1, &model.SendFriendRequestRequest{UserID: "user1"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	// Unknown recipient.
	_, err = domain.SendRequest(ctxUser1, &model.SendFriendRequestRequest{UserID: "nobody"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	// user1 and user2 are already friends.
	_, err = domain.SendRequest(ctxUser1, &model.SendFriendRequestRequest{UserID: "user2"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyFriends, errx.Code)

	// A second request to the same user is rejected.
	_, err = domain.SendRequest(ctxUser1, &model.SendFriendRequestRequest{UserID: "user3"})
	require.NoError(t, err)
	_, err = domain.SendRequest(ctxUser1, &model.SendFriendRequestRequest{UserID: "user3"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyRequested, errx.Code)
}

func Test_friendDomain_AcceptRequest_UnknownUser(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := newFriendDomainForTest(&testutil.MockEventEmitter{}, &testutil.MockPusher{})

	// A request addressed to an account that no longer exists.
	friendRequestRepo := repository.NewFriendRequestRepository()
	err := friendRequestRepo.Create(ctx, &entity.FriendRequest{UserID: "ghost", SenderID: "user1"})
	require.NoError(t, err)

	ctxGhost := xcontext.WithRequestUserID(ctx, "ghost")
	_, err = domain.AcceptRequest(ctxGhost, &model.AcceptFriendRequestRequest{UserID: "user1"})
	require.Error(t, err)

	// The failure happened before anything was written.
	_, err = repository.NewFriendshipRepository().Get(ctx, "ghost", "user1")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = friendRequestRepo.Get(ctx, "ghost", "user1")
	require.NoError(t, err)
}

func Test_friendDomain_RejectRequest(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := newFriendDomainForTest(&testutil.MockEventEmitter{}, &testutil.MockPusher{})

	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	_, err := domain.SendRequest(ctxUser1, &model.SendFriendRequestRequest{UserID: "user3"})
	require.NoError(t, err)

	ctxUser3 := xcontext.WithRequestUserID(ctx, "user3")
	_, err = domain.RejectRequest(ctxUser3, &model.RejectFriendRequestRequest{UserID: "user1"})
	require.NoError(t, err)

	pending, err := domain.GetPendingRequests(ctxUser3, &model.GetPendingRequestsRequest{})
	require.NoError(t, err)
	require.Empty(t, pending.Requests)

	friends, err := domain.GetFriends(ctxUser3, &model.GetFriendsRequest{})
	require.NoError(t, err)
	require.Empty(t, friends.Friends)
}
