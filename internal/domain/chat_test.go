package domain

import (
	"testing"

	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/testutil"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newChatDomainForTest(emitter *testutil.MockEventEmitter, pusher *testutil.MockPusher) *chatDomain {
	return NewChatDomain(
		repository.NewMessageRepository(),
		repository.NewUserRepository(),
		repository.NewFriendshipRepository(),
		repository.NewNotificationRepository(),
		emitter,
		pusher,
	)
}

func Test_chatDomain_CreateMessage(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	emitter := &testutil.MockEventEmitter{}
	domain := newChatDomainForTest(emitter, &testutil.MockPusher{})

	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	resp, err := domain.CreateMessage(ctxUser1, &model.CreateMessageRequest{
		ReceiverID: "user2",
		Content:    "hello",
	})
	require.NoError(t, err)
	require.NotZero(t, resp.ID)

	require.Len(t, emitter.Events, 1)
	require.Equal(t, "message_created", emitter.Events[0].Op)
	require.Equal(t, "user2", emitter.Events[0].Metadata.To)

	// Messaging a non-friend is forbidden.
	var errx errorx.Error
	_, err = domain.CreateMessage(ctxUser1, &model.CreateMessageRequest{
		ReceiverID: "user3",
		Content:    "hello",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_chatDomain_MarkRead(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	emitter := &testutil.MockEventEmitter{}
	domain := newChatDomainForTest(emitter, &testutil.MockPusher{})

	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	resp, err := domain.CreateMessage(ctxUser1, &model.CreateMessageRequest{
		ReceiverID: "user2",
		Content:    "hello",
	})
	require.NoError(t, err)

	// Only the receiver can mark a message as read.
	var errx errorx.Error
	_, err = domain.MarkRead(ctxUser1, &model.MarkReadRequest{MessageID: resp.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	ctxUser2 := xcontext.WithRequestUserID(ctx, "user2")
	_, err = domain.MarkRead(ctxUser2, &model.MarkReadRequest{MessageID: resp.ID})
	require.NoError(t, err)

	lastEvent := emitter.Events[len(emitter.Events)-1]
	require.Equal(t, "message_read", lastEvent.Op)
	require.Equal(t, "user1", lastEvent.Metadata.To)

	// Marking again succeeds without another event.
	eventCount := len(emitter.Events)
	_, err = domain.MarkRead(ctxUser2, &model.MarkReadRequest{MessageID: resp.ID})
	require.NoError(t, err)
	require.Len(t, emitter.Events, eventCount)

	conversation, err := domain.GetConversation(ctxUser2, &model.GetConversationRequest{FriendID: "user1"})
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 1)
	require.True(t, conversation.Messages[0].IsRead)
}

func Test_chatDomain_GetUnreadCount(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := newChatDomainForTest(&testutil.MockEventEmitter{}, &testutil.MockPusher{})

	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	for i := 0; i < 3; i++ {
		_, err := domain.CreateMessage(ctxUser1, &model.CreateMessageRequest{
			ReceiverID: "user2",
			Content:    "hello",
		})
		require.NoError(t, err)
	}

	ctxUser2 := xcontext.WithRequestUserID(ctx, "user2")
	count, err := domain.GetUnreadCount(ctxUser2, &model.GetUnreadCountRequest{FriendID: "user1"})
	require.NoError(t, err)
	require.EqualValues(t, 3, count.Count)

	// The sender has nothing unread.
	count, err = domain.GetUnreadCount(ctxUser1, &model.GetUnreadCountRequest{FriendID: "user2"})
	require.NoError(t, err)
	require.EqualValues(t, 0, count.Count)
}

func Test_chatDomain_Reactions(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	emitter := &testutil.MockEventEmitter{}
	domain := newChatDomainForTest(emitter, &testutil.MockPusher{})

	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	resp, err := domain.CreateMessage(ctxUser1, &model.CreateMessageRequest{
		ReceiverID: "user2",
		Content:    "hello",
	})
	require.NoError(t, err)

	// The last reaction of a user wins.
	ctxUser2 := xcontext.WithRequestUserID(ctx, "user2")
	_, err = domain.AddReaction(ctxUser2, &model.AddReactionRequest{MessageID: resp.ID, Emoji: "👍"})
	require.NoError(t, err)
	_, err = domain.AddReaction(ctxUser2, &model.AddReactionRequest{MessageID: resp.ID, Emoji: "❤️"})
	require.NoError(t, err)

	conversation, err := domain.GetConversation(ctxUser1, &model.GetConversationRequest{FriendID: "user2"})
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 1)
	require.Len(t, conversation.Messages[0].Reactions, 1)
	require.Equal(t, "❤️", conversation.Messages[0].Reactions[0].Emoji)

	// Outsiders cannot react.
	var errx errorx.Error
	ctxUser3 := xcontext.WithRequestUserID(ctx, "user3")
	_, err = domain.AddReaction(ctxUser3, &model.AddReactionRequest{MessageID: resp.ID, Emoji: "👍"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	_, err = domain.RemoveReaction(ctxUser2, &model.RemoveReactionRequest{MessageID: resp.ID})
	require.NoError(t, err)

	conversation, err = domain.GetConversation(ctxUser1, &model.GetConversationRequest{FriendID: "user2"})
	require.NoError(t, err)
	require.Empty(t, conversation.Messages[0].Reactions)
}
