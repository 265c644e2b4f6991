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

func Test_callDomain_IssueCallToken(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewCallDomain(repository.NewFriendshipRepository())

	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	resp1, err := domain.IssueCallToken(ctxUser1, &model.IssueCallTokenRequest{FriendID: "user2"})
	require.NoError(t, err)
	require.NotEmpty(t, resp1.Token)
	require.NotEmpty(t, resp1.ExpiresAt)

	// Both sides derive the same channel.
	ctxUser2 := xcontext.WithRequestUserID(ctx, "user2")
	resp2, err := domain.IssueCallToken(ctxUser2, &model.IssueCallTokenRequest{FriendID: "user1"})
	require.NoError(t, err)
	require.Equal(t, resp1.Channel, resp2.Channel)

	// The token carries the channel and the caller.
	var callToken model.CallToken
	err = xcontext.TokenEngine(ctx).Verify(resp1.Token, &callToken)
	require.NoError(t, err)
	require.Equal(t, resp1.Channel, callToken.Channel)
	require.Equal(t, "user1", callToken.UserID)

	// Calls are restricted to friends.
	var errx errorx.Error
	_, err = domain.IssueCallToken(ctxUser1, &model.IssueCallTokenRequest{FriendID: "user3"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}
