package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CallDomain interface {
	IssueCallToken(context.Context, *model.IssueCallTokenRequest) (*model.IssueCallTokenResponse, error)
}

type callDomain struct {
	friendshipRepo repository.FriendshipRepository
}

func NewCallDomain(friendshipRepo repository.FriendshipRepository) *callDomain {
	return &callDomain{friendshipRepo: friendshipRepo}
}

// IssueCallToken signs a short-lived token for the call channel of a
// user pair. Both sides derive the same channel name, so either one
// can start the call.
func (d *callDomain) IssueCallToken(
	ctx context.Context, req *model.IssueCallTokenRequest,
) (*model.IssueCallTokenResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if req.FriendID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty friend id")
	}

	if _, err := d.friendshipRepo.Get(ctx, userID, req.FriendID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.PermissionDenied, "You can only call your friends")
		}

		xcontext.Logger(ctx).Errorf("Cannot get friendship: %v", err)
		return nil, errorx.Unknown
	}

	channel := callChannelName(userID, req.FriendID)
	expiration := xcontext.Configs(ctx).Call.TokenExpiration
	token, err := xcontext.TokenEngine(ctx).Generate(expiration, model.CallToken{
		Channel: channel,
		UserID:  userID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate call token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.IssueCallTokenResponse{
		Channel:   channel,
		Token:     token,
		ExpiresAt: time.Now().Add(expiration).Format(time.RFC3339),
	}, nil
}

// callChannelName orders the pair lexicographically so the channel is
// the same regardless of who requests the token.
func callChannelName(a, b string) string {
	if a > b {
		a, b = b, a
	}

	return fmt.Sprintf("call_%s_%s", a, b)
}
