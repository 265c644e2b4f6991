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

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewUserDomain(repository.NewUserRepository())

	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	me, err := domain.GetMe(ctxUser1, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, "user1", me.ID)
	require.Equal(t, "alice@example.com", me.Email)

	// The email of other users is private.
	other, err := domain.GetUser(ctxUser1, &model.GetUserRequest{UserID: "user2"})
	require.NoError(t, err)
	require.Equal(t, "user2", other.ID)
	require.Empty(t, other.Email)

	var errx errorx.Error
	_, err = domain.GetUser(ctxUser1, &model.GetUserRequest{UserID: "nobody"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_userDomain_UpdateProfile(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewUserDomain(repository.NewUserRepository())
	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")

	_, err := domain.UpdateProfile(ctxUser1, &model.UpdateProfileRequest{
		Name:           "alice-renamed",
		ProfilePicture: "https://storage.example.com/avatar.png",
	})
	require.NoError(t, err)

	me, err := domain.GetMe(ctxUser1, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, "alice-renamed", me.Name)
	require.Equal(t, "https://storage.example.com/avatar.png", me.ProfilePicture)

	var errx errorx.Error
	_, err = domain.UpdateProfile(ctxUser1, &model.UpdateProfileRequest{})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_userDomain_UpdateFCMToken(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	domain := NewUserDomain(userRepo)
	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")

	_, err := domain.UpdateFCMToken(ctxUser1, &model.UpdateFCMTokenRequest{Token: "fcm-token"})
	require.NoError(t, err)

	user, err := userRepo.GetByID(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, "fcm-token", user.FCMToken)
}
