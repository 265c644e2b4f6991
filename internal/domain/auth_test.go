package domain

import (
	"testing"

	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_authDomain_Register(t *testing.T) {
	ctx := testutil.NewMockContext()
	domain := NewAuthDomain(
		repository.NewUserRepository(),
		repository.NewRefreshTokenRepository(),
	)

	resp, err := domain.Register(ctx, &model.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.User.ID)
	require.Equal(t, "alice", resp.User.Name)
	require.Equal(t, "alice@example.com", resp.User.Email)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	// The email is already taken.
	_, err = domain.Register(ctx, &model.RegisterRequest{
		Name:     "alice2",
		Email:    "alice@example.com",
		Password: "password",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)

	// The name is already taken.
	_, err = domain.Register(ctx, &model.RegisterRequest{
		Name:     "alice",
		Email:    "alice2@example.com",
		Password: "password",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)

	// Too short password.
	_, err = domain.Register(ctx, &model.RegisterRequest{
		Name:     "bob",
		Email:    "bob@example.com",
		Password: "123",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_authDomain_Login(t *testing.T) {
	ctx := testutil.NewMockContext()
	domain := NewAuthDomain(
		repository.NewUserRepository(),
		repository.NewRefreshTokenRepository(),
	)

	_, err := domain.Register(ctx, &model.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password",
	})
	require.NoError(t, err)

	resp, err := domain.Login(ctx, &model.LoginRequest{
		Email:    "alice@example.com",
		Password: "password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	// A wrong password and an unknown email give the same error.
	var errx errorx.Error
	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}

func Test_authDomain_Refresh(t *testing.T) {
	ctx := testutil.NewMockContext()
	domain := NewAuthDomain(
		repository.NewUserRepository(),
		repository.NewRefreshTokenRepository(),
	)

	registerResp, err := domain.Register(ctx, &model.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password",
	})
	require.NoError(t, err)

	refreshResp, err := domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: registerResp.RefreshToken,
	})
	require.NoError(t, err)
	require.NotEmpty(t, refreshResp.AccessToken)
	require.NotEmpty(t, refreshResp.RefreshToken)

	// Reusing the old refresh token is detected as stolen and revokes
	// the whole family.
	var errx errorx.Error
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: registerResp.RefreshToken,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.StolenDectected, errx.Code)

	// The rotated token of the revoked family cannot be used anymore.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: refreshResp.RefreshToken,
	})
	require.Error(t, err)
}
