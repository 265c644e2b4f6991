package testutil

import (
	"context"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/repository"
)

// CreateFixtureDb inserts a small social graph: user1 and user2 are
// friends, user3 knows nobody.
func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertFriendships(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	users := []*entity.User{
		{
			Base:  entity.Base{ID: "user1"},
			Name:  "alice",
			Email: "alice@example.com",
		},
		{
			Base:  entity.Base{ID: "user2"},
			Name:  "bob",
			Email: "bob@example.com",
		},
		{
			Base:  entity.Base{ID: "user3"},
			Name:  "carol",
			Email: "carol@example.com",
		},
	}

	for _, user := range users {
		if err := userRepo.Create(ctx, user); err != nil {
			panic(err)
		}
	}
}

func insertFriendships(ctx context.Context) {
	friendshipRepo := repository.NewFriendshipRepository()

	err := friendshipRepo.Create(ctx,
		&entity.Friendship{UserID: "user1", FriendID: "user2"},
		&entity.Friendship{UserID: "user2", FriendID: "user1"},
	)
	if err != nil {
		panic(err)
	}
}
