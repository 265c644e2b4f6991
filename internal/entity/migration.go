package entity

import (
	"context"

	"github.com/bigex/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&RefreshToken{},
		&FriendRequest{},
		&Friendship{},
		&Message{},
		&MessageReaction{},
		&Post{},
		&PostComment{},
		&PostReaction{},
		&Tree{},
		&PointsEntry{},
		&Notification{},
	)
}
