package testutil

import (
	"context"
	"time"

	"github.com/bigex/backend/config"
	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/pkg/authenticator"
	"github.com/bigex/backend/pkg/logger"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/bwmarrin/snowflake"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewMockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Auth: config.AuthConfigs{
			TokenSecret:     "secret",
			AccessTokenName: "access_token",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: time.Minute,
			},
		},
		File: config.FileConfigs{
			MaxSize:      2 * 1024 * 1024,
			AllowedMimes: []string{"image/jpeg", "image/png", "image/gif"},
		},
		Kafka: config.KafkaConfigs{
			NotificationTopic: "notifications",
		},
		Presence: config.PresenceConfigs{
			PingTimeout:   30 * time.Second,
			SweepInterval: time.Minute,
		},
		Tree: config.TreeConfigs{
			PointsPerWatering: 10,
		},
		Call: config.CallConfigs{
			TokenExpiration: time.Minute,
		},
	}

	node, err := snowflake.NewNode(0)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	ctx = xcontext.WithSnowFlake(ctx, node)
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func NewMockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(NewMockContext(), userID)
}
