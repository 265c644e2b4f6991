package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bigex/backend/config"
	"github.com/bigex/backend/internal/client"
	"github.com/bigex/backend/internal/domain"
	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/authenticator"
	"github.com/bigex/backend/pkg/kafka"
	"github.com/bigex/backend/pkg/logger"
	"github.com/bigex/backend/pkg/pubsub"
	"github.com/bigex/backend/pkg/router"
	"github.com/bigex/backend/pkg/storage"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/bigex/backend/pkg/xredis"
	"github.com/bwmarrin/snowflake"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	friendRequestRepo repository.FriendRequestRepository
	friendshipRepo    repository.FriendshipRepository
	messageRepo       repository.MessageRepository
	postRepo          repository.PostRepository
	treeRepo          repository.TreeRepository
	pointsRepo        repository.PointsRepository
	notificationRepo  repository.NotificationRepository

	authDomain         domain.AuthDomain
	userDomain         domain.UserDomain
	presenceDomain     domain.PresenceDomain
	friendDomain       domain.FriendDomain
	chatDomain         domain.ChatDomain
	feedDomain         domain.FeedDomain
	treeDomain         domain.TreeDomain
	pointsDomain       domain.PointsDomain
	notificationDomain domain.NotificationDomain
	callDomain         domain.CallDomain
	fileDomain         domain.FileDomain

	redisClient xredis.Client
	publisher   pubsub.Publisher
	storage     storage.Storage
	pusher      client.Pusher
	emitter     client.EventEmitter

	router *router.Router
}

func (s *srv) loadConfig() {
	cfg := config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "bigex"),
			User:     getEnv("MYSQL_USER", "bigex"),
			Password: getEnv("MYSQL_PASSWORD", "bigex"),
		},
		ApiServer: config.ServerConfigs{
			Host: getEnv("API_HOST", "localhost"),
			Port: getEnv("API_PORT", "8080"),
		},
		ProxyServer: config.ServerConfigs{
			Host: getEnv("PROXY_HOST", "localhost"),
			Port: getEnv("PROXY_PORT", "8081"),
		},
		Auth: config.AuthConfigs{
			TokenSecret:     getEnv("TOKEN_SECRET", "token_secret"),
			AccessTokenName: "access_token",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: getEnvDuration("ACCESS_TOKEN_DURATION", time.Hour),
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: getEnvDuration("REFRESH_TOKEN_DURATION", 30*24*time.Hour),
			},
		},
		Storage: config.S3Configs{
			S3Configs: storage.S3Configs{
				Region:         getEnv("STORAGE_REGION", "auto"),
				Endpoint:       getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
				PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
				AccessKey:      getEnv("STORAGE_ACCESS_KEY", ""),
				SecretKey:      getEnv("STORAGE_SECRET_KEY", ""),
				SSLDisabled:    getEnvBool("STORAGE_SSL_DISABLED", true),
			},
			Bucket: getEnv("STORAGE_BUCKET", "bigex"),
		},
		File: config.FileConfigs{
			MaxSize:      getEnvInt64("MAX_UPLOAD_SIZE", 2*1024*1024),
			AllowedMimes: strings.Split(getEnv("ALLOWED_MIMES", "image/jpeg,image/png,image/gif"), ","),
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
		Kafka: config.KafkaConfigs{
			Addr:              getEnv("KAFKA_ADDRESS", "localhost:9092"),
			NotificationTopic: getEnv("KAFKA_NOTIFICATION_TOPIC", "notifications"),
		},
		Presence: config.PresenceConfigs{
			PingTimeout:   getEnvDuration("PRESENCE_PING_TIMEOUT", 30*time.Second),
			SweepInterval: getEnvDuration("PRESENCE_SWEEP_INTERVAL", time.Minute),
		},
		Tree: config.TreeConfigs{
			PointsPerWatering: getEnvInt64("TREE_POINTS_PER_WATERING", 10),
		},
		Call: config.CallConfigs{
			TokenExpiration: getEnvDuration("CALL_TOKEN_DURATION", time.Hour),
		},
		Firebase: config.FirebaseConfigs{
			CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "firebase.json"),
		},
	}

	node, err := snowflake.NewNode(getEnvInt64("SNOWFLAKE_NODE", 0))
	if err != nil {
		panic(err)
	}

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(logger.INFO))
	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	s.ctx = xcontext.WithSnowFlake(s.ctx, node)
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx)
	db, err := gorm.Open(mysql.Open(cfg.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) migrateDB() {
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadPublisher() {
	cfg := xcontext.Configs(s.ctx)
	s.publisher = kafka.NewPublisher("bigex-backend", []string{cfg.Kafka.Addr})
	s.emitter = client.NewKafkaEventEmitter(s.publisher)
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(xcontext.Configs(s.ctx).Storage.S3Configs)
}

func (s *srv) loadPusher() {
	pusher, err := client.NewFirebasePusher(s.ctx, xcontext.Configs(s.ctx).Firebase.CredentialsFile)
	if err != nil {
		panic(err)
	}

	s.pusher = pusher
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.refreshTokenRepo = repository.NewRefreshTokenRepository()
	s.friendRequestRepo = repository.NewFriendRequestRepository()
	s.friendshipRepo = repository.NewFriendshipRepository()
	s.messageRepo = repository.NewMessageRepository()
	s.postRepo = repository.NewPostRepository()
	s.treeRepo = repository.NewTreeRepository()
	s.pointsRepo = repository.NewPointsRepository()
	s.notificationRepo = repository.NewNotificationRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.refreshTokenRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.presenceDomain = domain.NewPresenceDomain(s.userRepo, s.friendshipRepo, s.redisClient, s.emitter)
	s.friendDomain = domain.NewFriendDomain(
		s.userRepo, s.friendRequestRepo, s.friendshipRepo, s.notificationRepo, s.emitter, s.pusher)
	s.chatDomain = domain.NewChatDomain(
		s.messageRepo, s.userRepo, s.friendshipRepo, s.notificationRepo, s.emitter, s.pusher)
	s.feedDomain = domain.NewFeedDomain(s.postRepo, s.userRepo)
	s.treeDomain = domain.NewTreeDomain(s.treeRepo, s.pointsRepo)
	s.pointsDomain = domain.NewPointsDomain(s.pointsRepo)
	s.notificationDomain = domain.NewNotificationDomain(s.notificationRepo)
	s.callDomain = domain.NewCallDomain(s.friendshipRepo)
	s.fileDomain = domain.NewFileDomain(s.storage)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		panic(err)
	}

	return n
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		panic(err)
	}

	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}

	return d
}
