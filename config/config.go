package config

import (
	"fmt"
	"time"

	"github.com/bigex/backend/pkg/storage"
)

type Configs struct {
	Env string

	Database    DatabaseConfigs
	ApiServer   ServerConfigs
	ProxyServer ServerConfigs
	Auth        AuthConfigs
	Storage     S3Configs
	File        FileConfigs
	Redis       RedisConfigs
	Kafka       KafkaConfigs
	Presence    PresenceConfigs
	Tree        TreeConfigs
	Call        CallConfigs
	Firebase    FirebaseConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	TokenSecret     string
	AccessTokenName string
	AccessToken     TokenConfigs
	RefreshToken    TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type S3Configs struct {
	storage.S3Configs
	Bucket string
}

type FileConfigs struct {
	MaxSize      int64
	AllowedMimes []string
}

type RedisConfigs struct {
	Addr string
}

type KafkaConfigs struct {
	Addr              string
	NotificationTopic string
}

type PresenceConfigs struct {
	// PingTimeout is how long a user keeps their online flag without a
	// heartbeat before the cron sweep marks them offline.
	PingTimeout   time.Duration
	SweepInterval time.Duration
}

type TreeConfigs struct {
	PointsPerWatering int64
}

type CallConfigs struct {
	TokenExpiration time.Duration
}

type FirebaseConfigs struct {
	CredentialsFile string
}
