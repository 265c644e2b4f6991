package main

import (
	"net/http"

	"github.com/bigex/backend/internal/domain"
	"github.com/bigex/backend/internal/domain/notification/proxy"
	"github.com/bigex/backend/internal/middleware"
	"github.com/bigex/backend/pkg/kafka"
	"github.com/bigex/backend/pkg/router"
	"github.com/bigex/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startNotificationProxy(*cli.Context) error {
	s.loadConfig()
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRedisClient()
	s.loadPublisher()
	s.loadRepos()

	presenceDomain := domain.NewPresenceDomain(s.userRepo, s.friendshipRepo, s.redisClient, s.emitter)
	notificationProxy := proxy.NewProxyServer(s.ctx, presenceDomain)

	cfg := xcontext.Configs(s.ctx)
	subscriber := kafka.NewSubscriber(
		"notification-proxy",
		[]string{cfg.Kafka.Addr},
		[]string{cfg.Kafka.NotificationTopic},
		notificationProxy.Router().Route,
	)
	subscriber.Subscribe(s.ctx)
	defer subscriber.Stop(s.ctx)

	defaultRouter := router.New(s.ctx)
	defaultRouter.AddCloser(middleware.Logger())
	defaultRouter.Before(middleware.NewAuthVerifier().Middleware())
	router.Websocket(defaultRouter, "/notification", notificationProxy.ServeProxy)

	xcontext.Logger(s.ctx).Infof("Server start in port: %s", cfg.ProxyServer.Port)
	httpSrv := &http.Server{
		Addr:    cfg.ProxyServer.Address(),
		Handler: defaultRouter.Handler(),
	}
	if err := httpSrv.ListenAndServe(); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}
