package main

import (
	"github.com/bigex/backend/internal/domain/cron"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(*cli.Context) error {
	s.loadConfig()
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRedisClient()
	s.loadPublisher()
	s.loadPusher()
	s.loadRepos()

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewCleanupUserStatusCronJob(
		s.userRepo, s.friendshipRepo, s.redisClient, s.emitter,
		xcontext.Configs(s.ctx).Presence.SweepInterval,
	))
	cronJobManager.Register(cron.NewWateringReminderCronJob(
		s.treeRepo, s.userRepo, s.notificationRepo, s.pusher,
	))

	cronJobManager.Start(s.ctx)
	return nil
}
