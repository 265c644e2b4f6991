package cron

import (
	"context"
	"time"

	"github.com/bigex/backend/internal/client"
	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/dateutil"
	"github.com/bigex/backend/pkg/xcontext"
)

// WateringReminderCronJob pushes a reminder to users who set one on
// their active tree and have not watered it today. It wakes up every
// minute and fires the reminders whose clock time has just passed.
type WateringReminderCronJob struct {
	treeRepo         repository.TreeRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	pusher           client.Pusher
}

func NewWateringReminderCronJob(
	treeRepo repository.TreeRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	pusher client.Pusher,
) *WateringReminderCronJob {
	return &WateringReminderCronJob{
		treeRepo:         treeRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

func (job *WateringReminderCronJob) Do(ctx context.Context) {
	trees, err := job.treeRepo.GetAllWithReminder(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get trees with reminder: %v", err)
		return
	}

	now := time.Now()
	today := dateutil.Today()
	for i := range trees {
		tree := &trees[i]
		if tree.ReminderHour != now.Hour() || tree.ReminderMinute != now.Minute() {
			continue
		}

		history := tree.WaterHistory
		if len(history) > 0 && history[len(history)-1] == today {
			continue
		}

		user, err := job.userRepo.GetByID(ctx, tree.UserID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			continue
		}

		err = job.notificationRepo.Create(ctx, &entity.Notification{
			SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
			UserID:        user.ID,
			Type:          entity.NotificationTypeTreeReminder,
			Data:          entity.Map{"tree_id": tree.ID},
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create notification: %v", err)
		}

		if user.FCMToken == "" {
			continue
		}

		err = job.pusher.Push(ctx, user.FCMToken,
			"Your tree is thirsty",
			"Water your tree today to keep it growing",
			map[string]string{"type": entity.NotificationTypeTreeReminder, "tree_id": tree.ID})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot push reminder: %v", err)
		}
	}
}

func (job *WateringReminderCronJob) RunNow() bool {
	return false
}

func (job *WateringReminderCronJob) Next() time.Time {
	// Align to the start of the next minute so a reminder is checked
	// exactly once per clock minute.
	return time.Now().Truncate(time.Minute).Add(time.Minute)
}
