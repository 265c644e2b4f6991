package domain

import (
	"testing"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/testutil"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_notificationDomain_MarkNotificationRead(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	notificationRepo := repository.NewNotificationRepository()
	domain := NewNotificationDomain(notificationRepo)

	err := notificationRepo.Create(ctx, &entity.Notification{
		SnowFlakeBase: entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
		UserID:        "user1",
		Type:          entity.NotificationTypeNewMessage,
		Data:          entity.Map{"sender_id": "user2"},
	})
	require.NoError(t, err)

	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	notifications, err := domain.GetMyNotifications(ctxUser1, &model.GetMyNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, notifications.Notifications, 1)
	require.False(t, notifications.Notifications[0].IsRead)

	id := notifications.Notifications[0].ID
	_, err = domain.MarkNotificationRead(ctxUser1, &model.MarkNotificationReadRequest{ID: id})
	require.NoError(t, err)

	notifications, err = domain.GetMyNotifications(ctxUser1, &model.GetMyNotificationsRequest{})
	require.NoError(t, err)
	require.True(t, notifications.Notifications[0].IsRead)

	// Users cannot touch notifications of somebody else.
	var errx errorx.Error
	ctxUser2 := xcontext.WithRequestUserID(ctx, "user2")
	_, err = domain.MarkNotificationRead(ctxUser2, &model.MarkNotificationReadRequest{ID: id})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}
