package service

import (
	"context"
	"testing"

	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNotificationCreateSuppressesSelf(t *testing.T) {
	store := &fakeNotificationRepo{}
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{Notification: store})
	svc := newNotificationService(zap.NewNop(), repo, nil)

	self := uuid.New()
	err := svc.Create(context.Background(), model.Notification{
		UserID:   self,
		SenderID: self,
		Type:     model.NOTIFICATION_LIKE,
	})
	require.NoError(t, err)
	require.Empty(t, store.created)
}

func TestNotificationCreatePersists(t *testing.T) {
	store := &fakeNotificationRepo{}
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{Notification: store})
	svc := newNotificationService(zap.NewNop(), repo, nil)

	recipient := uuid.New()
	err := svc.Create(context.Background(), model.Notification{
		UserID:   recipient,
		SenderID: uuid.New(),
		Type:     model.NOTIFICATION_REPLY,
		Content:  "replied to your comment",
	})
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	require.Equal(t, recipient, store.created[0].UserID)
}

func TestNotificationGetFeedPagination(t *testing.T) {
	store := &fakeNotificationRepo{
		feed: []*model.Notification{{ID: 1}, {ID: 2}},
		counts: &model.NotificationCounts{
			All:    25,
			Unread: 3,
		},
	}
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{Notification: store})
	svc := newNotificationService(zap.NewNop(), repo, nil)

	feed, err := svc.GetFeed(context.Background(), uuid.New(), 2, 10)
	require.NoError(t, err)
	require.Equal(t, 2, feed.Pagination.Page)
	require.Equal(t, 10, feed.Pagination.Limit)
	require.EqualValues(t, 25, feed.Pagination.Total)
	require.Equal(t, 3, feed.Pagination.TotalPages)
	require.EqualValues(t, 3, feed.Counts.Unread)
	require.Len(t, feed.Notifications, 2)
}

func TestNotificationGetFeedClampsPageAndLimit(t *testing.T) {
	store := &fakeNotificationRepo{
		counts: &model.NotificationCounts{All: 10},
	}
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{Notification: store})
	svc := newNotificationService(zap.NewNop(), repo, nil)

	feed, err := svc.GetFeed(context.Background(), uuid.New(), 0, 500)
	require.NoError(t, err)
	require.Equal(t, 1, feed.Pagination.Page)
	require.Equal(t, MAX_LIMIT, feed.Pagination.Limit)
	require.Equal(t, 1, feed.Pagination.TotalPages)
}
