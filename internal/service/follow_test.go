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

type fakeFollowRepo struct {
	postgres.Follow
	created   bool
	creates   int
	deletes   int
	followers []uuid.UUID
}

func (f *fakeFollowRepo) Create(ctx context.Context, followerID uuid.UUID, followingID uuid.UUID) (bool, error) {
	f.creates++
	return f.created, nil
}

func (f *fakeFollowRepo) Delete(ctx context.Context, followerID uuid.UUID, followingID uuid.UUID) error {
	f.deletes++
	return nil
}

func (f *fakeFollowRepo) FindFollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return f.followers, nil
}

func TestFollowRejectsSelf(t *testing.T) {
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{Follow: &fakeFollowRepo{}})
	svc := newFollowService(zap.NewNop(), repo, &notificationRecorder{})

	userID := uuid.New()
	err := svc.Follow(context.Background(), userID, userID)
	require.ErrorIs(t, err, ErrCannotFollowSelf)
}

func TestFollowNotifiesOnNewEdge(t *testing.T) {
	follows := &fakeFollowRepo{created: true}
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{Follow: follows})

	notifications := &notificationRecorder{}
	svc := newFollowService(zap.NewNop(), repo, notifications)

	follower := uuid.New()
	following := uuid.New()
	require.NoError(t, svc.Follow(context.Background(), follower, following))

	emitted := notifications.all()
	require.Len(t, emitted, 1)
	require.Equal(t, model.NOTIFICATION_FOLLOW, emitted[0].Type)
	require.Equal(t, following, emitted[0].UserID)
	require.Equal(t, follower, emitted[0].SenderID)
}

func TestRefollowDoesNotNotify(t *testing.T) {
	follows := &fakeFollowRepo{created: false}
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{Follow: follows})

	notifications := &notificationRecorder{}
	svc := newFollowService(zap.NewNop(), repo, notifications)

	require.NoError(t, svc.Follow(context.Background(), uuid.New(), uuid.New()))
	require.Empty(t, notifications.all())
	require.Equal(t, 1, follows.creates)
}

func TestUnfollow(t *testing.T) {
	follows := &fakeFollowRepo{}
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{Follow: follows})
	svc := newFollowService(zap.NewNop(), repo, &notificationRecorder{})

	require.NoError(t, svc.Unfollow(context.Background(), uuid.New(), uuid.New()))
	require.Equal(t, 1, follows.deletes)
}
