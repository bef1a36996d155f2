package service

import (
	"context"
	"testing"

	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEngagementTrackRejectsUnknownFlag(t *testing.T) {
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{})
	svc := newEngagementService(zap.NewNop(), repo)

	_, err := svc.Track(context.Background(), 1, uuid.New(), model.EngagementFlag("bookmarked"))
	require.ErrorIs(t, err, ErrInvalidFlag)
}

func TestEngagementTrackPostMissing(t *testing.T) {
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Post: &fakePostRepo{ownerErr: pgx.ErrNoRows},
	})
	svc := newEngagementService(zap.NewNop(), repo)

	_, err := svc.Track(context.Background(), 1, uuid.New(), model.EngagementViewed)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestEngagementTrackSharedIncrementsOnce(t *testing.T) {
	posts := &fakePostRepo{ownerID: uuid.New()}
	engagements := &fakeEngagementRepo{
		changed: true,
		counts:  &model.EngagementCounts{Appeared: 10, Shared: 1},
	}
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Post:       posts,
		Engagement: engagements,
	})
	svc := newEngagementService(zap.NewNop(), repo)

	counts, err := svc.Track(context.Background(), 1, uuid.New(), model.EngagementShared)
	require.NoError(t, err)
	require.EqualValues(t, 1, counts.Shared)
	require.Equal(t, 1, posts.shareIncrs)

	// a flag is monotonic, the repeat must not touch the share counter
	engagements.changed = false
	_, err = svc.Track(context.Background(), 1, uuid.New(), model.EngagementShared)
	require.NoError(t, err)
	require.Equal(t, 1, posts.shareIncrs)
}

func TestEngagementTrackNonSharedNeverIncrementsShares(t *testing.T) {
	posts := &fakePostRepo{ownerID: uuid.New()}
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Post: posts,
		Engagement: &fakeEngagementRepo{
			changed: true,
			counts:  &model.EngagementCounts{Viewed: 3},
		},
	})
	svc := newEngagementService(zap.NewNop(), repo)

	counts, err := svc.Track(context.Background(), 1, uuid.New(), model.EngagementViewed)
	require.NoError(t, err)
	require.EqualValues(t, 3, counts.Viewed)
	require.Zero(t, posts.shareIncrs)
}
