package service

import (
	"context"
	"testing"

	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository/postgres"
	"github.com/flokkk/content-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVoteApplyRejectsInvalidInput(t *testing.T) {
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{Vote: &fakeVoteRepo{}})
	svc := newVoteService(zap.NewNop(), repo, &notificationRecorder{})

	_, err := svc.Apply(context.Background(), model.VoteKindPost, 1, uuid.New(), 2)
	require.ErrorIs(t, err, ErrInvalidVote)

	_, err = svc.Apply(context.Background(), model.VoteKind("user"), 1, uuid.New(), 1)
	require.ErrorIs(t, err, ErrEntityNotFound)
}

func TestVoteApplyEntityMissing(t *testing.T) {
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Vote: &fakeVoteRepo{applyErr: pgx.ErrNoRows},
	})
	svc := newVoteService(zap.NewNop(), repo, &notificationRecorder{})

	_, err := svc.Apply(context.Background(), model.VoteKindComment, 42, uuid.New(), 1)
	require.ErrorIs(t, err, ErrEntityNotFound)
}

func TestVoteApplyNotifiesOwnerAndInvalidatesCache(t *testing.T) {
	owner := uuid.New()
	voter := uuid.New()

	repo, mr := newTestRepo(t, &postgres.PostgresRepository{
		Vote: &fakeVoteRepo{result: &model.VoteResult{
			VoteCount: 5,
			UserVote:  1,
			Delta:     1,
			OwnerID:   owner,
		}},
	})
	require.NoError(t, mr.Set(redisrepo.PostKey(42), "cached"))

	notifications := &notificationRecorder{}
	svc := newVoteService(zap.NewNop(), repo, notifications)

	response, err := svc.Apply(context.Background(), model.VoteKindPost, 42, voter, 1)
	require.NoError(t, err)
	require.EqualValues(t, 5, response.VoteCount)
	require.EqualValues(t, 1, response.UserVote)
	require.True(t, response.IsLiked)
	require.False(t, response.IsDownvoted)

	emitted := notifications.all()
	require.Len(t, emitted, 1)
	require.Equal(t, model.NOTIFICATION_LIKE, emitted[0].Type)
	require.Equal(t, owner, emitted[0].UserID)
	require.Equal(t, voter, emitted[0].SenderID)
	require.EqualValues(t, 42, emitted[0].RelatedID)

	require.False(t, mr.Exists(redisrepo.PostKey(42)))
}

func TestVoteApplyRemovalDoesNotNotify(t *testing.T) {
	repo, mr := newTestRepo(t, &postgres.PostgresRepository{
		Vote: &fakeVoteRepo{result: &model.VoteResult{
			VoteCount: 4,
			UserVote:  0,
			Delta:     -1,
			OwnerID:   uuid.New(),
		}},
	})
	require.NoError(t, mr.Set(redisrepo.PostKey(42), "cached"))

	notifications := &notificationRecorder{}
	svc := newVoteService(zap.NewNop(), repo, notifications)

	response, err := svc.Apply(context.Background(), model.VoteKindPost, 42, uuid.New(), 0)
	require.NoError(t, err)
	require.EqualValues(t, 4, response.VoteCount)
	require.False(t, response.IsLiked)

	require.Empty(t, notifications.all())
	require.False(t, mr.Exists(redisrepo.PostKey(42)), "count moved, cache must drop")
}

func TestVoteApplyRepeatIsNoop(t *testing.T) {
	repo, mr := newTestRepo(t, &postgres.PostgresRepository{
		Vote: &fakeVoteRepo{result: &model.VoteResult{
			VoteCount: 5,
			UserVote:  1,
			Delta:     0,
			OwnerID:   uuid.New(),
		}},
	})
	require.NoError(t, mr.Set(redisrepo.PostKey(42), "cached"))

	notifications := &notificationRecorder{}
	svc := newVoteService(zap.NewNop(), repo, notifications)

	response, err := svc.Apply(context.Background(), model.VoteKindPost, 42, uuid.New(), 1)
	require.NoError(t, err)
	require.EqualValues(t, 5, response.VoteCount)
	require.EqualValues(t, 1, response.UserVote)

	require.Empty(t, notifications.all())
	require.True(t, mr.Exists(redisrepo.PostKey(42)))
}

func TestVoteFind(t *testing.T) {
	value := int16(-1)
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Vote: &fakeVoteRepo{value: &value},
	})
	svc := newVoteService(zap.NewNop(), repo, &notificationRecorder{})

	vote, err := svc.Find(context.Background(), model.VoteKindComment, 1, uuid.New())
	require.NoError(t, err)
	require.EqualValues(t, -1, vote)
}

func TestVoteFindNoVote(t *testing.T) {
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{Vote: &fakeVoteRepo{}})
	svc := newVoteService(zap.NewNop(), repo, &notificationRecorder{})

	vote, err := svc.Find(context.Background(), model.VoteKindPost, 1, uuid.New())
	require.NoError(t, err)
	require.EqualValues(t, 0, vote)
}
