package service

import (
	"context"
	"testing"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository/postgres"
	"github.com/flokkk/content-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContributionApproveOnlyByCreator(t *testing.T) {
	creator := uuid.New()
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Contribution: &fakeContributionRepo{
			found: &model.LinkContribution{ID: 1, CreatorID: creator},
		},
	})
	svc := newContributionService(zap.NewNop(), repo, &notificationRecorder{})

	_, err := svc.Approve(context.Background(), 1, uuid.New())
	require.ErrorIs(t, err, ErrNoAccess)
}

func TestContributionApproveMissing(t *testing.T) {
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Contribution: &fakeContributionRepo{findErr: pgx.ErrNoRows},
	})
	svc := newContributionService(zap.NewNop(), repo, &notificationRecorder{})

	_, err := svc.Approve(context.Background(), 1, uuid.New())
	require.ErrorIs(t, err, ErrContributionNotFound)
}

func TestContributionResolveIsTerminal(t *testing.T) {
	creator := uuid.New()
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Contribution: &fakeContributionRepo{
			found:      &model.LinkContribution{ID: 1, CreatorID: creator},
			approveErr: postgres.ErrContributionResolved,
			declineErr: postgres.ErrContributionResolved,
		},
	})
	svc := newContributionService(zap.NewNop(), repo, &notificationRecorder{})

	_, err := svc.Approve(context.Background(), 1, creator)
	require.ErrorIs(t, err, ErrContributionResolved)

	_, err = svc.Decline(context.Background(), 1, creator)
	require.ErrorIs(t, err, ErrContributionResolved)
}

func TestContributionApproveNotifiesContributor(t *testing.T) {
	creator := uuid.New()
	contributor := uuid.New()
	approved := &model.LinkContribution{
		ID:            1,
		PostID:        42,
		ContributorID: contributor,
		CreatorID:     creator,
		Status:        model.CONTRIBUTION_APPROVED,
	}

	repo, mr := newTestRepo(t, &postgres.PostgresRepository{
		Contribution: &fakeContributionRepo{
			found:    &model.LinkContribution{ID: 1, PostID: 42, ContributorID: contributor, CreatorID: creator},
			approved: approved,
		},
	})
	require.NoError(t, mr.Set(redisrepo.PostKey(42), "cached"))

	notifications := &notificationRecorder{}
	svc := newContributionService(zap.NewNop(), repo, notifications)

	result, err := svc.Approve(context.Background(), 1, creator)
	require.NoError(t, err)
	require.Equal(t, model.CONTRIBUTION_APPROVED, result.Status)

	emitted := notifications.all()
	require.Len(t, emitted, 1)
	require.Equal(t, contributor, emitted[0].UserID)
	require.Equal(t, creator, emitted[0].SenderID)
	require.Equal(t, model.NOTIFICATION_CONTRIBUTION, emitted[0].Type)

	require.False(t, mr.Exists(redisrepo.PostKey(42)), "approved link must drop the post cache")
}

func TestContributionSubmitNotifiesCreator(t *testing.T) {
	creator := uuid.New()
	contributor := uuid.New()
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Post:         &fakePostRepo{ownerID: creator},
		Contribution: &fakeContributionRepo{},
	})

	notifications := &notificationRecorder{}
	svc := newContributionService(zap.NewNop(), repo, notifications)

	input := dto.CreateContributionDto{Title: "a link", URL: "https://example.com"}
	created, err := svc.Submit(context.Background(), 42, contributor, input)
	require.NoError(t, err)
	require.Equal(t, model.CONTRIBUTION_PENDING, created.Status)
	require.Equal(t, creator, created.CreatorID)

	emitted := notifications.all()
	require.Len(t, emitted, 1)
	require.Equal(t, creator, emitted[0].UserID)
	require.Equal(t, contributor, emitted[0].SenderID)
}

func TestContributionFindPendingOnlyByCreator(t *testing.T) {
	creator := uuid.New()
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Post:         &fakePostRepo{ownerID: creator},
		Contribution: &fakeContributionRepo{},
	})
	svc := newContributionService(zap.NewNop(), repo, &notificationRecorder{})

	_, err := svc.FindPending(context.Background(), 42, uuid.New())
	require.ErrorIs(t, err, ErrNoAccess)

	contributions, err := svc.FindPending(context.Background(), 42, creator)
	require.NoError(t, err)
	require.Empty(t, contributions)
}
