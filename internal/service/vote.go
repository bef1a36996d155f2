package service

import (
	"context"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository"
	"github.com/flokkk/content-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type voteService struct {
	logger        *zap.Logger
	repo          *repository.Repository
	notifications Notification
}

func newVoteService(logger *zap.Logger, repo *repository.Repository, notifications Notification) Vote {
	return &voteService{
		logger:        logger,
		repo:          repo,
		notifications: notifications,
	}
}

var voteContents = map[model.VoteKind]string{
	model.VoteKindPost:          "liked your post",
	model.VoteKindComment:       "liked your comment",
	model.VoteKindCommunityLink: "upvoted your link",
}

// Apply runs the ledger mutation and notifies the entity owner when the
// count actually moved. Removing a vote never notifies.
func (s *voteService) Apply(ctx context.Context, kind model.VoteKind, entityID int64, voterID uuid.UUID, vote int16) (*dto.VoteResponse, error) {
	if !kind.Valid() {
		return nil, ErrEntityNotFound
	}
	if vote != 1 && vote != -1 && vote != 0 {
		return nil, ErrInvalidVote
	}

	result, err := s.repo.Postgres.Vote.Apply(ctx, kind, entityID, voterID, vote)
	if err == pgx.ErrNoRows {
		return nil, ErrEntityNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to apply vote on %s(%d) by user(%s): %s", kind, entityID, voterID.String(), err.Error())
		return nil, ErrInternal
	}

	if result.Delta != 0 && vote != 0 {
		s.notifications.Emit(model.Notification{
			UserID:    result.OwnerID,
			Type:      model.NOTIFICATION_LIKE,
			Content:   voteContents[kind],
			SenderID:  voterID,
			RelatedID: entityID,
			OnModel:   string(kind),
		})
	}

	if kind == model.VoteKindPost && result.Delta != 0 {
		if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostKey(entityID)).Err(); err != nil {
			s.logger.Sugar().Errorf("failed to invalidate post(%d) cache: %s", entityID, err.Error())
		}
	}

	response := dto.NewVoteResponse(result.VoteCount, result.UserVote)
	return &response, nil
}

func (s *voteService) Find(ctx context.Context, kind model.VoteKind, entityID int64, userID uuid.UUID) (int16, error) {
	value, err := s.repo.Postgres.Vote.Find(ctx, kind, entityID, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find vote on %s(%d) by user(%s): %s", kind, entityID, userID.String(), err.Error())
		return 0, ErrInternal
	}
	if value == nil {
		return 0, nil
	}

	return *value, nil
}
