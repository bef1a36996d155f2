package service

import (
	"context"

	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type engagementService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newEngagementService(logger *zap.Logger, repo *repository.Repository) Engagement {
	return &engagementService{
		logger: logger,
		repo:   repo,
	}
}

// Track sets the flag on the (post, user) record and returns the post's
// current aggregate counts. Flags are monotonic, so a repeated call is a
// pure read.
func (s *engagementService) Track(ctx context.Context, postID int64, userID uuid.UUID, flag model.EngagementFlag) (*model.EngagementCounts, error) {
	if !flag.Valid() {
		return nil, ErrInvalidFlag
	}

	if _, err := s.repo.Postgres.Post.FindOwnerID(ctx, postID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	changed, err := s.repo.Postgres.Engagement.Track(ctx, postID, userID, flag)
	if err != nil {
		s.logger.Sugar().Errorf("failed to track %s on post(%d) for user(%s): %s", flag, postID, userID.String(), err.Error())
		return nil, ErrInternal
	}

	if changed && flag == model.EngagementShared {
		if err := s.repo.Postgres.Post.IncrShares(ctx, postID); err != nil {
			s.logger.Sugar().Errorf("failed to increment shares for post(%d): %s", postID, err.Error())
		}
	}

	counts, err := s.repo.Postgres.Engagement.Counts(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count engagement for post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	return counts, nil
}
