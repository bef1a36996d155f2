package service

import (
	"context"

	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type followService struct {
	logger        *zap.Logger
	repo          *repository.Repository
	notifications Notification
}

func newFollowService(logger *zap.Logger, repo *repository.Repository, notifications Notification) Follow {
	return &followService{
		logger:        logger,
		repo:          repo,
		notifications: notifications,
	}
}

func (s *followService) Follow(ctx context.Context, followerID uuid.UUID, followingID uuid.UUID) error {
	if followerID == followingID {
		return ErrCannotFollowSelf
	}

	created, err := s.repo.Postgres.Follow.Create(ctx, followerID, followingID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create follow %s -> %s: %s", followerID.String(), followingID.String(), err.Error())
		return ErrInternal
	}

	// Re-following is a no-op and must not notify again.
	if created {
		s.notifications.Emit(model.Notification{
			UserID:   followingID,
			Type:     model.NOTIFICATION_FOLLOW,
			Content:  "started following you",
			SenderID: followerID,
			OnModel:  "user",
		})
	}

	return nil
}

func (s *followService) Unfollow(ctx context.Context, followerID uuid.UUID, followingID uuid.UUID) error {
	if err := s.repo.Postgres.Follow.Delete(ctx, followerID, followingID); err != nil {
		s.logger.Sugar().Errorf("failed to delete follow %s -> %s: %s", followerID.String(), followingID.String(), err.Error())
		return ErrInternal
	}

	return nil
}
