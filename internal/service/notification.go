package service

import (
	"context"
	"encoding/json"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/rabbitmq"
	"github.com/flokkk/content-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type notificationService struct {
	logger   *zap.Logger
	repo     *repository.Repository
	rabbitmq *rabbitmq.MQConn
}

func newNotificationService(logger *zap.Logger, repo *repository.Repository, rabbitmq *rabbitmq.MQConn) Notification {
	return &notificationService{
		logger:   logger,
		repo:     repo,
		rabbitmq: rabbitmq,
	}
}

// Create writes a notification unless the sender and the recipient are the
// same user. Self-triggered actions are suppressed here so call sites do not
// have to repeat the check.
func (s *notificationService) Create(ctx context.Context, n model.Notification) error {
	if n.SenderID == n.UserID {
		return nil
	}

	if err := s.repo.Postgres.Notification.Create(ctx, n); err != nil {
		s.logger.Sugar().Errorf("failed to create notification for user(%s): %s", n.UserID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

// Emit creates the notification in the background. Notification delivery is
// best-effort: a failure is logged and never fails the triggering request.
func (s *notificationService) Emit(n model.Notification) {
	go func() {
		_ = s.Create(context.Background(), n)
	}()
}

func (s *notificationService) GetFeed(ctx context.Context, userID uuid.UUID, page int, limit int) (*dto.GetNotifications, error) {
	if page < 1 {
		page = 1
	}
	maxLimit(&limit)

	notifications, err := s.repo.Postgres.Notification.FindForUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) notifications: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	counts, err := s.repo.Postgres.Notification.Counts(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count user(%s) notifications: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	totalPages := int(counts.All) / limit
	if int(counts.All)%limit != 0 {
		totalPages++
	}

	return &dto.GetNotifications{
		Notifications: notifications,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      counts.All,
			TotalPages: totalPages,
		},
		Counts: *counts,
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID uuid.UUID, id int64) error {
	if err := s.repo.Postgres.Notification.MarkRead(ctx, userID, id); err != nil {
		s.logger.Sugar().Errorf("failed to mark notification(%d) read: %s", id, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Postgres.Notification.MarkAllRead(ctx, userID); err != nil {
		s.logger.Sugar().Errorf("failed to mark user(%s) notifications read: %s", userID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

// consumePostCreated fans a new post out to the author's followers: one
// notification per follower, sequential and best-effort.
func (s *notificationService) consumePostCreated(ctx context.Context) {
	queue := rabbitmq.POST_CREATED_QUEUE
	msgs, err := s.rabbitmq.Consume(queue)
	if err != nil {
		s.logger.Sugar().Fatalf("failed to start consume from queue(%s): %s", queue, err.Error())
	}

	for msg := range msgs {
		var data dto.MQPostCreatedMsg
		if err := json.Unmarshal(msg.Body, &data); err != nil {
			s.logger.Sugar().Errorf("failed to unmarshal json in queue(%s): %s", queue, err.Error())
			msg.Nack(false, false)
			continue
		}

		followerIDs, err := s.repo.Postgres.Follow.FindFollowerIDs(ctx, data.UserID)
		if err != nil {
			s.logger.Sugar().Errorf("failed to find followers of user(%s): %s", data.UserID.String(), err.Error())
			msg.Nack(false, true)
			continue
		}

		for _, followerID := range followerIDs {
			n := model.Notification{
				UserID:    followerID,
				Type:      model.NOTIFICATION_NEW_POST,
				Content:   data.PostTitle,
				SenderID:  data.UserID,
				RelatedID: data.PostID,
				OnModel:   "post",
			}
			if err := s.Create(ctx, n); err != nil {
				s.logger.Sugar().Errorf("failed to notify follower(%s) about post(%d): %s", followerID.String(), data.PostID, err.Error())
			}
		}

		msg.Ack(false)
	}
}
