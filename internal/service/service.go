package service

import (
	"context"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/rabbitmq"
	"github.com/flokkk/content-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT || *limit <= 0 {
		*limit = MAX_LIMIT
	}
}

type Post interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.FullPost, error)
	FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.AuthorPost, error)
	FindTrending(ctx context.Context, hours int, limit int) ([]*model.AuthorPost, error)
	Delete(ctx context.Context, id int64, authorID uuid.UUID) error
}

type Comment interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreateCommentDto) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
	FindCommentReplies(ctx context.Context, commentID int64, limit int, offset int) ([]*model.FullComment, error)
	Delete(ctx context.Context, postID int64, commentID int64, authorID uuid.UUID) error
}

type Vote interface {
	Apply(ctx context.Context, kind model.VoteKind, entityID int64, voterID uuid.UUID, vote int16) (*dto.VoteResponse, error)
	Find(ctx context.Context, kind model.VoteKind, entityID int64, userID uuid.UUID) (int16, error)
}

type Notification interface {
	Create(ctx context.Context, n model.Notification) error
	Emit(n model.Notification)
	GetFeed(ctx context.Context, userID uuid.UUID, page int, limit int) (*dto.GetNotifications, error)
	MarkRead(ctx context.Context, userID uuid.UUID, id int64) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type Engagement interface {
	Track(ctx context.Context, postID int64, userID uuid.UUID, flag model.EngagementFlag) (*model.EngagementCounts, error)
}

type Studio interface {
	GetMetrics(ctx context.Context, userID uuid.UUID) (*dto.StudioMetrics, error)
}

type Follow interface {
	Follow(ctx context.Context, followerID uuid.UUID, followingID uuid.UUID) error
	Unfollow(ctx context.Context, followerID uuid.UUID, followingID uuid.UUID) error
}

type Contribution interface {
	Submit(ctx context.Context, postID int64, contributorID uuid.UUID, input dto.CreateContributionDto) (*model.LinkContribution, error)
	Approve(ctx context.Context, id int64, userID uuid.UUID) (*model.LinkContribution, error)
	Decline(ctx context.Context, id int64, userID uuid.UUID) (*model.LinkContribution, error)
	FindPending(ctx context.Context, postID int64, userID uuid.UUID) ([]*model.LinkContribution, error)
}

type Chat interface {
	HandleQuery(ctx context.Context, userID uuid.UUID, input dto.ChatRequest) (*dto.ChatResponse, error)
	Classify(ctx context.Context, input dto.ClassifyRequest) (string, error)
}

type UserCache interface {
	CreateOrGet(ctx context.Context, id uuid.UUID, accessToken string) (*model.CachedUser, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
}

type Service struct {
	Post
	Comment
	Vote
	Notification
	Engagement
	Studio
	Follow
	Contribution
	Chat
	UserCache
}

func New(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn, generator Generator, searcher Searcher) *Service {
	notifications := newNotificationService(logger, repo, mq)

	return &Service{
		Post:         newPostService(logger, repo, mq),
		Comment:      newCommentService(logger, repo, notifications),
		Vote:         newVoteService(logger, repo, notifications),
		Notification: notifications,
		Engagement:   newEngagementService(logger, repo),
		Studio:       newStudioService(logger, repo),
		Follow:       newFollowService(logger, repo, notifications),
		Contribution: newContributionService(logger, repo, notifications),
		Chat:         newChatService(logger, repo, generator, searcher),
		UserCache:    newUserCacheService(logger, repo, mq),
	}
}

func (s *Service) StartConsumeAll(ctx context.Context) {
	go s.Notification.(*notificationService).consumePostCreated(ctx)
	go s.UserCache.(*userCacheService).consumeUserUpdates(ctx)
}
