package postgres

import (
	"context"
	"fmt"

	"github.com/flokkk/content-service/internal/config"
	"github.com/flokkk/content-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT || *limit <= 0 {
		*limit = MAX_LIMIT
	}
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
	return pgxpool.New(ctx, connString)
}

type Post interface {
	Create(ctx context.Context, post model.Post, tags []string, links []*model.CreatorLink) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.FullPost, error)
	FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.AuthorPost, error)
	FindTrending(ctx context.Context, hours int, limit int) ([]*model.AuthorPost, error)
	FindOwnerID(ctx context.Context, id int64) (uuid.UUID, error)
	IncrViews(ctx context.Context, id int64) error
	IncrShares(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64, authorID uuid.UUID) error
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
	FindCommentReplies(ctx context.Context, commentID int64, limit int, offset int) ([]*model.FullComment, error)
	Delete(ctx context.Context, postID int64, commentID int64, authorID uuid.UUID) error
}

type Vote interface {
	Apply(ctx context.Context, kind model.VoteKind, entityID int64, userID uuid.UUID, vote int16) (*model.VoteResult, error)
	Find(ctx context.Context, kind model.VoteKind, entityID int64, userID uuid.UUID) (*int16, error)
}

type Notification interface {
	Create(ctx context.Context, n model.Notification) error
	FindForUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.Notification, error)
	Counts(ctx context.Context, userID uuid.UUID) (*model.NotificationCounts, error)
	MarkRead(ctx context.Context, userID uuid.UUID, id int64) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type Engagement interface {
	Track(ctx context.Context, postID int64, userID uuid.UUID, flag model.EngagementFlag) (bool, error)
	Counts(ctx context.Context, postID int64) (*model.EngagementCounts, error)
	TotalsForAuthor(ctx context.Context, authorID uuid.UUID) (*model.StudioTotals, error)
	TopPostsForAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]*model.TopPostStat, error)
}

type Contribution interface {
	Create(ctx context.Context, c model.LinkContribution) (*model.LinkContribution, error)
	FindByID(ctx context.Context, id int64) (*model.LinkContribution, error)
	Approve(ctx context.Context, id int64) (*model.LinkContribution, *model.CommunityLink, error)
	Decline(ctx context.Context, id int64) (*model.LinkContribution, error)
	FindPostContributions(ctx context.Context, postID int64, status string) ([]*model.LinkContribution, error)
}

type Follow interface {
	Create(ctx context.Context, followerID uuid.UUID, followingID uuid.UUID) (bool, error)
	Delete(ctx context.Context, followerID uuid.UUID, followingID uuid.UUID) error
	FindFollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type UserCache interface {
	Create(ctx context.Context, cachedUser model.CachedUser) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
}

type PostgresRepository struct {
	Post
	Comment
	Vote
	Notification
	Engagement
	Contribution
	Follow
	UserCache
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:         newPostRepo(db),
		Comment:      newCommentRepo(db),
		Vote:         newVoteRepo(db),
		Notification: newNotificationRepo(db),
		Engagement:   newEngagementRepo(db),
		Contribution: newContributionRepo(db),
		Follow:       newFollowRepo(db),
		UserCache:    newUserCacheRepo(db),
	}
}
