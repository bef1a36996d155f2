package service

import (
	"context"
	"time"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/rabbitmq"
	"github.com/flokkk/content-service/internal/repository"
	"github.com/flokkk/content-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type postService struct {
	logger   *zap.Logger
	repo     *repository.Repository
	rabbitmq *rabbitmq.MQConn
}

func newPostService(logger *zap.Logger, repo *repository.Repository, rabbitmq *rabbitmq.MQConn) Post {
	return &postService{
		logger:   logger,
		repo:     repo,
		rabbitmq: rabbitmq,
	}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error) {
	kind := input.Kind
	if kind != model.POST_KIND_COMMUNITY {
		kind = model.POST_KIND_DISCUSSION
	}

	post := model.Post{
		AuthorID: authorID,
		Kind:     kind,
		Title:    input.Title,
		Content:  input.Content,
	}

	var links []*model.CreatorLink
	for _, link := range input.Links {
		links = append(links, &model.CreatorLink{
			Title: link.Title,
			URL:   link.URL,
		})
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post, input.Tags, links)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	// Follower fan-out happens through the queue; publishing is best-effort
	// and never fails the create.
	msg := dto.MQPostCreatedMsg{
		PostID:    createdPost.ID,
		UserID:    createdPost.AuthorID,
		PostTitle: createdPost.Title,
		CreatedAt: createdPost.CreatedAt,
	}
	if err := s.rabbitmq.PublishJSON(ctx, rabbitmq.POST_CREATED_QUEUE, msg); err != nil {
		s.logger.Sugar().Errorf("failed to publish post(%d) created message: %s", createdPost.ID, err.Error())
	}

	return createdPost, nil
}

func (s *postService) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	cachedPost, err := redisrepo.Get[model.FullPost](s.repo.Redis.Default, ctx, redisrepo.PostKey(id))
	if err == nil {
		if cachedPost == nil {
			return nil, ErrPostNotFound
		}
		s.incrViews(cachedPost.Post.ID)
		return cachedPost, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%d) from redis: %s", id, err.Error())
		return nil, ErrInternal
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err == pgx.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostKey(id), post, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%d) in redis: %s", id, err.Error())
	}

	s.incrViews(post.Post.ID)

	return post, nil
}

func (s *postService) incrViews(postID int64) {
	go func(id int64) {
		ctx := context.Background()
		if err := s.repo.Postgres.Post.IncrViews(ctx, id); err != nil {
			s.logger.Sugar().Errorf("failed to increment views for post(%d): %s", id, err.Error())
		}
	}(postID)
}

func (s *postService) FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.AuthorPost, error) {
	maxLimit(&limit)

	cachedPosts, err := redisrepo.GetMany[model.AuthorPost](s.repo.Redis.Default, ctx, redisrepo.AuthorPostsKey(authorID.String(), limit, offset))
	if err == nil {
		return cachedPosts, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get author(%s) posts from redis: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Postgres.Post.FindAuthorPosts(ctx, authorID, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find author(%s) posts from postgres: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.AuthorPostsKey(authorID.String(), limit, offset), posts, time.Hour); err != nil {
		s.logger.Sugar().Errorf("failed to set author(%s) posts in redis: %s", authorID.String(), err.Error())
	}

	return posts, nil
}

func (s *postService) FindTrending(ctx context.Context, hours int, limit int) ([]*model.AuthorPost, error) {
	maxLimit(&limit)

	cachedPosts, err := redisrepo.GetMany[model.AuthorPost](s.repo.Redis.Default, ctx, redisrepo.TrendingKey(hours, limit))
	if err == nil {
		return cachedPosts, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get trending posts from redis: %s", err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Postgres.Post.FindTrending(ctx, hours, limit)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find trending posts from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.TrendingKey(hours, limit), posts, time.Minute*10); err != nil {
		s.logger.Sugar().Errorf("failed to set trending posts in redis: %s", err.Error())
	}

	return posts, nil
}

func (s *postService) Delete(ctx context.Context, id int64, authorID uuid.UUID) error {
	if err := s.repo.Postgres.Post.Delete(ctx, id, authorID); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%d): %s", id, err.Error())
		return ErrInternal
	}

	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostKey(id)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate post(%d) cache: %s", id, err.Error())
	}

	return nil
}
