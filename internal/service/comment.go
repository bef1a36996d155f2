package service

import (
	"context"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type commentService struct {
	logger        *zap.Logger
	repo          *repository.Repository
	notifications Notification
}

func newCommentService(logger *zap.Logger, repo *repository.Repository, notifications Notification) Comment {
	return &commentService{
		logger:        logger,
		repo:          repo,
		notifications: notifications,
	}
}

// Create threads the comment under its parent (level = parent level + 1) and
// notifies the post owner, and the parent comment's author on replies.
func (s *commentService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreateCommentDto) (*model.Comment, error) {
	postOwnerID, err := s.repo.Postgres.Post.FindOwnerID(ctx, input.PostID)
	if err == pgx.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d): %s", input.PostID, err.Error())
		return nil, ErrInternal
	}

	comment := model.Comment{
		ParentID:  input.ParentID,
		ReplyToID: input.ReplyToID,
		PostID:    input.PostID,
		AuthorID:  authorID,
		Content:   input.Content,
	}

	var parent *model.Comment
	if input.ParentID != nil {
		parent, err = s.repo.Postgres.Comment.FindByID(ctx, *input.ParentID)
		if err == pgx.ErrNoRows {
			return nil, ErrCommentNotFound
		}
		if err != nil {
			s.logger.Sugar().Errorf("failed to find parent comment(%d): %s", *input.ParentID, err.Error())
			return nil, ErrInternal
		}
		if parent.PostID != input.PostID {
			return nil, ErrCommentPostMismatch
		}

		comment.Level = parent.Level + 1
	}

	createdComment, err := s.repo.Postgres.Comment.Create(ctx, comment)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create comment on post(%d): %s", input.PostID, err.Error())
		return nil, ErrInternal
	}

	s.notifications.Emit(model.Notification{
		UserID:    postOwnerID,
		Type:      model.NOTIFICATION_REPLY,
		Content:   createdComment.Content,
		SenderID:  authorID,
		RelatedID: createdComment.PostID,
		OnModel:   "post",
	})

	if parent != nil && parent.AuthorID != postOwnerID {
		s.notifications.Emit(model.Notification{
			UserID:    parent.AuthorID,
			Type:      model.NOTIFICATION_REPLY,
			Content:   createdComment.Content,
			SenderID:  authorID,
			RelatedID: parent.ID,
			OnModel:   "comment",
		})
	}

	return createdComment, nil
}

func (s *commentService) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error) {
	comments, err := s.repo.Postgres.Comment.FindPostComments(ctx, postID, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find post(%d) comments: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return comments, nil
}

func (s *commentService) FindCommentReplies(ctx context.Context, commentID int64, limit int, offset int) ([]*model.FullComment, error) {
	replies, err := s.repo.Postgres.Comment.FindCommentReplies(ctx, commentID, limit, offset)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to find comment(%d) replies: %s", commentID, err.Error())
		return nil, ErrInternal
	}

	return replies, nil
}

func (s *commentService) Delete(ctx context.Context, postID int64, commentID int64, authorID uuid.UUID) error {
	if err := s.repo.Postgres.Comment.Delete(ctx, postID, commentID, authorID); err != nil {
		s.logger.Sugar().Errorf("failed to delete comment(%d): %s", commentID, err.Error())
		return ErrInternal
	}

	return nil
}
