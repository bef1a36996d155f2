package service

import (
	"context"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository"
	"github.com/flokkk/content-service/internal/repository/postgres"
	"github.com/flokkk/content-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type contributionService struct {
	logger        *zap.Logger
	repo          *repository.Repository
	notifications Notification
}

func newContributionService(logger *zap.Logger, repo *repository.Repository, notifications Notification) Contribution {
	return &contributionService{
		logger:        logger,
		repo:          repo,
		notifications: notifications,
	}
}

func (s *contributionService) Submit(ctx context.Context, postID int64, contributorID uuid.UUID, input dto.CreateContributionDto) (*model.LinkContribution, error) {
	creatorID, err := s.repo.Postgres.Post.FindOwnerID(ctx, postID)
	if err == pgx.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	contribution := model.LinkContribution{
		PostID:        postID,
		ContributorID: contributorID,
		CreatorID:     creatorID,
		Title:         input.Title,
		URL:           input.URL,
		Description:   input.Description,
	}

	created, err := s.repo.Postgres.Contribution.Create(ctx, contribution)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create contribution on post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	s.notifications.Emit(model.Notification{
		UserID:    creatorID,
		Type:      model.NOTIFICATION_CONTRIBUTION,
		Content:   "suggested a link for your post",
		SenderID:  contributorID,
		RelatedID: created.ID,
		OnModel:   "contribution",
	})

	return created, nil
}

// Approve appends the link to the post's community links and notifies the
// contributor. Only the post creator may resolve, and resolved contributions
// are terminal.
func (s *contributionService) Approve(ctx context.Context, id int64, userID uuid.UUID) (*model.LinkContribution, error) {
	if err := s.authorizeResolve(ctx, id, userID); err != nil {
		return nil, err
	}

	contribution, _, err := s.repo.Postgres.Contribution.Approve(ctx, id)
	if err != nil {
		return nil, s.resolveError(id, err)
	}

	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostKey(contribution.PostID)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate post(%d) cache: %s", contribution.PostID, err.Error())
	}

	s.notifications.Emit(model.Notification{
		UserID:    contribution.ContributorID,
		Type:      model.NOTIFICATION_CONTRIBUTION,
		Content:   "approved your link suggestion",
		SenderID:  userID,
		RelatedID: contribution.ID,
		OnModel:   "contribution",
	})

	return contribution, nil
}

func (s *contributionService) Decline(ctx context.Context, id int64, userID uuid.UUID) (*model.LinkContribution, error) {
	if err := s.authorizeResolve(ctx, id, userID); err != nil {
		return nil, err
	}

	contribution, err := s.repo.Postgres.Contribution.Decline(ctx, id)
	if err != nil {
		return nil, s.resolveError(id, err)
	}

	s.notifications.Emit(model.Notification{
		UserID:    contribution.ContributorID,
		Type:      model.NOTIFICATION_CONTRIBUTION,
		Content:   "declined your link suggestion",
		SenderID:  userID,
		RelatedID: contribution.ID,
		OnModel:   "contribution",
	})

	return contribution, nil
}

func (s *contributionService) authorizeResolve(ctx context.Context, id int64, userID uuid.UUID) error {
	contribution, err := s.repo.Postgres.Contribution.FindByID(ctx, id)
	if err == pgx.ErrNoRows {
		return ErrContributionNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find contribution(%d): %s", id, err.Error())
		return ErrInternal
	}

	if contribution.CreatorID != userID {
		return ErrNoAccess
	}

	return nil
}

func (s *contributionService) resolveError(id int64, err error) error {
	switch err {
	case postgres.ErrContributionResolved:
		return ErrContributionResolved
	case pgx.ErrNoRows:
		return ErrContributionNotFound
	default:
		s.logger.Sugar().Errorf("failed to resolve contribution(%d): %s", id, err.Error())
		return ErrInternal
	}
}

func (s *contributionService) FindPending(ctx context.Context, postID int64, userID uuid.UUID) ([]*model.LinkContribution, error) {
	creatorID, err := s.repo.Postgres.Post.FindOwnerID(ctx, postID)
	if err == pgx.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}
	if creatorID != userID {
		return nil, ErrNoAccess
	}

	contributions, err := s.repo.Postgres.Contribution.FindPostContributions(ctx, postID, model.CONTRIBUTION_PENDING)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) contributions: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return contributions, nil
}
