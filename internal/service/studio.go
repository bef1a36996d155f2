package service

import (
	"context"
	"math"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const TOP_POSTS_LIMIT = 5

type studioService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newStudioService(logger *zap.Logger, repo *repository.Repository) Studio {
	return &studioService{
		logger: logger,
		repo:   repo,
	}
}

func (s *studioService) GetMetrics(ctx context.Context, userID uuid.UUID) (*dto.StudioMetrics, error) {
	totals, err := s.repo.Postgres.Engagement.TotalsForAuthor(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to aggregate engagement for user(%s): %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	topStats, err := s.repo.Postgres.Engagement.TopPostsForAuthor(ctx, userID, TOP_POSTS_LIMIT)
	if err != nil {
		s.logger.Sugar().Errorf("failed to aggregate top posts for user(%s): %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	var topPosts []*dto.TopPost
	for _, stat := range topStats {
		topPosts = append(topPosts, &dto.TopPost{
			PostID:     stat.PostID,
			Title:      stat.Title,
			Kind:       stat.Kind,
			Appeared:   stat.Engagement.Appeared,
			Viewed:     stat.Engagement.Viewed,
			Penetrated: stat.Engagement.Penetrated,
			Saved:      stat.Engagement.Saved,
			Shared:     stat.Engagement.Shared,
		})
	}

	return &dto.StudioMetrics{
		Appeared:       totals.Appeared,
		Viewed:         totals.Viewed,
		Penetrated:     totals.Penetrated,
		Saved:          totals.Saved,
		Shared:         totals.Shared,
		Comments:       totals.Comments,
		CommunityLinks: totals.CommunityLinks,
		EngagementRate: engagementRate(totals),
		TopPosts:       topPosts,
	}, nil
}

// engagementRate is (penetrated+saved+shared+comments+communityLinks) over
// appeared, as a percentage rounded to 2 decimals. Zero appearances means a
// zero rate.
func engagementRate(totals *model.StudioTotals) float64 {
	if totals.Appeared == 0 {
		return 0
	}

	interactions := totals.Penetrated + totals.Saved + totals.Shared + totals.Comments + totals.CommunityLinks
	rate := float64(interactions) / float64(totals.Appeared) * 100
	return math.Round(rate*100) / 100
}
