package service

import (
	"context"
	"testing"

	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name   string
		totals model.StudioTotals
		want   float64
	}{
		{"no appearances", model.StudioTotals{Comments: 10}, 0},
		{
			"quarter engaged",
			model.StudioTotals{
				Appeared:       200,
				Penetrated:     10,
				Saved:          5,
				Shared:         5,
				Comments:       20,
				CommunityLinks: 10,
			},
			25,
		},
		{
			"rounded to two decimals",
			model.StudioTotals{Appeared: 3, Comments: 1},
			33.33,
		},
		{
			"above one hundred percent",
			model.StudioTotals{Appeared: 10, Comments: 15},
			150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, engagementRate(&tt.totals))
		})
	}
}

func TestStudioGetMetrics(t *testing.T) {
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Engagement: &fakeEngagementRepo{
			totals: &model.StudioTotals{
				Appeared:       100,
				Viewed:         40,
				Penetrated:     20,
				Saved:          5,
				Shared:         5,
				Comments:       15,
				CommunityLinks: 5,
			},
			topStats: []*model.TopPostStat{
				{
					PostID: 7,
					Title:  "first",
					Kind:   model.POST_KIND_COMMUNITY,
					Engagement: model.EngagementCounts{
						Appeared: 60,
						Viewed:   25,
					},
				},
			},
		},
	})
	svc := newStudioService(zap.NewNop(), repo)

	metrics, err := svc.GetMetrics(context.Background(), uuid.New())
	require.NoError(t, err)
	require.EqualValues(t, 100, metrics.Appeared)
	require.EqualValues(t, 40, metrics.Viewed)
	require.Equal(t, float64(50), metrics.EngagementRate)
	require.Len(t, metrics.TopPosts, 1)
	require.EqualValues(t, 7, metrics.TopPosts[0].PostID)
	require.Equal(t, "first", metrics.TopPosts[0].Title)
	require.EqualValues(t, 60, metrics.TopPosts[0].Appeared)
}
