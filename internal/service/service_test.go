package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository"
	"github.com/flokkk/content-service/internal/repository/postgres"
	"github.com/flokkk/content-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestRepo(t *testing.T, pg *postgres.PostgresRepository) (*repository.Repository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return &repository.Repository{
		Postgres: pg,
		Redis:    redisrepo.New(rdb),
	}, mr
}

// notificationRecorder substitutes the notification service at call sites and
// records emissions synchronously so tests can assert on them.
type notificationRecorder struct {
	mu      sync.Mutex
	created []model.Notification
}

func (r *notificationRecorder) Create(ctx context.Context, n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, n)
	return nil
}

func (r *notificationRecorder) Emit(n model.Notification) {
	_ = r.Create(context.Background(), n)
}

func (r *notificationRecorder) GetFeed(ctx context.Context, userID uuid.UUID, page int, limit int) (*dto.GetNotifications, error) {
	return nil, nil
}

func (r *notificationRecorder) MarkRead(ctx context.Context, userID uuid.UUID, id int64) error {
	return nil
}

func (r *notificationRecorder) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (r *notificationRecorder) all() []model.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Notification(nil), r.created...)
}

type fakeVoteRepo struct {
	postgres.Vote
	result   *model.VoteResult
	applyErr error
	value    *int16
	findErr  error
	lastVote int16
}

func (f *fakeVoteRepo) Apply(ctx context.Context, kind model.VoteKind, entityID int64, userID uuid.UUID, vote int16) (*model.VoteResult, error) {
	f.lastVote = vote
	return f.result, f.applyErr
}

func (f *fakeVoteRepo) Find(ctx context.Context, kind model.VoteKind, entityID int64, userID uuid.UUID) (*int16, error) {
	return f.value, f.findErr
}

type fakePostRepo struct {
	postgres.Post
	ownerID    uuid.UUID
	ownerErr   error
	shareIncrs int
	trending   []*model.AuthorPost
}

func (f *fakePostRepo) FindOwnerID(ctx context.Context, id int64) (uuid.UUID, error) {
	return f.ownerID, f.ownerErr
}

func (f *fakePostRepo) IncrShares(ctx context.Context, id int64) error {
	f.shareIncrs++
	return nil
}

func (f *fakePostRepo) FindTrending(ctx context.Context, hours int, limit int) ([]*model.AuthorPost, error) {
	return f.trending, nil
}

type fakeEngagementRepo struct {
	postgres.Engagement
	changed  bool
	trackErr error
	tracked  []model.EngagementFlag
	counts   *model.EngagementCounts
	totals   *model.StudioTotals
	topStats []*model.TopPostStat
}

func (f *fakeEngagementRepo) Track(ctx context.Context, postID int64, userID uuid.UUID, flag model.EngagementFlag) (bool, error) {
	f.tracked = append(f.tracked, flag)
	return f.changed, f.trackErr
}

func (f *fakeEngagementRepo) Counts(ctx context.Context, postID int64) (*model.EngagementCounts, error) {
	return f.counts, nil
}

func (f *fakeEngagementRepo) TotalsForAuthor(ctx context.Context, authorID uuid.UUID) (*model.StudioTotals, error) {
	return f.totals, nil
}

func (f *fakeEngagementRepo) TopPostsForAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]*model.TopPostStat, error) {
	return f.topStats, nil
}

type fakeNotificationRepo struct {
	postgres.Notification
	created []model.Notification
	feed    []*model.Notification
	counts  *model.NotificationCounts
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n model.Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) FindForUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.Notification, error) {
	return f.feed, nil
}

func (f *fakeNotificationRepo) Counts(ctx context.Context, userID uuid.UUID) (*model.NotificationCounts, error) {
	return f.counts, nil
}

type fakeContributionRepo struct {
	postgres.Contribution
	found      *model.LinkContribution
	findErr    error
	approved   *model.LinkContribution
	approveErr error
	declined   *model.LinkContribution
	declineErr error
	pending    []*model.LinkContribution
}

func (f *fakeContributionRepo) FindByID(ctx context.Context, id int64) (*model.LinkContribution, error) {
	return f.found, f.findErr
}

func (f *fakeContributionRepo) Approve(ctx context.Context, id int64) (*model.LinkContribution, *model.CommunityLink, error) {
	return f.approved, nil, f.approveErr
}

func (f *fakeContributionRepo) Decline(ctx context.Context, id int64) (*model.LinkContribution, error) {
	return f.declined, f.declineErr
}

func (f *fakeContributionRepo) Create(ctx context.Context, c model.LinkContribution) (*model.LinkContribution, error) {
	created := c
	created.ID = 1
	created.Status = model.CONTRIBUTION_PENDING
	return &created, nil
}

func (f *fakeContributionRepo) FindPostContributions(ctx context.Context, postID int64, status string) ([]*model.LinkContribution, error) {
	return f.pending, nil
}
