package service

import (
	"context"
	"testing"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCommentRepo struct {
	postgres.Comment
	parent  *model.Comment
	findErr error
	created *model.Comment
}

func (f *fakeCommentRepo) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	return f.parent, f.findErr
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	created := comment
	created.ID = 100
	f.created = &created
	return &created, nil
}

func TestCommentCreatePostMissing(t *testing.T) {
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Post: &fakePostRepo{ownerErr: pgx.ErrNoRows},
	})
	svc := newCommentService(zap.NewNop(), repo, &notificationRecorder{})

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateCommentDto{PostID: 1, Content: "hi"})
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentCreateNotifiesPostOwner(t *testing.T) {
	owner := uuid.New()
	author := uuid.New()
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Post:    &fakePostRepo{ownerID: owner},
		Comment: &fakeCommentRepo{},
	})

	notifications := &notificationRecorder{}
	svc := newCommentService(zap.NewNop(), repo, notifications)

	comment, err := svc.Create(context.Background(), author, dto.CreateCommentDto{
		PostID:  42,
		Content: "great post",
	})
	require.NoError(t, err)
	require.Equal(t, 0, comment.Level)

	emitted := notifications.all()
	require.Len(t, emitted, 1)
	require.Equal(t, owner, emitted[0].UserID)
	require.Equal(t, author, emitted[0].SenderID)
	require.Equal(t, model.NOTIFICATION_REPLY, emitted[0].Type)
}

func TestCommentReplyThreadsUnderParent(t *testing.T) {
	owner := uuid.New()
	parentAuthor := uuid.New()
	author := uuid.New()
	parentID := int64(10)

	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Post: &fakePostRepo{ownerID: owner},
		Comment: &fakeCommentRepo{
			parent: &model.Comment{ID: parentID, PostID: 42, AuthorID: parentAuthor, Level: 1},
		},
	})

	notifications := &notificationRecorder{}
	svc := newCommentService(zap.NewNop(), repo, notifications)

	comment, err := svc.Create(context.Background(), author, dto.CreateCommentDto{
		PostID:   42,
		ParentID: &parentID,
		Content:  "I disagree",
	})
	require.NoError(t, err)
	require.Equal(t, 2, comment.Level)

	// one for the post owner, one for the parent author
	emitted := notifications.all()
	require.Len(t, emitted, 2)
	require.Equal(t, owner, emitted[0].UserID)
	require.Equal(t, parentAuthor, emitted[1].UserID)
	require.Equal(t, "comment", emitted[1].OnModel)
}

func TestCommentReplyParentOwnsPost(t *testing.T) {
	owner := uuid.New()
	parentID := int64(10)

	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Post: &fakePostRepo{ownerID: owner},
		Comment: &fakeCommentRepo{
			parent: &model.Comment{ID: parentID, PostID: 42, AuthorID: owner},
		},
	})

	notifications := &notificationRecorder{}
	svc := newCommentService(zap.NewNop(), repo, notifications)

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateCommentDto{
		PostID:   42,
		ParentID: &parentID,
		Content:  "reply",
	})
	require.NoError(t, err)

	// the parent author is the post owner, who is only notified once
	require.Len(t, notifications.all(), 1)
}

func TestCommentReplyParentMismatch(t *testing.T) {
	parentID := int64(10)
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Post: &fakePostRepo{ownerID: uuid.New()},
		Comment: &fakeCommentRepo{
			parent: &model.Comment{ID: parentID, PostID: 7},
		},
	})
	svc := newCommentService(zap.NewNop(), repo, &notificationRecorder{})

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateCommentDto{
		PostID:   42,
		ParentID: &parentID,
		Content:  "reply",
	})
	require.ErrorIs(t, err, ErrCommentPostMismatch)
}

func TestCommentReplyParentMissing(t *testing.T) {
	parentID := int64(10)
	repo, _ := newTestRepo(t, &postgres.PostgresRepository{
		Post:    &fakePostRepo{ownerID: uuid.New()},
		Comment: &fakeCommentRepo{findErr: pgx.ErrNoRows},
	})
	svc := newCommentService(zap.NewNop(), repo, &notificationRecorder{})

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateCommentDto{
		PostID:   42,
		ParentID: &parentID,
		Content:  "reply",
	})
	require.ErrorIs(t, err, ErrCommentNotFound)
}
