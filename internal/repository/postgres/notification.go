package postgres

import (
	"context"
	"time"

	"github.com/flokkk/content-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

func newNotificationRepo(db *pgxpool.Pool) Notification {
	return &notificationRepo{
		db: db,
	}
}

func (r *notificationRepo) Create(ctx context.Context, n model.Notification) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO notifications(user_id, type, content, sender_id, related_id, on_model, thumbnail, read, created_at) VALUES($1, $2, $3, $4, $5, $6, $7, FALSE, $8)",
		n.UserID,
		n.Type,
		n.Content,
		n.SenderID,
		n.RelatedID,
		n.OnModel,
		n.Thumbnail,
		time.Now(),
	)
	return err
}

func (r *notificationRepo) FindForUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*model.Notification, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT n.id, n.user_id, n.type, n.content, n.sender_id, n.related_id, n.on_model, n.thumbnail, n.read, n.created_at
		FROM notifications n
		WHERE n.user_id = $1
		ORDER BY n.created_at DESC
		LIMIT $2
		OFFSET $3`,
		userID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Type,
			&n.Content,
			&n.SenderID,
			&n.RelatedID,
			&n.OnModel,
			&n.Thumbnail,
			&n.Read,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}

		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *notificationRepo) Counts(ctx context.Context, userID uuid.UUID) (*model.NotificationCounts, error) {
	var counts model.NotificationCounts
	if err := r.db.QueryRow(
		ctx,
		`SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE NOT read),
		COUNT(*) FILTER (WHERE type = 'reply'),
		COUNT(*) FILTER (WHERE type = 'reply' AND NOT read),
		COUNT(*) FILTER (WHERE type = 'like'),
		COUNT(*) FILTER (WHERE type = 'like' AND NOT read),
		COUNT(*) FILTER (WHERE type = 'new_post'),
		COUNT(*) FILTER (WHERE type = 'new_post' AND NOT read),
		COUNT(*) FILTER (WHERE type = 'contribution'),
		COUNT(*) FILTER (WHERE type = 'contribution' AND NOT read),
		COUNT(*) FILTER (WHERE type = 'follow'),
		COUNT(*) FILTER (WHERE type = 'follow' AND NOT read)
		FROM notifications
		WHERE user_id = $1`,
		userID,
	).Scan(
		&counts.All,
		&counts.Unread,
		&counts.Comments,
		&counts.CommentsUnread,
		&counts.Likes,
		&counts.LikesUnread,
		&counts.Posts,
		&counts.PostsUnread,
		&counts.Contributions,
		&counts.ContributionsUnread,
		&counts.Follows,
		&counts.FollowsUnread,
	); err != nil {
		return nil, err
	}

	return &counts, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, userID uuid.UUID, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, "UPDATE notifications SET read = TRUE WHERE user_id = $1 AND NOT read", userID)
	return err
}
