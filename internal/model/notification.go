package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	NOTIFICATION_REPLY        = "reply"
	NOTIFICATION_LIKE         = "like"
	NOTIFICATION_FOLLOW       = "follow"
	NOTIFICATION_NEW_POST     = "new_post"
	NOTIFICATION_CONTRIBUTION = "contribution"
)

type Notification struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	SenderID  uuid.UUID `json:"sender_id"`
	RelatedID int64     `json:"related_id"`
	OnModel   string    `json:"on_model"` // post | comment | user | contribution
	Thumbnail *string   `json:"thumbnail"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationCounts struct {
	All                 int64 `json:"all"`
	Unread              int64 `json:"unread"`
	Comments            int64 `json:"comments"`
	CommentsUnread      int64 `json:"commentsUnread"`
	Likes               int64 `json:"likes"`
	LikesUnread         int64 `json:"likesUnread"`
	Posts               int64 `json:"posts"`
	PostsUnread         int64 `json:"postsUnread"`
	Contributions       int64 `json:"contributions"`
	ContributionsUnread int64 `json:"contributionsUnread"`
	Follows             int64 `json:"follows"`
	FollowsUnread       int64 `json:"followsUnread"`
}
