package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	POST_KIND_DISCUSSION = "discussion"
	POST_KIND_COMMUNITY  = "community"
)

type Post struct {
	ID          int64     `json:"id"`
	AuthorID    uuid.UUID `json:"author_id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	Discussions int64     `json:"discussions"`
	Shares      int64     `json:"shares"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatorLink is curated by the post owner. CommunityLink is contributed by
// other users through the contribution flow and carries its own vote count.
type CreatorLink struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	VoteCount int64  `json:"vote_count"`
}

type CommunityLink struct {
	ID            int64     `json:"id"`
	PostID        int64     `json:"post_id"`
	ContributorID uuid.UUID `json:"contributor_id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Description   string    `json:"description"`
	VoteCount     int64     `json:"vote_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type FullPost struct {
	Post           Post             `json:"post"`
	Author         UserAuthor       `json:"author"`
	Hashtags       map[string]bool  `json:"hashtags"`
	CreatorLinks   []*CreatorLink   `json:"creator_links"`
	CommunityLinks []*CommunityLink `json:"community_links"`
}

type AuthorPost struct {
	Post     Post            `json:"post"`
	Hashtags map[string]bool `json:"hashtags"`
}
