package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CONTRIBUTION_PENDING  = "pending"
	CONTRIBUTION_APPROVED = "approved"
	CONTRIBUTION_DECLINED = "declined"
)

// LinkContribution is a community link suggested for someone else's post.
// It stays pending until the post owner approves or declines it; both
// outcomes are terminal.
type LinkContribution struct {
	ID            int64     `json:"id"`
	PostID        int64     `json:"post_id"`
	ContributorID uuid.UUID `json:"contributor_id"`
	CreatorID     uuid.UUID `json:"creator_id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
