package model

import (
	"time"

	"github.com/google/uuid"
)

// VoteKind names the entity a vote ledger entry belongs to. Every votable
// entity stores its ledger in the same shape: at most one row per user, with
// a derived scalar counter on the entity itself.
type VoteKind string

const (
	VoteKindPost          VoteKind = "post"
	VoteKindComment       VoteKind = "comment"
	VoteKindCommunityLink VoteKind = "community_link"
)

func (k VoteKind) Valid() bool {
	switch k {
	case VoteKindPost, VoteKindComment, VoteKindCommunityLink:
		return true
	}
	return false
}

type Vote struct {
	Kind      VoteKind  `json:"kind"`
	EntityID  int64     `json:"entity_id"`
	UserID    uuid.UUID `json:"user_id"`
	Value     int16     `json:"value"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
}

// VoteResult is the outcome of applying a vote to an entity's ledger.
type VoteResult struct {
	VoteCount int64
	UserVote  int16
	Delta     int16
	OwnerID   uuid.UUID
}

// VoteDelta computes the change to apply to an entity's scalar counter when
// a user who previously voted prior (nil = no vote) submits next, where
// next is 1, -1 or 0 (0 = remove). Repeating the same vote yields 0.
func VoteDelta(prior *int16, next int16) int16 {
	if prior == nil {
		return next
	}
	if next == 0 {
		return -*prior
	}
	if next == *prior {
		return 0
	}
	return next - *prior
}
