package model

import (
	"time"

	"github.com/google/uuid"
)

// EngagementFlag is one of the per-user, per-post interaction markers. Flags
// are monotonic: once set they are never cleared.
type EngagementFlag string

const (
	EngagementAppeared   EngagementFlag = "appeared"
	EngagementViewed     EngagementFlag = "viewed"
	EngagementPenetrated EngagementFlag = "penetrated"
	EngagementSaved      EngagementFlag = "saved"
	EngagementShared     EngagementFlag = "shared"
)

func (f EngagementFlag) Valid() bool {
	switch f {
	case EngagementAppeared, EngagementViewed, EngagementPenetrated, EngagementSaved, EngagementShared:
		return true
	}
	return false
}

type PostEngagement struct {
	PostID        int64      `json:"post_id"`
	UserID        uuid.UUID  `json:"user_id"`
	HasAppeared   bool       `json:"has_appeared"`
	AppearedAt    *time.Time `json:"appeared_at"`
	HasViewed     bool       `json:"has_viewed"`
	ViewedAt      *time.Time `json:"viewed_at"`
	HasPenetrated bool       `json:"has_penetrated"`
	PenetratedAt  *time.Time `json:"penetrated_at"`
	HasSaved      bool       `json:"has_saved"`
	SavedAt       *time.Time `json:"saved_at"`
	HasShared     bool       `json:"has_shared"`
	SharedAt      *time.Time `json:"shared_at"`
}

type EngagementCounts struct {
	Appeared   int64 `json:"appeared"`
	Viewed     int64 `json:"viewed"`
	Penetrated int64 `json:"penetrated"`
	Saved      int64 `json:"saved"`
	Shared     int64 `json:"shared"`
}
