package model

// StudioTotals aggregates engagement across every post owned by one author.
type StudioTotals struct {
	Appeared       int64
	Viewed         int64
	Penetrated     int64
	Saved          int64
	Shared         int64
	Comments       int64
	CommunityLinks int64
}

type TopPostStat struct {
	PostID     int64
	Title      string
	Kind       string
	Engagement EngagementCounts
}
