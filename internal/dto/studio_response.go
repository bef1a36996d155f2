package dto

type TopPost struct {
	PostID     int64  `json:"post_id"`
	Title      string `json:"title"`
	Kind       string `json:"kind"`
	Appeared   int64  `json:"appeared"`
	Viewed     int64  `json:"viewed"`
	Penetrated int64  `json:"penetrated"`
	Saved      int64  `json:"saved"`
	Shared     int64  `json:"shared"`
}

type StudioMetrics struct {
	Appeared       int64      `json:"appeared"`
	Viewed         int64      `json:"viewed"`
	Penetrated     int64      `json:"penetrated"`
	Saved          int64      `json:"saved"`
	Shared         int64      `json:"shared"`
	Comments       int64      `json:"comments"`
	CommunityLinks int64      `json:"communityLinks"`
	EngagementRate float64    `json:"engagementRate"`
	TopPosts       []*TopPost `json:"topPosts"`
}
