package dto

type VoteRequest struct {
	Vote int16 `json:"vote"`
}

// VoteResponse is the single envelope every vote endpoint returns.
type VoteResponse struct {
	VoteCount   int64 `json:"voteCount"`
	UserVote    int16 `json:"userVote"`
	IsLiked     bool  `json:"isLiked"`
	IsDownvoted bool  `json:"isDownvoted"`
}

func NewVoteResponse(voteCount int64, userVote int16) VoteResponse {
	return VoteResponse{
		VoteCount:   voteCount,
		UserVote:    userVote,
		IsLiked:     userVote == 1,
		IsDownvoted: userVote == -1,
	}
}
