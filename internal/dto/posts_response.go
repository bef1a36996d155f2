package dto

import "github.com/flokkk/content-service/internal/model"

type GetPost struct {
	Post     model.FullPost `json:"post"`
	UserVote int16          `json:"user_vote"`
}
