package dto

type CreatePostRequest struct {
	Title   string                     `json:"title" binding:"required,min=2"`
	Content string                     `json:"content" binding:"required,min=20"`
	Kind    string                     `json:"kind"`
	Tags    []string                   `json:"tags"`
	Links   []CreateCreatorLinkRequest `json:"links" binding:"omitempty,dive"`
}

type GetPostsRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type CreateCreatorLinkRequest struct {
	Title string `json:"title" binding:"required,min=1"`
	URL   string `json:"url" binding:"required,url"`
}
