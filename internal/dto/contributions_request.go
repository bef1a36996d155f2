package dto

type CreateContributionDto struct {
	Title       string `json:"title" binding:"required,min=1"`
	URL         string `json:"url" binding:"required,url"`
	Description string `json:"description"`
}
