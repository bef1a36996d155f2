package dto

type ChatRequest struct {
	Query     string `json:"query" binding:"required,min=1"`
	Theme     string `json:"theme"`
	WebSearch bool   `json:"web_search"`
}

type ChatResponse struct {
	Response        string `json:"response"`
	QuotaRemaining  int64  `json:"quotaRemaining"`
	WebSearchUsed   bool   `json:"webSearchUsed"`
	WebSearchFailed bool   `json:"webSearchFailed"`
}

type ClassifyRequest struct {
	Title       string `json:"title" binding:"required,min=1"`
	Description string `json:"description"`
}

type ClassifyResponse struct {
	Category string `json:"category"`
}
