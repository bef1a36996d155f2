package dto

import "github.com/flokkk/content-service/internal/model"

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type GetNotifications struct {
	Notifications []*model.Notification    `json:"notifications"`
	Pagination    Pagination               `json:"pagination"`
	Counts        model.NotificationCounts `json:"counts"`
}
