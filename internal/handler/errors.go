package handler

import (
	"errors"
	"net/http"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized           = errors.New("user is not authorized")
	errInvalidPostID           = errors.New("invalid post ID")
	errInvalidID               = errors.New("invalid ID")
	errHoursAndLimitMustBeInt  = errors.New("hours and limit must be int")
	errPageAndLimitMustBeInt   = errors.New("page and limit must be int")
	errLimitAndOffsetMustBeInt = errors.New("limit and offset must be int")
)

// writeServiceError converts service sentinels to the right status code.
// Internal errors keep the generic message so nothing leaks to the client.
func writeServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch err {
	case service.ErrPostNotFound, service.ErrCommentNotFound, service.ErrEntityNotFound, service.ErrContributionNotFound:
		status = http.StatusNotFound
	case service.ErrInvalidVote, service.ErrInvalidFlag, service.ErrCommentPostMismatch, service.ErrCannotFollowSelf:
		status = http.StatusBadRequest
	case service.ErrNoAccess:
		status = http.StatusForbidden
	case service.ErrContributionResolved:
		status = http.StatusConflict
	case service.ErrChatQuotaExceeded:
		status = http.StatusTooManyRequests
	}

	c.JSON(status, dto.NewBasicResponse(false, err.Error()))
}
