package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) notificationsGet(c *gin.Context) {
	user := h.getUserFromRequest(c)

	page, err0 := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, err1 := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err0 != nil || err1 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errPageAndLimitMustBeInt.Error()))
		return
	}

	feed, err := h.services.Notification.GetFeed(c.Request.Context(), user.ID, page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, *feed)
}

func (h *Handler) notificationsRead(c *gin.Context) {
	user := h.getUserFromRequest(c)

	notificationIDString := strings.TrimSpace(c.Param("notificationID"))
	notificationID, err := strconv.Atoi(notificationIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Notification.MarkRead(c.Request.Context(), user.ID, int64(notificationID)); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) notificationsReadAll(c *gin.Context) {
	user := h.getUserFromRequest(c)

	if err := h.services.Notification.MarkAllRead(c.Request.Context(), user.ID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
