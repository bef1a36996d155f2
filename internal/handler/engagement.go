package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsTrack(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	flag := model.EngagementFlag(strings.TrimSpace(c.Param("flag")))

	counts, err := h.services.Engagement.Track(c.Request.Context(), int64(postID), user.ID, flag)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, *counts)
}
