package handler

import (
	"net/http"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) chatQuery(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.ChatRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	response, err := h.services.Chat.HandleQuery(c.Request.Context(), user.ID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, *response)
}

func (h *Handler) chatClassify(c *gin.Context) {
	var input dto.ClassifyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	category, err := h.services.Chat.Classify(c.Request.Context(), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClassifyResponse{Category: category})
}
