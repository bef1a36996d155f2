package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) studioMetrics(c *gin.Context) {
	user := h.getUserFromRequest(c)

	metrics, err := h.services.Studio.GetMetrics(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, *metrics)
}
