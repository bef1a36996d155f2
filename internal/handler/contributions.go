package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) contributionsSubmit(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.CreateContributionDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	contribution, err := h.services.Contribution.Submit(c.Request.Context(), int64(postID), user.ID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *contribution)
}

func (h *Handler) contributionsGetPending(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	contributions, err := h.services.Contribution.FindPending(c.Request.Context(), int64(postID), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contributions)
}

func (h *Handler) contributionsApprove(c *gin.Context) {
	h.resolveContribution(c, true)
}

func (h *Handler) contributionsDecline(c *gin.Context) {
	h.resolveContribution(c, false)
}

func (h *Handler) resolveContribution(c *gin.Context, approve bool) {
	user := h.getUserFromRequest(c)

	contributionIDString := strings.TrimSpace(c.Param("contributionID"))
	contributionID, err := strconv.Atoi(contributionIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	resolve := h.services.Contribution.Decline
	if approve {
		resolve = h.services.Contribution.Approve
	}

	contribution, err := resolve(c.Request.Context(), int64(contributionID), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, *contribution)
}
