package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsVote(c *gin.Context) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	h.applyVote(c, model.VoteKindPost, int64(postID))
}

func (h *Handler) commentsVote(c *gin.Context) {
	commentIDString := strings.TrimSpace(c.Param("commentID"))
	commentID, err := strconv.Atoi(commentIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	h.applyVote(c, model.VoteKindComment, int64(commentID))
}

func (h *Handler) communityLinksVote(c *gin.Context) {
	linkIDString := strings.TrimSpace(c.Param("linkID"))
	linkID, err := strconv.Atoi(linkIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	h.applyVote(c, model.VoteKindCommunityLink, int64(linkID))
}

func (h *Handler) applyVote(c *gin.Context, kind model.VoteKind, entityID int64) {
	user := h.getUserFromRequest(c)

	var input dto.VoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	result, err := h.services.Vote.Apply(c.Request.Context(), kind, entityID, user.ID, input.Vote)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, *result)
}
