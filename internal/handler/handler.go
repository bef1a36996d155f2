package handler

import (
	"context"

	"github.com/flokkk/content-service/internal/model"
	"github.com/flokkk/content-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("/my", h.authMiddleware, h.postsGetMy)
			posts.GET("/author/:userID", h.postsGet)
			posts.GET("/trending", h.authMiddleware, h.postsTrending)

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				post.DELETE("", h.authMiddleware, h.postsDelete)
				post.POST("/vote", h.authMiddleware, h.postsVote)
				post.POST("/track/:flag", h.authMiddleware, h.postsTrack)
				post.POST("/links/:linkID/vote", h.authMiddleware, h.communityLinksVote)
				post.POST("/contributions", h.authMiddleware, h.contributionsSubmit)
				post.GET("/contributions", h.authMiddleware, h.contributionsGetPending)
			}
		}

		comments := v1.Group("/comments")
		{
			comments.POST("", h.authMiddleware, h.commentsCreate)

			postComments := comments.Group("/:postID")
			{
				postComments.GET("", h.commentsGet)

				comment := postComments.Group("/:commentID")
				{
					comment.GET("/replies", h.commentsGetReplies)
					comment.DELETE("", h.authMiddleware, h.commentsDelete)
					comment.POST("/vote", h.authMiddleware, h.commentsVote)
				}
			}
		}

		notifications := v1.Group("/notifications", h.authMiddleware)
		{
			notifications.GET("", h.notificationsGet)
			notifications.PATCH("/read-all", h.notificationsReadAll)
			notifications.PATCH("/:notificationID/read", h.notificationsRead)
		}

		studio := v1.Group("/studio", h.authMiddleware)
		{
			studio.GET("/metrics", h.studioMetrics)
		}

		users := v1.Group("/users", h.authMiddleware)
		{
			users.POST("/:userID/follow", h.usersFollow)
			users.DELETE("/:userID/follow", h.usersUnfollow)
		}

		contributions := v1.Group("/contributions", h.authMiddleware)
		{
			contributions.PATCH("/:contributionID/approve", h.contributionsApprove)
			contributions.PATCH("/:contributionID/decline", h.contributionsDecline)
		}

		chat := v1.Group("/chat", h.authMiddleware)
		{
			chat.POST("", h.chatQuery)
			chat.POST("/classify", h.chatClassify)
		}
	}

	return r
}

func (h *Handler) getUserDataFromClaims(ctx context.Context, claims jwt.MapClaims, accessToken string) (*model.CachedUser, error) {
	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	user, err := h.services.UserCache.CreateOrGet(ctx, id, accessToken)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.CachedUser {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.CachedUser)
	if !ok {
		return nil
	}

	return &user
}
