package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/feed"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/identity"
)

type createPostRequest struct {
	Content string `json:"content"`
}

func CreatePostHandler(feedUC feed.FeedUsecase, identityUC identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		author := identityUC.CurrentUser()
		if author == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			return
		}
		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		post, err := feedUC.CreatePost(c.Request.Context(), author, req.Content)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

func ListPostsHandler(uc feed.FeedUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := uc.ListPosts(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}
