package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/identity"
)

func SignUpHandler(uc identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cmd identity.SignUpCommand
		if err := c.ShouldBindJSON(&cmd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		profile, err := uc.SignUp(c.Request.Context(), cmd)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, profile)
	}
}

func SignInHandler(uc identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cmd identity.SignInCommand
		if err := c.ShouldBindJSON(&cmd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		profile, err := uc.SignIn(c.Request.Context(), cmd)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// SocialSignInHandler serves the google/apple buttons, which resolve to
// the seeded demo accounts.
func SocialSignInHandler(uc identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			profile any
			err     error
		)
		switch c.Param("provider") {
		case "google":
			profile, err = uc.SignInWithGoogle(c.Request.Context())
		case "apple":
			profile, err = uc.SignInWithApple(c.Request.Context())
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown provider"})
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func SignOutHandler(uc identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := uc.SignOut(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func CurrentUserHandler(uc identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := uc.CurrentUser()
		if current == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			return
		}
		c.JSON(http.StatusOK, current)
	}
}
