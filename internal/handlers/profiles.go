package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/identity"
	models "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
)

// ListProfilesHandler serves the directory. Filtering by role and
// case-insensitive name substring happens here, on a snapshot: the store
// itself imposes no ordering.
func ListProfilesHandler(uc identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := uc.ListProfiles(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		role := c.Query("role")
		q := strings.ToLower(c.Query("q"))

		filtered := make([]*models.Profile, 0, len(profiles))
		for _, p := range profiles {
			if role != "" && string(p.Role) != role {
				continue
			}
			if q != "" && !strings.Contains(strings.ToLower(p.FullName), q) {
				continue
			}
			filtered = append(filtered, p)
		}
		c.JSON(http.StatusOK, filtered)
	}
}

func GetProfileHandler(uc identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := uuid.Parse(c.Param("uid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uid"})
			return
		}
		profile, err := uc.GetProfile(c.Request.Context(), uid)
		if err != nil {
			respondError(c, err)
			return
		}
		if profile == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func UpdateProfileHandler(uc identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := uuid.Parse(c.Param("uid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uid"})
			return
		}
		var cmd identity.UpdateProfileCommand
		if err := c.ShouldBindJSON(&cmd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		profile, err := uc.UpdateProfile(c.Request.Context(), uid, cmd)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
