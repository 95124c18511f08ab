package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/errors"
)

func statusFromError(err error) int {
	switch errors.CodeOf(err) {
	case errors.CodeInvalidArgument:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeAlreadyExists:
		return http.StatusConflict
	case errors.CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError serializes the AppError shape; unknown errors come out as
// a bare message with a 500.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error(), "code": errors.CodeOf(err)})
}
