package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/schedule"
)

func ListEventsHandler(uc schedule.ScheduleUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := uc.ListEvents(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func AddEventHandler(uc schedule.ScheduleUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cmd schedule.AddEventCommand
		if err := c.ShouldBindJSON(&cmd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		event, err := uc.AddEvent(c.Request.Context(), cmd)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, event)
	}
}

func DeleteEventHandler(uc schedule.ScheduleUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
			return
		}
		if err := uc.DeleteEvent(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func ClearEventsHandler(uc schedule.ScheduleUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := uc.ClearAll(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
