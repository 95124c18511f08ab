package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/identity"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging"
)

// ListConversationsHandler serves the current user's inbox.
func ListConversationsHandler(msgUC messaging.MessagingUsecase, identityUC identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := identityUC.CurrentUser()
		if current == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			return
		}
		conversations, err := msgUC.ListForUser(c.Request.Context(), current.UID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, conversations)
	}
}

// LookupConversationHandler resolves the conversation between the current
// user and ?uid= without creating anything; state tells the client whether
// it is transient or persisted.
func LookupConversationHandler(msgUC messaging.MessagingUsecase, identityUC identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := identityUC.CurrentUser()
		if current == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			return
		}
		other, err := uuid.Parse(c.Query("uid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uid"})
			return
		}
		conversation, err := msgUC.Lookup(c.Request.Context(), current.UID, other)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, conversation)
	}
}

func ListMessagesHandler(uc messaging.MessagingUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		msgs, err := uc.Messages(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func SendMessageHandler(msgUC messaging.MessagingUsecase, identityUC identity.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := identityUC.CurrentUser()
		if current == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			return
		}
		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		msg, err := msgUC.SendMessage(c.Request.Context(), c.Param("id"), current.UID, req.Text)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}
