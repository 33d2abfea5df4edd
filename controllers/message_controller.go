package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Madangopal-Redsky/Twilio-server/services"
)

type MessageController struct {
	Messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{Messages: messages}
}

type MessageInput struct {
	ConversationSid string `json:"conversationSid"`
	Body            string `json:"body"`
}

// Save appends a message authored by the session identity.
func (mc *MessageController) Save(c *gin.Context) {
	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := mc.Messages.Save(input.ConversationSid, c.GetString("identity"), input.Body)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, msg)
}

// List returns the conversation's messages oldest-first.
func (mc *MessageController) List(c *gin.Context) {
	messages, err := mc.Messages.List(c.Param("conversationSid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}
