package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Madangopal-Redsky/Twilio-server/services"
)

// TokenController issues the Twilio access tokens the chat and voice
// SDKs connect with. Identity comes from the verified session.
type TokenController struct {
	Grants *services.GrantService
}

func NewTokenController(grants *services.GrantService) *TokenController {
	return &TokenController{Grants: grants}
}

func (tc *TokenController) ChatToken(c *gin.Context) {
	token, err := tc.Grants.ChatToken(c.GetString("identity"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (tc *TokenController) VoiceToken(c *gin.Context) {
	token, err := tc.Grants.VoiceToken(c.GetString("identity"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
