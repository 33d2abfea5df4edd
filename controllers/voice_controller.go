package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Madangopal-Redsky/Twilio-server/services"
)

type VoiceController struct {
	Calls *services.CallService
}

func NewVoiceController(calls *services.CallService) *VoiceController {
	return &VoiceController{Calls: calls}
}

// Twiml answers the platform's signaling webhook with a call-control
// document. Twilio posts form-encoded parameters, not JSON.
func (vc *VoiceController) Twiml(c *gin.Context) {
	to := c.PostForm("To")
	from := c.PostForm("From")

	doc, err := vc.Calls.HandleIncoming(c.Request.Context(), to, from)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Data(http.StatusOK, "text/xml", []byte(doc))
}

type CallInput struct {
	To string `json:"to" binding:"required"`
}

// Call places an outbound call to a phone number.
func (vc *VoiceController) Call(c *gin.Context) {
	var input CallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sid, err := vc.Calls.StartCall(input.To)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"callSid": sid})
}
