package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Madangopal-Redsky/Twilio-server/services"
)

// DeviceController registers the caller's push token so the call router
// can reach their device when it is offline.
type DeviceController struct {
	Auth *services.AuthService
}

func NewDeviceController(auth *services.AuthService) *DeviceController {
	return &DeviceController{Auth: auth}
}

type fcmTokenInput struct {
	FCMToken string `json:"fcmToken"`
}

func (dc *DeviceController) SaveFCMToken(c *gin.Context) {
	var input fcmTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := dc.Auth.SaveFCMToken(c.GetUint("userID"), input.FCMToken); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "FCM token missing"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FCM token saved"})
}
