package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Madangopal-Redsky/Twilio-server/services"
)

type UserController struct {
	Auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{Auth: auth}
}

// List returns everyone except the caller, for building the contact
// picker on the client.
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Auth.ListUsers(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}
