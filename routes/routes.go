package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Madangopal-Redsky/Twilio-server/config"
	"github.com/Madangopal-Redsky/Twilio-server/controllers"
	"github.com/Madangopal-Redsky/Twilio-server/middlewares"
)

type Controllers struct {
	Auth     *controllers.AuthController
	Tokens   *controllers.TokenController
	Users    *controllers.UserController
	Devices  *controllers.DeviceController
	Messages *controllers.MessageController
	Voice    *controllers.VoiceController
}

func SetupRouter(cfg config.Config, ctrl Controllers) *gin.Engine {
	r := gin.Default()

	// Public routes. /twiml and /call take no session on purpose: the
	// signaling webhook is called by the telephony platform, not by a
	// logged-in client.
	r.POST("/signup", ctrl.Auth.Signup)
	r.POST("/login", ctrl.Auth.Login)
	r.POST("/twiml", ctrl.Voice.Twiml)
	r.POST("/call", ctrl.Voice.Call)

	authed := r.Group("/")
	authed.Use(middlewares.Auth([]byte(cfg.JWTSecret)))
	{
		authed.POST("/token", ctrl.Tokens.ChatToken)
		authed.POST("/voice-token", ctrl.Tokens.VoiceToken)
		authed.GET("/users", ctrl.Users.List)
		authed.POST("/messages", ctrl.Messages.Save)
		authed.GET("/messages/:conversationSid", ctrl.Messages.List)
		authed.POST("/save-fcm-token", ctrl.Devices.SaveFCMToken)
	}

	return r
}
