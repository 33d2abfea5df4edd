package main

import (
	"log"

	"github.com/twilio/twilio-go"

	"github.com/Madangopal-Redsky/Twilio-server/config"
	"github.com/Madangopal-Redsky/Twilio-server/controllers"
	"github.com/Madangopal-Redsky/Twilio-server/routes"
	"github.com/Madangopal-Redsky/Twilio-server/services"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	push, err := services.NewPushService(cfg.FirebaseCredentialsFile)
	if err != nil {
		log.Fatalf("Failed to load push credentials: %v", err)
	}

	twilioClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	auth := services.NewAuthService(db, cfg)
	grants := services.NewGrantService(cfg)
	messages := services.NewMessageService(db)
	calls := services.NewCallService(db, push, twilioClient.Api, cfg)

	r := routes.SetupRouter(cfg, routes.Controllers{
		Auth:     controllers.NewAuthController(auth),
		Tokens:   controllers.NewTokenController(grants),
		Users:    controllers.NewUserController(auth),
		Devices:  controllers.NewDeviceController(auth),
		Messages: controllers.NewMessageController(messages),
		Voice:    controllers.NewVoiceController(calls),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
